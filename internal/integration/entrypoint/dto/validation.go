package dto

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/farmx/ledger-backend/internal/domain/entity"
	"github.com/farmx/ledger-backend/internal/domain/valueobject"
)

// Custom binding tags.
const (
	TagVendorKind    = "vendorkind"
	TagPaymentType   = "paymenttype"
	TagPaymentStatus = "paymentstatus"
	TagLedgerDate    = "ledgerdate"
)

var registerOnce sync.Once

// RegisterValidators adds the ledger binding tags to gin's validator.
// It is safe to call more than once.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		rules := map[string]validator.Func{
			TagVendorKind: func(fl validator.FieldLevel) bool {
				return entity.VendorKind(fl.Field().String()).IsValid()
			},
			TagPaymentType: func(fl validator.FieldLevel) bool {
				_, parseErr := entity.ParsePaymentType(fl.Field().String())
				return parseErr == nil
			},
			TagPaymentStatus: func(fl validator.FieldLevel) bool {
				_, parseErr := entity.ParsePaymentStatus(fl.Field().String())
				return parseErr == nil
			},
			TagLedgerDate: func(fl validator.FieldLevel) bool {
				_, parseErr := valueobject.ParseDate(fl.Field().String())
				return parseErr == nil
			},
		}
		for tag, fn := range rules {
			if err = v.RegisterValidation(tag, fn); err != nil {
				return
			}
		}
	})
	return err
}
