// Package merchantpayment contains merchant ledger use cases.
package merchantpayment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmx/ledger-backend/internal/application/adapter"
	"github.com/farmx/ledger-backend/internal/domain/entity"
	domainerror "github.com/farmx/ledger-backend/internal/domain/error"
)

// CreatePaymentInput represents the input for a merchant ledger entry.
// Type accepts the English names and the account book labels.
type CreatePaymentInput struct {
	VendorID uuid.UUID
	Date     time.Time
	Type     string
	Amount   decimal.Decimal
}

// CreatePaymentUseCase handles ledger entry creation.
type CreatePaymentUseCase struct {
	paymentRepo adapter.MerchantPaymentRepository
	vendorRepo  adapter.VendorRepository
}

// NewCreatePaymentUseCase creates a new CreatePaymentUseCase instance.
func NewCreatePaymentUseCase(paymentRepo adapter.MerchantPaymentRepository, vendorRepo adapter.VendorRepository) *CreatePaymentUseCase {
	return &CreatePaymentUseCase{
		paymentRepo: paymentRepo,
		vendorRepo:  vendorRepo,
	}
}

// Execute records a payment line for a merchant.
func (uc *CreatePaymentUseCase) Execute(ctx context.Context, input CreatePaymentInput) (*entity.MerchantPayment, error) {
	paymentType, err := parsePayment(input.Type, input.Amount)
	if err != nil {
		return nil, err
	}

	vendor, err := uc.vendorRepo.FindByID(ctx, input.VendorID)
	if err != nil {
		if errors.Is(err, domainerror.ErrVendorNotFound) {
			return nil, domainerror.NewMerchantError(
				domainerror.ErrCodeMerchantVendorNotFound,
				"merchant not found",
				domainerror.ErrVendorNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find vendor: %w", err)
	}
	if !vendor.IsMerchant() {
		return nil, domainerror.NewMerchantError(
			domainerror.ErrCodeMerchantVendorMismatch,
			"vendor is not a merchant",
			domainerror.ErrVendorKindMismatch,
		)
	}

	payment := entity.NewMerchantPayment(vendor.ID, input.Date, paymentType, input.Amount)
	if err := uc.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	slog.Info("Merchant payment created",
		"paymentID", payment.ID,
		"vendorID", payment.VendorID,
		"type", payment.Type,
	)

	return payment, nil
}

func parsePayment(label string, amount decimal.Decimal) (entity.PaymentType, error) {
	paymentType, err := entity.ParsePaymentType(label)
	if err != nil {
		return "", err
	}
	if !amount.IsPositive() {
		return "", domainerror.NewMerchantError(
			domainerror.ErrCodeInvalidPaymentAmount,
			"payment amount must be greater than zero",
			domainerror.ErrInvalidPaymentAmount,
		)
	}
	return paymentType, nil
}

func notFoundOr(err error) error {
	if errors.Is(err, domainerror.ErrPaymentNotFound) {
		return domainerror.NewMerchantError(
			domainerror.ErrCodePaymentNotFound,
			"payment not found",
			domainerror.ErrPaymentNotFound,
		)
	}
	return fmt.Errorf("failed to find payment: %w", err)
}
