package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainerror "github.com/farmx/ledger-backend/internal/domain/error"
	"github.com/farmx/ledger-backend/internal/integration/entrypoint/dto"
)

func TestHandleError_LedgerCodes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name: "unknown type on input",
			err: domainerror.NewLedgerError(domainerror.ErrCodeUnknownPaymentType,
				"unknown payment type", domainerror.ErrUnknownPaymentType),
			wantStatus: http.StatusBadRequest,
			wantCode:   "LDG-010002",
		},
		{
			name: "unknown type in storage",
			err: fmt.Errorf("ledger: %w", domainerror.NewLedgerError(domainerror.ErrCodeStoredPaymentTypeInvalid,
				"payment has unknown type", domainerror.ErrUnknownPaymentType)),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "LDG-990001",
		},
		{
			name: "ambiguous window",
			err: domainerror.NewLedgerError(domainerror.ErrCodeAmbiguousCommissionWindow,
				"commission can only be saved for a single date", domainerror.ErrAmbiguousCommissionWindow),
			wantStatus: http.StatusConflict,
			wantCode:   "LDG-020001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)
			ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			handleError(ctx, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			var body dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid response body: %v", err)
			}
			if body.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", body.Code, tt.wantCode)
			}
		})
	}
}
