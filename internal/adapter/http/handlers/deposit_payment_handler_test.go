package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"estudio_admin/internal/adapter/http/handlers/mocks"
	"estudio_admin/internal/domain/entities"
	"estudio_admin/internal/domain/money"
	"estudio_admin/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func newDepositRouter(t *testing.T, mockMode bool) (*gin.Engine, *mocks.MockIDepositPaymentUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIDepositPaymentUseCase(ctrl)
	h := NewDepositPaymentHandler(uc, mockMode)

	r := gin.New()
	r.POST("/v1/contracts/:id/deposit-payments", h.ChargeDeposit)
	r.GET("/v1/contracts/:id/deposit-payments", h.ListDepositPayments)
	r.GET("/v1/deposit-payments/:payment_id", h.GetDepositPayment)
	return r, uc
}

func TestDepositPaymentHandler_ChargeDeposit(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newDepositRouter(t, false)
		w := doJSON(r, http.MethodPost, "/v1/contracts/c-1/deposit-payments", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty mp_payload envelope", func(t *testing.T) {
		r, _ := newDepositRouter(t, false)
		w := doJSON(r, http.MethodPost, "/v1/contracts/c-1/deposit-payments", `{"mp_payload":null}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate charge names the payment to refund", func(t *testing.T) {
		r, uc := newDepositRouter(t, false)
		uc.EXPECT().ChargeDeposit(gomock.Any(), "c-1", gomock.Any()).
			Return(entities.DepositPayment{ID: "pay-2", ContractID: "c-1", Status: entities.PaymentStatusAprovado},
				fmt.Errorf("%w: payment pay-2", usecase.ErrDuplicateDepositCharge))

		w := doJSON(r, http.MethodPost, "/v1/contracts/c-1/deposit-payments", `{"payment_method_id":"pix"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "DUPLICATE_DEPOSIT_CHARGE") || !strings.Contains(w.Body.String(), "pay-2") {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("read error in mock mode falls back to empty payload", func(t *testing.T) {
		r, uc := newDepositRouter(t, true)
		uc.EXPECT().ChargeDeposit(gomock.Any(), "c-1", json.RawMessage("{}")).
			Return(entities.DepositPayment{ID: "pay-1", ContractID: "c-1", Status: entities.PaymentStatusAprovado}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/contracts/c-1/deposit-payments", nil)
		req.Body = failingReadCloser{}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unwraps mp_payload", func(t *testing.T) {
		r, uc := newDepositRouter(t, false)
		uc.EXPECT().ChargeDeposit(gomock.Any(), "c-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, payload json.RawMessage) (entities.DepositPayment, error) {
				var body map[string]interface{}
				if err := json.Unmarshal(payload, &body); err != nil {
					t.Fatalf("payload not json: %v", err)
				}
				if body["payment_method_id"] != "pix" {
					t.Fatalf("envelope not unwrapped: %s", payload)
				}
				return entities.DepositPayment{ID: "pay-1", ContractID: "c-1", Amount: money.FromUnits(200), Status: entities.PaymentStatusPendente}, nil
			})

		w := doJSON(r, http.MethodPost, "/v1/contracts/c-1/deposit-payments", `{"mp_payload":{"payment_method_id":"pix","payer":{"email":"x@test.com"}}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var out map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if out["amount"] != float64(200) || out["status"] != "pendente" {
			t.Fatalf("unexpected body: %v", out)
		}
	})

	cases := []struct {
		name string
		err  error
		code int
	}{
		{"contract not found", usecase.ErrContractNotFound, http.StatusNotFound},
		{"already paid", usecase.ErrDepositAlreadyPaid, http.StatusConflict},
		{"no deposit due", usecase.ErrNoDepositDue, http.StatusConflict},
		{"provider unauthorized", usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized},
		{"provider invalid users", usecase.ErrPaymentGatewayInvalidUsers, http.StatusBadRequest},
		{"provider not configured", usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, uc := newDepositRouter(t, false)
			uc.EXPECT().ChargeDeposit(gomock.Any(), "c-1", gomock.Any()).Return(entities.DepositPayment{}, tc.err)

			w := doJSON(r, http.MethodPost, "/v1/contracts/c-1/deposit-payments", `{"payment_method_id":"pix"}`)
			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
		})
	}
}

func TestDepositPaymentHandler_ListDepositPayments(t *testing.T) {
	older := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)
	payments := []entities.DepositPayment{
		{ID: "pay-1", ContractID: "c-1", Date: older, Status: entities.PaymentStatusNegado},
		{ID: "pay-2", ContractID: "c-1", Date: newer, Status: entities.PaymentStatusAprovado},
	}

	t.Run("all attempts", func(t *testing.T) {
		r, uc := newDepositRouter(t, false)
		uc.EXPECT().ListByContractID(gomock.Any(), "c-1").Return(payments, nil)

		w := doJSON(r, http.MethodGet, "/v1/contracts/c-1/deposit-payments", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var out []map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil || len(out) != 2 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("latest", func(t *testing.T) {
		r, uc := newDepositRouter(t, false)
		uc.EXPECT().ListByContractID(gomock.Any(), "c-1").Return(payments, nil)

		w := doJSON(r, http.MethodGet, "/v1/contracts/c-1/deposit-payments?latest=true", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var out map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if out["id"] != "pay-2" {
			t.Fatalf("expected newest attempt, got %v", out["id"])
		}
	})

	t.Run("latest without attempts", func(t *testing.T) {
		r, uc := newDepositRouter(t, false)
		uc.EXPECT().ListByContractID(gomock.Any(), "c-1").Return(nil, nil)

		w := doJSON(r, http.MethodGet, "/v1/contracts/c-1/deposit-payments?latest=true", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestDepositPaymentHandler_GetDepositPayment(t *testing.T) {
	r, uc := newDepositRouter(t, false)
	uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.DepositPayment{}, usecase.ErrDepositPaymentNotFound)

	req := httptest.NewRequest(http.MethodGet, "/v1/deposit-payments/missing", bytes.NewBuffer(nil))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
