package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"dossier_service/internal/adapter/http/dto/response"
	"dossier_service/internal/adapter/http/handlers/mocks"
	"dossier_service/internal/domain/entities"
	"dossier_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPaymentRouter(t *testing.T) (*mocks.MockIPaymentUseCase, *gin.Engine) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	h := NewPaymentHandler(uc)

	r := newTestRouter()
	r.POST("/v1/payments/webhook", h.Webhook)
	v1 := r.Group("/v1", authed())
	v1.POST("/requests/:kind/:id/payments", h.Initiate)
	v1.GET("/requests/:kind/:id/payments", h.ListForRequest)
	v1.POST("/requests/:kind/:id/payments/:payment_id/outcome", h.CompleteWidget)
	v1.POST("/payments/verify", h.Verify)
	return uc, r
}

func TestPaymentHandler_Initiate(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "success", want: http.StatusCreated},
		{name: "already paid", err: usecase.ErrRequestAlreadyPaid, want: http.StatusConflict},
		{name: "quote pending", err: usecase.ErrQuotePending, want: http.StatusConflict},
		{name: "not owner", err: usecase.ErrRequestNotFound, want: http.StatusNotFound},
		{name: "store down", err: errors.New("dynamo"), want: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, r := newPaymentRouter(t)
			uc.EXPECT().Initiate(gomock.Any(), clientActor, entities.RequestKindCompany, "r1").
				Return(usecase.Checkout{PaymentID: "p1", Amount: 150000, Currency: "XOF", State: entities.FlowAwaitingWidget}, tc.err)

			w := do(r, http.MethodPost, "/v1/requests/company/r1/payments", "", bearer(t, clientActor))
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}

func TestPaymentHandler_CompleteWidget(t *testing.T) {
	t.Run("invalid result", func(t *testing.T) {
		_, r := newPaymentRouter(t)
		w := do(r, http.MethodPost, "/v1/requests/company/r1/payments/p1/outcome", `{"result":"maybe"}`, bearer(t, clientActor))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("closed", func(t *testing.T) {
		uc, r := newPaymentRouter(t)
		uc.EXPECT().CompleteWidget(gomock.Any(), clientActor, entities.RequestKindCompany, "r1", "p1", entities.WidgetResult{Kind: entities.WidgetClosed}).
			Return(entities.PaymentResult{State: entities.FlowUnpaid, Outcome: entities.PaymentOutcomeAbandoned, RetryAllowed: true}, nil)

		w := do(r, http.MethodPost, "/v1/requests/company/r1/payments/p1/outcome", `{"result":"closed"}`, bearer(t, clientActor))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var out response.PaymentResultResponse
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if out.Notify || out.Outcome != "abandoned" || !out.RetryAllowed {
			t.Fatalf("unexpected response: %+v", out)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, r := newPaymentRouter(t)
		uc.EXPECT().CompleteWidget(gomock.Any(), clientActor, entities.RequestKindService, "r1", "p1", entities.WidgetResult{Kind: entities.WidgetSuccess, TransactionID: "123"}).
			Return(entities.PaymentResult{State: entities.FlowPaid, Outcome: entities.PaymentOutcomeConfirmed, Message: usecase.MessagePaymentConfirmed, Notify: true}, nil)

		w := do(r, http.MethodPost, "/v1/requests/service/r1/payments/p1/outcome", `{"result":"success","transaction_id":"123"}`, bearer(t, clientActor))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_Verify(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		_, r := newPaymentRouter(t)
		w := do(r, http.MethodPost, "/v1/payments/verify", `{"transactionId":"1"}`, bearer(t, clientActor))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown request type", func(t *testing.T) {
		_, r := newPaymentRouter(t)
		w := do(r, http.MethodPost, "/v1/payments/verify", `{"transactionId":"1","requestId":"r1","requestType":"estimate"}`, bearer(t, clientActor))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("declined", func(t *testing.T) {
		uc, r := newPaymentRouter(t)
		uc.EXPECT().Verify(gomock.Any(), clientActor, "1", "r1", entities.RequestKindCompany).Return(entities.Verification{
			Outcome:  entities.VerificationDeclined,
			Provider: &entities.ProviderPayment{ID: "1", Status: "rejected", Raw: json.RawMessage(`{"payer":{"email":"awa@example.com"}}`)},
		}, nil)

		w := do(r, http.MethodPost, "/v1/payments/verify", `{"transactionId":"1","requestId":"r1","requestType":"company_requests"}`, bearer(t, clientActor))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var out response.VerifyPaymentResponse
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if out.Status != response.VerifyStatusFailed || out.PaymentDetails == nil {
			t.Fatalf("unexpected response: %+v", out)
		}
		if strings.Contains(w.Body.String(), "awa@example.com") {
			t.Fatalf("provider payload leaked: %s", w.Body.String())
		}
	})

	t.Run("provider unavailable", func(t *testing.T) {
		uc, r := newPaymentRouter(t)
		uc.EXPECT().Verify(gomock.Any(), clientActor, "1", "r1", entities.RequestKindService).Return(entities.Verification{}, fmt.Errorf("%w: timeout", usecase.ErrVerificationUnavailable))

		w := do(r, http.MethodPost, "/v1/payments/verify", `{"transactionId":"1","requestId":"r1","requestType":"service"}`, bearer(t, clientActor))
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("amount mismatch", func(t *testing.T) {
		uc, r := newPaymentRouter(t)
		uc.EXPECT().Verify(gomock.Any(), clientActor, "1", "r1", entities.RequestKindCompany).Return(entities.Verification{}, usecase.ErrAmountMismatch)

		w := do(r, http.MethodPost, "/v1/payments/verify", `{"transactionId":"1","requestId":"r1","requestType":"company"}`, bearer(t, clientActor))
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "PAYMENT_AMOUNT_MISMATCH") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("request of another client", func(t *testing.T) {
		uc, r := newPaymentRouter(t)
		uc.EXPECT().Verify(gomock.Any(), clientActor, "1", "r1", entities.RequestKindCompany).Return(entities.Verification{}, usecase.ErrRequestNotFound)

		w := do(r, http.MethodPost, "/v1/payments/verify", `{"transactionId":"1","requestId":"r1","requestType":"company"}`, bearer(t, clientActor))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_ListForRequest(t *testing.T) {
	uc, r := newPaymentRouter(t)
	uc.EXPECT().ListForRequest(gomock.Any(), staffActor, entities.RequestKindCompany, "r1").Return([]entities.Payment{{ID: "p1"}}, nil)

	w := do(r, http.MethodGet, "/v1/requests/company/r1/payments", "", bearer(t, staffActor))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestPaymentHandler_Webhook(t *testing.T) {
	t.Run("other topic ignored", func(t *testing.T) {
		_, r := newPaymentRouter(t)
		w := do(r, http.MethodPost, "/v1/payments/webhook", `{"type":"merchant_order","data":{"id":"9"}}`, "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reconciled", func(t *testing.T) {
		uc, r := newPaymentRouter(t)
		uc.EXPECT().HandleNotification(gomock.Any(), "42").Return(entities.Verification{Outcome: entities.VerificationConfirmed, RequestID: "r1"}, nil)

		w := do(r, http.MethodPost, "/v1/payments/webhook", `{"type":"payment","action":"payment.updated","data":{"id":"42"}}`, "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("legacy query notification", func(t *testing.T) {
		uc, r := newPaymentRouter(t)
		uc.EXPECT().HandleNotification(gomock.Any(), "77").Return(entities.Verification{Outcome: entities.VerificationPending}, nil)

		w := do(r, http.MethodPost, "/v1/payments/webhook?topic=payment&id=77", "", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown request acknowledged", func(t *testing.T) {
		uc, r := newPaymentRouter(t)
		uc.EXPECT().HandleNotification(gomock.Any(), "42").Return(entities.Verification{}, usecase.ErrRequestNotFound)

		w := do(r, http.MethodPost, "/v1/payments/webhook", `{"type":"payment","data":{"id":"42"}}`, "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("underpaid transaction acknowledged", func(t *testing.T) {
		uc, r := newPaymentRouter(t)
		uc.EXPECT().HandleNotification(gomock.Any(), "42").Return(entities.Verification{}, usecase.ErrAmountMismatch)

		w := do(r, http.MethodPost, "/v1/payments/webhook", `{"type":"payment","data":{"id":"42"}}`, "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("provider down asks for retry", func(t *testing.T) {
		uc, r := newPaymentRouter(t)
		uc.EXPECT().HandleNotification(gomock.Any(), "42").Return(entities.Verification{}, fmt.Errorf("%w: 502", usecase.ErrVerificationUnavailable))

		w := do(r, http.MethodPost, "/v1/payments/webhook", `{"type":"payment","data":{"id":"42"}}`, "")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}
