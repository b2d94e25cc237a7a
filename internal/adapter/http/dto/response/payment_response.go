package response

import (
	"dossier_service/internal/domain/entities"
	"dossier_service/internal/usecase"
	"time"
)

// Verification statuses returned to the web client.
const (
	VerifyStatusApproved = "approved"
	VerifyStatusFailed   = "failed"
	VerifyStatusPending  = "pending"
)

type CheckoutResponse struct {
	PaymentID       string  `json:"payment_id"`
	RequestID       string  `json:"request_id"`
	RequestKind     string  `json:"request_kind"`
	CorrelationID   string  `json:"correlation_id"`
	Amount          float64 `json:"amount"`
	AmountLabel     string  `json:"amount_label"`
	Currency        string  `json:"currency"`
	PayerName       string  `json:"payer_name"`
	PayerEmail      string  `json:"payer_email,omitempty"`
	PayerPhone      string  `json:"payer_phone"`
	PublicKey       string  `json:"public_key,omitempty"`
	RecordPersisted bool    `json:"record_persisted"`
	State           string  `json:"state"`
}

func FromCheckout(c usecase.Checkout) CheckoutResponse {
	return CheckoutResponse{
		PaymentID:       c.PaymentID,
		RequestID:       c.RequestID,
		RequestKind:     string(c.RequestKind),
		CorrelationID:   c.CorrelationID,
		Amount:          c.Amount,
		AmountLabel:     entities.FormatAmount(c.Amount, c.Currency),
		Currency:        c.Currency,
		PayerName:       c.PayerName,
		PayerEmail:      c.PayerEmail,
		PayerPhone:      c.PayerPhone,
		PublicKey:       c.PublicKey,
		RecordPersisted: c.RecordPersisted,
		State:           string(c.State),
	}
}

type PaymentResultResponse struct {
	State        string `json:"state"`
	Outcome      string `json:"outcome"`
	Message      string `json:"message,omitempty"`
	Notify       bool   `json:"notify"`
	RetryAllowed bool   `json:"retry_allowed"`
	Unverified   bool   `json:"unverified,omitempty"`
}

func FromPaymentResult(r entities.PaymentResult) PaymentResultResponse {
	return PaymentResultResponse{
		State:        string(r.State),
		Outcome:      string(r.Outcome),
		Message:      r.Message,
		Notify:       r.Notify,
		RetryAllowed: r.RetryAllowed,
		Unverified:   r.Unverified,
	}
}

// PaymentDetails is the client-safe subset of the provider payment. The raw provider payload
// carries payer data and stays server-side.
type PaymentDetails struct {
	TransactionID     string  `json:"transactionId"`
	ProviderStatus    string  `json:"providerStatus"`
	StatusDetail      string  `json:"statusDetail,omitempty"`
	Amount            float64 `json:"amount,omitempty"`
	Currency          string  `json:"currency,omitempty"`
	ExternalReference string  `json:"externalReference,omitempty"`
}

// VerifyPaymentResponse keeps the camelCase shape the web client already parses.
type VerifyPaymentResponse struct {
	Status         string          `json:"status"`
	Message        string          `json:"message"`
	PaymentDetails *PaymentDetails `json:"paymentDetails,omitempty"`
}

func FromVerification(v entities.Verification) VerifyPaymentResponse {
	out := VerifyPaymentResponse{}
	switch v.Outcome {
	case entities.VerificationConfirmed:
		out.Status, out.Message = VerifyStatusApproved, usecase.MessagePaymentConfirmed
	case entities.VerificationDeclined:
		out.Status, out.Message = VerifyStatusFailed, usecase.MessagePaymentDeclined
	default:
		out.Status, out.Message = VerifyStatusPending, usecase.MessagePaymentPending
	}
	if p := v.Provider; p != nil {
		out.PaymentDetails = &PaymentDetails{
			TransactionID:     p.ID,
			ProviderStatus:    p.Status,
			StatusDetail:      p.StatusDetail,
			Amount:            p.Amount,
			Currency:          p.Currency,
			ExternalReference: p.ExternalReference,
		}
	}
	return out
}

type PaymentRecordResponse struct {
	ID            string    `json:"id"`
	RequestID     string    `json:"request_id"`
	RequestKind   string    `json:"request_kind"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	TransactionID string    `json:"transaction_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromPayments(ps []entities.Payment) []PaymentRecordResponse {
	out := make([]PaymentRecordResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, PaymentRecordResponse{
			ID:            p.ID,
			RequestID:     p.RequestID,
			RequestKind:   string(p.RequestKind),
			Amount:        p.Amount,
			Currency:      p.Currency,
			Status:        string(p.Status),
			TransactionID: p.TransactionID,
			CreatedAt:     p.CreatedAt,
			UpdatedAt:     p.UpdatedAt,
		})
	}
	return out
}
