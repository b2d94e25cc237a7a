package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the state of a payment attempt.
//
// A payment starts pending and settles exactly once into approved or failed.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusFailed   PaymentStatus = "failed"
)

func (s PaymentStatus) Terminal() bool {
	return s == PaymentStatusApproved || s == PaymentStatusFailed
}

// Payment is the bookkeeping record written for each payment attempt.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (request_id-index): request_id / created_at
//
// Amount, currency and customer fields are snapshots taken when the attempt starts;
// they are never re-read from the request afterwards.
type Payment struct {
	ID            string        `json:"id"`
	RequestID     string        `json:"request_id"`
	RequestKind   RequestKind   `json:"request_kind"`
	Amount        float64       `json:"amount"`
	Currency      string        `json:"currency"`
	Status        PaymentStatus `json:"status"`
	TransactionID string        `json:"transaction_id,omitempty"`
	CustomerName  string        `json:"customer_name,omitempty"`
	CustomerEmail string        `json:"customer_email,omitempty"`
	CustomerPhone string        `json:"customer_phone,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// ProviderPayment is the payment provider's authoritative view of a transaction.
type ProviderPayment struct {
	ID                string
	Status            string
	StatusDetail      string
	Amount            float64
	Currency          string
	ExternalReference string
	Raw               json.RawMessage
}
