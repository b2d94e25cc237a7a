package entities

import (
	"strings"
	"time"
)

// RequestKind distinguishes the two request collections.
//
// Company formation requests and ancillary service requests share the same shape and are
// treated as one polymorphic entity; the kind only selects the backing table.
type RequestKind string

const (
	RequestKindCompany RequestKind = "company"
	RequestKindService RequestKind = "service"
)

// RequestKinds lists the kinds in lookup merge order.
var RequestKinds = []RequestKind{RequestKindCompany, RequestKindService}

func ParseRequestKind(v string) (RequestKind, bool) {
	switch RequestKind(strings.ToLower(strings.TrimSpace(v))) {
	case RequestKindCompany:
		return RequestKindCompany, true
	case RequestKindService:
		return RequestKindService, true
	}
	return "", false
}

// LifecycleStatus is the staff-driven progress of a request.
//
// Transitions are intentionally unconstrained: staff may set any value (administrative override).
type LifecycleStatus string

const (
	LifecycleStatusPending    LifecycleStatus = "pending"
	LifecycleStatusInProgress LifecycleStatus = "in_progress"
	LifecycleStatusCompleted  LifecycleStatus = "completed"
	LifecycleStatusCancelled  LifecycleStatus = "cancelled"
)

func (s LifecycleStatus) Valid() bool {
	switch s {
	case LifecycleStatusPending, LifecycleStatusInProgress, LifecycleStatusCompleted, LifecycleStatusCancelled:
		return true
	}
	return false
}

// Request is a company-formation or service case submitted by a client.
//
// Storage model (DynamoDB, one table per kind):
//   - PK: id
//   - GSI contact_phone-index: contact_phone / created_at
//   - GSI user_id-index: user_id / created_at
//
// PaymentStatus is kept as the raw stored string: legacy rows may carry values outside
// the PaymentStatus constants and must still be readable.
type Request struct {
	ID             string          `json:"id"`
	Kind           RequestKind     `json:"kind"`
	TrackingNumber string          `json:"tracking_number,omitempty"`
	UserID         string          `json:"user_id"`
	ContactName    string          `json:"contact_name"`
	ContactPhone   string          `json:"contact_phone"`
	ContactEmail   string          `json:"contact_email,omitempty"`
	CompanyName    string          `json:"company_name,omitempty"`
	LegalForm      string          `json:"legal_form,omitempty"`
	ServiceType    string          `json:"service_type,omitempty"`
	Description    string          `json:"description,omitempty"`
	Status         LifecycleStatus `json:"status"`
	PaymentStatus  string          `json:"payment_status,omitempty"`
	EstimatedPrice float64         `json:"estimated_price"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// IsPaid reports whether the stored payment status counts as paid.
func (r Request) IsPaid() bool {
	return IsPaidStatus(r.PaymentStatus)
}

// IsPayable holds when a quote exists and nothing has been paid yet.
func (r Request) IsPayable() bool {
	return r.EstimatedPrice > 0 && !r.IsPaid()
}

// StatusView returns the normalized presentation of the request.
func (r Request) StatusView() StatusView {
	return NormalizeStatus(string(r.Status), r.PaymentStatus, r.EstimatedPrice)
}

// NormalizePhone strips the separators users commonly type so that lookups match stored values.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(phone) {
		switch r {
		case ' ', '-', '.', '(', ')', '\t':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ValidPhone is a minimal format guard: optional leading '+', then 8 to 15 digits.
func ValidPhone(phone string) bool {
	p := strings.TrimPrefix(NormalizePhone(phone), "+")
	if len(p) < 8 || len(p) > 15 {
		return false
	}
	for _, r := range p {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
