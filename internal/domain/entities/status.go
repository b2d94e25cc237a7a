package entities

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// StatusCategory is the visual bucket a status is rendered with.
type StatusCategory string

const (
	CategoryNeutral  StatusCategory = "neutral"
	CategoryPositive StatusCategory = "positive"
	CategoryWarning  StatusCategory = "warning"
	CategoryNegative StatusCategory = "negative"
)

// PaidStatuses holds every stored payment status that counts as paid.
// "completed" is a legacy value still present on old rows.
var PaidStatuses = map[string]struct{}{
	string(PaymentStatusApproved): {},
	"completed":                   {},
}

// IsPaidStatus is the single paid predicate; every call site must go through it.
func IsPaidStatus(paymentStatus string) bool {
	_, ok := PaidStatuses[paymentStatus]
	return ok
}

// StatusView is the presentation-ready reading of a request status pair.
type StatusView struct {
	Label                 string         `json:"label"`
	Category              StatusCategory `json:"category"`
	IsPaid                bool           `json:"is_paid"`
	RequiresPaymentAction bool           `json:"requires_payment_action"`
	PaymentLabel          string         `json:"payment_label"`
}

type lifecycleLabel struct {
	label    string
	category StatusCategory
}

var lifecycleLabels = map[LifecycleStatus]lifecycleLabel{
	LifecycleStatusPending:    {label: "En attente", category: CategoryWarning},
	LifecycleStatusInProgress: {label: "En cours", category: CategoryNeutral},
	LifecycleStatusCompleted:  {label: "Terminé", category: CategoryPositive},
	LifecycleStatusCancelled:  {label: "Annulé", category: CategoryNegative},
}

// NormalizeStatus maps raw stored values to a StatusView.
//
// Values come from an uncontrolled store: unknown lifecycle values fall back to the
// neutral category with the raw value as label, and an empty payment status reads as pending.
func NormalizeStatus(lifecycleStatus, paymentStatus string, estimatedPrice float64) StatusView {
	view := StatusView{Label: lifecycleStatus, Category: CategoryNeutral}
	if l, ok := lifecycleLabels[LifecycleStatus(lifecycleStatus)]; ok {
		view.Label = l.label
		view.Category = l.category
	}

	view.IsPaid = IsPaidStatus(paymentStatus)
	view.RequiresPaymentAction = !view.IsPaid && estimatedPrice > 0

	switch {
	case view.IsPaid:
		view.PaymentLabel = "Payé"
	case estimatedPrice <= 0:
		view.PaymentLabel = "Devis en attente"
	case PaymentStatus(strings.TrimSpace(paymentStatus)) == PaymentStatusFailed:
		view.PaymentLabel = "Paiement échoué"
	default:
		view.PaymentLabel = "En attente de paiement"
	}
	return view
}

var amountPrinter = message.NewPrinter(language.French)

// FormatAmount renders an amount with French digit grouping, e.g. "150 000 XOF".
func FormatAmount(amount float64, currency string) string {
	if amount <= 0 {
		return ""
	}
	s := amountPrinter.Sprintf("%.0f", amount)
	if currency = strings.TrimSpace(currency); currency != "" {
		s += " " + currency
	}
	return s
}
