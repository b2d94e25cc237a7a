package entities

import "strings"

// PaymentFlowState is the informal per-request payment state exposed to clients.
// It is reported, not enforced.
type PaymentFlowState string

const (
	FlowUnpaid         PaymentFlowState = "UNPAID"
	FlowAwaitingWidget PaymentFlowState = "AWAITING_WIDGET"
	FlowVerifying      PaymentFlowState = "VERIFYING"
	FlowPaid           PaymentFlowState = "PAID"
)

// VerificationOutcome is the tagged result of reconciling a transaction with the provider.
type VerificationOutcome string

const (
	VerificationConfirmed VerificationOutcome = "confirmed"
	VerificationDeclined  VerificationOutcome = "declined"
	VerificationPending   VerificationOutcome = "pending"
)

// ClassifyProviderStatus maps a Mercado Pago payment status to an outcome.
// Anything that is neither clearly approved nor clearly refused stays pending.
func ClassifyProviderStatus(status string) VerificationOutcome {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved":
		return VerificationConfirmed
	case "rejected", "cancelled", "refunded", "charged_back":
		return VerificationDeclined
	default:
		return VerificationPending
	}
}

// Verification is the result of a verification call.
type Verification struct {
	Outcome        VerificationOutcome
	TransactionID  string
	RequestID      string
	RequestKind    RequestKind
	ProviderStatus string
	Provider       *ProviderPayment
}

// WidgetResultKind is what the client-side payment widget reported.
type WidgetResultKind string

const (
	WidgetSuccess WidgetResultKind = "success"
	WidgetFailure WidgetResultKind = "failure"
	WidgetClosed  WidgetResultKind = "closed"
)

type WidgetResult struct {
	Kind          WidgetResultKind
	TransactionID string
	Reason        string
}

// PaymentOutcome extends VerificationOutcome with the abandoned case, which only the widget can report.
type PaymentOutcome string

const (
	PaymentOutcomeConfirmed PaymentOutcome = "confirmed"
	PaymentOutcomeDeclined  PaymentOutcome = "declined"
	PaymentOutcomePending   PaymentOutcome = "pending"
	PaymentOutcomeAbandoned PaymentOutcome = "abandoned"
)

// PaymentResult is what the client shows after the widget closes.
//
// Unverified is set when the widget reported success but the provider could not be
// reached; the request is then reconciled later by the provider notification.
type PaymentResult struct {
	State        PaymentFlowState
	Outcome      PaymentOutcome
	Message      string
	Notify       bool
	RetryAllowed bool
	Unverified   bool
}
