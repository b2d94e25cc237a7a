package request

import (
	"dossier_service/internal/domain/entities"
	"errors"
	"strings"
)

var ErrInvalidWidgetResult = errors.New("result must be one of success, failure, closed")

// WidgetOutcomeRequest is what the client reports once the payment widget closes.
type WidgetOutcomeRequest struct {
	Result        string `json:"result" binding:"required"`
	TransactionID string `json:"transaction_id"`
	Reason        string `json:"reason"`
}

func (r WidgetOutcomeRequest) ToWidgetResult() (entities.WidgetResult, error) {
	kind := entities.WidgetResultKind(strings.ToLower(strings.TrimSpace(r.Result)))
	switch kind {
	case entities.WidgetSuccess, entities.WidgetFailure, entities.WidgetClosed:
	default:
		return entities.WidgetResult{}, ErrInvalidWidgetResult
	}
	return entities.WidgetResult{
		Kind:          kind,
		TransactionID: strings.TrimSpace(r.TransactionID),
		Reason:        strings.TrimSpace(r.Reason),
	}, nil
}

// VerifyPaymentRequest is the verification payload. Field names follow the existing web client.
type VerifyPaymentRequest struct {
	TransactionID string `json:"transactionId" binding:"required"`
	RequestID     string `json:"requestId" binding:"required"`
	RequestType   string `json:"requestType" binding:"required"`
}

// ResolveKind accepts the kind names and the table names the web client historically sent.
func (r VerifyPaymentRequest) ResolveKind() (entities.RequestKind, bool) {
	v := strings.ToLower(strings.TrimSpace(r.RequestType))
	switch v {
	case "company_requests", "company_creation":
		return entities.RequestKindCompany, true
	case "service_requests":
		return entities.RequestKindService, true
	}
	return entities.ParseRequestKind(v)
}

// PaymentNotification is a Mercado Pago webhook body.
type PaymentNotification struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	Data   struct {
		ID string `json:"id"`
	} `json:"data"`
}

// ResolvePaymentID returns the provider payment id of a payment notification, or "" for other topics.
// Legacy IPN notifications carry topic and id in the query string instead of the body.
func (n PaymentNotification) ResolvePaymentID(queryTopic, queryID string) string {
	topic := strings.TrimSpace(n.Type)
	if topic == "" {
		topic = strings.TrimSpace(queryTopic)
	}
	if topic != "" && topic != "payment" {
		return ""
	}
	if id := strings.TrimSpace(n.Data.ID); id != "" {
		return id
	}
	return strings.TrimSpace(queryID)
}
