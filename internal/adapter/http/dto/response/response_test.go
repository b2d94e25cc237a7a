package response

import (
	"encoding/json"
	"strings"
	"testing"

	"dossier_service/internal/domain/entities"
	"dossier_service/internal/usecase"
)

func TestFromTrackingResult(t *testing.T) {
	empty := FromTrackingResult(usecase.TrackingResult{}, "XOF")
	if empty.State != TrackingStateNotFound || empty.Message != MessageTrackingNotFound || empty.Requests == nil {
		t.Fatalf("unexpected empty response: %+v", empty)
	}

	res := usecase.TrackingResult{Found: true, Requests: []usecase.TrackedRequest{
		{ID: "c-1", Kind: entities.RequestKindCompany, EstimatedPrice: 150000},
		{ID: "s-1", Kind: entities.RequestKindService},
	}}
	out := FromTrackingResult(res, "XOF")
	if out.State != TrackingStateFound || len(out.Requests) != 2 {
		t.Fatalf("unexpected response: %+v", out)
	}
	if out.Requests[0].Kind != "company" || out.Requests[0].AmountLabel == "" {
		t.Fatalf("unexpected first row: %+v", out.Requests[0])
	}
	if out.Requests[1].AmountLabel != "" {
		t.Fatalf("expected no amount label for a pending quote, got %q", out.Requests[1].AmountLabel)
	}
}

func TestFromVerification(t *testing.T) {
	declined := FromVerification(entities.Verification{
		Outcome:  entities.VerificationDeclined,
		Provider: &entities.ProviderPayment{ID: "42", Status: "rejected"},
	})
	if declined.Status != VerifyStatusFailed || declined.Message != usecase.MessagePaymentDeclined {
		t.Fatalf("unexpected response: %+v", declined)
	}
	if declined.PaymentDetails == nil || declined.PaymentDetails.ProviderStatus != "rejected" {
		t.Fatalf("expected payment details, got %+v", declined.PaymentDetails)
	}

	pending := FromVerification(entities.Verification{Outcome: entities.VerificationPending})
	if pending.Status != VerifyStatusPending || pending.Message == declined.Message {
		t.Fatalf("pending must read differently from declined: %+v", pending)
	}

	withPayload := FromVerification(entities.Verification{
		Outcome:  entities.VerificationConfirmed,
		Provider: &entities.ProviderPayment{ID: "43", Status: "approved", Raw: json.RawMessage(`{"payer":{"email":"awa@example.com"}}`)},
	})
	body, err := json.Marshal(withPayload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(body), "awa@example.com") || strings.Contains(string(body), `"raw"`) {
		t.Fatalf("provider payload leaked into response: %s", body)
	}

	paid := FromVerification(entities.Verification{Outcome: entities.VerificationConfirmed})
	if paid.Status != VerifyStatusApproved || paid.PaymentDetails != nil {
		t.Fatalf("unexpected response: %+v", paid)
	}
}

func TestFromRequest(t *testing.T) {
	r := entities.Request{ID: "r1", Kind: entities.RequestKindService, Status: "archived", PaymentStatus: "completed", EstimatedPrice: 10}
	out := FromRequest(r)
	if out.View.Label != "archived" || !out.View.IsPaid || out.Kind != "service" {
		t.Fatalf("unexpected response: %+v", out)
	}
	if list := FromRequests(nil); list == nil || len(list) != 0 {
		t.Fatalf("expected empty list, got %+v", list)
	}
}

func TestFromCheckout(t *testing.T) {
	out := FromCheckout(usecase.Checkout{PaymentID: "p", Amount: 150000, Currency: "XOF", State: entities.FlowAwaitingWidget})
	if out.State != "AWAITING_WIDGET" || out.AmountLabel == "" {
		t.Fatalf("unexpected checkout: %+v", out)
	}
}
