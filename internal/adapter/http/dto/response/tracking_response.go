package response

import (
	"dossier_service/internal/domain/entities"
	"dossier_service/internal/usecase"
	"time"
)

const (
	TrackingStateFound    = "found"
	TrackingStateNotFound = "not_found"

	MessageTrackingFound    = "Voici les dossiers associés à ce numéro."
	MessageTrackingNotFound = "Aucun dossier trouvé pour ce numéro."
)

type TrackedRequestResponse struct {
	ID             string              `json:"id"`
	Kind           string              `json:"kind"`
	TrackingNumber string              `json:"tracking_number,omitempty"`
	ContactName    string              `json:"contact_name"`
	Title          string              `json:"title"`
	Status         string              `json:"status"`
	PaymentStatus  string              `json:"payment_status"`
	EstimatedPrice float64             `json:"estimated_price"`
	AmountLabel    string              `json:"amount_label,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	View           entities.StatusView `json:"view"`
}

type TrackingLookupResponse struct {
	State    string                   `json:"state"`
	Message  string                   `json:"message"`
	Requests []TrackedRequestResponse `json:"requests"`
}

func FromTrackingResult(res usecase.TrackingResult, currency string) TrackingLookupResponse {
	out := TrackingLookupResponse{
		State:    TrackingStateNotFound,
		Message:  MessageTrackingNotFound,
		Requests: make([]TrackedRequestResponse, 0, len(res.Requests)),
	}
	if res.Found {
		out.State = TrackingStateFound
		out.Message = MessageTrackingFound
	}
	for _, r := range res.Requests {
		out.Requests = append(out.Requests, TrackedRequestResponse{
			ID:             r.ID,
			Kind:           string(r.Kind),
			TrackingNumber: r.TrackingNumber,
			ContactName:    r.ContactName,
			Title:          r.Title,
			Status:         r.Status,
			PaymentStatus:  r.PaymentStatus,
			EstimatedPrice: r.EstimatedPrice,
			AmountLabel:    entities.FormatAmount(r.EstimatedPrice, currency),
			CreatedAt:      r.CreatedAt,
			View:           r.View,
		})
	}
	return out
}
