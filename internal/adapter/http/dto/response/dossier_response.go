package response

import (
	"dossier_service/internal/domain/entities"
	"time"
)

type DossierResponse struct {
	ID             string              `json:"id"`
	Kind           string              `json:"kind"`
	TrackingNumber string              `json:"tracking_number,omitempty"`
	ContactName    string              `json:"contact_name"`
	ContactPhone   string              `json:"contact_phone"`
	ContactEmail   string              `json:"contact_email,omitempty"`
	CompanyName    string              `json:"company_name,omitempty"`
	LegalForm      string              `json:"legal_form,omitempty"`
	ServiceType    string              `json:"service_type,omitempty"`
	Description    string              `json:"description,omitempty"`
	Status         string              `json:"status"`
	PaymentStatus  string              `json:"payment_status"`
	EstimatedPrice float64             `json:"estimated_price"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
	View           entities.StatusView `json:"view"`
}

func FromRequest(r entities.Request) DossierResponse {
	return DossierResponse{
		ID:             r.ID,
		Kind:           string(r.Kind),
		TrackingNumber: r.TrackingNumber,
		ContactName:    r.ContactName,
		ContactPhone:   r.ContactPhone,
		ContactEmail:   r.ContactEmail,
		CompanyName:    r.CompanyName,
		LegalForm:      r.LegalForm,
		ServiceType:    r.ServiceType,
		Description:    r.Description,
		Status:         string(r.Status),
		PaymentStatus:  r.PaymentStatus,
		EstimatedPrice: r.EstimatedPrice,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
		View:           r.StatusView(),
	}
}

func FromRequests(rs []entities.Request) []DossierResponse {
	out := make([]DossierResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromRequest(r))
	}
	return out
}
