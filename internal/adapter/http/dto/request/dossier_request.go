package request

import (
	"dossier_service/internal/domain/entities"
	"dossier_service/internal/usecase"
	"errors"
)

var ErrMissingEstimatedPrice = errors.New("estimated_price is required")

// SubmitDossierRequest is the payload of a new company or service request.
type SubmitDossierRequest struct {
	ContactName    string  `json:"contact_name" binding:"required"`
	ContactPhone   string  `json:"contact_phone" binding:"required"`
	ContactEmail   string  `json:"contact_email"`
	CompanyName    string  `json:"company_name"`
	LegalForm      string  `json:"legal_form"`
	ServiceType    string  `json:"service_type"`
	Description    string  `json:"description"`
	// EstimatedPrice is kept only when a staff member submits.
	EstimatedPrice float64 `json:"estimated_price"`
}

func (r SubmitDossierRequest) ToInput() usecase.SubmitRequestInput {
	return usecase.SubmitRequestInput{
		ContactName:    r.ContactName,
		ContactPhone:   r.ContactPhone,
		ContactEmail:   r.ContactEmail,
		CompanyName:    r.CompanyName,
		LegalForm:      r.LegalForm,
		ServiceType:    r.ServiceType,
		Description:    r.Description,
		EstimatedPrice: r.EstimatedPrice,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateStatusRequest) ResolveStatus() entities.LifecycleStatus {
	return entities.LifecycleStatus(r.Status)
}

// UpdatePriceRequest uses a pointer so an explicit 0 (back to "quote pending") differs from a missing field.
type UpdatePriceRequest struct {
	EstimatedPrice *float64 `json:"estimated_price"`
}

func (r UpdatePriceRequest) ResolvePrice() (float64, error) {
	if r.EstimatedPrice == nil {
		return 0, ErrMissingEstimatedPrice
	}
	return *r.EstimatedPrice, nil
}
