package handlers

import (
	"dossier_service/internal/domain/entities"
	"dossier_service/internal/usecase"
	"dossier_service/pkg"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// User-facing tracking copy. The three failure messages must stay distinct.
const (
	MessageInvalidPhone        = "Veuillez saisir un numéro de téléphone valide."
	MessageTrackingRateLimited = "Trop de recherches. Veuillez patienter quelques minutes avant de réessayer."
	MessageGenericRetry        = "Une erreur est survenue. Veuillez réessayer."
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidPhone   = pkg.NewDomainErrorSimple("INVALID_PHONE", MessageInvalidPhone, http.StatusBadRequest)
)

func mapTrackingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPhone):
		return errInvalidPhone
	case errors.Is(err, usecase.ErrTrackingRateLimited):
		return pkg.NewDomainErrorSimple("TRACKING_RATE_LIMITED", MessageTrackingRateLimited, http.StatusTooManyRequests)
	case errors.Is(err, usecase.ErrTrackingUnavailable):
		return pkg.NewDomainError("TRACKING_UNAVAILABLE", MessageGenericRetry, err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", MessageGenericRetry, err, http.StatusInternalServerError)
	}
}

func mapRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestKind):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST_KIND", "Request kind must be company or service", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidRequestID), errors.Is(err, usecase.ErrInvalidRequestInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidLifecycleStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Status must be one of pending, in_progress, completed, cancelled", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEstimatedPrice):
		return pkg.NewDomainErrorSimple("INVALID_ESTIMATED_PRICE", "Estimated price must not be negative", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Staff access required", http.StatusForbidden)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Request not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTransactionID), errors.Is(err, usecase.ErrInvalidWidgetResult):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequestAlreadyPaid):
		return pkg.NewDomainErrorSimple("REQUEST_ALREADY_PAID", "Request already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuotePending):
		return pkg.NewDomainErrorSimple("QUOTE_PENDING", "The quote for this request is not ready yet", http.StatusConflict)
	case errors.Is(err, usecase.ErrTransactionMismatch):
		return pkg.NewDomainErrorSimple("TRANSACTION_MISMATCH", "Transaction does not belong to this request", http.StatusConflict)
	case errors.Is(err, usecase.ErrAmountMismatch):
		return pkg.NewDomainErrorSimple("PAYMENT_AMOUNT_MISMATCH", "Transaction amount does not match the request price", http.StatusConflict)
	case errors.Is(err, usecase.ErrVerificationUnavailable):
		return pkg.NewDomainError("PAYMENT_VERIFICATION_UNAVAILABLE", MessageGenericRetry, err, http.StatusServiceUnavailable)
	default:
		return mapRequestError(err)
	}
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// kindParam normalizes the :kind path segment. Unknown values pass through and are rejected by the use case.
func kindParam(c *gin.Context) entities.RequestKind {
	raw := c.Param("kind")
	if k, ok := entities.ParseRequestKind(raw); ok {
		return k
	}
	return entities.RequestKind(strings.TrimSpace(raw))
}
