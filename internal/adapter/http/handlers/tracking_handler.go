package handlers

import (
	"dossier_service/internal/adapter/http/dto/request"
	"dossier_service/internal/adapter/http/dto/response"
	"dossier_service/internal/infrastructure/metrics"
	"dossier_service/internal/usecase"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// TrackingHandler serves the public "track my dossier by phone" lookup.
type TrackingHandler struct {
	usecase  usecase.ITrackingUseCase
	currency string
}

func NewTrackingHandler(uc usecase.ITrackingUseCase, currency string) *TrackingHandler {
	return &TrackingHandler{usecase: uc, currency: currency}
}

// Lookup godoc
// @Summary      Track requests by phone
// @Description  Returns every company and service request attached to a phone number. Rate limited per client IP.
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Param        payload  body      request.TrackingLookupRequest  true  "Phone number"
// @Success      200      {object}  response.TrackingLookupResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      429      {object}  pkg.HTTPError
// @Failure      503      {object}  pkg.HTTPError
// @Router       /tracking/lookup [post]
func (h *TrackingHandler) Lookup(c *gin.Context) {
	var payload request.TrackingLookupRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		metrics.ObserveTrackingLookup(metrics.TrackingInvalid)
		writeError(c, errInvalidPhone)
		return
	}

	res, err := h.usecase.LookupByPhone(c.Request.Context(), c.ClientIP(), payload.ResolvePhone())
	if err != nil {
		log.Printf("[tracking][handler] lookup failed ip=%s err=%v", c.ClientIP(), err)
		metrics.ObserveTrackingLookup(trackingOutcome(err))
		writeError(c, mapTrackingError(err))
		return
	}

	if res.Found {
		metrics.ObserveTrackingLookup(metrics.TrackingFound)
	} else {
		metrics.ObserveTrackingLookup(metrics.TrackingNotFound)
	}
	c.JSON(http.StatusOK, response.FromTrackingResult(res, h.currency))
}

func trackingOutcome(err error) string {
	switch {
	case errors.Is(err, usecase.ErrInvalidPhone):
		return metrics.TrackingInvalid
	case errors.Is(err, usecase.ErrTrackingRateLimited):
		return metrics.TrackingRateLimited
	default:
		return metrics.TrackingError
	}
}
