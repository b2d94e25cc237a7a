package handlers

import (
	"dossier_service/internal/adapter/http/dto/request"
	"dossier_service/internal/adapter/http/dto/response"
	"dossier_service/internal/adapter/http/middleware"
	"dossier_service/internal/domain/entities"
	"dossier_service/internal/infrastructure/metrics"
	"dossier_service/internal/usecase"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment initiation, widget outcomes, verification and provider notifications.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// Initiate godoc
// @Summary      Start a payment attempt
// @Description  Records a pending payment and returns the widget parameters.
// @Tags         payments
// @Produce      json
// @Security     Bearer
// @Param        kind  path      string  true  "company or service"
// @Param        id    path      string  true  "Request ID"
// @Success      201   {object}  response.CheckoutResponse
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /requests/{kind}/{id}/payments [post]
func (h *PaymentHandler) Initiate(c *gin.Context) {
	requestID := c.Param("id")
	log.Printf("[payment][handler] initiate start request_id=%s", requestID)

	checkout, err := h.usecase.Initiate(c.Request.Context(), middleware.ActorFromContext(c), kindParam(c), requestID)
	if err != nil {
		log.Printf("[payment][handler] initiate failed request_id=%s err=%v", requestID, err)
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromCheckout(checkout))
}

// CompleteWidget godoc
// @Summary      Report the payment widget outcome
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        kind        path      string                        true  "company or service"
// @Param        id          path      string                        true  "Request ID"
// @Param        payment_id  path      string                        true  "Payment ID"
// @Param        payload     body      request.WidgetOutcomeRequest  true  "Widget outcome"
// @Success      200         {object}  response.PaymentResultResponse
// @Failure      400         {object}  pkg.HTTPError
// @Router       /requests/{kind}/{id}/payments/{payment_id}/outcome [post]
func (h *PaymentHandler) CompleteWidget(c *gin.Context) {
	var payload request.WidgetOutcomeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	res, err := payload.ToWidgetResult()
	if err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	requestID, paymentID := c.Param("id"), c.Param("payment_id")
	result, err := h.usecase.CompleteWidget(c.Request.Context(), middleware.ActorFromContext(c), kindParam(c), requestID, paymentID, res)
	if err != nil {
		log.Printf("[payment][handler] widget outcome failed request_id=%s payment_id=%s err=%v", requestID, paymentID, err)
		writeError(c, mapPaymentError(err))
		return
	}
	if res.Kind == entities.WidgetSuccess {
		metrics.ObservePaymentVerification(metrics.SourceWidget, string(result.Outcome))
	}
	log.Printf("[payment][handler] widget outcome request_id=%s result=%s outcome=%s unverified=%t", requestID, res.Kind, result.Outcome, result.Unverified)
	c.JSON(http.StatusOK, response.FromPaymentResult(result))
}

// ListForRequest godoc
// @Summary      List the payment attempts of a request
// @Tags         payments
// @Produce      json
// @Security     Bearer
// @Param        kind  path      string  true  "company or service"
// @Param        id    path      string  true  "Request ID"
// @Success      200   {array}   response.PaymentRecordResponse
// @Router       /requests/{kind}/{id}/payments [get]
// @Router       /admin/requests/{kind}/{id}/payments [get]
func (h *PaymentHandler) ListForRequest(c *gin.Context) {
	payments, err := h.usecase.ListForRequest(c.Request.Context(), middleware.ActorFromContext(c), kindParam(c), c.Param("id"))
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

// Verify godoc
// @Summary      Verify a transaction with the payment provider
// @Description  Safe to call repeatedly; a request already paid is reported approved without calling the provider. Clients may only verify their own requests.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        payload  body      request.VerifyPaymentRequest  true  "Transaction"
// @Success      200      {object}  response.VerifyPaymentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Failure      503      {object}  pkg.HTTPError
// @Router       /payments/verify [post]
func (h *PaymentHandler) Verify(c *gin.Context) {
	var payload request.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	kind, ok := payload.ResolveKind()
	if !ok {
		writeError(c, mapPaymentError(usecase.ErrInvalidRequestKind))
		return
	}

	v, err := h.usecase.Verify(c.Request.Context(), middleware.ActorFromContext(c), payload.TransactionID, payload.RequestID, kind)
	if err != nil {
		log.Printf("[payment][handler] verify failed transaction_id=%s request_id=%s err=%v", payload.TransactionID, payload.RequestID, err)
		writeError(c, mapPaymentError(err))
		return
	}
	metrics.ObservePaymentVerification(metrics.SourceVerify, string(v.Outcome))
	c.JSON(http.StatusOK, response.FromVerification(v))
}

// Webhook godoc
// @Summary      Mercado Pago notification
// @Description  Reconciles the request of a notified payment. Unknown payments are acknowledged and ignored.
// @Tags         payments
// @Accept       json
// @Param        payload  body  request.PaymentNotification  false  "Notification"
// @Success      200
// @Failure      503  {object}  pkg.HTTPError
// @Router       /payments/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	var n request.PaymentNotification
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&n); err != nil {
			log.Printf("[payment][webhook] unreadable body err=%v", err)
		}
	}

	topic := c.Query("topic")
	if topic == "" {
		topic = c.Query("type")
	}
	queryID := c.Query("data.id")
	if queryID == "" {
		queryID = c.Query("id")
	}

	paymentID := n.ResolvePaymentID(topic, queryID)
	if paymentID == "" {
		log.Printf("[payment][webhook] ignored type=%s action=%s", strings.TrimSpace(n.Type), n.Action)
		c.Status(http.StatusOK)
		return
	}

	v, err := h.usecase.HandleNotification(c.Request.Context(), paymentID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRequestNotFound), errors.Is(err, usecase.ErrTransactionMismatch),
			errors.Is(err, usecase.ErrAmountMismatch), errors.Is(err, usecase.ErrInvalidTransactionID):
			log.Printf("[payment][webhook] ignored provider_payment_id=%s err=%v", paymentID, err)
			c.Status(http.StatusOK)
		default:
			log.Printf("[payment][webhook] failed provider_payment_id=%s err=%v", paymentID, err)
			writeError(c, mapPaymentError(err))
		}
		return
	}

	metrics.ObservePaymentVerification(metrics.SourceWebhook, string(v.Outcome))
	log.Printf("[payment][webhook] reconciled provider_payment_id=%s request_id=%s outcome=%s", paymentID, v.RequestID, v.Outcome)
	c.Status(http.StatusOK)
}
