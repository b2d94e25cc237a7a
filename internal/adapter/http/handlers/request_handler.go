package handlers

import (
	"dossier_service/internal/adapter/http/dto/request"
	"dossier_service/internal/adapter/http/dto/response"
	"dossier_service/internal/adapter/http/middleware"
	"dossier_service/internal/usecase"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequestHandler serves client request submission and reads, plus the staff back-office routes.
type RequestHandler struct {
	usecase usecase.IRequestUseCase
}

func NewRequestHandler(uc usecase.IRequestUseCase) *RequestHandler {
	return &RequestHandler{usecase: uc}
}

// Submit godoc
// @Summary      Submit a request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        kind     path      string                        true  "company or service"
// @Param        payload  body      request.SubmitDossierRequest  true  "Request"
// @Success      201      {object}  response.DossierResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /requests/{kind} [post]
func (h *RequestHandler) Submit(c *gin.Context) {
	var payload request.SubmitDossierRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	created, err := h.usecase.Submit(c.Request.Context(), middleware.ActorFromContext(c), kindParam(c), payload.ToInput())
	if err != nil {
		log.Printf("[request][handler] submit failed kind=%s err=%v", c.Param("kind"), err)
		writeError(c, mapRequestError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromRequest(created))
}

// ListMine godoc
// @Summary      List my requests
// @Tags         requests
// @Produce      json
// @Security     Bearer
// @Success      200  {array}   response.DossierResponse
// @Router       /requests [get]
func (h *RequestHandler) ListMine(c *gin.Context) {
	rows, err := h.usecase.ListForOwner(c.Request.Context(), middleware.ActorFromContext(c))
	if err != nil {
		log.Printf("[request][handler] list failed err=%v", err)
		writeError(c, mapRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRequests(rows))
}

// GetMine godoc
// @Summary      Get one of my requests
// @Tags         requests
// @Produce      json
// @Security     Bearer
// @Param        kind  path      string  true  "company or service"
// @Param        id    path      string  true  "Request ID"
// @Success      200   {object}  response.DossierResponse
// @Failure      404   {object}  pkg.HTTPError
// @Router       /requests/{kind}/{id} [get]
func (h *RequestHandler) GetMine(c *gin.Context) {
	r, err := h.usecase.GetForOwner(c.Request.Context(), middleware.ActorFromContext(c), kindParam(c), c.Param("id"))
	if err != nil {
		writeError(c, mapRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRequest(r))
}

// AdminList godoc
// @Summary      List all requests of a kind (staff)
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        kind  path      string  true  "company or service"
// @Success      200   {array}   response.DossierResponse
// @Failure      403   {object}  pkg.HTTPError
// @Router       /admin/requests/{kind} [get]
func (h *RequestHandler) AdminList(c *gin.Context) {
	rows, err := h.usecase.ListAll(c.Request.Context(), middleware.ActorFromContext(c), kindParam(c))
	if err != nil {
		log.Printf("[request][handler] admin list failed kind=%s err=%v", c.Param("kind"), err)
		writeError(c, mapRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRequests(rows))
}

// AdminUpdateStatus godoc
// @Summary      Set the lifecycle status of a request (staff)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        kind     path      string                       true  "company or service"
// @Param        id       path      string                       true  "Request ID"
// @Param        payload  body      request.UpdateStatusRequest  true  "Status"
// @Success      200      {object}  response.DossierResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      403      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /admin/requests/{kind}/{id}/status [patch]
func (h *RequestHandler) AdminUpdateStatus(c *gin.Context) {
	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	updated, err := h.usecase.UpdateLifecycleStatus(c.Request.Context(), middleware.ActorFromContext(c), kindParam(c), c.Param("id"), payload.ResolveStatus())
	if err != nil {
		log.Printf("[request][handler] status update failed id=%s err=%v", c.Param("id"), err)
		writeError(c, mapRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRequest(updated))
}

// AdminUpdatePrice godoc
// @Summary      Set the estimated price of a request (staff)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        kind     path      string                      true  "company or service"
// @Param        id       path      string                      true  "Request ID"
// @Param        payload  body      request.UpdatePriceRequest  true  "Price"
// @Success      200      {object}  response.DossierResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /admin/requests/{kind}/{id}/price [patch]
func (h *RequestHandler) AdminUpdatePrice(c *gin.Context) {
	var payload request.UpdatePriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	price, err := payload.ResolvePrice()
	if err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	updated, err := h.usecase.UpdateEstimatedPrice(c.Request.Context(), middleware.ActorFromContext(c), kindParam(c), c.Param("id"), price)
	if err != nil {
		log.Printf("[request][handler] price update failed id=%s err=%v", c.Param("id"), err)
		writeError(c, mapRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRequest(updated))
}
