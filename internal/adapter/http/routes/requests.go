package routes

import (
	"dossier_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathMetrics         = "/metrics"
	PathPing            = "/ping"
	PathTracking        = "/tracking"
	PathRequests        = "/requests"
	PathAdmin           = "/admin"
	PathPaymentsVerify  = "/payments/verify"
	PathPaymentsWebhook = "/payments/webhook"
)

func addTrackingRoutes(rg *gin.RouterGroup, trackingHandler *handlers.TrackingHandler) {
	tracking := rg.Group(PathTracking)
	{
		tracking.POST("/lookup", trackingHandler.Lookup)
	}
}

func addRequestRoutes(rg *gin.RouterGroup, requestHandler *handlers.RequestHandler, paymentHandler *handlers.PaymentHandler) {
	requests := rg.Group(PathRequests)
	{
		requests.GET("", requestHandler.ListMine)
		requests.POST("/:kind", requestHandler.Submit)
		requests.GET("/:kind/:id", requestHandler.GetMine)

		requests.POST("/:kind/:id/payments", paymentHandler.Initiate)
		requests.GET("/:kind/:id/payments", paymentHandler.ListForRequest)
		requests.POST("/:kind/:id/payments/:payment_id/outcome", paymentHandler.CompleteWidget)
	}

	rg.POST(PathPaymentsVerify, paymentHandler.Verify)
}

// addAdminRoutes mounts the back-office routes. Role checks happen in the use cases.
func addAdminRoutes(rg *gin.RouterGroup, requestHandler *handlers.RequestHandler, paymentHandler *handlers.PaymentHandler) {
	admin := rg.Group(PathAdmin + PathRequests)
	{
		admin.GET("/:kind", requestHandler.AdminList)
		admin.PATCH("/:kind/:id/status", requestHandler.AdminUpdateStatus)
		admin.PATCH("/:kind/:id/price", requestHandler.AdminUpdatePrice)
		admin.GET("/:kind/:id/payments", paymentHandler.ListForRequest)
	}
}
