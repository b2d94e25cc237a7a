package routes

import (
	"context"
	_ "dossier_service/docs" // This will be auto-generated
	"dossier_service/internal/adapter/http/handlers"
	"dossier_service/internal/adapter/http/middleware"
	"dossier_service/internal/adapter/persistence/repository"
	"dossier_service/internal/infrastructure/config"
	"dossier_service/internal/infrastructure/database"
	"dossier_service/internal/infrastructure/payments"
	"dossier_service/internal/infrastructure/ratelimit"
	"dossier_service/internal/usecase"
	"dossier_service/internal/usecase/interfaces"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	Tracking *handlers.TrackingHandler
	Requests *handlers.RequestHandler
	Payments *handlers.PaymentHandler
}

// Run will start the server
func Run(cfg *config.Config) {
	router, err := newRouter(cfg)
	if err != nil {
		log.Fatalf("Failed to configure the router: %v", err)
	}

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET(PathMetrics, gin.WrapH(promhttp.Handler()))

	setRoutes(router, []byte(cfg.Auth.JWTSecret), buildHandlers(context.Background(), cfg))

	err = router.Run(cfg.Addr())
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// newRouter builds the engine. Forwarding headers only count when the peer is a configured proxy.
func newRouter(cfg *config.Config) (*gin.Engine, error) {
	router := gin.Default()
	if err := router.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid TRUSTED_PROXIES: %w", err)
	}
	router.TrustedPlatform = cfg.HTTP.TrustedPlatform
	setMiddlewares(router)
	return router, nil
}

func buildHandlers(ctx context.Context, cfg *config.Config) Handlers {
	ddb := database.ConnectDynamoDB(ctx, cfg)

	requestRepo := repository.NewRequestDynamoRepository(ddb, repository.RequestTables{
		Company: cfg.Tables.CompanyRequests,
		Service: cfg.Tables.ServiceRequests,
	})
	paymentRepo := repository.NewPaymentDynamoRepository(ddb, cfg.Tables.Payments)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken, cfg.MockPayments())
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	var limiter interfaces.IRateLimiter
	if rdb := ratelimit.ConnectRedis(ctx, cfg.Tracking.RedisAddr); rdb != nil {
		limiter = ratelimit.NewRedisRateLimiter(rdb, cfg.Tracking.RateLimit, cfg.Tracking.RateWindow)
	} else {
		log.Printf("[tracking][routes] rate limiting disabled")
	}

	trackingUseCase := usecase.NewTrackingUseCase(requestRepo, limiter, cfg.Tracking.Timeout)
	requestUseCase := usecase.NewRequestUseCase(requestRepo)
	paymentUseCase := usecase.NewPaymentUseCase(requestRepo, paymentRepo, paymentGateway, usecase.PaymentSettings{
		Currency:      cfg.MercadoPago.Currency,
		PublicKey:     cfg.MercadoPago.PublicKey,
		VerifyTimeout: cfg.MercadoPago.VerifyTimeout,
	})

	if cfg.Auth.JWTSecret == "" {
		log.Printf("[auth][routes] JWT_SECRET not set, authenticated routes will reject every call")
	}

	return Handlers{
		Tracking: handlers.NewTrackingHandler(trackingUseCase, cfg.MercadoPago.Currency),
		Requests: handlers.NewRequestHandler(requestUseCase),
		Payments: handlers.NewPaymentHandler(paymentUseCase),
	}
}

func setRoutes(router *gin.Engine, jwtSecret []byte, h Handlers) {
	v1 := router.Group("/v1")

	// Rotas publicas
	addPingRoutes(v1)
	addTrackingRoutes(v1, h.Tracking)
	v1.POST(PathPaymentsWebhook, h.Payments.Webhook)

	authed := v1.Group("", middleware.Auth(jwtSecret))
	addRequestRoutes(authed, h.Requests, h.Payments)
	addAdminRoutes(authed, h.Requests, h.Payments)
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.Metrics())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
