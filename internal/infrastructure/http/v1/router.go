// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"arremate/internal/core/tenant"
	domainpubid "arremate/internal/domain/pubid"
	"arremate/internal/infrastructure/http/v1/handlers"
	"arremate/internal/infrastructure/http/v1/middleware"
	"arremate/internal/infrastructure/storage/postgres"
	"arremate/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Pool is the shared database pool (for health checks)
	Pool *postgres.Pool

	// TenantRegistry resolves tenants from the X-Tenant-ID header
	TenantRegistry tenant.Registry

	// PublicIDService serves generation and mask administration
	PublicIDService *domainpubid.Service

	// Logger for request logging
	Logger *logger.Logger
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no tenant required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	base := handlers.NewBaseHandler()
	pubidHandler := handlers.NewPublicIDHandler(base, cfg.PublicIDService)

	// API v1 - everything below is tenant-scoped
	api := router.Group("/api/v1")
	api.Use(middleware.Tenant(cfg.TenantRegistry))
	{
		api.POST("/public-ids/:entityType", pubidHandler.Generate)

		masks := api.Group("/masks")
		{
			masks.GET("", pubidHandler.ListMasks)
			masks.POST("/validate", pubidHandler.ValidateMask)
			masks.GET("/:entityType", pubidHandler.GetMask)
			masks.PUT("/:entityType", pubidHandler.PutMask)
			masks.DELETE("/:entityType", pubidHandler.DeleteMask)
		}

		counters := api.Group("/counters")
		{
			counters.GET("/:entityType", pubidHandler.GetCounter)
			counters.POST("/:entityType/reset", pubidHandler.ResetCounter)
		}
	}

	return router
}
