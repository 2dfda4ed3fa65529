package handlers

import (
	"log/slog"
	"net/http"

	"github.com/contapyme/contapyme_backend/cmd/docs"
	portssvc "github.com/contapyme/contapyme_backend/internal/core/ports/services"
	"github.com/contapyme/contapyme_backend/internal/middleware"
	"github.com/contapyme/contapyme_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const defaultLoginRate = "5-M"

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// The session middleware must already be installed on r.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api")
	requireSession := middleware.RequireSession()

	registerAuthRoutes(api, cfg, services.Auth, loginRateLimit(cfg))
	registerCompanyRoutes(api, requireSession, services.Company)
	registerChartRoutes(api, requireSession, services.Chart)
	registerJournalRoutes(api, requireSession, services.Journal)
	registerFixedAssetRoutes(api, requireSession, services.FixedAsset)
	registerPayrollRoutes(api, requireSession, services.Payroll)
	registerIndicatorRoutes(api, services.Indicator)
	registerSIIRoutes(api, services.SII)
	registerAccountingConfigRoutes(api, services.AccountingCfg)

	if !cfg.IsProduction && services.Debug != nil {
		registerDebugRoutes(api, services.Debug)
	}

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

func loginRateLimit(cfg *config.Config) gin.HandlerFunc {
	formatted := cfg.LoginRateLimit
	if formatted == "" {
		formatted = defaultLoginRate
	}
	limiter, err := middleware.NewMemoryLimiter(formatted)
	if err != nil {
		slog.Warn("Invalid LOGIN_RATE_LIMIT, using default",
			slog.String("value", formatted),
			slog.String("default", defaultLoginRate),
			slog.String("error", err.Error()))
		limiter, _ = middleware.NewMemoryLimiter(defaultLoginRate)
	}
	return middleware.RateLimit(limiter)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
