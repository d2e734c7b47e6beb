package handlers

import (
	"slices"

	"github.com/SscSPs/statement_converter/cmd/docs"
	portssvc "github.com/SscSPs/statement_converter/internal/core/ports/services"
	"github.com/SscSPs/statement_converter/internal/middleware"
	"github.com/SscSPs/statement_converter/internal/platform/config"
	"github.com/SscSPs/statement_converter/internal/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// rateLimiter and posthogClient may be nil.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
	posthogClient *utils.PosthogClientWrapper,
) {
	r.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))

	r.GET("/health", getHealth)

	setupAPIV1Routes(r, cfg, services, rateLimiter, posthogClient)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
	posthogClient *utils.PosthogClientWrapper,
) {
	var chain []gin.HandlerFunc
	if rateLimiter != nil {
		chain = append(chain, middleware.RateLimit(rateLimiter))
	}
	if cfg.AuthEnabled() {
		chain = append(chain, middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))
	}
	chain = append(chain, middleware.PosthogMiddleware(posthogClient))

	v1 := r.Group("/api/v1", chain...)

	RegisterConversionRoutes(v1, services.Conversion, posthogClient, cfg.MaxUploadBytes)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	cfg.ExposeHeaders = []string{ConversionIDHeader, middleware.RequestIDHeader}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
