package handlers

import (
	"time"

	"github.com/SscSPs/campus_connect/cmd/docs"
	portssvc "github.com/SscSPs/campus_connect/internal/core/ports/services"
	"github.com/SscSPs/campus_connect/internal/middleware"
	"github.com/SscSPs/campus_connect/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// authLimiter throttles the credential endpoints; tracker may be nil.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	authLimiter *limiter.Limiter,
	tracker middleware.EventTracker,
) {
	r.Use(corsMiddleware(cfg))

	// Health check routes
	r.GET("/", getHome)
	r.GET("/health", getHome)
	r.NoRoute(notFound)

	authMiddleware := middleware.AuthMiddleware(services.Auth)
	rateLimit := middleware.RateLimit(authLimiter)

	api := r.Group("/api", middleware.PosthogMiddleware(tracker))
	registerAuthRoutes(api, services.Auth, authMiddleware, rateLimit)
	registerLostFoundRoutes(api, services.LostFound, authMiddleware)
	registerMarketplaceRoutes(api, services.Marketplace, authMiddleware)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if cfg.AllowsAllOrigins() {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
		corsCfg.AllowCredentials = true
	}
	return cors.New(corsCfg)
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
