package handlers

import (
	"fmt"

	"github.com/SscSPs/diary_app/cmd/docs"
	portssvc "github.com/SscSPs/diary_app/internal/core/ports/services"
	"github.com/SscSPs/diary_app/internal/middleware"
	"github.com/SscSPs/diary_app/internal/platform/config"
	"github.com/SscSPs/diary_app/internal/web"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	metrics *middleware.Metrics,
) error {
	RegisterHealthRoutes(r, services.Health, cfg.StoreBackend, services.Entry.Validator().GratitudeLimit())

	if metrics != nil {
		r.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	lim, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return fmt.Errorf("failed to configure rate limiter: %w", err)
	}
	rateLimit := middleware.RateLimit(lim)
	auth := middleware.AuthMiddleware(cfg.JWTSecret)

	setupAPIV1Routes(r, services, rateLimit, auth)

	r.SetHTMLTemplate(web.Templates())
	RegisterSessionRoutes(r.Group("", rateLimit), cfg.JWTSecret, cfg.IsProduction)
	// Pages share the API rate limit and auth.
	RegisterWebRoutes(r.Group("", rateLimit, auth), services.Entry)

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group with rate limiting and optional bearer auth
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer, guards ...gin.HandlerFunc) {
	v1 := r.Group("/api/v1", guards...)
	RegisterEntryRoutes(v1, services.Entry)
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
