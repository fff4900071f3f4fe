package v1

import (
	"time"

	"muto-jobboard/config"
	"muto-jobboard/internal/delivery/http/middleware"
	"muto-jobboard/internal/domain"
	"muto-jobboard/internal/usecase"
	"muto-jobboard/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	JobsListingUC domain.JobsListingUsecase
	ApplyJobUC    domain.ApplyJobUsecase
	PostJobUC     domain.PostJobUsecase
	ProfileUC     domain.ProfileUsecase
	HealthUC      usecase.HealthUsecase
	JWKSProvider  *auth.Provider
	Metrics       *middleware.Metrics
	RateLimiter   *middleware.RateLimiter
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	cfg := deps.Config
	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(cfg.IsProduction()))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware())
		r.GET("/metrics", deps.Metrics.Handler())
	}
	r.Use(deps.RateLimiter.Middleware(middleware.GlobalRateLimitConfig(cfg.RateLimitGlobalThreshold, window)))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CSRFMiddleware(cfg.IsProduction()))
	r.Use(middleware.IdentityMiddleware(deps.JWKSProvider, cfg.SupabaseJWTSecret))

	v1 := r.Group("/v1")
	writeLimit := deps.RateLimiter.Middleware(middleware.WriteRateLimitConfig(cfg.RateLimitWriteThreshold, window))

	// Public routes
	NewHealthHandler(v1, deps.HealthUC)
	NewSiteHandler(v1)
	NewJobHandler(v1, writeLimit, deps.JobsListingUC, deps.PostJobUC)
	NewApplicationHandler(v1, writeLimit, deps.ApplyJobUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.RequireIdentity())
	{
		NewProfileHandler(protected, deps.ProfileUC)
	}

	return r
}
