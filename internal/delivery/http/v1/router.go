package v1

import (
	"net/http"
	"time"

	"go-firesafety-backend/config"
	"go-firesafety-backend/internal/delivery/http/middleware"
	"go-firesafety-backend/internal/domain"
	"go-firesafety-backend/internal/metrics"
	"go-firesafety-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC  domain.ContactUsecase
	Credential *auth.Credential
	Config     *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.Metrics())

	// Unsupported methods yield a bare 405 with no body.
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.Status(http.StatusMethodNotAllowed)
	})

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	v1 := r.Group("/v1")
	v1.Use(middleware.RateLimitMiddleware(
		middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "System operational"})
	})

	// Public routes: the contact form gets its own, tighter limiter.
	public := v1.Group("")
	public.Use(middleware.RateLimitMiddleware(
		middleware.SubmitRateLimitConfig(deps.Config.RateLimitSubmitThreshold, window)))
	NewContactHandler(public, deps.ContactUC)

	// Operator login (credential check happens in the handler)
	NewAdminHandler(v1, deps.Credential)

	// Moderation routes
	protected := v1.Group("")
	protected.Use(middleware.ModerationAuth(deps.Credential))
	NewMessageHandler(protected, deps.ContactUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
