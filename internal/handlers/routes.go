package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "space-finder-api/docs"
	"space-finder-api/internal/hello"
	"space-finder-api/internal/middleware"
	"space-finder-api/internal/services"
)

// maxBodySize caps request bodies accepted by the local server
const maxBodySize = 1 << 20

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	SpaceService services.SpaceService
	HelloHandler *hello.Handler
	// AuthService protects /spaces. Nil leaves the routes open, in which case
	// DELETE is always forbidden because no groups claim is present.
	AuthService *middleware.AuthService
	// HealthCheck backs /health. Nil falls back to SpaceService.Ping.
	HealthCheck func(ctx context.Context) error
	Logger      *logrus.Logger
}

// MiddlewareConfig holds configuration for the global middleware
type MiddlewareConfig struct {
	RequestsPerSecond float64
	Burst             int
	Logger            *logrus.Logger
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	spaceHandler := NewSpaceHandler(config.SpaceService, config.Logger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	check := config.HealthCheck
	if check == nil {
		check = config.SpaceService.Ping
	}
	router.GET("/health", healthCheck(check))

	if config.HelloHandler != nil {
		router.Any("/hello", HelloGin(config.HelloHandler))
	}

	spaces := router.Group("/spaces")
	if config.AuthService != nil {
		spaces.Use(middleware.Authentication(config.AuthService, config.Logger))
	}
	spaces.Any("", Gin(spaceHandler.Handle))
}

// SetupMiddleware configures global middleware
func SetupMiddleware(router *gin.Engine, config *MiddlewareConfig) {
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RequestSizeLimit(maxBodySize))
	router.Use(middleware.RateLimiter(config.RequestsPerSecond, config.Burst, config.Logger))
	router.Use(middleware.StructuredLogger(config.Logger))
	router.Use(middleware.AuditLogger(config.Logger))
}

// SetupDevelopmentRoutes adds development-only routes
func SetupDevelopmentRoutes(router *gin.Engine, config *RouterConfig) {
	if config.AuthService == nil {
		return
	}

	dev := router.Group("/dev")
	{
		// Issues a token in the admins group for local testing
		dev.POST("/token", func(c *gin.Context) {
			token, err := config.AuthService.GenerateToken("demo-user", "demo", []string{AdminGroup})
			if err != nil {
				c.JSON(http.StatusInternalServerError, MessageResponse{Message: err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"token": token})
		})
	}
}

// healthCheck godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func healthCheck(check func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := check(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "space-finder-api",
			"version": "1.0.0",
		})
	}
}
