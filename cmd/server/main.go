package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"space-finder-api/internal/adapters/dynamo"
	"space-finder-api/internal/config"
	"space-finder-api/internal/handlers"
	"space-finder-api/internal/hello"
	"space-finder-api/internal/logging"
	"space-finder-api/internal/middleware"
	"space-finder-api/pkg/server"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	logger := logging.New(cfg.LogLevel, false)

	// Initialize dependencies
	container, err := server.NewContainer(context.Background(), cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize container")
	}
	defer container.Close()

	// Setup Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	handlers.SetupMiddleware(router, &handlers.MiddlewareConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		Burst:             cfg.RateLimit.Burst,
		Logger:            logger,
	})

	var prober hello.Prober
	if cfg.Spaces.StorageType == config.StorageDynamoDB {
		prober = dynamo.NewTableProber(cfg.AWS)
	}

	routerConfig := &handlers.RouterConfig{
		SpaceService: container.SpaceService,
		HelloHandler: hello.NewHandler(hello.NewConfig(cfg.Spaces.TableName), prober, logger),
		HealthCheck:  container.HealthCheck,
		Logger:       logger,
	}
	if cfg.JWT.Secret != "" {
		routerConfig.AuthService = middleware.NewAuthService(&middleware.AuthConfig{
			JWTSecret: cfg.JWT.Secret,
			Issuer:    cfg.JWT.Issuer,
		})
	} else {
		logger.Warn("JWT_SECRET is not set, /spaces is served without authentication")
	}

	handlers.SetupRoutes(router, routerConfig)
	if cfg.Environment == "development" {
		handlers.SetupDevelopmentRoutes(router, routerConfig)
	}

	// Start server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	logger.WithFields(logrus.Fields{
		"port":    cfg.Port,
		"storage": cfg.Spaces.StorageType,
		"mode":    config.GetDeploymentMode(),
	}).Info("Server started")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}

	logger.Info("Server exited")
}
