package server

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"space-finder-api/internal/adapters/dynamo"
	"space-finder-api/internal/config"
	"space-finder-api/internal/database"
	"space-finder-api/internal/repositories"
	"space-finder-api/internal/repositories/dynamodb"
	"space-finder-api/internal/repositories/sqlite"
	"space-finder-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	Logger       *logrus.Logger
	SpaceService services.SpaceService

	// Internal dependencies
	spaceRepo repositories.SpaceRepository
	db        *database.ConnectionManager
}

// NewContainer creates a new dependency injection container, opening the
// storage backend named by cfg.Spaces.StorageType
func NewContainer(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	if logger == nil {
		logger = logrus.New()
	}

	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	switch cfg.Spaces.StorageType {
	case config.StorageDynamoDB:
		if cfg.Spaces.TableName == "" {
			return nil, fmt.Errorf("SPACES_TABLE_NAME is required for %s storage", config.StorageDynamoDB)
		}
		client, err := dynamo.NewClient(ctx, cfg.AWS)
		if err != nil {
			return nil, err
		}
		container.spaceRepo = dynamodb.NewSpaceRepository(client, cfg.Spaces.TableName, logger)

	case config.StorageSQLite:
		cm := database.NewConnectionManager(&database.ConnectionConfig{
			DatabasePath: cfg.Database.ConnectionString,
			MaxOpenConns: cfg.Database.MaxOpenConns,
			MaxIdleConns: cfg.Database.MaxIdleConns,
			Logger:       logger,
		})
		if err := cm.Connect(); err != nil {
			return nil, fmt.Errorf("failed to open space store: %w", err)
		}
		container.db = cm
		container.spaceRepo = sqlite.NewSpaceRepository(cm.GetDB(), logger)

	default:
		return nil, fmt.Errorf("unsupported storage type %q", cfg.Spaces.StorageType)
	}

	container.SpaceService = services.NewSpaceService(container.spaceRepo, logger)

	logger.WithFields(logrus.Fields{
		"storage": cfg.Spaces.StorageType,
		"table":   cfg.Spaces.TableName,
	}).Debug("Container initialized")

	return container, nil
}

// HealthCheck verifies the storage backend. The sqlite store also runs a
// trivial query; DynamoDB is checked by describing the table.
func (c *Container) HealthCheck(ctx context.Context) error {
	if c.db != nil {
		return c.db.HealthCheck()
	}
	return c.SpaceService.Ping(ctx)
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.spaceRepo != nil {
		if err := c.spaceRepo.Close(); err != nil {
			return fmt.Errorf("failed to close space repository: %w", err)
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
