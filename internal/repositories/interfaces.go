package repositories

import (
	"context"

	"space-finder-api/internal/models"
)

// SpaceRepository defines storage operations for spaces
type SpaceRepository interface {
	// Get retrieves a space by its ID
	Get(ctx context.Context, id string) (*models.Space, error)

	// List retrieves every space
	List(ctx context.Context) ([]*models.Space, error)

	// Put creates or replaces a space
	Put(ctx context.Context, space *models.Space) error

	// Update sets the given attributes and returns the space as stored afterwards
	Update(ctx context.Context, id string, attrs map[string]string) (*models.Space, error)

	// Delete deletes a space by its ID
	Delete(ctx context.Context, id string) error

	// Ping checks that the backing store is reachable
	Ping(ctx context.Context) error

	// Close releases any held resources
	Close() error
}
