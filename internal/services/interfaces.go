package services

import (
	"context"

	"space-finder-api/internal/models"
)

// SpaceService defines the interface for space business logic operations
type SpaceService interface {
	// GetSpace retrieves a single space after validating its ID
	GetSpace(ctx context.Context, id string) (*models.Space, error)

	// ListSpaces retrieves every space
	ListSpaces(ctx context.Context) ([]*models.Space, error)

	// CreateSpace assigns a new ID, sanitizes and validates the request, then stores it
	CreateSpace(ctx context.Context, req *CreateSpaceRequest) (*models.Space, error)

	// UpdateSpace changes the given attributes and returns the stored space
	UpdateSpace(ctx context.Context, id string, fields map[string]string) (*models.Space, error)

	// DeleteSpace removes a space
	DeleteSpace(ctx context.Context, id string) error

	// Ping checks that the space store is reachable
	Ping(ctx context.Context) error
}

// CreateSpaceRequest represents a request to create a new space
type CreateSpaceRequest struct {
	Location string  `json:"location"`
	Ward     string  `json:"ward"`
	PhotoURL *string `json:"photoUrl,omitempty"`
}
