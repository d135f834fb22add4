package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"space-finder-api/internal/models"
	"space-finder-api/internal/repositories"
)

// spaceService implements the SpaceService interface
type spaceService struct {
	spaceRepo repositories.SpaceRepository
	logger    *logrus.Logger
	newID     func() string
}

// NewSpaceService creates a new space service instance
func NewSpaceService(spaceRepo repositories.SpaceRepository, logger *logrus.Logger) SpaceService {
	if logger == nil {
		logger = logrus.New()
	}
	return &spaceService{
		spaceRepo: spaceRepo,
		logger:    logger,
		newID:     models.NewSpaceID,
	}
}

// GetSpace retrieves a space by ID
func (s *spaceService) GetSpace(ctx context.Context, id string) (*models.Space, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	space, err := s.spaceRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get space: %w", err)
	}

	return space, nil
}

// ListSpaces retrieves every space
func (s *spaceService) ListSpaces(ctx context.Context) ([]*models.Space, error) {
	spaces, err := s.spaceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list spaces: %w", err)
	}

	return spaces, nil
}

// CreateSpace creates a new space
func (s *spaceService) CreateSpace(ctx context.Context, req *CreateSpaceRequest) (*models.Space, error) {
	if req == nil {
		return nil, fmt.Errorf("create space request cannot be nil")
	}

	var missing []string
	if req.Location == "" {
		missing = append(missing, models.AttrLocation)
	}
	if req.Ward == "" {
		missing = append(missing, models.AttrWard)
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Message: MsgMissingFields, MissingFields: missing}
	}

	patch := models.SanitizeSpace(models.SpacePatch{
		ID:       models.StringPtr(s.newID()),
		Location: models.StringPtr(req.Location),
		Ward:     models.StringPtr(req.Ward),
		PhotoURL: req.PhotoURL,
	})

	if result := models.ValidateCompleteSpace(patch); !result.IsValid {
		return nil, &ValidationError{Message: MsgValidationFailed, Errors: result.Errors}
	}

	space := patch.Space()
	if err := s.spaceRepo.Put(ctx, space); err != nil {
		return nil, fmt.Errorf("failed to create space: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"space_id": space.ID,
		"ward":     space.Ward,
	}).Info("Space created")

	return space, nil
}

// UpdateSpace updates the given attributes of a space. Only location, ward
// and photoUrl are accepted; other keys are ignored.
func (s *spaceService) UpdateSpace(ctx context.Context, id string, fields map[string]string) (*models.Space, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	var patch models.SpacePatch
	for name, value := range fields {
		v := value
		switch name {
		case models.AttrLocation:
			patch.Location = &v
		case models.AttrWard:
			patch.Ward = &v
		case models.AttrPhotoURL:
			patch.PhotoURL = &v
		}
	}
	if patch.IsEmpty() {
		return nil, &ValidationError{Message: MsgNoUpdatableAttrs}
	}

	patch = models.SanitizeSpace(patch)
	if patch.IsEmpty() {
		return nil, &ValidationError{Message: MsgNoUpdatableAttrs}
	}

	if result := models.ValidateSpace(patch); !result.IsValid {
		return nil, &ValidationError{Message: MsgValidationFailed, Errors: result.Errors}
	}

	space, err := s.spaceRepo.Update(ctx, id, patch.Attributes())
	if err != nil {
		return nil, fmt.Errorf("failed to update space: %w", err)
	}

	s.logger.WithField("space_id", id).Info("Space updated")
	return space, nil
}

// DeleteSpace deletes a space
func (s *spaceService) DeleteSpace(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}

	if err := s.spaceRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete space: %w", err)
	}

	s.logger.WithField("space_id", id).Info("Space deleted")
	return nil
}

// Ping checks the space store
func (s *spaceService) Ping(ctx context.Context) error {
	return s.spaceRepo.Ping(ctx)
}

func checkID(id string) error {
	if id == "" {
		return &ValidationError{Message: MsgIDRequired}
	}
	if result := models.ValidateID(id); !result.IsValid {
		return &ValidationError{Message: MsgInvalidID, Errors: result.Errors}
	}
	return nil
}
