package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"space-finder-api/internal/models"
	"space-finder-api/internal/repositories"
)

const (
	table  = "spaces"
	entity = "space"
)

// column names for the updatable attributes
var columns = map[string]string{
	models.AttrLocation: "location",
	models.AttrWard:     "ward",
	models.AttrPhotoURL: "photo_url",
}

// SpaceRepository stores spaces in the local sqlite database
type SpaceRepository struct {
	db     *sql.DB
	logger *logrus.Logger
}

// NewSpaceRepository creates a new sqlite space repository
func NewSpaceRepository(db *sql.DB, logger *logrus.Logger) *SpaceRepository {
	if logger == nil {
		logger = logrus.New()
	}
	return &SpaceRepository{
		db:     db,
		logger: logger,
	}
}

// Get retrieves a space by its ID
func (r *SpaceRepository) Get(ctx context.Context, id string) (*models.Space, error) {
	query := `SELECT id, location, ward, photo_url FROM spaces WHERE id = ?`

	var space models.Space
	err := r.db.QueryRowContext(ctx, query, id).Scan(&space.ID, &space.Location, &space.Ward, &space.PhotoURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repositories.NotFoundError(entity, id)
		}
		return nil, repositories.NewRepositoryError("get", entity, id, err)
	}

	return &space, nil
}

// List retrieves every space ordered by ID
func (r *SpaceRepository) List(ctx context.Context) ([]*models.Space, error) {
	query := `SELECT id, location, ward, photo_url FROM spaces ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, repositories.NewRepositoryError("list", entity, "", err)
	}
	defer rows.Close()

	spaces := make([]*models.Space, 0)
	for rows.Next() {
		var space models.Space
		if err := rows.Scan(&space.ID, &space.Location, &space.Ward, &space.PhotoURL); err != nil {
			return nil, repositories.NewRepositoryError("list", entity, "", err)
		}
		spaces = append(spaces, &space)
	}

	if err := rows.Err(); err != nil {
		return nil, repositories.NewRepositoryError("list", entity, "", err)
	}

	return spaces, nil
}

// Put creates or replaces a space
func (r *SpaceRepository) Put(ctx context.Context, space *models.Space) error {
	query := `
		INSERT INTO spaces (id, location, ward, photo_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			location = excluded.location,
			ward = excluded.ward,
			photo_url = excluded.photo_url,
			updated_at = CURRENT_TIMESTAMP`

	if _, err := r.db.ExecContext(ctx, query, space.ID, space.Location, space.Ward, space.PhotoURL); err != nil {
		return repositories.NewRepositoryError("put", entity, space.ID, err)
	}

	r.logger.WithField("space_id", space.ID).Debug("Space stored")
	return nil
}

// Update sets the given attributes and returns the full row afterwards
func (r *SpaceRepository) Update(ctx context.Context, id string, attrs map[string]string) (*models.Space, error) {
	var sets []string
	var args []interface{}
	for _, name := range models.UpdatableAttributes {
		value, ok := attrs[name]
		if !ok {
			continue
		}
		sets = append(sets, columns[name]+" = ?")
		args = append(args, value)
	}
	if len(sets) == 0 {
		return nil, repositories.NewRepositoryError("update", entity, id, repositories.ErrNoAttributes)
	}

	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", table, strings.Join(sets, ", "))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, repositories.NewRepositoryError("update", entity, id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, repositories.NewRepositoryError("update", entity, id, err)
	}
	if affected == 0 {
		return nil, repositories.NotFoundError(entity, id)
	}

	return r.Get(ctx, id)
}

// Delete deletes a space by its ID. Deleting a missing space is not an error.
func (r *SpaceRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM spaces WHERE id = ?`, id); err != nil {
		return repositories.NewRepositoryError("delete", entity, id, err)
	}
	return nil
}

// Ping checks the database connection
func (r *SpaceRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return repositories.ConnectionError("sqlite", err)
	}
	return nil
}

// Close is a no-op; the connection is owned by the database.ConnectionManager
func (r *SpaceRepository) Close() error {
	return nil
}
