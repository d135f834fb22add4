package repositories

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no space has the requested ID
	ErrNotFound = errors.New("space not found")

	// ErrConnection is returned when the backing store cannot be reached
	ErrConnection = errors.New("store unreachable")

	// ErrNoAttributes is returned by Update when nothing would be written
	ErrNoAttributes = errors.New("no updatable attributes")
)

// RepositoryError records which store operation failed and for which space
type RepositoryError struct {
	Op     string
	Entity string
	ID     string
	Err    error
}

func (e *RepositoryError) Error() string {
	target := e.Entity
	if e.ID != "" {
		target = fmt.Sprintf("%s %q", e.Entity, e.ID)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, target, e.Err)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// NewRepositoryError wraps err with the failed operation
func NewRepositoryError(op, entity, id string, err error) *RepositoryError {
	return &RepositoryError{Op: op, Entity: entity, ID: id, Err: err}
}

// NotFoundError reports a lookup of a missing space
func NotFoundError(entity, id string) *RepositoryError {
	return NewRepositoryError("get", entity, id, ErrNotFound)
}

// ConnectionError reports that the named store did not answer
func ConnectionError(store string, err error) *RepositoryError {
	return NewRepositoryError("ping", store, "", fmt.Errorf("%w: %v", ErrConnection, err))
}

// IsNotFound reports whether err wraps ErrNotFound
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConnection reports whether err wraps ErrConnection
func IsConnection(err error) bool {
	return errors.Is(err, ErrConnection)
}
