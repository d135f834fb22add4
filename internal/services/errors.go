package services

import (
	"errors"
)

// Messages returned to callers for rejected requests
const (
	MsgInvalidID        = "Invalid space ID format"
	MsgIDRequired       = "Space ID is required"
	MsgMissingFields    = "Missing required fields"
	MsgValidationFailed = "Validation failed"
	MsgNoUpdatableAttrs = "Request body must contain at least one valid attribute to update (location, ward, photoUrl)"
)

// ValidationError is returned when a request is rejected before reaching the store
type ValidationError struct {
	Message       string
	Errors        []string
	MissingFields []string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidationError reports whether err is, or wraps, a *ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// AsValidationError extracts the *ValidationError from err
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
