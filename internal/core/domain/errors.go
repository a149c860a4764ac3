package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrInvalidToken = errors.New("invalid token")
var ErrInvalidSecretKey = errors.New("invalid admin secret key")
var ErrEmailRegistered = errors.New("email already registered")
var ErrForbidden = errors.New("access forbidden")
var ErrConsentRequired = errors.New("consent is required to submit feedback")

// NotFoundError reports a referenced entity id that does not resolve.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with id: %s", e.Entity, e.ID)
}

// NewNotFound builds a NotFoundError for the given entity kind and id.
func NewNotFound(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ValidationError reports the first violated constraint of a request,
// carrying the offending field for an actionable message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidation builds a field-level ValidationError.
func NewValidation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// ConflictError reports a status-guarded transition that cannot proceed
// from the entity's current state.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// NewConflict builds a ConflictError with a human-readable message.
func NewConflict(message string) error {
	return &ConflictError{Message: message}
}
