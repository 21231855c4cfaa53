package domain

import (
	"errors"
	"net/http"
)

// Sentinel errors - match with errors.Is()
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// HTTPError defines errors that carry their own HTTP status code.
type HTTPError interface {
	error
	StatusCode() int
}

// ConflictError represents a resource conflict with details about the
// existing or referencing resource (e.g. deleting a category that still
// has skills attached to it).
type ConflictError struct {
	Message      string // Human-readable error message
	ResourceType string // Type of resource (project, skill, category, user)
	ResourceID   string // ID of the conflicting resource, if known
}

func (e *ConflictError) Error() string {
	return e.Message
}

// StatusCode implements the HTTPError interface
func (e *ConflictError) StatusCode() int {
	return http.StatusConflict
}

// Is allows errors.Is() to match against ErrConflict
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}
