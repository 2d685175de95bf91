package services

import (
	"github.com/SomSankar/omni-links/internal/repository"
)

var (
	ErrNotFound      = repository.ErrNotFound
	ErrDuplicateSlug = repository.ErrDuplicateSlug
	// ErrStaleOrder means the profile's links changed between reading them and
	// writing the new ranks. Nothing was written.
	ErrStaleOrder = repository.ErrLinkSetMismatch
)

// ValidationError rejects an input before anything is persisted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
