package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrUnsupported   = errors.New("unsupported")
)

// Named errors. Each one matches its own identity and the category sentinel
// it belongs to, so callers can test for either.
var (
	ErrInvalidFilter        = newKindError("invalid change status filter", ErrValidation)
	ErrInvalidStorageType   = newKindError("invalid storage type", ErrValidation)
	ErrEmptyMetadataPayload = newKindError("list metadata change has no fields", ErrValidation)
	ErrEmptyChangeSet       = newKindError("no changes detected", ErrValidation)

	ErrChangeNotFound       = newKindError("change not found", ErrNotFound)
	ErrListMissingForChange = newKindError("list missing for change", ErrNotFound)

	ErrSelfReviewForbidden = newKindError("reviewers cannot review their own changes", ErrForbidden)

	ErrUnsupportedChangeType = newKindError("unsupported change type", ErrUnsupported)

	ErrInvalidRefreshToken = newKindError("invalid refresh token", ErrUnauthorized)
	ErrRefreshTokenReuse   = newKindError("refresh token reuse detected", ErrUnauthorized)
	ErrExpiredRefreshToken = newKindError("refresh token expired", ErrUnauthorized)
)

type kindError struct {
	msg  string
	kind error
}

func newKindError(msg string, kind error) error {
	return &kindError{msg: msg, kind: kind}
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
