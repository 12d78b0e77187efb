package auth

import (
	"strings"

	"github.com/heartmarshall/gameitems-backend/internal/domain"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 72 // bcrypt ignores bytes past 72
	maxEmailLength    = 254
)

// RegisterInput holds parameters for the register operation.
type RegisterInput struct {
	Email    string
	Password string
}

// Validate validates the register input. Email must already be normalized.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateEmail(i.Email)...)

	switch {
	case i.Password == "":
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	case len(i.Password) < minPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 8 characters"})
	case len(i.Password) > maxPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for the password login operation.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refreshToken", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refreshToken", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateEmail(email string) []domain.FieldError {
	switch {
	case email == "":
		return []domain.FieldError{{Field: "email", Message: "required"}}
	case len(email) > maxEmailLength:
		return []domain.FieldError{{Field: "email", Message: "too long"}}
	case !strings.Contains(email, "@"):
		return []domain.FieldError{{Field: "email", Message: "invalid email"}}
	}
	return nil
}
