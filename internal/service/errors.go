package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hasanackl/YemekTarifiSitesi/internal/repository"
	"github.com/hasanackl/YemekTarifiSitesi/internal/validation"
)

// Service-level failure outcomes. Handlers map these to HTTP statuses;
// nothing below the API layer knows about status codes.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrEmailTaken         = errors.New("email is already registered")

	// ErrDuplicateFavorite is re-exported so callers depend on one package
	ErrDuplicateFavorite = repository.ErrDuplicateFavorite
)

// ValidationErrors carries one or more field-level validation failures
type ValidationErrors struct {
	Errors []validation.ValidationError
}

// Error implements the error interface
func (v *ValidationErrors) Error() string {
	fields := make([]string, 0, len(v.Errors))
	for _, e := range v.Errors {
		fields = append(fields, e.Field)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

// newValidationErrors wraps field errors, returning nil when there are none
func newValidationErrors(errs []validation.ValidationError) error {
	if len(errs) == 0 {
		return nil
	}
	return &ValidationErrors{Errors: errs}
}
