// Package apierror provides the single error envelope returned by the API.
// Every 4xx/5xx body is {"message": "..."} so clients have one shape to
// parse, and internal details (stack traces, store internals) never leak.
package apierror

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// APIError is the canonical error body for all non-2xx responses.
type APIError struct {
	Message string `json:"message"`
}

func New(msg string) *APIError {
	return &APIError{Message: msg}
}

// FromValidation renders validator findings into one human-readable summary,
// e.g. `Validation error: label is required; imageUrl must start with "http"`.
func FromValidation(errs validator.ValidationErrors) *APIError {
	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		parts = append(parts, fieldMessage(fe))
	}
	return New("Validation error: " + strings.Join(parts, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "startswith":
		return fmt.Sprintf("%s must start with %q", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed the %q constraint", field, fe.Tag())
	}
}
