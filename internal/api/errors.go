package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/kundli-api/internal/api/shared"
	"github.com/phrazzld/kundli-api/internal/domain"
	"github.com/phrazzld/kundli-api/internal/service"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking internal error types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, shared.ErrEmptyBody):
		return http.StatusBadRequest

	case errors.Is(err, service.ErrPositionUnavailable):
		return http.StatusServiceUnavailable

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout

	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-facing message for err.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidTime):
		return "Invalid date/time format. Use YYYY-MM-DD HH:MM"

	case errors.Is(err, domain.ErrInvalidLatitude):
		return "Latitude must be between -90 and 90"

	case errors.Is(err, domain.ErrInvalidLongitude):
		return "Longitude must be between -180 and 180"

	case errors.Is(err, domain.ErrInvalidUTCOffset):
		return "Timezone must be between -12 and 14"

	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, domain.ErrValidation):
		return "Invalid input data"

	case errors.Is(err, shared.ErrEmptyBody):
		return "No JSON data provided"

	case errors.Is(err, service.ErrPositionUnavailable):
		return "Celestial positions are unavailable, please retry later"

	case errors.Is(err, context.DeadlineExceeded):
		return "Chart generation timed out"

	case errors.Is(err, context.Canceled):
		return "Request was cancelled"

	default:
		return "Failed to generate kundli"
	}
}

// SanitizeValidationError turns validator errors into a message naming the
// first offending JSON field.
func SanitizeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Validation error"
	}

	fe := verrs[0]
	if fe.Tag() == "required" {
		return fmt.Sprintf("Missing required field: %s", fe.Field())
	}
	return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe))
}

func getValidationTagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "datetime":
		return "expected format " + displayLayout(fe.Param())
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "max":
		return "too long"
	default:
		return "validation failed"
	}
}

func displayLayout(layout string) string {
	return strings.NewReplacer("2006", "YYYY", "01", "MM", "02", "DD", "15", "HH", "04", "MM").Replace(layout)
}
