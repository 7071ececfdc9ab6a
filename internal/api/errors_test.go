package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/kundli-api/internal/api/shared"
	"github.com/phrazzld/kundli-api/internal/domain"
	"github.com/phrazzld/kundli-api/internal/ephemeris"
	"github.com/phrazzld/kundli-api/internal/service"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", fmt.Errorf("%w: %w", service.ErrInvalidInput, domain.ErrInvalidLatitude), http.StatusBadRequest},
		{"domain validation", domain.ErrValidation, http.StatusBadRequest},
		{"empty body", shared.ErrEmptyBody, http.StatusBadRequest},
		{"positions", fmt.Errorf("%w: %w", service.ErrPositionUnavailable, ephemeris.ErrTransientFailure), http.StatusServiceUnavailable},
		{"deadline", fmt.Errorf("cast: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{"cancelled", context.Canceled, http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "An unexpected error occurred"},
		{"date", fmt.Errorf("%w: %w", service.ErrInvalidInput, domain.ErrInvalidDate), "Invalid date/time format. Use YYYY-MM-DD HH:MM"},
		{"latitude", domain.ErrInvalidLatitude, "Latitude must be between -90 and 90"},
		{"longitude", domain.ErrInvalidLongitude, "Longitude must be between -180 and 180"},
		{"offset", domain.ErrInvalidUTCOffset, "Timezone must be between -12 and 14"},
		{"generic input", service.ErrInvalidInput, "Invalid input data"},
		{"positions", service.ErrPositionUnavailable, "Celestial positions are unavailable, please retry later"},
		{"internal details stay hidden", errors.New("dial tcp 10.0.0.3:8081: connection refused"), "Failed to generate kundli"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	lat := 0.0
	far := 200.0
	long := string(make([]byte, 101))

	tests := []struct {
		name string
		req  KundliRequest
		want string
	}{
		{"missing date", KundliRequest{}, "Missing required field: date"},
		{"bad clock", KundliRequest{Date: "2000-01-01", Time: "24:99", Lat: &lat, Lon: &lat, TZ: &lat}, "Invalid time: expected format HH:MM"},
		{"longitude", KundliRequest{Date: "2000-01-01", Time: "10:00", Lat: &lat, Lon: &far, TZ: &lat}, "Invalid lon: must be at most 180"},
		{"name", KundliRequest{Date: "2000-01-01", Time: "10:00", Lat: &lat, Lon: &lat, TZ: &lat, Name: long}, "Invalid name: too long"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, SanitizeValidationError(shared.ValidateRequest(tt.req)))
		})
	}

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("other")))
}
