package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/kundli-api/internal/platform/logger"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	RespondWithJSON(w, req, http.StatusOK, map[string]any{"status": "success", "julian_day": 2451545.0})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])
	assert.InDelta(t, 2451545.0, body["julian_day"], 1e-9)
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/api/kundli/basic", nil)
	req = req.WithContext(WithTraceID(req.Context(), "0123456789abcdef0123456789abcdef"))
	w := httptest.NewRecorder()
	RespondWithError(w, req, http.StatusBadRequest, "Invalid request format")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request format","trace_id":"0123456789abcdef0123456789abcdef"}`, w.Body.String())
}

func TestRespondWithErrorAndLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		opts      []ResponseOption
		wantLevel string
	}{
		{"server error", http.StatusServiceUnavailable, nil, "ERROR"},
		{"rate limited", http.StatusTooManyRequests, nil, "WARN"},
		{"client error", http.StatusBadRequest, nil, "DEBUG"},
		{"elevated client error", http.StatusBadRequest, []ResponseOption{WithElevatedLogLevel()}, "WARN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l, buf := logger.GetTestLogger(t)
			req := httptest.NewRequest(http.MethodPost, "/api/kundli/basic", nil)
			req = req.WithContext(logger.WithLogger(SetTraceID(req.Context()), l))
			w := httptest.NewRecorder()

			err := errors.New(`Get "https://ephemeris.example.com/v1/houses": api_key=supersecret123 rejected`)
			RespondWithErrorAndLog(w, req, tt.status, "Celestial positions are unavailable", err, tt.opts...)

			assert.Equal(t, tt.status, w.Code)
			assert.NotContains(t, w.Body.String(), "supersecret123")
			assert.NotContains(t, w.Body.String(), "ephemeris.example.com")

			logger.AssertLogField(t, buf, "level", tt.wantLevel)
			logger.AssertLogField(t, buf, "trace_id", GetTraceID(req.Context()))
			assert.NotContains(t, buf.String(), "supersecret123")
		})
	}
}
