package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/kundli-api/internal/api/shared"
	"github.com/phrazzld/kundli-api/internal/domain"
	"github.com/phrazzld/kundli-api/internal/domain/chart"
	"github.com/phrazzld/kundli-api/internal/ephemeris"
	"github.com/phrazzld/kundli-api/internal/platform/logger"
	"github.com/phrazzld/kundli-api/internal/service"
)

const validBody = `{"date":"1990-08-15","time":"05:00","lat":28.6139,"lon":77.209,"tz":5.5,"name":"Test","gender":"female"}`

// MockKundliService mocks the service.KundliService interface
type MockKundliService struct {
	mock.Mock
}

func (m *MockKundliService) Cast(ctx context.Context, in domain.BirthInput) (*service.Kundli, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Kundli), args.Error(1)
}

func (m *MockKundliService) Generate(ctx context.Context, in domain.BirthInput) (*service.Kundli, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Kundli), args.Error(1)
}

func newStaticRouter(t *testing.T) http.Handler {
	t.Helper()

	p, err := ephemeris.NewStaticProvider(15, nil, map[chart.Body]float64{
		chart.Sun:     10,
		chart.Moon:    100,
		chart.Mars:    225,
		chart.Mercury: 20,
		chart.Jupiter: 95,
		chart.Venus:   340,
		chart.Saturn:  5,
		chart.Rahu:    70,
	})
	require.NoError(t, err)
	svc, err := service.NewKundliService(service.Options{Provider: p})
	require.NoError(t, err)
	return routerFor(svc)
}

func routerFor(svc service.KundliService) http.Handler {
	r := chi.NewRouter()
	r.Route("/api", NewKundliHandler(svc).Routes)
	return r
}

func post(t *testing.T, h http.Handler, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return w, out
}

func TestBasic(t *testing.T) {
	t.Parallel()

	w, body := post(t, newStaticRouter(t), "/api/kundli/basic", validBody)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "success", body["status"])
	assert.NotEmpty(t, body["chart_id"])

	input := body["input"].(map[string]any)
	assert.Equal(t, "1990-08-15", input["date"])
	assert.Equal(t, "female", input["gender"])

	lagna := body["lagna"].(map[string]any)
	assert.Equal(t, "Mesha (Aries)", lagna["sign"])
	assert.InDelta(t, 1.0, lagna["sign_number"], 1e-9)

	planets := body["planets"].(map[string]any)
	moon := planets["Moon"].(map[string]any)
	assert.Equal(t, "Karka (Cancer)", moon["sign"])
	assert.InDelta(t, 4.0, moon["house"], 1e-9)
	ketu := planets["Ketu"].(map[string]any)
	assert.InDelta(t, 250.0, ketu["longitude"], 1e-9)

	houses := body["houses"].([]any)
	require.Len(t, houses, 12)
	seventh := houses[6].(map[string]any)
	assert.Equal(t, "Tula (Libra)", seventh["sign"])

	assert.ElementsMatch(t, []any{"Uranus", "Neptune", "Pluto"}, body["unavailable"])
	assert.NotContains(t, body, "yogas")
}

func TestComprehensive(t *testing.T) {
	t.Parallel()

	w, body := post(t, newStaticRouter(t), "/api/kundli/comprehensive", validBody)
	require.Equal(t, http.StatusOK, w.Code)

	assert.NotEmpty(t, body["yogas"])
	assert.NotEmpty(t, body["doshas"])
	assert.InDelta(t, 8.0, body["tithi"], 1e-9)
	assert.InDelta(t, 8.0, body["nakshatra"], 1e-9)

	details := body["comprehensive_details"].(map[string]any)
	astro := details["astrological_details"].(map[string]any)
	assert.Equal(t, "Mesha (Aries)", astro["ascendant"])
	assert.Equal(t, "Mars", astro["ascendant_lord"])

	first := body["doshas"].([]any)[0].(map[string]any)
	for _, key := range []string{"name", "type", "description", "level"} {
		assert.Contains(t, first, key)
	}
}

func TestPlanetsAndLagna(t *testing.T) {
	t.Parallel()

	router := newStaticRouter(t)

	w, body := post(t, router, "/api/kundli/planets", validBody)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["planets"], 9)
	assert.NotContains(t, body, "lagna")

	w, body = post(t, router, "/api/kundli/lagna", validBody)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "A", body["house_system"])
	cusps := body["cusps"].([]any)
	require.Len(t, cusps, 12)
	second := cusps[1].(map[string]any)
	assert.InDelta(t, 45.0, second["longitude"], 1e-9)
	assert.Equal(t, "Vrishabha (Taurus)", second["sign"])
	assert.NotContains(t, body, "planets")
}

func TestFindingsEndpoints(t *testing.T) {
	t.Parallel()

	router := newStaticRouter(t)
	for _, path := range []string{"/api/kundli/yogas", "/api/kundli/doshas"} {
		t.Run(path, func(t *testing.T) {
			t.Parallel()
			w, body := post(t, router, path, validBody)
			require.Equal(t, http.StatusOK, w.Code)
			findings := body["findings"].([]any)
			assert.InDelta(t, float64(len(findings)), body["count"], 1e-9)
			assert.NotEmpty(t, findings)
		})
	}
}

func TestRequestValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
	}{
		{"empty body", "", http.StatusBadRequest, "No JSON data provided"},
		{"malformed json", `{"date":`, http.StatusBadRequest, "Invalid request format"},
		{"unknown field", `{"date":"1990-08-15","dob":"x"}`, http.StatusBadRequest, "Invalid request format"},
		{"missing time", `{"date":"1990-08-15","lat":0,"lon":0,"tz":0}`, http.StatusBadRequest, "Missing required field: time"},
		{"missing lat", `{"date":"1990-08-15","time":"05:00","lon":0,"tz":0}`, http.StatusBadRequest, "Missing required field: lat"},
		{"bad date", `{"date":"15-08-1990","time":"05:00","lat":0,"lon":0,"tz":0}`, http.StatusBadRequest, "Invalid date: expected format YYYY-MM-DD"},
		{"bad time", `{"date":"1990-08-15","time":"5am","lat":0,"lon":0,"tz":0}`, http.StatusBadRequest, "Invalid time: expected format HH:MM"},
		{"latitude", `{"date":"1990-08-15","time":"05:00","lat":90.5,"lon":0,"tz":0}`, http.StatusBadRequest, "Invalid lat: must be at most 90"},
		{"longitude", `{"date":"1990-08-15","time":"05:00","lat":0,"lon":-200,"tz":0}`, http.StatusBadRequest, "Invalid lon: must be at least -180"},
		{"offset", `{"date":"1990-08-15","time":"05:00","lat":0,"lon":0,"tz":14.5}`, http.StatusBadRequest, "Invalid tz: must be at most 14"},
	}

	router := routerFor(&MockKundliService{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w, body := post(t, router, "/api/kundli/basic", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantError, body["error"])
		})
	}
}

func TestOversizedBodyIsLoggedAtWarn(t *testing.T) {
	t.Parallel()

	l, buf := logger.GetTestLogger(t)
	body := `{"date":"` + strings.Repeat("1", shared.MaxRequestBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/kundli/basic", strings.NewReader(body))
	req = req.WithContext(logger.WithLogger(req.Context(), l))
	w := httptest.NewRecorder()
	routerFor(&MockKundliService{}).ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	logger.AssertLogField(t, buf, "level", "WARN")
	logger.AssertLogField(t, buf, "status_code", float64(http.StatusRequestEntityTooLarge))
}

func TestPlanetsCarryDispositor(t *testing.T) {
	t.Parallel()

	w, body := post(t, newStaticRouter(t), "/api/kundli/planets", validBody)
	require.Equal(t, http.StatusOK, w.Code)

	// Moon in Cancer rules itself; Mars in Scorpio likewise.
	moon := body["planets"].(map[string]any)["Moon"].(map[string]any)
	assert.Equal(t, "Moon", moon["dispositor"])
	assert.Equal(t, "Own", moon["dispositor_relation"])
	assert.Equal(t, []any{10.0}, moon["aspects"])
}

func TestZeroCoordinatesAreAccepted(t *testing.T) {
	t.Parallel()

	w, _ := post(t, newStaticRouter(t), "/api/kundli/planets",
		`{"date":"2000-01-01","time":"12:00","lat":0,"lon":0,"tz":0}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServiceErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"positions unavailable", service.ErrPositionUnavailable, http.StatusServiceUnavailable, "Celestial positions are unavailable, please retry later"},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout, "Chart generation timed out"},
		{"unexpected", assert.AnError, http.StatusInternalServerError, "Failed to generate kundli"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &MockKundliService{}
			svc.On("Generate", mock.Anything, mock.Anything).Return(nil, tt.err)
			w, body := post(t, routerFor(svc), "/api/kundli/comprehensive", validBody)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantError, body["error"])
			svc.AssertExpectations(t)
		})
	}
}

func TestHandlerPassesBirthInput(t *testing.T) {
	t.Parallel()

	want := domain.BirthInput{
		Date:      "1990-08-15",
		Time:      "05:00",
		Latitude:  28.6139,
		Longitude: 77.209,
		UTCOffset: 5.5,
		Name:      "Test",
		Gender:    "female",
	}
	svc := &MockKundliService{}
	svc.On("Cast", mock.Anything, want).Return(nil, service.ErrPositionUnavailable)

	w, _ := post(t, routerFor(svc), "/api/kundli/lagna", validBody)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	svc.AssertExpectations(t)
	svc.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestDocs(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/kundli/docs", nil)
	req = req.WithContext(shared.SetTraceID(req.Context()))
	w := httptest.NewRecorder()
	routerFor(&MockKundliService{}).ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var docs DocsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &docs))
	assert.Equal(t, APIVersion, docs.Version)
	assert.Len(t, docs.Endpoints, 8)
	assert.Equal(t, []string{"date", "time", "lat", "lon", "tz"}, docs.Endpoints["/api/kundli/yogas"].RequiredFields)
	assert.Equal(t, http.MethodGet, docs.Endpoints["/api/kundli/docs"].Method)
}
