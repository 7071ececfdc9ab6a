package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/kundli-api/internal/api/shared"
	"github.com/phrazzld/kundli-api/internal/platform/logger"
	"github.com/phrazzld/kundli-api/internal/service"
)

// APIVersion is reported by the docs endpoint.
const APIVersion = "1.0.0"

// KundliHandler serves the /api/kundli endpoints.
type KundliHandler struct {
	kundliService service.KundliService
}

// NewKundliHandler creates a new KundliHandler.
func NewKundliHandler(kundliService service.KundliService) *KundliHandler {
	return &KundliHandler{kundliService: kundliService}
}

// Routes mounts the handlers on r.
func (h *KundliHandler) Routes(r chi.Router) {
	r.Route("/kundli", func(r chi.Router) {
		r.Post("/basic", h.Basic)
		r.Post("/comprehensive", h.Comprehensive)
		r.Post("/planets", h.Planets)
		r.Post("/lagna", h.Lagna)
		r.Post("/yogas", h.Yogas)
		r.Post("/doshas", h.Doshas)
		r.Get("/docs", h.Docs)
	})
}

// Basic handles POST /api/kundli/basic.
func (h *KundliHandler) Basic(w http.ResponseWriter, r *http.Request) {
	k, ok := h.kundli(w, r, false)
	if !ok {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, basicDTO(k))
}

// Comprehensive handles POST /api/kundli/comprehensive.
func (h *KundliHandler) Comprehensive(w http.ResponseWriter, r *http.Request) {
	k, ok := h.kundli(w, r, true)
	if !ok {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, NewComprehensiveResponse(k))
}

// Planets handles POST /api/kundli/planets.
func (h *KundliHandler) Planets(w http.ResponseWriter, r *http.Request) {
	k, ok := h.kundli(w, r, false)
	if !ok {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, PlanetsResponse{
		Status:      StatusSuccess,
		ChartID:     k.ID.String(),
		Planets:     planetsDTO(k.Chart),
		Unavailable: unavailable(k.Missing),
		JulianDay:   k.JulianDay,
	})
}

// Lagna handles POST /api/kundli/lagna.
func (h *KundliHandler) Lagna(w http.ResponseWriter, r *http.Request) {
	k, ok := h.kundli(w, r, false)
	if !ok {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, LagnaHousesResponse{
		Status:      StatusSuccess,
		ChartID:     k.ID.String(),
		Lagna:       lagnaDTO(k.Chart.Ascendant()),
		Houses:      housesDTO(k.Chart),
		Cusps:       cuspsDTO(k.Cusps),
		HouseSystem: k.HouseSystem.String(),
		JulianDay:   k.JulianDay,
	})
}

// Yogas handles POST /api/kundli/yogas.
func (h *KundliHandler) Yogas(w http.ResponseWriter, r *http.Request) {
	k, ok := h.kundli(w, r, true)
	if !ok {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, findingsDTO(k, k.Yogas))
}

// Doshas handles POST /api/kundli/doshas.
func (h *KundliHandler) Doshas(w http.ResponseWriter, r *http.Request) {
	k, ok := h.kundli(w, r, true)
	if !ok {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, findingsDTO(k, k.Doshas))
}

// Docs handles GET /api/kundli/docs.
func (h *KundliHandler) Docs(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, docs())
}

// kundli decodes, validates and generates. On failure it writes the error
// response and returns false.
func (h *KundliHandler) kundli(w http.ResponseWriter, r *http.Request, full bool) (*service.Kundli, bool) {
	var req KundliRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		if errors.Is(err, shared.ErrEmptyBody) {
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, GetSafeErrorMessage(err), err)
			return nil, false
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			shared.RespondWithErrorAndLog(w, r, http.StatusRequestEntityTooLarge, "Request body too large", err,
				shared.WithElevatedLogLevel())
			return nil, false
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return nil, false
	}

	if err := shared.ValidateRequest(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
			return nil, false
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to validate request", err)
		return nil, false
	}

	generate := h.kundliService.Cast
	if full {
		generate = h.kundliService.Generate
	}
	k, err := generate(r.Context(), req.BirthInput())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return nil, false
	}

	logger.FromContext(r.Context()).Debug("kundli served",
		"path", r.URL.Path,
		"chart_id", k.ID,
		"unavailable", len(k.Missing))
	return k, true
}

func docs() DocsResponse {
	required := []string{"date", "time", "lat", "lon", "tz"}
	optional := []string{"name", "gender"}
	post := func(desc string) EndpointDoc {
		return EndpointDoc{Method: http.MethodPost, Description: desc, RequiredFields: required, OptionalFields: optional}
	}
	return DocsResponse{
		APIName:     "Kundli API",
		Version:     APIVersion,
		Description: "Vedic astrology API for kundli generation and analysis",
		Endpoints: map[string]EndpointDoc{
			"/api/kundli/basic":         post("Generate basic kundli with planet positions and lagna"),
			"/api/kundli/comprehensive": post("Generate comprehensive kundli with yogas, doshas and panchang details"),
			"/api/kundli/planets":       post("Get only planet positions"),
			"/api/kundli/lagna":         post("Get lagna (ascendant), whole-sign houses and house cusps"),
			"/api/kundli/yogas":         post("Detect yogas (planetary combinations)"),
			"/api/kundli/doshas":        post("Detect doshas (afflictions) with remedies"),
			"/api/kundli/docs":          {Method: http.MethodGet, Description: "Get API documentation"},
			"/health":                   {Method: http.MethodGet, Description: "Liveness check"},
		},
		DateFormat:  "YYYY-MM-DD",
		TimeFormat:  "HH:MM (24-hour)",
		Coordinates: "Decimal degrees",
		Timezone:    "Hours offset from UTC (e.g., 5.5 for IST)",
	}
}
