package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/phrazzld/kundli-api/internal/domain"
	"github.com/phrazzld/kundli-api/internal/domain/chart"
	"github.com/phrazzld/kundli-api/internal/domain/panchang"
	"github.com/phrazzld/kundli-api/internal/domain/rules"
	"github.com/phrazzld/kundli-api/internal/ephemeris"
	"github.com/phrazzld/kundli-api/internal/redact"
)

// maxConcurrentLookups bounds the body longitude requests in flight per chart.
const maxConcurrentLookups = 4

// Kundli is a generated chart with everything derived from it.
type Kundli struct {
	ID          uuid.UUID
	Input       domain.BirthInput
	Chart       *chart.Chart
	Yogas       []rules.Finding
	Doshas      []rules.Finding
	Details     panchang.Details
	JulianDay   float64
	Cusps       [12]float64
	HouseSystem ephemeris.HouseSystem
	// Missing lists bodies the provider could not supply.
	Missing []chart.Body
}

// KundliService generates charts.
type KundliService interface {
	// Cast builds the chart only. Yogas, Doshas and Details are left empty.
	Cast(ctx context.Context, in domain.BirthInput) (*Kundli, error)

	// Generate builds the chart and evaluates both catalogues and the
	// panchang details.
	Generate(ctx context.Context, in domain.BirthInput) (*Kundli, error)
}

// Options configures a KundliService. Provider is required; the rest have
// defaults.
type Options struct {
	Provider    ephemeris.Provider
	Tables      *chart.Tables
	Evaluator   *rules.Evaluator
	HouseSystem ephemeris.HouseSystem
	Yogas       *rules.Catalogue
	Doshas      *rules.Catalogue
	Logger      *slog.Logger
}

type kundliServiceImpl struct {
	provider    ephemeris.Provider
	tables      *chart.Tables
	evaluator   *rules.Evaluator
	houseSystem ephemeris.HouseSystem
	yogas       *rules.Catalogue
	doshas      *rules.Catalogue
	logger      *slog.Logger
}

// NewKundliService creates a KundliService.
func NewKundliService(opts Options) (KundliService, error) {
	if opts.Provider == nil {
		return nil, &KundliServiceError{
			Operation: "create_service",
			Message:   "provider cannot be nil",
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &kundliServiceImpl{
		provider:    opts.Provider,
		tables:      opts.Tables,
		evaluator:   opts.Evaluator,
		houseSystem: opts.HouseSystem,
		yogas:       opts.Yogas,
		doshas:      opts.Doshas,
		logger:      logger.With("component", "kundli_service"),
	}
	if s.tables == nil {
		s.tables = chart.DefaultTables()
	}
	if s.evaluator == nil {
		s.evaluator = rules.NewEvaluator(logger, 1)
	}
	if s.houseSystem == 0 {
		s.houseSystem = ephemeris.EqualHouses
	}
	if s.yogas == nil {
		s.yogas = rules.Yogas()
	}
	if s.doshas == nil {
		s.doshas = rules.Doshas()
	}
	return s, nil
}

// Cast implements KundliService.
func (s *kundliServiceImpl) Cast(ctx context.Context, in domain.BirthInput) (*Kundli, error) {
	return s.cast(ctx, in)
}

// Generate implements KundliService.
func (s *kundliServiceImpl) Generate(ctx context.Context, in domain.BirthInput) (*Kundli, error) {
	k, err := s.cast(ctx, in)
	if err != nil {
		return nil, err
	}

	k.Yogas = s.evaluator.Evaluate(ctx, s.yogas, k.Chart)
	k.Doshas = s.evaluator.Evaluate(ctx, s.doshas, k.Chart)
	if err := ctx.Err(); err != nil {
		return nil, NewKundliServiceError("generate", "evaluation interrupted", err)
	}

	local, err := in.LocalTime()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	k.Details = panchang.Compute(k.Chart, local)

	s.logger.InfoContext(ctx, "kundli generated",
		"chart_id", k.ID,
		"yogas", len(k.Yogas),
		"doshas", len(k.Doshas))
	return k, nil
}

func (s *kundliServiceImpl) cast(ctx context.Context, in domain.BirthInput) (*Kundli, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	m, err := ephemeris.MomentFromCivil(in.Date, in.Time, in.UTCOffset)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	id := uuid.New()
	log := s.logger.With("chart_id", id)
	log.DebugContext(ctx, "casting chart",
		"birth", redact.Birth(in),
		"julian_day", m.JulianDay,
		"house_system", s.houseSystem.String())

	asc, cusps, err := s.provider.AscendantAndCusps(ctx, m, in.Latitude, in.Longitude, s.houseSystem)
	if err != nil {
		log.ErrorContext(ctx, "ascendant unavailable", "error", redact.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrPositionUnavailable, err)
	}

	longitudes, missing := s.longitudes(ctx, log, m)
	if err := ctx.Err(); err != nil {
		return nil, NewKundliServiceError("cast", "position lookup interrupted", err)
	}

	return &Kundli{
		ID:          id,
		Input:       in,
		Chart:       chart.Assemble(asc, longitudes, s.tables),
		JulianDay:   m.JulianDay,
		Cusps:       cusps,
		HouseSystem: s.houseSystem,
		Missing:     missing,
	}, nil
}

// longitudes fetches every body. A body the provider cannot supply is
// logged and left out of the result.
func (s *kundliServiceImpl) longitudes(ctx context.Context, log *slog.Logger, m ephemeris.Moment) (map[chart.Body]float64, []chart.Body) {
	values := make([]float64, len(chart.AllBodies))
	errs := make([]error, len(chart.AllBodies))

	var g errgroup.Group
	g.SetLimit(maxConcurrentLookups)
	for i, b := range chart.AllBodies {
		g.Go(func() error {
			values[i], errs[i] = s.provider.Longitude(ctx, m, b)
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[chart.Body]float64, len(chart.AllBodies))
	var missing []chart.Body
	cancelled := false
	for i, b := range chart.AllBodies {
		if errs[i] == nil {
			out[b] = values[i]
			continue
		}
		missing = append(missing, b)
		if errors.Is(errs[i], context.Canceled) || errors.Is(errs[i], context.DeadlineExceeded) {
			if !cancelled {
				log.WarnContext(ctx, "position lookup cancelled")
				cancelled = true
			}
			continue
		}
		// Outer planets are optional, so a missing one is not worth a warning.
		level := slog.LevelWarn
		if b.Optional() {
			level = slog.LevelDebug
		}
		log.Log(ctx, level, "body unavailable, leaving it out",
			"body", b,
			"error", redact.Error(errs[i]))
	}
	return out, missing
}
