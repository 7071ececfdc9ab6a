package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/kundli-api/internal/config"
	"github.com/phrazzld/kundli-api/internal/domain/chart"
	"github.com/phrazzld/kundli-api/internal/domain/rules"
	"github.com/phrazzld/kundli-api/internal/ephemeris"
	"github.com/phrazzld/kundli-api/internal/redact"
	"github.com/phrazzld/kundli-api/internal/service"
)

// Application holds the shared dependencies of a running server.
type Application struct {
	config *config.Config
	logger *slog.Logger
	kundli service.KundliService
}

// New creates an Application with all dependencies initialised.
func New(cfg *config.Config, logger *slog.Logger) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	provider, err := NewProvider(cfg.Ephemeris, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize ephemeris provider: %w", err)
	}

	kundli, err := NewKundliService(cfg, provider, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("application initialized",
		"ephemeris_mode", cfg.Ephemeris.Mode,
		"house_system", cfg.Ephemeris.HouseSystem,
		"rule_workers", cfg.Rules.Workers)

	return &Application{
		config: cfg,
		logger: logger,
		kundli: kundli,
	}, nil
}

// KundliService returns the service the application serves.
func (a *Application) KundliService() service.KundliService {
	return a.kundli
}

// NewProvider builds the ephemeris provider selected by cfg.Mode.
func NewProvider(cfg config.EphemerisConfig, logger *slog.Logger) (ephemeris.Provider, error) {
	switch cfg.Mode {
	case config.ModeStatic:
		p, err := ephemeris.LoadSnapshot(cfg.SnapshotPath)
		if err != nil {
			return nil, err
		}
		logger.Info("using static ephemeris snapshot")
		return p, nil
	case config.ModeRemote:
		p, err := ephemeris.NewRemoteProvider(cfg, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("using remote ephemeris",
			"base_url", redact.String(cfg.BaseURL),
			"api_key", redact.APIKey(cfg.APIKey),
			"cache_ttl", cfg.CacheTTL)
		return p, nil
	default:
		return nil, fmt.Errorf("%w: unknown ephemeris mode %q", config.ErrInvalidConfig, cfg.Mode)
	}
}

// NewKundliService builds the kundli service over provider using the rule
// and table settings in cfg.
func NewKundliService(cfg *config.Config, provider ephemeris.Provider, logger *slog.Logger) (service.KundliService, error) {
	tables := chart.DefaultTables()
	if cfg.Rules.TablesPath != "" {
		t, err := chart.LoadTables(cfg.Rules.TablesPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load dignity tables: %w", err)
		}
		tables = t
	}

	hs, err := ephemeris.ParseHouseSystem(cfg.Ephemeris.HouseSystem)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}

	svc, err := service.NewKundliService(service.Options{
		Provider:    provider,
		Tables:      tables,
		Evaluator:   rules.NewEvaluator(logger, cfg.Rules.Workers),
		HouseSystem: hs,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create kundli service: %w", err)
	}
	return svc, nil
}

// Run serves HTTP until ctx is cancelled or a termination signal arrives.
func (a *Application) Run(ctx context.Context) error {
	if err := a.startHTTPServer(ctx, a.Router()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
