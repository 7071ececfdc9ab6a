// Package main is the entry point of the kundli HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/phrazzld/kundli-api/internal/app"
	"github.com/phrazzld/kundli-api/internal/config"
	"github.com/phrazzld/kundli-api/internal/platform/logger"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("kundli server: %v", err)
	}
}

func run(ctx context.Context) error {
	application, err := initializeApp(os.Getenv("KUNDLI_CONFIG_FILE"))
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return application.Run(ctx)
}

// initializeApp loads .env and configuration, sets up logging and builds
// the application.
func initializeApp(configPath string) (*app.Application, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)
	slog.Debug("ephemeris configuration",
		"mode", cfg.Ephemeris.Mode,
		"api_key_present", cfg.Ephemeris.APIKey != "")

	return app.New(cfg, l)
}
