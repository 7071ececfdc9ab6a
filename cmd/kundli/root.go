package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/phrazzld/kundli-api/internal/config"
	"github.com/phrazzld/kundli-api/internal/platform/logger"
)

// cli carries state shared by the subcommands.
type cli struct {
	v *viper.Viper
}

func newRootCmd() *cobra.Command {
	c := &cli{v: config.New()}

	root := &cobra.Command{
		Use:           "kundli",
		Short:         "Vedic natal charts with yoga and dosha analysis",
		Long:          "kundli casts sidereal natal charts, detects yogas and doshas and serves them over HTTP.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.initConfig(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (yaml, json or toml)")
	pf.String("env-file", ".env", "dotenv file to load if present")
	pf.String("log-level", "", "log level: debug, info, warn or error")
	pf.String("mode", "", "ephemeris mode: remote or static")
	pf.String("snapshot", "", "snapshot file for static mode")
	pf.String("ephemeris-url", "", "base URL of the position service")
	pf.String("house-system", "", "one-letter house system code")
	pf.Int("workers", 0, "concurrent rule evaluation workers")

	mustBind(c.v, pf, map[string]string{
		"server.log_level":        "log-level",
		"ephemeris.mode":          "mode",
		"ephemeris.snapshot_path": "snapshot",
		"ephemeris.base_url":      "ephemeris-url",
		"ephemeris.house_system":  "house-system",
		"rules.workers":           "workers",
	})

	root.AddCommand(c.newChartCmd(), c.newServeCmd())
	return root
}

// initConfig loads the dotenv file and the optional config file.
func (c *cli) initConfig(cmd *cobra.Command) error {
	envFile, _ := cmd.Flags().GetString("env-file")
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		c.v.SetConfigFile(cfgFile)
		if err := c.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
		}
	}
	return nil
}

// load validates the merged configuration and builds a logger writing to
// the command's error stream.
func (c *cli) load(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := config.FromViper(c.v)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger.SetupWriter(cmd.ErrOrStderr(), cfg.Server.LogLevel), nil
}

// mustBind binds viper keys to flags. Binding only fails for a nil flag,
// which is a programming error.
func mustBind(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for key, flag := range keys {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("bind %s to --%s: %v", key, flag, err))
		}
	}
}
