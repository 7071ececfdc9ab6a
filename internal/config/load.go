package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g.
// KUNDLI_SERVER_PORT for server.port.
const EnvPrefix = "KUNDLI"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// New returns a viper instance with defaults applied and environment
// variables bound. Entry points bind their flags to it before calling
// FromViper.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration from the environment and, when path is not
// empty, from a config file. Environment variables take precedence over
// values from the file.
func Load(path string) (*Config, error) {
	v := New()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}
	return FromViper(v)
}

// FromViper unmarshals and validates the configuration held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks struct tags and the rules that span fields.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: validation failed: %w", ErrInvalidConfig, err)
	}
	switch c.Ephemeris.Mode {
	case ModeRemote:
		if c.Ephemeris.BaseURL == "" {
			return fmt.Errorf("%w: ephemeris.base_url is required in remote mode", ErrInvalidConfig)
		}
	case ModeStatic:
		if c.Ephemeris.SnapshotPath == "" {
			return fmt.Errorf("%w: ephemeris.snapshot_path is required in static mode", ErrInvalidConfig)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 15*time.Second)
	v.SetDefault("server.rate_limit", 10.0)
	v.SetDefault("server.rate_burst", 20)

	v.SetDefault("ephemeris.mode", ModeRemote)
	v.SetDefault("ephemeris.base_url", "")
	v.SetDefault("ephemeris.api_key", "")
	v.SetDefault("ephemeris.timeout", 5*time.Second)
	v.SetDefault("ephemeris.cache_ttl", 10*time.Minute)
	v.SetDefault("ephemeris.rate_limit", 20.0)
	v.SetDefault("ephemeris.rate_burst", 10)
	v.SetDefault("ephemeris.max_retries", 2)
	v.SetDefault("ephemeris.retry_delay", 200*time.Millisecond)
	v.SetDefault("ephemeris.snapshot_path", "")
	v.SetDefault("ephemeris.house_system", "A")

	v.SetDefault("rules.workers", 4)
	v.SetDefault("rules.tables_path", "")
}
