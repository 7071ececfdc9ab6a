package config

import "time"

// Ephemeris provider modes.
const (
	ModeRemote = "remote"
	ModeStatic = "static"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Ephemeris EphemerisConfig `mapstructure:"ephemeris" validate:"required"`
	Rules     RulesConfig     `mapstructure:"rules"`
}

// ServerConfig contains the HTTP server settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
	// RateLimit is the inbound requests per second allowed per client.
	// Zero disables the limiter.
	RateLimit float64 `mapstructure:"rate_limit" validate:"gte=0"`
	RateBurst int     `mapstructure:"rate_burst" validate:"gte=0"`
}

// EphemerisConfig selects and tunes the celestial position provider.
type EphemerisConfig struct {
	Mode    string        `mapstructure:"mode" validate:"required,oneof=remote static"`
	BaseURL string        `mapstructure:"base_url" validate:"omitempty,url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
	// CacheTTL is how long answers are reused. Zero disables caching.
	CacheTTL time.Duration `mapstructure:"cache_ttl" validate:"gte=0"`
	// RateLimit is the outbound requests per second. Zero means unlimited.
	RateLimit  float64 `mapstructure:"rate_limit" validate:"gte=0"`
	RateBurst  int     `mapstructure:"rate_burst" validate:"gte=0"`
	MaxRetries int     `mapstructure:"max_retries" validate:"gte=0,lte=10"`
	// RetryDelay is the base delay of the exponential backoff.
	RetryDelay   time.Duration `mapstructure:"retry_delay" validate:"gte=0"`
	SnapshotPath string        `mapstructure:"snapshot_path"`
	HouseSystem  string        `mapstructure:"house_system" validate:"required,len=1"`
}

// RulesConfig tunes the rule evaluator.
type RulesConfig struct {
	// Workers bounds concurrent rule evaluation. 0 or 1 runs sequentially.
	Workers int `mapstructure:"workers" validate:"gte=0,lte=64"`
	// TablesPath optionally replaces the embedded dignity tables.
	TablesPath string `mapstructure:"tables_path"`
}
