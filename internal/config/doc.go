// Package config handles configuration loading, parsing, and validation
// from environment variables (KUNDLI_ prefix), an optional config file, and
// command-line flags bound by the entry points. It keeps configuration
// details out of the chart engine and the HTTP layer.
package config
