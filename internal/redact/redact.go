// Package redact removes or coarsens sensitive data before it is logged or
// returned in error responses. Free-form text is scrubbed of keys, URLs with
// credentials, file paths and stack traces; birth data is reduced to what is
// needed to correlate a request without identifying the person.
package redact

import (
	"log/slog"
	"math"
	"regexp"

	"github.com/phrazzld/kundli-api/internal/domain"
)

// Redaction placeholders.
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedHostPlaceholder       = "[REDACTED_HOST]"
)

// CoordinatePrecision is the number of decimals kept when coarsening a
// latitude or longitude (about 11 km at one decimal).
const CoordinatePrecision = 1

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// Applied in order. Paths go before bare hosts so file names are not
// mistaken for domains.
var rules = []rule{
	{regexp.MustCompile(`(?i)\b[a-z][a-z0-9+.-]*://[^/\s:@]+(:[^/\s@]*)?@`), RedactedCredentialPlaceholder},
	{regexp.MustCompile(`(?i)(x-api-key|api[_-]?key|token|secret|auth(orization)?)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`), RedactedKeyPlaceholder},
	{regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`), "[STACK_TRACE_REDACTED]"},
	{regexp.MustCompile(`(?i)\bhttps?://[^\s"']+`), RedactedHostPlaceholder},
	{regexp.MustCompile(`(/[\w.-]+){2,}`), RedactedPathPlaceholder},
	{regexp.MustCompile(`[A-Za-z]:\\[^\\]+(\\[^\\]+)+`), RedactedPathPlaceholder},
	{regexp.MustCompile(`\b(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}(?::\d{1,5})?\b`), RedactedHostPlaceholder},
	{regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}(?::\d{1,5})?\b`), RedactedHostPlaceholder},
}

// String redacts sensitive information from input.
func String(input string) string {
	if input == "" {
		return input
	}
	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from err's message.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}

// APIKey masks all but the last four characters of key.
func APIKey(key string) string {
	if len(key) <= 4 {
		if key == "" {
			return ""
		}
		return RedactedKeyPlaceholder
	}
	return "****" + key[len(key)-4:]
}

// Coordinate rounds a latitude or longitude to CoordinatePrecision decimals.
func Coordinate(v float64) float64 {
	scale := math.Pow(10, CoordinatePrecision)
	return math.Round(v*scale) / scale
}

// Birth returns a log value for a birth input with the name dropped, the
// date reduced to its year, the clock time removed and the coordinates
// coarsened.
func Birth(in domain.BirthInput) slog.Value {
	year := in.Date
	if len(year) >= 4 {
		year = year[:4]
	}
	return slog.GroupValue(
		slog.String("year", year),
		slog.Float64("lat", Coordinate(in.Latitude)),
		slog.Float64("lon", Coordinate(in.Longitude)),
		slog.Float64("tz", in.UTCOffset),
		slog.Bool("named", in.Name != ""),
	)
}
