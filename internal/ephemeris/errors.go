package ephemeris

import "errors"

var (
	// ErrUnavailable is returned when the position service cannot be reached
	// or refuses the request.
	ErrUnavailable = errors.New("position service unavailable")

	// ErrInvalidResponse is returned when the service answers with a body
	// that cannot be used.
	ErrInvalidResponse = errors.New("invalid response from position service")

	// ErrTransientFailure is returned when retries are exhausted.
	ErrTransientFailure = errors.New("transient position service failure")

	// ErrBodyUnavailable is returned when a provider has no longitude for a
	// body.
	ErrBodyUnavailable = errors.New("body longitude unavailable")

	// ErrInvalidMoment is returned for civil times that cannot be parsed.
	ErrInvalidMoment = errors.New("invalid moment")
)
