package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// It is wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidDate is returned when a birth date is not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("invalid date format")

	// ErrInvalidTime is returned when a birth time is not in HH:MM form.
	ErrInvalidTime = errors.New("invalid time format")

	// ErrInvalidLatitude is returned when latitude is outside [-90, 90].
	ErrInvalidLatitude = errors.New("latitude must be between -90 and 90")

	// ErrInvalidLongitude is returned when longitude is outside [-180, 180].
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")

	// ErrInvalidUTCOffset is returned when the UTC offset is outside [-12, 14].
	ErrInvalidUTCOffset = errors.New("utc offset must be between -12 and 14")
)
