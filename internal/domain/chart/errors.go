package chart

import "errors"

var (
	// ErrUnknownBody is returned when a body name cannot be resolved.
	ErrUnknownBody = errors.New("unknown body")

	// ErrInvalidTables is returned when dignity tables fail validation.
	ErrInvalidTables = errors.New("invalid dignity tables")
)
