package config

import "errors"

var (
	// ErrParse is returned when environment variables cannot be parsed
	// into the target struct.
	ErrParse = errors.New("config: failed to parse environment")

	// ErrNilPointer is returned when Load receives a nil target.
	ErrNilPointer = errors.New("config: nil pointer")
)
