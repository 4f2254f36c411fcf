package brailleart

import "errors"

var (
	// ErrInvalidConfig is returned when conversion parameters are rejected.
	// It is always reported before any pixel work begins.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrDecode is returned when an image cannot be read or decoded.
	ErrDecode = errors.New("decode failure")

	// ErrIO is returned when finished art cannot be written to its sink.
	// The art itself is still valid.
	ErrIO = errors.New("io failure")
)
