package converter

import "errors"

var (
	// ErrUsage is returned when required arguments are missing.
	ErrUsage = errors.New("missing arguments")

	// ErrNotFound is returned when the source file does not exist.
	ErrNotFound = errors.New("source file not found")

	// ErrFormat is returned when the source is not a JSON object of string arrays.
	ErrFormat = errors.New("invalid mime registry")
)
