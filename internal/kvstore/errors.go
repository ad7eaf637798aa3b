package kvstore

import "errors"

var (
	// ErrMalformedFile is returned when a line in the backing file does not
	// split into exactly one key and one value on '='.
	ErrMalformedFile = errors.New("malformed file")

	// ErrInvalidEntry is returned when a key or value cannot be represented
	// in the line format (empty key, or '=' / line breaks in key or text).
	ErrInvalidEntry = errors.New("invalid entry")
)
