package expiration

import "errors"

var (
	// ErrNegativeShelfLife is returned when a shelf life below zero days is
	// supplied.
	ErrNegativeShelfLife = errors.New("shelf life must not be negative")

	// ErrInvalidDate is returned when a date string cannot be parsed.
	ErrInvalidDate = errors.New("invalid date")
)
