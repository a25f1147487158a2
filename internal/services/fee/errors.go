package fee

import "errors"

var (
	// ErrInvalidAmount is returned for a non-positive amount. Callers are
	// expected to validate positivity before pricing; hitting this error
	// indicates a caller bug, not a user input problem.
	ErrInvalidAmount = errors.New("amount must be greater than zero")
)
