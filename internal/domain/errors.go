package domain

import "errors"

var (
	// ErrDestinationNotFound means the requested destination key has no
	// catalog record. Surfaced to clients as an input error, not a fault.
	ErrDestinationNotFound = errors.New("destination not found")

	// ErrInvalidDateRange means the trip dates are unparseable or the end
	// date is not after the start date.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidRequest covers remaining request-shape problems such as a
	// non-positive traveler count or an unknown budget tier.
	ErrInvalidRequest = errors.New("invalid request")
)
