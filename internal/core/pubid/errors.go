package pubid

import "errors"

var (
	// ErrInvalidEntityType is returned when a caller passes a value outside
	// the closed EntityType enumeration. This indicates misuse at the call
	// site and is never converted into a fallback identifier.
	ErrInvalidEntityType = errors.New("invalid entity type")

	// ErrMaskNotConfigured is the "absent" sentinel: no mask template is
	// configured for the (tenant, entity type) pair. Not a failure.
	ErrMaskNotConfigured = errors.New("mask not configured")

	// ErrConfigUnavailable is returned when mask configuration could not be
	// read due to a storage-layer failure.
	ErrConfigUnavailable = errors.New("mask configuration unavailable")

	// ErrCounterUnavailable is returned when the atomic counter increment
	// failed. The stored value is guaranteed not to have advanced.
	ErrCounterUnavailable = errors.New("counter unavailable")
)
