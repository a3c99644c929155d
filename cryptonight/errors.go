package cryptonight

import "errors"

var (
	// ErrAllocation is returned when the scratchpad cannot be allocated. It is not transient.
	ErrAllocation = errors.New("cryptonight: scratchpad allocation failed")

	ErrInvalidRatio  = errors.New("cryptonight: context ratio must be 1 or 2")
	ErrContextClosed = errors.New("cryptonight: context already closed")

	// ErrHardwareUnavailable is returned when hardware AES is requested on a CPU without it.
	// The software cipher has to be selected explicitly instead.
	ErrHardwareUnavailable = errors.New("cryptonight: hardware AES not available")

	// ErrProfileUnavailable is returned for profiles excluded at build time.
	ErrProfileUnavailable = errors.New("cryptonight: profile not available")

	ErrInvalidVariant = errors.New("cryptonight: invalid variant")
)
