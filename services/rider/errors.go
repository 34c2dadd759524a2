package rider

import "errors"

// Domain errors for rider operations
var (
	// ErrRequestNotFound indicates the ride request is unknown
	ErrRequestNotFound = errors.New("ride request not found")
	// ErrActiveRequestExists indicates the rider already has a non-terminal
	// request
	ErrActiveRequestExists = errors.New("rider already has an active ride request")
	// ErrInvalidState indicates the operation does not apply to the
	// request's current status
	ErrInvalidState = errors.New("ride request is not in a valid state for this operation")
)
