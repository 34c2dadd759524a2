package trip

import "errors"

// Domain errors for trip operations
var (
	// ErrTripNotFound indicates the trip id is unknown
	ErrTripNotFound = errors.New("trip not found")
	// ErrInvalidState indicates the operation does not apply to the trip's
	// current status
	ErrInvalidState = errors.New("trip is not in a valid state for this operation")
	// ErrSeatUnavailable indicates the driver had no seat left to reserve
	ErrSeatUnavailable = errors.New("driver has no seat available")
)
