package driver

import "errors"

var (
	// ErrDriverNotFound indicates the driver has never registered a route
	ErrDriverNotFound = errors.New("driver not found")

	// ErrNoSeatAvailable indicates a reservation found zero physical seats.
	// Callers treat this as "try another driver", not as a hard failure.
	ErrNoSeatAvailable = errors.New("no seat available")

	// ErrTripNotFound indicates no trip record in the expected state
	ErrTripNotFound = errors.New("trip not found for driver")
)
