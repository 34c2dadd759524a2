package match

import "errors"

// Domain errors for match operations
var (
	// ErrMatchNotFound indicates the match id is unknown
	ErrMatchNotFound = errors.New("match not found")
	// ErrInvalidState indicates the operation does not apply to the match's
	// current status
	ErrInvalidState = errors.New("match is not in a valid state for this operation")
	// ErrMissingRequestID indicates the caller omitted the idempotency key
	ErrMissingRequestID = errors.New("request id is required")
)
