package rider

import (
	"context"

	"github.com/lastmile/backend/internal/pkg/models"
)

// RiderUC defines the interface for rider business logic
type RiderUC interface {
	// RequestRide creates the rider's request and submits it to the
	// matcher. A replayed request id returns the stored request.
	RequestRide(ctx context.Context, riderID string, input models.RideRequestInput) (*models.RideRequest, *models.MatchResult, error)

	// CancelRide cancels the active request and its match
	CancelRide(ctx context.Context, riderID, requestID string) error

	GetActiveRequest(ctx context.Context, riderID string) (*models.RideRequest, error)
	ListRequests(ctx context.Context, riderID string) ([]*models.RideRequest, error)

	// RateDriver records the rider's rating on a completed ride
	RateDriver(ctx context.Context, riderID, requestID string, rating int) error

	// ApplyTripUpdate is the internal callback mirroring trip progress
	ApplyTripUpdate(ctx context.Context, riderID, tripID string, status models.RideRequestStatus, fare int) error

	// ApplyMatchStatus is the internal callback for terminal match
	// outcomes that never produced a trip
	ApplyMatchStatus(ctx context.Context, riderID, requestID string, status models.MatchStatus) error
}
