package trip

import (
	"context"

	"github.com/lastmile/backend/internal/pkg/models"
)

// TripUC defines the interface for trip business logic
type TripUC interface {
	// CreateTrip reserves the driver's seat first, then persists the trip.
	// A replayed trip id returns the stored trip without a second
	// reservation.
	CreateTrip(ctx context.Context, req models.CreateTripRequest) (*models.Trip, error)

	// RecordPickup marks the trip active and propagates the pickup to the
	// driver ledger and the rider's request mirror
	RecordPickup(ctx context.Context, tripID string) (*models.Trip, error)

	// RecordDropoff completes the trip, releases the seat and credits the
	// fare. fareOverride replaces the stored fare when positive.
	RecordDropoff(ctx context.Context, tripID string, fareOverride int) (*models.Trip, error)

	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)
	ListTripsByRider(ctx context.Context, riderID string) ([]*models.Trip, error)
}
