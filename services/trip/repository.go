package trip

import (
	"context"

	"github.com/lastmile/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/lastmile/backend/services/trip TripRepo

// TripRepo defines the interface for trip ledger data access. Lifecycle
// transitions are conditional updates keyed on the expected current status.
type TripRepo interface {
	// CreateTrip inserts the trip keyed by its id. created=false when a
	// trip with the same id already exists (idempotent retry).
	CreateTrip(ctx context.Context, t *models.Trip) (created bool, err error)
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)

	// MarkPickup flips SCHEDULED to ACTIVE with a pickup timestamp.
	// ok=false when the trip is not scheduled.
	MarkPickup(ctx context.Context, tripID string) (bool, error)

	// MarkDropoff flips ACTIVE to COMPLETED with a dropoff timestamp,
	// optionally overriding the fare, and returns the completed trip.
	MarkDropoff(ctx context.Context, tripID string, fareOverride int) (*models.Trip, error)

	// ListTripsByRider returns the rider's trips, most recent first
	ListTripsByRider(ctx context.Context, riderID string) ([]*models.Trip, error)
}
