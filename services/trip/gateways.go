package trip

import (
	"context"

	"github.com/lastmile/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/lastmile/backend/services/trip TripGW

// TripGW defines the interface for the trip service's outbound calls. The
// seat reservation call is the only one whose failure aborts the operation;
// rider callbacks and channel publishes are best-effort.
type TripGW interface {
	// ReserveSeat asks the driver service to reserve one seat for the trip.
	// ok=false when the driver had no seat left.
	ReserveSeat(ctx context.Context, driverID string, req models.AcceptTripRequest) (bool, error)

	// StartDriverTrip flips the driver's trip record to active at pickup
	StartDriverTrip(ctx context.Context, driverID, tripID string) error

	// CompleteDriverTrip releases the seat and credits the fare
	CompleteDriverTrip(ctx context.Context, driverID, tripID string) error

	// UpdateRiderRequest mirrors the trip state onto the rider's request
	UpdateRiderRequest(ctx context.Context, riderID, tripID string, status models.RideRequestStatus, fare int) error

	// PublishTripUpdate pushes a record on the trip's updates channel
	PublishTripUpdate(ctx context.Context, tripID, status string) error
}
