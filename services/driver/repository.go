package driver

import (
	"context"

	"github.com/lastmile/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/lastmile/backend/services/driver DriverRepo

// DriverRepo defines the interface for driver ledger data access. Seat
// mutations are conditional updates against the stored driver row so that
// concurrent reservations cannot both succeed on the last seat.
type DriverRepo interface {
	RegisterRoute(ctx context.Context, driverID string, req models.RegisterRouteRequest) (*models.Driver, error)
	GetDriver(ctx context.Context, driverID string) (*models.Driver, error)
	ListDrivers(ctx context.Context, station string) ([]*models.Driver, error)
	UpdateLocation(ctx context.Context, driverID string, lat, lon float64) error

	// ReserveSeat atomically decrements available seats and appends the trip
	// record. ok=false when no seat remained or the driver is unknown.
	ReserveSeat(ctx context.Context, driverID string, rec models.TripRecord) (bool, error)
	// StartTrip flips a scheduled record to active with a pickup timestamp.
	StartTrip(ctx context.Context, driverID, tripID string) (bool, error)
	// ReleaseSeat moves the record to ride history, increments seats and
	// earnings in the same transaction, and returns the completed record.
	ReleaseSeat(ctx context.Context, driverID, tripID string) (*models.TripRecord, error)

	ListActiveTrips(ctx context.Context, driverID string) ([]models.TripRecord, error)
	ListRideHistory(ctx context.Context, driverID string) ([]models.TripRecord, error)
}
