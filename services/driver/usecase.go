package driver

import (
	"context"

	"github.com/lastmile/backend/internal/pkg/models"
)

// DriverUC defines the interface for driver ledger business logic
type DriverUC interface {
	RegisterRoute(ctx context.Context, driverID string, req models.RegisterRouteRequest) (string, error)
	UpdateLocation(ctx context.Context, driverID string, lat, lon float64) error
	GetDriver(ctx context.Context, driverID string) (*models.Driver, error)
	ListDrivers(ctx context.Context, station string) ([]models.DriverInfo, error)

	AcceptTrip(ctx context.Context, driverID string, req models.AcceptTripRequest) error
	StartTrip(ctx context.Context, driverID, tripID string) error
	CompleteActiveTrip(ctx context.Context, driverID, tripID string) (*models.TripRecord, error)

	// GetRideHistory returns the driver's completed trips, most recent first
	GetRideHistory(ctx context.Context, driverID string) ([]models.TripRecord, error)
}
