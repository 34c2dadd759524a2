package match

import (
	"context"

	"github.com/lastmile/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/lastmile/backend/services/match MatchGW

// MatchGW defines the interface for the match service's outbound calls:
// driver and station lookups, trip creation, and rider/driver notifications.
// Notifications are best-effort; failures are logged, never propagated.
type MatchGW interface {
	// ListDrivers returns driver projections serving the given station
	ListDrivers(ctx context.Context, station string) ([]models.DriverInfo, error)
	GetDriver(ctx context.Context, driverID string) (*models.Driver, error)

	// GetStationCoords resolves a station name via the station oracle
	GetStationCoords(ctx context.Context, station string) (*models.Station, error)

	// CreateTrip asks the trip service to create the trip for a confirmed
	// match. The trip service reserves the seat before persisting.
	CreateTrip(ctx context.Context, req models.CreateTripRequest) (*models.Trip, error)

	// ClearRiderRequest tells the rider service the request reached a
	// terminal state with no trip
	ClearRiderRequest(ctx context.Context, riderID, matchID string, status models.MatchStatus) error

	// NotifyRider pushes a record on the rider's match-status channel
	NotifyRider(ctx context.Context, riderID, record string) error
	// NotifyDriver pushes a record on the driver's dashboard channel
	NotifyDriver(ctx context.Context, driverID, record string) error
}
