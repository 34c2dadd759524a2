package rider

import (
	"context"

	"github.com/lastmile/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/lastmile/backend/services/rider RiderRepo

// RiderRepo defines the interface for ride request data access. A rider has
// at most one non-terminal request; the insert guard enforces it in the
// database, not in memory.
type RiderRepo interface {
	// CreateRequest inserts the request unless the rider already has a
	// non-terminal one. created=false with no error means the request id
	// was replayed; ErrActiveRequestExists means a different request is
	// still live.
	CreateRequest(ctx context.Context, r *models.RideRequest) (created bool, err error)

	GetRequest(ctx context.Context, riderID, requestID string) (*models.RideRequest, error)
	// GetActiveRequest returns the rider's non-terminal request, or
	// ErrRequestNotFound when there is none
	GetActiveRequest(ctx context.Context, riderID string) (*models.RideRequest, error)
	ListRequests(ctx context.Context, riderID string) ([]*models.RideRequest, error)

	// ApplyTripUpdate mirrors trip progress onto the request identified by
	// the trip id. ok=false when no live request carries that id.
	ApplyTripUpdate(ctx context.Context, riderID, tripID string, status models.RideRequestStatus, fare int) (bool, error)

	// MarkTerminal moves a non-terminal request to a terminal status.
	// ok=false when the request was already terminal.
	MarkTerminal(ctx context.Context, riderID, requestID string, status models.RideRequestStatus) (bool, error)

	// RateDriver records the rider's rating on a completed request
	RateDriver(ctx context.Context, riderID, requestID string, rating int) (bool, error)
}
