package rider

import (
	"context"

	"github.com/lastmile/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/lastmile/backend/services/rider RiderGW

// RiderGW defines the interface for the rider service's outbound calls to
// the match service
type RiderGW interface {
	// RequestMatch submits the ride request to the matcher, keyed by the
	// request id
	RequestMatch(ctx context.Context, req models.MatchRequest) (*models.MatchResult, error)

	// CancelMatch cancels the match produced by the request on the
	// rider's behalf
	CancelMatch(ctx context.Context, riderID, matchID string) error
}
