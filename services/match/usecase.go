package match

import (
	"context"

	"github.com/lastmile/backend/internal/pkg/events"
	"github.com/lastmile/backend/internal/pkg/models"
)

// MatchUC defines the interface for match business logic
type MatchUC interface {
	// RequestMatch creates (or idempotently replays) a match for the rider
	// and scans for an eligible driver. Returns Found=false with the match
	// left PENDING when no driver qualifies.
	RequestMatch(ctx context.Context, req models.MatchRequest) (*models.MatchResult, error)

	// AcceptMatch confirms the match for the assigned driver, creates the
	// trip and notifies both parties
	AcceptMatch(ctx context.Context, matchID, driverID string) (*models.Trip, error)

	// DeclineMatch releases the tentative assignment and tries the next
	// eligible driver; the match returns to PENDING when none is found
	DeclineMatch(ctx context.Context, matchID, driverID string) error

	// CancelMatch cancels a PENDING or MATCHED match for the rider who
	// owns it
	CancelMatch(ctx context.Context, matchID, riderID string) error

	GetMatchStatus(ctx context.Context, matchID string) (*models.Match, error)

	// HandleDriverAvailability reprocesses queued PENDING matches against a
	// driver who just announced free capacity
	HandleDriverAvailability(ctx context.Context, ev events.DriverAvailability)

	// SweepStaleMatches requeues MATCHED assignments older than the accept
	// deadline and tells each rider the search is back on
	SweepStaleMatches(ctx context.Context) error
}
