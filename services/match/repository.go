package match

import (
	"context"
	"time"

	"github.com/lastmile/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/lastmile/backend/services/match MatchRepo

// MatchRepo defines the interface for match store data access. Every status
// transition is a conditional update keyed on the expected current status so
// racing writers cannot both win.
type MatchRepo interface {
	// CreateMatch inserts the match keyed by its id. created=false when a
	// match with the same id already exists (idempotent retry).
	CreateMatch(ctx context.Context, m *models.Match) (created bool, err error)
	GetMatch(ctx context.Context, matchID string) (*models.Match, error)

	// CountMatchedByDriver counts non-terminal matches tentatively holding
	// one of the driver's seats (MATCHED, not yet confirmed or declined).
	CountMatchedByDriver(ctx context.Context, driverID string) (int, error)

	// ListPendingMatches returns PENDING matches oldest first
	ListPendingMatches(ctx context.Context) ([]*models.Match, error)

	// AssignDriver moves the match to MATCHED with the given driver and
	// fare. expectStatus guards the transition; when reassigning after a
	// decline, expectDriverID must also match. ok=false when the guard fails.
	AssignDriver(ctx context.Context, matchID, driverID string, fare int, expectStatus models.MatchStatus, expectDriverID string) (bool, error)

	// ConfirmMatch moves MATCHED to CONFIRMED for the assigned driver only
	ConfirmMatch(ctx context.Context, matchID, driverID string) (bool, error)

	// RevertToPending clears the driver and returns the match to PENDING.
	// Used on decline when no replacement driver is found.
	RevertToPending(ctx context.Context, matchID, expectDriverID string) (bool, error)

	// CancelMatch moves PENDING or MATCHED to CANCELLED. ok=false when the
	// match is already terminal or confirmed.
	CancelMatch(ctx context.Context, matchID string) (bool, error)

	// SweepStaleMatched requeues MATCHED rows older than cutoff, clearing
	// the driver, and returns them so callers can notify the riders. The
	// returned rows carry the driver the assignment was revoked from.
	SweepStaleMatched(ctx context.Context, cutoff time.Time) ([]*models.Match, error)
}
