package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/lastmile/backend/internal/pkg/events"
	"github.com/lastmile/backend/internal/pkg/logger"
	"github.com/lastmile/backend/internal/pkg/models"
)

// SweepStaleMatches requeues MATCHED assignments whose accept deadline has
// passed and tells each rider the search is back on. Notifications are
// best-effort; the revert itself already committed.
func (uc *MatchUC) SweepStaleMatches(ctx context.Context) error {
	cutoff := time.Now().Add(-time.Duration(uc.cfg.Match.AcceptDeadlineSec) * time.Second)

	swept, err := uc.matchRepo.SweepStaleMatched(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to sweep stale matches: %w", err)
	}

	for _, m := range swept {
		record := events.EncodeMatchStatus(m.ID, string(models.MatchStatusPending), "", "", 0)
		if err := uc.matchGW.NotifyRider(ctx, m.RiderID, record); err != nil {
			logger.Warn("Failed to notify rider of requeue",
				logger.String("match_id", m.ID),
				logger.Err(err))
		}

		logger.Info("Stale match requeued",
			logger.String("match_id", m.ID),
			logger.String("revoked_driver", m.DriverID))
	}

	return nil
}

// StartSweeper runs the sweep on the configured interval until ctx is done
func (uc *MatchUC) StartSweeper(ctx context.Context) {
	interval := time.Duration(uc.cfg.Match.SweepIntervalSec) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("Match sweeper started",
		logger.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			logger.Info("Match sweeper stopped")
			return
		case <-ticker.C:
			if err := uc.SweepStaleMatches(ctx); err != nil {
				logger.Error("Sweep failed", logger.Err(err))
			}
		}
	}
}
