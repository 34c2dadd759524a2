package usecase

import (
	"context"

	"github.com/lastmile/backend/internal/pkg/events"
	"github.com/lastmile/backend/internal/pkg/logger"
	"github.com/lastmile/backend/internal/pkg/models"
)

// HandleDriverAvailability walks the pending queue in arrival order against
// a driver who just announced capacity. A local seat counter caps how many
// queued matches one event can claim, so a single free seat never fans out
// to the whole queue.
func (uc *MatchUC) HandleDriverAvailability(ctx context.Context, ev events.DriverAvailability) {
	matched, err := uc.matchRepo.CountMatchedByDriver(ctx, ev.DriverID)
	if err != nil {
		logger.Error("Failed to count tentative assignments",
			logger.String("driver_id", ev.DriverID),
			logger.Err(err))
		return
	}

	seats := ev.AvailableSeats - matched
	if seats <= 0 {
		return
	}

	d, err := uc.matchGW.GetDriver(ctx, ev.DriverID)
	if err != nil {
		logger.Warn("Failed to load driver for reprocessing",
			logger.String("driver_id", ev.DriverID),
			logger.Err(err))
		return
	}

	pending, err := uc.matchRepo.ListPendingMatches(ctx)
	if err != nil {
		logger.Error("Failed to list pending matches",
			logger.String("driver_id", ev.DriverID),
			logger.Err(err))
		return
	}

	served := make(map[string]bool, len(d.MetroStations))
	for _, s := range d.MetroStations {
		served[s] = true
	}

	for _, m := range pending {
		if seats <= 0 {
			return
		}
		if !served[m.PickupStation] {
			continue
		}
		if !uc.destinationCompatible(ev.Destination, m.Destination) {
			continue
		}

		fare := uc.computeFare(ctx, m.PickupStation, d.Location)
		ok, err := uc.matchRepo.AssignDriver(ctx, m.ID, ev.DriverID, fare, models.MatchStatusPending, "")
		if err != nil {
			logger.Error("Failed to assign queued match",
				logger.String("match_id", m.ID),
				logger.String("driver_id", ev.DriverID),
				logger.Err(err))
			continue
		}
		if !ok {
			// Another writer claimed or cancelled it first
			continue
		}

		seats--
		m.DriverID = ev.DriverID
		m.Fare = fare
		m.Status = models.MatchStatusMatched
		uc.notifyAssignment(ctx, m)

		logger.Info("Queued match assigned",
			logger.String("match_id", m.ID),
			logger.String("driver_id", ev.DriverID),
			logger.Int("fare", fare))
	}
}
