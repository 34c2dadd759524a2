package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/lastmile/backend/internal/pkg/constants"
	"github.com/lastmile/backend/internal/pkg/events"
	"github.com/lastmile/backend/internal/pkg/logger"
	"github.com/lastmile/backend/internal/pkg/models"
	"github.com/lastmile/backend/services/match"
)

// RequestMatch creates the match keyed by the caller's request id and scans
// for a driver. A replayed request id returns the stored outcome instead of
// running a second scan.
func (uc *MatchUC) RequestMatch(ctx context.Context, req models.MatchRequest) (*models.MatchResult, error) {
	if req.RequestID == "" {
		return nil, match.ErrMissingRequestID
	}

	m := &models.Match{
		ID:            req.RequestID,
		RiderID:       req.RiderID,
		PickupStation: req.PickupStation,
		Destination:   req.Destination,
		Status:        models.MatchStatusPending,
	}

	created, err := uc.matchRepo.CreateMatch(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	if !created {
		existing, err := uc.matchRepo.GetMatch(ctx, req.RequestID)
		if err != nil {
			return nil, err
		}
		logger.Info("Replayed match request",
			logger.String("match_id", existing.ID),
			logger.String("status", string(existing.Status)))
		return resultFromMatch(existing), nil
	}

	driverID, fare, found, err := uc.findDriver(ctx, req.PickupStation, req.Destination, "")
	if err != nil {
		// The match stays PENDING; the reprocessor retries it on the next
		// availability event.
		logger.Warn("Driver scan failed, match queued",
			logger.String("match_id", m.ID),
			logger.Err(err))
		return &models.MatchResult{MatchID: m.ID, Found: false}, nil
	}
	if !found {
		logger.Info("No eligible driver, match queued",
			logger.String("match_id", m.ID),
			logger.String("pickup_station", req.PickupStation))
		return &models.MatchResult{MatchID: m.ID, Found: false}, nil
	}

	ok, err := uc.matchRepo.AssignDriver(ctx, m.ID, driverID, fare, models.MatchStatusPending, "")
	if err != nil {
		return nil, fmt.Errorf("failed to assign driver: %w", err)
	}
	if !ok {
		// Lost a race with a cancel or a concurrent assignment; report the
		// stored state.
		existing, err := uc.matchRepo.GetMatch(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		return resultFromMatch(existing), nil
	}

	m.DriverID = driverID
	m.Fare = fare
	m.Status = models.MatchStatusMatched
	uc.notifyAssignment(ctx, m)

	logger.Info("Driver matched",
		logger.String("match_id", m.ID),
		logger.String("driver_id", driverID),
		logger.Int("fare", fare))

	return resultFromMatch(m), nil
}

// AcceptMatch confirms the assignment for the driver it was offered to. The
// trip service reserves the seat while creating the trip, so the trip call
// is the step that actually settles capacity; the status flip afterwards
// publishes the outcome.
func (uc *MatchUC) AcceptMatch(ctx context.Context, matchID, driverID string) (*models.Trip, error) {
	m, err := uc.matchRepo.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if m.Status != models.MatchStatusMatched || m.DriverID != driverID {
		return nil, match.ErrInvalidState
	}

	trip, err := uc.matchGW.CreateTrip(ctx, models.CreateTripRequest{
		TripID:        m.ID,
		DriverID:      driverID,
		RiderID:       m.RiderID,
		PickupStation: m.PickupStation,
		Destination:   m.Destination,
		Fare:          m.Fare,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}

	ok, err := uc.matchRepo.ConfirmMatch(ctx, matchID, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to confirm match: %w", err)
	}
	if !ok {
		// The trip exists but the match moved underneath us, most likely a
		// sweep between the trip call and the flip.
		logger.Warn("Match moved before confirmation",
			logger.String("match_id", matchID),
			logger.String("driver_id", driverID))
	}

	record := events.EncodeMatchStatus(m.ID, string(models.MatchStatusConfirmed), driverID, trip.TripID, m.Fare)
	if err := uc.matchGW.NotifyRider(ctx, m.RiderID, record); err != nil {
		logger.Warn("Failed to notify rider of confirmation",
			logger.String("match_id", matchID),
			logger.Err(err))
	}

	tripRecord := events.Encode(constants.RecordTripUpdate, trip.TripID, string(trip.Status))
	if err := uc.matchGW.NotifyDriver(ctx, driverID, tripRecord); err != nil {
		logger.Warn("Failed to notify driver of confirmation",
			logger.String("match_id", matchID),
			logger.Err(err))
	}

	logger.Info("Match confirmed",
		logger.String("match_id", matchID),
		logger.String("driver_id", driverID),
		logger.String("trip_id", trip.TripID))

	return trip, nil
}

// DeclineMatch releases the tentative assignment and offers the match to the
// next eligible driver. The fare is recomputed for the replacement; with no
// replacement the match returns to PENDING for the reprocessor.
func (uc *MatchUC) DeclineMatch(ctx context.Context, matchID, driverID string) error {
	m, err := uc.matchRepo.GetMatch(ctx, matchID)
	if err != nil {
		return err
	}
	if m.Status != models.MatchStatusMatched || m.DriverID != driverID {
		return match.ErrInvalidState
	}

	nextDriver, fare, found, err := uc.findDriver(ctx, m.PickupStation, m.Destination, driverID)
	if err != nil {
		logger.Warn("Driver rescan failed on decline",
			logger.String("match_id", matchID),
			logger.Err(err))
		found = false
	}

	if found {
		ok, err := uc.matchRepo.AssignDriver(ctx, matchID, nextDriver, fare, models.MatchStatusMatched, driverID)
		if err != nil {
			return fmt.Errorf("failed to reassign driver: %w", err)
		}
		if !ok {
			return match.ErrInvalidState
		}

		m.DriverID = nextDriver
		m.Fare = fare
		m.Status = models.MatchStatusMatched
		uc.notifyAssignment(ctx, m)

		logger.Info("Match reassigned after decline",
			logger.String("match_id", matchID),
			logger.String("declined_by", driverID),
			logger.String("driver_id", nextDriver))
		return nil
	}

	ok, err := uc.matchRepo.RevertToPending(ctx, matchID, driverID)
	if err != nil {
		return fmt.Errorf("failed to revert match: %w", err)
	}
	if !ok {
		return match.ErrInvalidState
	}

	record := events.EncodeMatchStatus(matchID, string(models.MatchStatusPending), "", "", 0)
	if err := uc.matchGW.NotifyRider(ctx, m.RiderID, record); err != nil {
		logger.Warn("Failed to notify rider of requeue",
			logger.String("match_id", matchID),
			logger.Err(err))
	}

	logger.Info("Match requeued after decline",
		logger.String("match_id", matchID),
		logger.String("declined_by", driverID))
	return nil
}

// CancelMatch cancels a PENDING or MATCHED match on behalf of the rider
// who owns it. Cancelling an already cancelled match succeeds; a confirmed
// match can no longer be cancelled here, the trip lifecycle owns it.
func (uc *MatchUC) CancelMatch(ctx context.Context, matchID, riderID string) error {
	m, err := uc.matchRepo.GetMatch(ctx, matchID)
	if err != nil {
		return err
	}
	if m.RiderID != riderID {
		return match.ErrInvalidState
	}
	if m.Status == models.MatchStatusCancelled {
		return nil
	}
	if m.Status == models.MatchStatusConfirmed {
		return match.ErrInvalidState
	}

	ok, err := uc.matchRepo.CancelMatch(ctx, matchID)
	if err != nil {
		return fmt.Errorf("failed to cancel match: %w", err)
	}
	if !ok {
		// Re-read to distinguish a lost race against confirm from one
		// against another cancel.
		m, err = uc.matchRepo.GetMatch(ctx, matchID)
		if err != nil {
			return err
		}
		if m.Status == models.MatchStatusCancelled {
			return nil
		}
		return match.ErrInvalidState
	}

	uc.notifyCancelled(ctx, m)

	logger.Info("Match cancelled",
		logger.String("match_id", matchID),
		logger.String("rider_id", m.RiderID))
	return nil
}

// GetMatchStatus returns the stored match
func (uc *MatchUC) GetMatchStatus(ctx context.Context, matchID string) (*models.Match, error) {
	return uc.matchRepo.GetMatch(ctx, matchID)
}

// notifyAssignment pushes the offer to the driver's dashboard and the new
// status to the rider. Both publishes are best-effort.
func (uc *MatchUC) notifyAssignment(ctx context.Context, m *models.Match) {
	offer := events.Encode(constants.RecordMatchRequest,
		m.ID, m.RiderID, m.PickupStation, m.Destination, strconv.Itoa(m.Fare))
	if err := uc.matchGW.NotifyDriver(ctx, m.DriverID, offer); err != nil {
		logger.Warn("Failed to notify driver of offer",
			logger.String("match_id", m.ID),
			logger.String("driver_id", m.DriverID),
			logger.Err(err))
	}

	record := events.EncodeMatchStatus(m.ID, string(models.MatchStatusMatched), m.DriverID, "", m.Fare)
	if err := uc.matchGW.NotifyRider(ctx, m.RiderID, record); err != nil {
		logger.Warn("Failed to notify rider of match",
			logger.String("match_id", m.ID),
			logger.Err(err))
	}
}

// notifyCancelled informs both parties and clears the rider's request
// mirror. All three calls are best-effort.
func (uc *MatchUC) notifyCancelled(ctx context.Context, m *models.Match) {
	record := events.EncodeMatchStatus(m.ID, string(models.MatchStatusCancelled), m.DriverID, "", 0)
	if err := uc.matchGW.NotifyRider(ctx, m.RiderID, record); err != nil {
		logger.Warn("Failed to notify rider of cancellation",
			logger.String("match_id", m.ID),
			logger.Err(err))
	}

	if m.DriverID != "" {
		offer := events.Encode(constants.RecordMatchRequest, m.ID, string(models.MatchStatusCancelled))
		if err := uc.matchGW.NotifyDriver(ctx, m.DriverID, offer); err != nil {
			logger.Warn("Failed to notify driver of cancellation",
				logger.String("match_id", m.ID),
				logger.String("driver_id", m.DriverID),
				logger.Err(err))
		}
	}

	if err := uc.matchGW.ClearRiderRequest(ctx, m.RiderID, m.ID, models.MatchStatusCancelled); err != nil {
		logger.Warn("Failed to clear rider request",
			logger.String("match_id", m.ID),
			logger.String("rider_id", m.RiderID),
			logger.Err(err))
	}
}

func resultFromMatch(m *models.Match) *models.MatchResult {
	res := &models.MatchResult{MatchID: m.ID}
	if m.Status == models.MatchStatusMatched || m.Status == models.MatchStatusConfirmed {
		res.DriverID = m.DriverID
		res.Fare = m.Fare
		res.Found = true
	}
	return res
}
