package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lastmile/backend/internal/pkg/logger"
	"github.com/lastmile/backend/internal/pkg/models"
	"github.com/lastmile/backend/services/rider"
)

// RequestRide creates the rider's request and submits it to the matcher.
// The request id doubles as the match id downstream; when the caller omits
// one a fresh id is assigned.
func (uc *RiderUC) RequestRide(ctx context.Context, riderID string, input models.RideRequestInput) (*models.RideRequest, *models.MatchResult, error) {
	if input.MetroStation == "" || input.Destination == "" {
		return nil, nil, fmt.Errorf("metro_station and destination are required")
	}
	if input.RequestID == "" {
		input.RequestID = uuid.New().String()
	}

	req := &models.RideRequest{
		RequestID:    input.RequestID,
		RiderID:      riderID,
		MetroStation: input.MetroStation,
		Destination:  input.Destination,
		Status:       models.RideRequestPending,
	}

	created, err := uc.riderRepo.CreateRequest(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	if !created {
		// Replayed request id: return the stored state without a second
		// match submission
		stored, err := uc.riderRepo.GetRequest(ctx, riderID, input.RequestID)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Replayed ride request",
			logger.String("request_id", input.RequestID),
			logger.String("status", string(stored.Status)))
		return stored, nil, nil
	}

	result, err := uc.riderGW.RequestMatch(ctx, models.MatchRequest{
		RiderID:       riderID,
		PickupStation: input.MetroStation,
		Destination:   input.Destination,
		RequestID:     input.RequestID,
	})
	if err != nil {
		// The request stays PENDING; the matcher can still pick it up when
		// the rider retries or the operator resubmits.
		logger.Error("Match submission failed",
			logger.String("request_id", input.RequestID),
			logger.Err(err))
		return req, nil, nil
	}

	if result.Found {
		if _, err := uc.riderRepo.ApplyTripUpdate(ctx, riderID, input.RequestID, models.RideRequestMatched, result.Fare); err != nil {
			logger.Warn("Failed to mirror match onto request",
				logger.String("request_id", input.RequestID),
				logger.Err(err))
		} else {
			req.Status = models.RideRequestMatched
			req.Fare = result.Fare
			req.DriverID = result.DriverID
		}
	}

	logger.Info("Ride requested",
		logger.String("rider_id", riderID),
		logger.String("request_id", input.RequestID),
		logger.Bool("matched", result.Found))

	return req, result, nil
}

// CancelRide cancels the active request. The match is cancelled first; the
// local mirror only flips after the matcher accepted the cancellation.
func (uc *RiderUC) CancelRide(ctx context.Context, riderID, requestID string) error {
	req, err := uc.riderRepo.GetRequest(ctx, riderID, requestID)
	if err != nil {
		return err
	}
	if req.Status == models.RideRequestCancelled {
		return nil
	}
	if req.Status.IsTerminal() || req.Status == models.RideRequestInProgress {
		return rider.ErrInvalidState
	}

	if err := uc.riderGW.CancelMatch(ctx, riderID, requestID); err != nil {
		return fmt.Errorf("failed to cancel match: %w", err)
	}

	if _, err := uc.riderRepo.MarkTerminal(ctx, riderID, requestID, models.RideRequestCancelled); err != nil {
		return err
	}

	logger.Info("Ride request cancelled",
		logger.String("rider_id", riderID),
		logger.String("request_id", requestID))
	return nil
}

// GetActiveRequest returns the rider's non-terminal request
func (uc *RiderUC) GetActiveRequest(ctx context.Context, riderID string) (*models.RideRequest, error) {
	return uc.riderRepo.GetActiveRequest(ctx, riderID)
}

// ListRequests returns the rider's ride history, most recent first
func (uc *RiderUC) ListRequests(ctx context.Context, riderID string) ([]*models.RideRequest, error) {
	return uc.riderRepo.ListRequests(ctx, riderID)
}

// RateDriver records a 1 to 5 rating on a completed ride
func (uc *RiderUC) RateDriver(ctx context.Context, riderID, requestID string, rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}

	ok, err := uc.riderRepo.RateDriver(ctx, riderID, requestID, rating)
	if err != nil {
		return err
	}
	if !ok {
		return rider.ErrInvalidState
	}
	return nil
}

// ApplyTripUpdate is the trip service's callback mirroring trip progress
func (uc *RiderUC) ApplyTripUpdate(ctx context.Context, riderID, tripID string, status models.RideRequestStatus, fare int) error {
	ok, err := uc.riderRepo.ApplyTripUpdate(ctx, riderID, tripID, status, fare)
	if err != nil {
		return err
	}
	if !ok {
		return rider.ErrRequestNotFound
	}

	logger.Info("Trip update mirrored",
		logger.String("rider_id", riderID),
		logger.String("trip_id", tripID),
		logger.String("status", string(status)))
	return nil
}

// ApplyMatchStatus is the match service's callback for terminal match
// outcomes that never produced a trip
func (uc *RiderUC) ApplyMatchStatus(ctx context.Context, riderID, requestID string, status models.MatchStatus) error {
	if status != models.MatchStatusCancelled {
		return nil
	}

	ok, err := uc.riderRepo.MarkTerminal(ctx, riderID, requestID, models.RideRequestCancelled)
	if err != nil {
		return err
	}
	if !ok {
		// Already terminal; the callback is a replay
		return nil
	}

	logger.Info("Match cancellation mirrored",
		logger.String("rider_id", riderID),
		logger.String("request_id", requestID))
	return nil
}
