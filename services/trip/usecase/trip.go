package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/lastmile/backend/internal/pkg/logger"
	"github.com/lastmile/backend/internal/pkg/models"
	"github.com/lastmile/backend/services/trip"
)

// CreateTrip reserves the driver's seat first, then persists the trip. The
// reservation is the step that settles capacity races: a trip row only ever
// exists for a seat that was actually taken.
func (uc *TripUC) CreateTrip(ctx context.Context, req models.CreateTripRequest) (*models.Trip, error) {
	if req.TripID == "" || req.DriverID == "" || req.RiderID == "" {
		return nil, fmt.Errorf("trip_id, driver_id and rider_id are required")
	}

	existing, err := uc.tripRepo.GetTrip(ctx, req.TripID)
	if err == nil {
		// Replay of a confirmed match; the seat is already held
		return existing, nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	ok, err := uc.tripGW.ReserveSeat(ctx, req.DriverID, models.AcceptTripRequest{
		TripID:        req.TripID,
		RiderID:       req.RiderID,
		PickupStation: req.PickupStation,
		Destination:   req.Destination,
		Fare:          req.Fare,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reserve seat: %w", err)
	}
	if !ok {
		return nil, trip.ErrSeatUnavailable
	}

	t := &models.Trip{
		TripID:        req.TripID,
		DriverID:      req.DriverID,
		RiderID:       req.RiderID,
		PickupStation: req.PickupStation,
		Destination:   req.Destination,
		Status:        models.TripStatusScheduled,
		Fare:          req.Fare,
	}
	created, err := uc.tripRepo.CreateTrip(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("failed to persist trip: %w", err)
	}
	if !created {
		// A concurrent replay won the insert; its seat reservation was the
		// same one we just made, idempotent on trip id.
		return uc.tripRepo.GetTrip(ctx, req.TripID)
	}

	uc.publishUpdate(ctx, t.TripID, string(t.Status))

	if err := uc.tripGW.UpdateRiderRequest(ctx, t.RiderID, t.TripID, models.RideRequestMatched, t.Fare); err != nil {
		logger.Warn("Failed to mirror trip creation to rider",
			logger.String("trip_id", t.TripID),
			logger.Err(err))
	}

	logger.Info("Trip created",
		logger.String("trip_id", t.TripID),
		logger.String("driver_id", t.DriverID),
		logger.String("rider_id", t.RiderID),
		logger.Int("fare", t.Fare))

	return t, nil
}

// RecordPickup marks the trip active. The driver ledger and the rider
// mirror follow best-effort; the trip row is authoritative.
func (uc *TripUC) RecordPickup(ctx context.Context, tripID string) (*models.Trip, error) {
	ok, err := uc.tripRepo.MarkPickup(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to record pickup: %w", err)
	}
	if !ok {
		t, err := uc.tripRepo.GetTrip(ctx, tripID)
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: trip is %s", trip.ErrInvalidState, t.Status)
	}

	t, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	if err := uc.tripGW.StartDriverTrip(ctx, t.DriverID, tripID); err != nil {
		logger.Warn("Failed to start driver trip record",
			logger.String("trip_id", tripID),
			logger.String("driver_id", t.DriverID),
			logger.Err(err))
	}

	uc.publishUpdate(ctx, tripID, string(models.TripStatusActive))

	if err := uc.tripGW.UpdateRiderRequest(ctx, t.RiderID, tripID, models.RideRequestInProgress, t.Fare); err != nil {
		logger.Warn("Failed to mirror pickup to rider",
			logger.String("trip_id", tripID),
			logger.Err(err))
	}

	logger.Info("Pickup recorded",
		logger.String("trip_id", tripID),
		logger.String("driver_id", t.DriverID))

	return t, nil
}

// RecordDropoff completes the trip, then releases the driver's seat and
// credits the fare. The seat release runs after the trip commit; if it
// fails the trip is still completed and the release is retried by the
// operator, never the rider.
func (uc *TripUC) RecordDropoff(ctx context.Context, tripID string, fareOverride int) (*models.Trip, error) {
	t, err := uc.tripRepo.MarkDropoff(ctx, tripID, fareOverride)
	if err != nil {
		return nil, err
	}

	if err := uc.tripGW.CompleteDriverTrip(ctx, t.DriverID, tripID); err != nil {
		logger.Error("Failed to release driver seat after dropoff",
			logger.String("trip_id", tripID),
			logger.String("driver_id", t.DriverID),
			logger.Err(err))
	}

	uc.publishUpdate(ctx, tripID, string(models.TripStatusCompleted))

	if err := uc.tripGW.UpdateRiderRequest(ctx, t.RiderID, tripID, models.RideRequestCompleted, t.Fare); err != nil {
		logger.Warn("Failed to mirror dropoff to rider",
			logger.String("trip_id", tripID),
			logger.Err(err))
	}

	logger.Info("Dropoff recorded",
		logger.String("trip_id", tripID),
		logger.Int("fare", t.Fare))

	return t, nil
}

// GetTrip returns the stored trip
func (uc *TripUC) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	return uc.tripRepo.GetTrip(ctx, tripID)
}

// ListTripsByRider returns the rider's trips, most recent first
func (uc *TripUC) ListTripsByRider(ctx context.Context, riderID string) ([]*models.Trip, error) {
	return uc.tripRepo.ListTripsByRider(ctx, riderID)
}

func (uc *TripUC) publishUpdate(ctx context.Context, tripID, status string) {
	if err := uc.tripGW.PublishTripUpdate(ctx, tripID, status); err != nil {
		logger.Warn("Failed to publish trip update",
			logger.String("trip_id", tripID),
			logger.String("status", status),
			logger.Err(err))
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, trip.ErrTripNotFound)
}
