package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/lastmile/backend/internal/pkg/constants"
	"github.com/lastmile/backend/internal/pkg/events"
	"github.com/lastmile/backend/internal/pkg/logger"
	"github.com/lastmile/backend/internal/pkg/models"
	"github.com/lastmile/backend/services/driver"
)

// RegisterRoute replaces the driver's route offer and announces the fresh
// capacity on the driver-events subject so queued requests get re-scanned.
func (uc *DriverUC) RegisterRoute(ctx context.Context, driverID string, req models.RegisterRouteRequest) (string, error) {
	if req.AvailableSeats < 0 {
		return "", fmt.Errorf("available seats must not be negative")
	}

	d, err := uc.driverRepo.RegisterRoute(ctx, driverID, req)
	if err != nil {
		return "", fmt.Errorf("failed to register route: %w", err)
	}

	uc.publishAvailability(ctx, d)

	logger.Info("Registered driver route",
		logger.String("driver_id", driverID),
		logger.String("destination", req.Destination),
		logger.Int("seats", req.AvailableSeats))

	return d.RouteID, nil
}

// UpdateLocation records the driver's position with a server timestamp
func (uc *DriverUC) UpdateLocation(ctx context.Context, driverID string, lat, lon float64) error {
	return uc.driverRepo.UpdateLocation(ctx, driverID, lat, lon)
}

// GetDriver returns the driver's full ledger state
func (uc *DriverUC) GetDriver(ctx context.Context, driverID string) (*models.Driver, error) {
	return uc.driverRepo.GetDriver(ctx, driverID)
}

// ListDrivers returns read-only projections, optionally filtered by station
func (uc *DriverUC) ListDrivers(ctx context.Context, station string) ([]models.DriverInfo, error) {
	drivers, err := uc.driverRepo.ListDrivers(ctx, station)
	if err != nil {
		return nil, err
	}

	infos := make([]models.DriverInfo, 0, len(drivers))
	for _, d := range drivers {
		infos = append(infos, models.DriverInfo{
			DriverID:       d.DriverID,
			Destination:    d.Destination,
			AvailableSeats: d.AvailableSeats,
			MetroStations:  d.MetroStations,
			Location:       d.Location,
			Rating:         d.Rating,
		})
	}
	return infos, nil
}

// AcceptTrip reserves one seat for the trip. The reservation is the atomic
// step that settles races between concurrent confirmations.
func (uc *DriverUC) AcceptTrip(ctx context.Context, driverID string, req models.AcceptTripRequest) error {
	rec := models.TripRecord{
		TripID:        req.TripID,
		DriverID:      driverID,
		RiderID:       req.RiderID,
		RiderName:     req.RiderName,
		RiderRating:   req.RiderRating,
		PickupStation: req.PickupStation,
		Destination:   req.Destination,
		Fare:          req.Fare,
	}

	ok, err := uc.driverRepo.ReserveSeat(ctx, driverID, rec)
	if err != nil {
		return fmt.Errorf("failed to reserve seat: %w", err)
	}
	if !ok {
		return driver.ErrNoSeatAvailable
	}

	logger.Info("Seat reserved",
		logger.String("driver_id", driverID),
		logger.String("trip_id", req.TripID))

	return nil
}

// StartTrip marks the trip record active at pickup time
func (uc *DriverUC) StartTrip(ctx context.Context, driverID, tripID string) error {
	ok, err := uc.driverRepo.StartTrip(ctx, driverID, tripID)
	if err != nil {
		return fmt.Errorf("failed to start trip: %w", err)
	}
	if !ok {
		return driver.ErrTripNotFound
	}
	return nil
}

// CompleteActiveTrip releases the seat, credits the fare and announces the
// freed capacity. Dashboard and availability publishes are best-effort; the
// ledger update has already committed.
func (uc *DriverUC) CompleteActiveTrip(ctx context.Context, driverID, tripID string) (*models.TripRecord, error) {
	rec, err := uc.driverRepo.ReleaseSeat(ctx, driverID, tripID)
	if err != nil {
		return nil, err
	}

	d, err := uc.driverRepo.GetDriver(ctx, driverID)
	if err != nil {
		logger.Warn("Failed to load driver after release",
			logger.String("driver_id", driverID),
			logger.Err(err))
		return rec, nil
	}

	uc.publishAvailability(ctx, d)

	earningsRecord := events.Encode(constants.RecordEarnings, strconv.Itoa(d.TotalEarnings))
	if err := uc.driverGW.PublishDashboard(ctx, driverID, earningsRecord); err != nil {
		logger.Warn("Failed to publish earnings record",
			logger.String("driver_id", driverID),
			logger.Err(err))
	}

	logger.Info("Trip completed, seat released",
		logger.String("driver_id", driverID),
		logger.String("trip_id", tripID),
		logger.Int("fare", rec.Fare))

	return rec, nil
}

// GetRideHistory returns the driver's completed trips, most recent first
func (uc *DriverUC) GetRideHistory(ctx context.Context, driverID string) ([]models.TripRecord, error) {
	return uc.driverRepo.ListRideHistory(ctx, driverID)
}

func (uc *DriverUC) publishAvailability(ctx context.Context, d *models.Driver) {
	ev := events.DriverAvailability{
		DriverID:       d.DriverID,
		AvailableSeats: d.AvailableSeats,
		Destination:    d.Destination,
	}
	if err := uc.driverGW.PublishAvailability(ctx, ev); err != nil {
		logger.Warn("Failed to publish driver availability",
			logger.String("driver_id", d.DriverID),
			logger.Err(err))
	}
}
