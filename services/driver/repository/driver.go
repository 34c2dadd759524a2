package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lastmile/backend/internal/pkg/models"
	"github.com/lastmile/backend/services/driver"
	"github.com/lib/pq"
)

// DriverRepo implements the driver ledger repository against PostgreSQL
type DriverRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewDriverRepository creates a new driver repository
func NewDriverRepository(cfg *models.Config, db *sqlx.DB) *DriverRepo {
	return &DriverRepo{
		cfg: cfg,
		db:  db,
	}
}

// RegisterRoute creates or replaces a driver's route offer. Location,
// earnings and rating survive re-registration; destination, seats and the
// served-station set are overwritten.
func (r *DriverRepo) RegisterRoute(ctx context.Context, driverID string, req models.RegisterRouteRequest) (*models.Driver, error) {
	routeID := uuid.New().String()
	now := time.Now()

	query := `
		INSERT INTO drivers (
			driver_id, route_id, destination, available_seats, metro_stations,
			rating, total_earnings, updated_at
		) VALUES ($1, $2, $3, $4, $5, 0, 0, $6)
		ON CONFLICT (driver_id) DO UPDATE SET
			route_id = EXCLUDED.route_id,
			destination = EXCLUDED.destination,
			available_seats = EXCLUDED.available_seats,
			metro_stations = EXCLUDED.metro_stations,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.ExecContext(ctx, query,
		driverID, routeID, req.Destination, req.AvailableSeats,
		pq.StringArray(req.MetroStations), now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to register route: %w", err)
	}

	return r.GetDriver(ctx, driverID)
}

const driverColumns = `
	driver_id, route_id, destination, available_seats, metro_stations,
	last_latitude, last_longitude, location_updated_at,
	rating, total_earnings, updated_at
`

// GetDriver retrieves a driver with its active trip records
func (r *DriverRepo) GetDriver(ctx context.Context, driverID string) (*models.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE driver_id = $1`

	var dto models.DriverDTO
	err := r.db.GetContext(ctx, &dto, query, driverID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, driver.ErrDriverNotFound
		}
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}

	d := dto.ToDriver()
	trips, err := r.ListActiveTrips(ctx, driverID)
	if err != nil {
		return nil, err
	}
	d.ActiveTrips = trips
	return d, nil
}

// ListDrivers returns drivers in listing order, optionally filtered by a
// served station. Ordering is stable so the matcher's first-hit policy is
// deterministic.
func (r *DriverRepo) ListDrivers(ctx context.Context, station string) ([]*models.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers`
	args := []interface{}{}
	if station != "" {
		query += ` WHERE $1 = ANY(metro_stations)`
		args = append(args, station)
	}
	query += ` ORDER BY driver_id`

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}
	defer rows.Close()

	var drivers []*models.Driver
	for rows.Next() {
		var dto models.DriverDTO
		if err := rows.StructScan(&dto); err != nil {
			return nil, fmt.Errorf("failed to scan driver: %w", err)
		}
		drivers = append(drivers, dto.ToDriver())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating drivers: %w", err)
	}

	return drivers, nil
}

// UpdateLocation sets the driver's current location with a server-assigned
// timestamp. A partial-field update: concurrent seat or trip mutations are
// never clobbered.
func (r *DriverRepo) UpdateLocation(ctx context.Context, driverID string, lat, lon float64) error {
	query := `
		UPDATE drivers
		SET last_latitude = $2, last_longitude = $3, location_updated_at = $4
		WHERE driver_id = $1
	`
	result, err := r.db.ExecContext(ctx, query, driverID, lat, lon, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update location: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return driver.ErrDriverNotFound
	}

	return nil
}

// ReserveSeat decrements available seats and appends the trip record in one
// transaction. The decrement is guarded by available_seats > 0 so two
// concurrent reservations cannot both take the last seat.
func (r *DriverRepo) ReserveSeat(ctx context.Context, driverID string, rec models.TripRecord) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	decrementQuery := `
		UPDATE drivers
		SET available_seats = available_seats - 1, updated_at = $2
		WHERE driver_id = $1 AND available_seats > 0
	`
	result, err := tx.ExecContext(ctx, decrementQuery, driverID, time.Now())
	if err != nil {
		return false, fmt.Errorf("failed to reserve seat: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		// No seat left, or the driver does not exist. Both read as "try
		// another driver" to the caller.
		return false, nil
	}

	insertQuery := `
		INSERT INTO driver_trips (
			trip_id, driver_id, rider_id, rider_name, rider_rating,
			pickup_station, destination, status, fare, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = tx.ExecContext(ctx, insertQuery,
		rec.TripID, driverID, rec.RiderID, rec.RiderName, rec.RiderRating,
		rec.PickupStation, rec.Destination, models.TripRecordScheduled, rec.Fare, time.Now(),
	)
	if err != nil {
		return false, fmt.Errorf("failed to append trip record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit reservation: %w", err)
	}

	return true, nil
}

// StartTrip flips a scheduled trip record to active
func (r *DriverRepo) StartTrip(ctx context.Context, driverID, tripID string) (bool, error) {
	query := `
		UPDATE driver_trips
		SET status = $3, pickup_at = $4
		WHERE trip_id = $1 AND driver_id = $2 AND status = $5
	`
	result, err := r.db.ExecContext(ctx, query,
		tripID, driverID, models.TripRecordActive, time.Now(), models.TripRecordScheduled)
	if err != nil {
		return false, fmt.Errorf("failed to start trip: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// ReleaseSeat completes the trip record and, in the same transaction, frees
// the seat and credits the fare to the driver's earnings. A record moves to
// ride history exactly once: the completion update is conditional on the
// record not being completed already.
func (r *DriverRepo) ReleaseSeat(ctx context.Context, driverID, tripID string) (*models.TripRecord, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	completeQuery := `
		UPDATE driver_trips
		SET status = $3, dropoff_at = $4
		WHERE trip_id = $1 AND driver_id = $2 AND status IN ($5, $6)
		RETURNING trip_id, driver_id, rider_id, rider_name, rider_rating,
			pickup_station, destination, status, fare,
			COALESCE(pickup_at, to_timestamp(0)) AS pickup_at,
			COALESCE(dropoff_at, to_timestamp(0)) AS dropoff_at,
			rider_rating_given, driver_rating_received
	`
	var rec models.TripRecord
	err = tx.QueryRowxContext(ctx, completeQuery,
		tripID, driverID, models.TripRecordCompleted, time.Now(),
		models.TripRecordScheduled, models.TripRecordActive,
	).StructScan(&rec)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, driver.ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to complete trip record: %w", err)
	}

	releaseQuery := `
		UPDATE drivers
		SET available_seats = available_seats + 1,
		    total_earnings = total_earnings + $2,
		    updated_at = $3
		WHERE driver_id = $1
	`
	if _, err := tx.ExecContext(ctx, releaseQuery, driverID, rec.Fare, time.Now()); err != nil {
		return nil, fmt.Errorf("failed to release seat: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit release: %w", err)
	}

	return &rec, nil
}

func (r *DriverRepo) listTrips(ctx context.Context, driverID, filter string, completed bool) ([]models.TripRecord, error) {
	query := `
		SELECT trip_id, driver_id, rider_id, rider_name, rider_rating,
			pickup_station, destination, status, fare,
			COALESCE(pickup_at, to_timestamp(0)) AS pickup_at,
			COALESCE(dropoff_at, to_timestamp(0)) AS dropoff_at,
			rider_rating_given, driver_rating_received
		FROM driver_trips
		WHERE driver_id = $1 AND `
	if completed {
		query += `status = $2 ORDER BY dropoff_at DESC`
	} else {
		query += `status != $2 ORDER BY created_at`
	}

	rows, err := r.db.QueryxContext(ctx, query, driverID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list trip records: %w", err)
	}
	defer rows.Close()

	var records []models.TripRecord
	for rows.Next() {
		var rec models.TripRecord
		if err := rows.StructScan(&rec); err != nil {
			return nil, fmt.Errorf("failed to scan trip record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trip records: %w", err)
	}

	return records, nil
}

// ListActiveTrips returns scheduled and active trip records in creation order
func (r *DriverRepo) ListActiveTrips(ctx context.Context, driverID string) ([]models.TripRecord, error) {
	return r.listTrips(ctx, driverID, models.TripRecordCompleted, false)
}

// ListRideHistory returns completed trip records, most recent first
func (r *DriverRepo) ListRideHistory(ctx context.Context, driverID string) ([]models.TripRecord, error) {
	return r.listTrips(ctx, driverID, models.TripRecordCompleted, true)
}
