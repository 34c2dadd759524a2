package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lastmile/backend/internal/pkg/models"
	"github.com/lastmile/backend/services/trip"
)

// TripRepo implements the trip ledger against PostgreSQL
type TripRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(cfg *models.Config, db *sqlx.DB) *TripRepo {
	return &TripRepo{
		cfg: cfg,
		db:  db,
	}
}

const tripColumns = `
	trip_id, driver_id, rider_id, pickup_station, destination, status, fare,
	created_at, pickup_time, dropoff_time
`

// CreateTrip inserts the trip keyed by its id. The id came from the match
// that produced it, so a duplicate insert is a replay.
func (r *TripRepo) CreateTrip(ctx context.Context, t *models.Trip) (bool, error) {
	query := `
		INSERT INTO trips (
			trip_id, driver_id, rider_id, pickup_station, destination,
			status, fare, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (trip_id) DO NOTHING
	`
	result, err := r.db.ExecContext(ctx, query,
		t.TripID, t.DriverID, t.RiderID, t.PickupStation, t.Destination,
		t.Status, t.Fare, time.Now())
	if err != nil {
		return false, fmt.Errorf("failed to create trip: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// GetTrip retrieves a trip by id
func (r *TripRepo) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE trip_id = $1`

	var dto models.TripDTO
	err := r.db.GetContext(ctx, &dto, query, tripID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, trip.ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	return dto.ToTrip(), nil
}

// MarkPickup flips SCHEDULED to ACTIVE with a pickup timestamp
func (r *TripRepo) MarkPickup(ctx context.Context, tripID string) (bool, error) {
	query := `
		UPDATE trips
		SET status = $2, pickup_time = $3
		WHERE trip_id = $1 AND status = $4
	`
	result, err := r.db.ExecContext(ctx, query,
		tripID, models.TripStatusActive, time.Now(), models.TripStatusScheduled)
	if err != nil {
		return false, fmt.Errorf("failed to mark pickup: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// MarkDropoff flips ACTIVE to COMPLETED, recording the dropoff time and
// replacing the fare when a positive override is given
func (r *TripRepo) MarkDropoff(ctx context.Context, tripID string, fareOverride int) (*models.Trip, error) {
	query := `
		UPDATE trips
		SET status = $2, dropoff_time = $3,
		    fare = CASE WHEN $4 > 0 THEN $4 ELSE fare END
		WHERE trip_id = $1 AND status = $5
		RETURNING ` + tripColumns

	var dto models.TripDTO
	err := r.db.QueryRowxContext(ctx, query,
		tripID, models.TripStatusCompleted, time.Now(), fareOverride,
		models.TripStatusActive,
	).StructScan(&dto)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, trip.ErrInvalidState
		}
		return nil, fmt.Errorf("failed to mark dropoff: %w", err)
	}

	return dto.ToTrip(), nil
}

// ListTripsByRider returns the rider's trips, most recent first
func (r *TripRepo) ListTripsByRider(ctx context.Context, riderID string) ([]*models.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE rider_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryxContext(ctx, query, riderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	var trips []*models.Trip
	for rows.Next() {
		var dto models.TripDTO
		if err := rows.StructScan(&dto); err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, dto.ToTrip())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trips: %w", err)
	}

	return trips, nil
}
