package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lastmile/backend/internal/pkg/models"
	"github.com/lastmile/backend/services/rider"
)

// RiderRepo implements ride request storage against PostgreSQL
type RiderRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRiderRepository creates a new rider repository
func NewRiderRepository(cfg *models.Config, db *sqlx.DB) *RiderRepo {
	return &RiderRepo{
		cfg: cfg,
		db:  db,
	}
}

const requestColumns = `
	request_id, rider_id, metro_station, destination, status, driver_id,
	trip_id, fare, request_time, arrival_time, dropoff_time,
	driver_rating_given
`

// CreateRequest inserts the request unless the rider already has a live
// one. The guard runs in the same statement as the insert so two concurrent
// requests cannot both slip past it.
func (r *RiderRepo) CreateRequest(ctx context.Context, req *models.RideRequest) (bool, error) {
	query := `
		INSERT INTO ride_requests (
			request_id, rider_id, metro_station, destination, status,
			fare, request_time
		)
		SELECT $1, $2, $3, $4, $5, 0, $6
		WHERE NOT EXISTS (
			SELECT 1 FROM ride_requests
			WHERE rider_id = $2 AND status NOT IN ($7, $8)
		)
		ON CONFLICT (request_id) DO NOTHING
	`
	result, err := r.db.ExecContext(ctx, query,
		req.RequestID, req.RiderID, req.MetroStation, req.Destination,
		models.RideRequestPending, time.Now(),
		models.RideRequestCompleted, models.RideRequestCancelled)
	if err != nil {
		return false, fmt.Errorf("failed to create ride request: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected > 0 {
		return true, nil
	}

	// Nothing inserted: either this request id already exists (replay) or a
	// different request is still live.
	if _, err := r.GetRequest(ctx, req.RiderID, req.RequestID); err == nil {
		return false, nil
	}
	return false, rider.ErrActiveRequestExists
}

// GetRequest retrieves one of the rider's requests
func (r *RiderRepo) GetRequest(ctx context.Context, riderID, requestID string) (*models.RideRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM ride_requests WHERE request_id = $1 AND rider_id = $2`

	var dto models.RideRequestDTO
	err := r.db.GetContext(ctx, &dto, query, requestID, riderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, rider.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get ride request: %w", err)
	}

	return dto.ToRideRequest(), nil
}

// GetActiveRequest returns the rider's non-terminal request
func (r *RiderRepo) GetActiveRequest(ctx context.Context, riderID string) (*models.RideRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM ride_requests
		WHERE rider_id = $1 AND status NOT IN ($2, $3)
		ORDER BY request_time DESC
		LIMIT 1
	`
	var dto models.RideRequestDTO
	err := r.db.GetContext(ctx, &dto, query, riderID,
		models.RideRequestCompleted, models.RideRequestCancelled)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, rider.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get active request: %w", err)
	}

	return dto.ToRideRequest(), nil
}

// ListRequests returns the rider's requests, most recent first
func (r *RiderRepo) ListRequests(ctx context.Context, riderID string) ([]*models.RideRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM ride_requests WHERE rider_id = $1 ORDER BY request_time DESC`

	rows, err := r.db.QueryxContext(ctx, query, riderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ride requests: %w", err)
	}
	defer rows.Close()

	var requests []*models.RideRequest
	for rows.Next() {
		var dto models.RideRequestDTO
		if err := rows.StructScan(&dto); err != nil {
			return nil, fmt.Errorf("failed to scan ride request: %w", err)
		}
		requests = append(requests, dto.ToRideRequest())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ride requests: %w", err)
	}

	return requests, nil
}

// ApplyTripUpdate mirrors trip progress onto the request. The trip id equals
// the request id, so the update targets the row directly and stamps arrival
// or dropoff time depending on the new status.
func (r *RiderRepo) ApplyTripUpdate(ctx context.Context, riderID, tripID string, status models.RideRequestStatus, fare int) (bool, error) {
	query := `
		UPDATE ride_requests
		SET status = $3,
		    trip_id = $4,
		    fare = CASE WHEN $5 > 0 THEN $5 ELSE fare END,
		    arrival_time = CASE WHEN $3 = $6 THEN $7 ELSE arrival_time END,
		    dropoff_time = CASE WHEN $3 = $8 THEN $7 ELSE dropoff_time END
		WHERE request_id = $1 AND rider_id = $2 AND status NOT IN ($8, $9)
	`
	result, err := r.db.ExecContext(ctx, query,
		tripID, riderID, status, tripID, fare,
		models.RideRequestInProgress, time.Now(),
		models.RideRequestCompleted, models.RideRequestCancelled)
	if err != nil {
		return false, fmt.Errorf("failed to apply trip update: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// MarkTerminal moves a non-terminal request to a terminal status
func (r *RiderRepo) MarkTerminal(ctx context.Context, riderID, requestID string, status models.RideRequestStatus) (bool, error) {
	query := `
		UPDATE ride_requests
		SET status = $3
		WHERE request_id = $1 AND rider_id = $2 AND status NOT IN ($4, $5)
	`
	result, err := r.db.ExecContext(ctx, query,
		requestID, riderID, status,
		models.RideRequestCompleted, models.RideRequestCancelled)
	if err != nil {
		return false, fmt.Errorf("failed to mark request terminal: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// RateDriver records the rider's rating on a completed request
func (r *RiderRepo) RateDriver(ctx context.Context, riderID, requestID string, rating int) (bool, error) {
	query := `
		UPDATE ride_requests
		SET driver_rating_given = $3
		WHERE request_id = $1 AND rider_id = $2 AND status = $4
	`
	result, err := r.db.ExecContext(ctx, query,
		requestID, riderID, rating, models.RideRequestCompleted)
	if err != nil {
		return false, fmt.Errorf("failed to rate driver: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}
