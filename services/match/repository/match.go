package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lastmile/backend/internal/pkg/models"
	"github.com/lastmile/backend/services/match"
)

// MatchRepo implements the match store against PostgreSQL. Status
// transitions are conditional updates keyed on the expected current status.
type MatchRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(cfg *models.Config, db *sqlx.DB) *MatchRepo {
	return &MatchRepo{
		cfg: cfg,
		db:  db,
	}
}

const matchColumns = `
	id, rider_id, driver_id, pickup_station, destination, fare, status,
	created_at, updated_at
`

// CreateMatch inserts the match keyed by its id. The id is the caller's
// idempotency key, so a duplicate insert is a replay, not an error.
func (r *MatchRepo) CreateMatch(ctx context.Context, m *models.Match) (bool, error) {
	query := `
		INSERT INTO matches (
			id, rider_id, pickup_station, destination, fare, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		ON CONFLICT (id) DO NOTHING
	`
	result, err := r.db.ExecContext(ctx, query,
		m.ID, m.RiderID, m.PickupStation, m.Destination, m.Fare, m.Status, time.Now())
	if err != nil {
		return false, fmt.Errorf("failed to create match: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// GetMatch retrieves a match by id
func (r *MatchRepo) GetMatch(ctx context.Context, matchID string) (*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`

	var dto models.MatchDTO
	err := r.db.GetContext(ctx, &dto, query, matchID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, match.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	return dto.ToMatch(), nil
}

// CountMatchedByDriver counts tentative assignments currently held against
// the driver. These shadow seats the driver has not yet confirmed.
func (r *MatchRepo) CountMatchedByDriver(ctx context.Context, driverID string) (int, error) {
	query := `SELECT COUNT(*) FROM matches WHERE driver_id = $1 AND status = $2`

	var count int
	err := r.db.GetContext(ctx, &count, query, driverID, models.MatchStatusMatched)
	if err != nil {
		return 0, fmt.Errorf("failed to count matched: %w", err)
	}

	return count, nil
}

// ListPendingMatches returns PENDING matches oldest first so the reprocessor
// serves the queue in arrival order
func (r *MatchRepo) ListPendingMatches(ctx context.Context) ([]*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE status = $1 ORDER BY created_at`

	rows, err := r.db.QueryxContext(ctx, query, models.MatchStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending matches: %w", err)
	}
	defer rows.Close()

	var matches []*models.Match
	for rows.Next() {
		var dto models.MatchDTO
		if err := rows.StructScan(&dto); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, dto.ToMatch())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating matches: %w", err)
	}

	return matches, nil
}

// AssignDriver moves the match to MATCHED with the given driver and fare.
// The update is guarded by the expected current status; on reassignment the
// old driver must still be the one assigned.
func (r *MatchRepo) AssignDriver(ctx context.Context, matchID, driverID string, fare int, expectStatus models.MatchStatus, expectDriverID string) (bool, error) {
	query := `
		UPDATE matches
		SET driver_id = $2, fare = $3, status = $4, updated_at = $5
		WHERE id = $1 AND status = $6
	`
	args := []interface{}{matchID, driverID, fare, models.MatchStatusMatched, time.Now(), expectStatus}
	if expectDriverID != "" {
		query += ` AND driver_id = $7`
		args = append(args, expectDriverID)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to assign driver: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// ConfirmMatch moves MATCHED to CONFIRMED for the assigned driver only
func (r *MatchRepo) ConfirmMatch(ctx context.Context, matchID, driverID string) (bool, error) {
	query := `
		UPDATE matches
		SET status = $3, updated_at = $4
		WHERE id = $1 AND driver_id = $2 AND status = $5
	`
	result, err := r.db.ExecContext(ctx, query,
		matchID, driverID, models.MatchStatusConfirmed, time.Now(), models.MatchStatusMatched)
	if err != nil {
		return false, fmt.Errorf("failed to confirm match: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// RevertToPending clears the driver and requeues the match. Guarded on the
// declining driver still holding the assignment.
func (r *MatchRepo) RevertToPending(ctx context.Context, matchID, expectDriverID string) (bool, error) {
	query := `
		UPDATE matches
		SET driver_id = NULL, status = $3, updated_at = $4
		WHERE id = $1 AND driver_id = $2 AND status = $5
	`
	result, err := r.db.ExecContext(ctx, query,
		matchID, expectDriverID, models.MatchStatusPending, time.Now(), models.MatchStatusMatched)
	if err != nil {
		return false, fmt.Errorf("failed to revert match: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// CancelMatch moves PENDING or MATCHED to CANCELLED
func (r *MatchRepo) CancelMatch(ctx context.Context, matchID string) (bool, error) {
	query := `
		UPDATE matches
		SET status = $2, updated_at = $3
		WHERE id = $1 AND status IN ($4, $5)
	`
	result, err := r.db.ExecContext(ctx, query,
		matchID, models.MatchStatusCancelled, time.Now(),
		models.MatchStatusPending, models.MatchStatusMatched)
	if err != nil {
		return false, fmt.Errorf("failed to cancel match: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// SweepStaleMatched requeues MATCHED rows older than cutoff in one
// statement, clearing the driver. Returned rows carry the driver the
// assignment was revoked from.
func (r *MatchRepo) SweepStaleMatched(ctx context.Context, cutoff time.Time) ([]*models.Match, error) {
	query := `
		UPDATE matches m
		SET driver_id = NULL, status = $1, updated_at = $2
		FROM (
			SELECT id, driver_id FROM matches
			WHERE status = $3 AND updated_at < $4
			FOR UPDATE
		) stale
		WHERE m.id = stale.id
		RETURNING m.id, m.rider_id, stale.driver_id, m.pickup_station,
			m.destination, m.fare, m.status, m.created_at, m.updated_at
	`

	rows, err := r.db.QueryxContext(ctx, query,
		models.MatchStatusPending, time.Now(), models.MatchStatusMatched, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to sweep stale matches: %w", err)
	}
	defer rows.Close()

	var swept []*models.Match
	for rows.Next() {
		var dto models.MatchDTO
		if err := rows.StructScan(&dto); err != nil {
			return nil, fmt.Errorf("failed to scan swept match: %w", err)
		}
		swept = append(swept, dto.ToMatch())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating swept matches: %w", err)
	}

	return swept, nil
}
