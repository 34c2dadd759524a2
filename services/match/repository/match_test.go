package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/lastmile/backend/internal/pkg/models"
	"github.com/lastmile/backend/services/match"
)

func newMockRepo(t *testing.T) (*MatchRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")
	return NewMatchRepository(&models.Config{}, sqlxDB), mock
}

func TestCreateMatch(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, created bool, err error)
	}{
		{
			name: "Inserted",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO matches").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertFunc: func(t *testing.T, created bool, err error) {
				assert.NoError(t, err)
				assert.True(t, created)
			},
		},
		{
			name: "Replayed request id",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO matches").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			assertFunc: func(t *testing.T, created bool, err error) {
				assert.NoError(t, err)
				assert.False(t, created)
			},
		},
		{
			name: "Database error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO matches").
					WillReturnError(errors.New("database error"))
			},
			assertFunc: func(t *testing.T, created bool, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to create match")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			tc.mockSetup(mock)

			created, err := repo.CreateMatch(context.Background(), &models.Match{
				ID:            "req-1",
				RiderID:       "rider-1",
				PickupStation: "Central",
				Destination:   "Uptown",
				Status:        models.MatchStatusPending,
			})

			tc.assertFunc(t, created, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetMatch_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("SELECT (.+) FROM matches WHERE id").
		WithArgs("req-9").
		WillReturnError(sql.ErrNoRows)

	m, err := repo.GetMatch(context.Background(), "req-9")
	assert.Nil(t, m)
	assert.ErrorIs(t, err, match.ErrMatchNotFound)
}

func TestAssignDriver(t *testing.T) {
	t.Run("Fresh assignment from pending", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectExec("UPDATE matches").
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.AssignDriver(context.Background(), "req-1", "driver-1", 75, models.MatchStatusPending, "")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Guard fails on moved status", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectExec("UPDATE matches").
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.AssignDriver(context.Background(), "req-1", "driver-1", 75, models.MatchStatusPending, "")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Reassignment pins previous driver", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectExec("UPDATE matches").
			WithArgs("req-1", "driver-2", 50, models.MatchStatusMatched, sqlmock.AnyArg(),
				models.MatchStatusMatched, "driver-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.AssignDriver(context.Background(), "req-1", "driver-2", 50, models.MatchStatusMatched, "driver-1")
		assert.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestConfirmMatch_GuardedOnAssignedDriver(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec("UPDATE matches").
		WithArgs("req-1", "driver-1", models.MatchStatusConfirmed, sqlmock.AnyArg(), models.MatchStatusMatched).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.ConfirmMatch(context.Background(), "req-1", "driver-1")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestCancelMatch_OnlyPendingOrMatched(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec("UPDATE matches").
		WithArgs("req-1", models.MatchStatusCancelled, sqlmock.AnyArg(),
			models.MatchStatusPending, models.MatchStatusMatched).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.CancelMatch(context.Background(), "req-1")
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestSweepStaleMatched_RequeuesAndReturnsRevokedDriver(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "rider_id", "driver_id", "pickup_station", "destination",
		"fare", "status", "created_at", "updated_at",
	}).AddRow("req-1", "rider-1", "driver-1", "Central", "Uptown",
		75, models.MatchStatusPending, now, now)

	mock.ExpectQuery("UPDATE matches").
		WillReturnRows(rows)

	swept, err := repo.SweepStaleMatched(context.Background(), now.Add(-45*time.Second))
	assert.NoError(t, err)
	assert.Len(t, swept, 1)
	assert.Equal(t, "req-1", swept[0].ID)
	assert.Equal(t, "driver-1", swept[0].DriverID)
	assert.Equal(t, models.MatchStatusPending, swept[0].Status)
}

func TestListPendingMatches_OldestFirst(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "rider_id", "driver_id", "pickup_station", "destination",
		"fare", "status", "created_at", "updated_at",
	}).
		AddRow("req-1", "rider-1", nil, "Central", "Uptown", 0, models.MatchStatusPending, now.Add(-time.Minute), now).
		AddRow("req-2", "rider-2", nil, "Central", "Uptown", 0, models.MatchStatusPending, now, now)

	mock.ExpectQuery("SELECT (.+) FROM matches WHERE status").
		WithArgs(models.MatchStatusPending).
		WillReturnRows(rows)

	pending, err := repo.ListPendingMatches(context.Background())
	assert.NoError(t, err)
	assert.Len(t, pending, 2)
	assert.Equal(t, "req-1", pending[0].ID)
	assert.Empty(t, pending[0].DriverID)
}
