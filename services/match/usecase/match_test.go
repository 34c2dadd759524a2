package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/lastmile/backend/internal/pkg/models"
	"github.com/lastmile/backend/services/match"
	"github.com/lastmile/backend/services/match/mocks"
)

func newTestConfig() *models.Config {
	return &models.Config{
		Match: models.MatchConfig{
			LooseDestination:  true,
			SweepIntervalSec:  30,
			AcceptDeadlineSec: 45,
		},
		Fare: models.FareConfig{
			RatePerDegree: 500,
			MinimumFare:   20,
			DefaultFare:   50,
		},
	}
}

func TestRequestMatch_MissingRequestID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewMatchUC(newTestConfig(), mocks.NewMockMatchRepo(ctrl), mocks.NewMockMatchGW(ctrl))

	_, err := uc.RequestMatch(context.Background(), models.MatchRequest{
		RiderID:       "rider-1",
		PickupStation: "Central",
		Destination:   "Uptown",
	})
	assert.ErrorIs(t, err, match.ErrMissingRequestID)
}

func TestRequestMatch_AssignsFirstEligibleDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	mockGW := mocks.NewMockMatchGW(ctrl)
	uc := NewMatchUC(newTestConfig(), mockRepo, mockGW)

	mockRepo.EXPECT().CreateMatch(gomock.Any(), gomock.Any()).Return(true, nil)
	mockGW.EXPECT().ListDrivers(gomock.Any(), "Central").Return([]models.DriverInfo{
		{DriverID: "driver-1", Destination: "Eastside", AvailableSeats: 3},
		{
			DriverID:       "driver-2",
			Destination:    "Uptown Mall",
			AvailableSeats: 2,
			Location:       &models.Location{Latitude: 1.0, Longitude: 1.0},
		},
	}, nil)
	mockRepo.EXPECT().CountMatchedByDriver(gomock.Any(), "driver-2").Return(0, nil)
	mockGW.EXPECT().GetStationCoords(gomock.Any(), "Central").
		Return(&models.Station{StationID: "central", Latitude: 1.1, Longitude: 1.05}, nil)
	mockRepo.EXPECT().AssignDriver(gomock.Any(), "req-1", "driver-2", 75, models.MatchStatusPending, "").
		Return(true, nil)
	mockGW.EXPECT().NotifyDriver(gomock.Any(), "driver-2", gomock.Any()).Return(nil)
	mockGW.EXPECT().NotifyRider(gomock.Any(), "rider-1", gomock.Any()).Return(nil)

	result, err := uc.RequestMatch(context.Background(), models.MatchRequest{
		RiderID:       "rider-1",
		PickupStation: "Central",
		Destination:   "uptown",
		RequestID:     "req-1",
	})

	assert.NoError(t, err)
	assert.True(t, result.Found)
	assert.Equal(t, "driver-2", result.DriverID)
	assert.Equal(t, 75, result.Fare)
}

func TestRequestMatch_QueuedWhenNoDriverEligible(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	mockGW := mocks.NewMockMatchGW(ctrl)
	uc := NewMatchUC(newTestConfig(), mockRepo, mockGW)

	mockRepo.EXPECT().CreateMatch(gomock.Any(), gomock.Any()).Return(true, nil)
	mockGW.EXPECT().ListDrivers(gomock.Any(), "Central").Return([]models.DriverInfo{
		{DriverID: "driver-1", Destination: "Eastside", AvailableSeats: 3},
	}, nil)

	result, err := uc.RequestMatch(context.Background(), models.MatchRequest{
		RiderID:       "rider-1",
		PickupStation: "Central",
		Destination:   "Uptown",
		RequestID:     "req-1",
	})

	assert.NoError(t, err)
	assert.False(t, result.Found)
	assert.Equal(t, "req-1", result.MatchID)
}

func TestRequestMatch_SkipsDriverWithTentativeAssignments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	mockGW := mocks.NewMockMatchGW(ctrl)
	uc := NewMatchUC(newTestConfig(), mockRepo, mockGW)

	// Two stored seats, but both already held by MATCHED assignments
	mockRepo.EXPECT().CreateMatch(gomock.Any(), gomock.Any()).Return(true, nil)
	mockGW.EXPECT().ListDrivers(gomock.Any(), "Central").Return([]models.DriverInfo{
		{DriverID: "driver-1", Destination: "Uptown", AvailableSeats: 2},
	}, nil)
	mockRepo.EXPECT().CountMatchedByDriver(gomock.Any(), "driver-1").Return(2, nil)

	result, err := uc.RequestMatch(context.Background(), models.MatchRequest{
		RiderID:       "rider-1",
		PickupStation: "Central",
		Destination:   "Uptown",
		RequestID:     "req-1",
	})

	assert.NoError(t, err)
	assert.False(t, result.Found)
}

func TestRequestMatch_ReplayReturnsStoredOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	mockGW := mocks.NewMockMatchGW(ctrl)
	uc := NewMatchUC(newTestConfig(), mockRepo, mockGW)

	mockRepo.EXPECT().CreateMatch(gomock.Any(), gomock.Any()).Return(false, nil)
	mockRepo.EXPECT().GetMatch(gomock.Any(), "req-1").Return(&models.Match{
		ID:       "req-1",
		RiderID:  "rider-1",
		DriverID: "driver-2",
		Fare:     75,
		Status:   models.MatchStatusMatched,
	}, nil)

	result, err := uc.RequestMatch(context.Background(), models.MatchRequest{
		RiderID:       "rider-1",
		PickupStation: "Central",
		Destination:   "Uptown",
		RequestID:     "req-1",
	})

	assert.NoError(t, err)
	assert.True(t, result.Found)
	assert.Equal(t, "driver-2", result.DriverID)
	assert.Equal(t, 75, result.Fare)
}

func TestRequestMatch_DefaultFareWithoutDriverLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	mockGW := mocks.NewMockMatchGW(ctrl)
	uc := NewMatchUC(newTestConfig(), mockRepo, mockGW)

	mockRepo.EXPECT().CreateMatch(gomock.Any(), gomock.Any()).Return(true, nil)
	mockGW.EXPECT().ListDrivers(gomock.Any(), "Central").Return([]models.DriverInfo{
		{DriverID: "driver-1", Destination: "Uptown", AvailableSeats: 1},
	}, nil)
	mockRepo.EXPECT().CountMatchedByDriver(gomock.Any(), "driver-1").Return(0, nil)
	mockRepo.EXPECT().AssignDriver(gomock.Any(), "req-1", "driver-1", 50, models.MatchStatusPending, "").
		Return(true, nil)
	mockGW.EXPECT().NotifyDriver(gomock.Any(), "driver-1", gomock.Any()).Return(nil)
	mockGW.EXPECT().NotifyRider(gomock.Any(), "rider-1", gomock.Any()).Return(nil)

	result, err := uc.RequestMatch(context.Background(), models.MatchRequest{
		RiderID:       "rider-1",
		PickupStation: "Central",
		Destination:   "Uptown",
		RequestID:     "req-1",
	})

	assert.NoError(t, err)
	assert.Equal(t, 50, result.Fare)
}

func TestAcceptMatch_CreatesTripAndConfirms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	mockGW := mocks.NewMockMatchGW(ctrl)
	uc := NewMatchUC(newTestConfig(), mockRepo, mockGW)

	mockRepo.EXPECT().GetMatch(gomock.Any(), "req-1").Return(&models.Match{
		ID:            "req-1",
		RiderID:       "rider-1",
		DriverID:      "driver-1",
		PickupStation: "Central",
		Destination:   "Uptown",
		Fare:          75,
		Status:        models.MatchStatusMatched,
	}, nil)
	mockGW.EXPECT().CreateTrip(gomock.Any(), models.CreateTripRequest{
		TripID:        "req-1",
		DriverID:      "driver-1",
		RiderID:       "rider-1",
		PickupStation: "Central",
		Destination:   "Uptown",
		Fare:          75,
	}).Return(&models.Trip{TripID: "req-1", Status: models.TripStatusScheduled}, nil)
	mockRepo.EXPECT().ConfirmMatch(gomock.Any(), "req-1", "driver-1").Return(true, nil)
	mockGW.EXPECT().NotifyRider(gomock.Any(), "rider-1", gomock.Any()).Return(nil)
	mockGW.EXPECT().NotifyDriver(gomock.Any(), "driver-1", gomock.Any()).Return(nil)

	trip, err := uc.AcceptMatch(context.Background(), "req-1", "driver-1")

	assert.NoError(t, err)
	assert.Equal(t, "req-1", trip.TripID)
}

func TestAcceptMatch_WrongDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	mockGW := mocks.NewMockMatchGW(ctrl)
	uc := NewMatchUC(newTestConfig(), mockRepo, mockGW)

	mockRepo.EXPECT().GetMatch(gomock.Any(), "req-1").Return(&models.Match{
		ID:       "req-1",
		RiderID:  "rider-1",
		DriverID: "driver-1",
		Status:   models.MatchStatusMatched,
	}, nil)

	_, err := uc.AcceptMatch(context.Background(), "req-1", "driver-9")
	assert.ErrorIs(t, err, match.ErrInvalidState)
}

func TestDeclineMatch_ReassignsWithRecomputedFare(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	mockGW := mocks.NewMockMatchGW(ctrl)
	uc := NewMatchUC(newTestConfig(), mockRepo, mockGW)

	mockRepo.EXPECT().GetMatch(gomock.Any(), "req-1").Return(&models.Match{
		ID:            "req-1",
		RiderID:       "rider-1",
		DriverID:      "driver-1",
		PickupStation: "Central",
		Destination:   "Uptown",
		Fare:          75,
		Status:        models.MatchStatusMatched,
	}, nil)
	// The declining driver is skipped; the replacement has no known
	// position so the fare drops to the default.
	mockGW.EXPECT().ListDrivers(gomock.Any(), "Central").Return([]models.DriverInfo{
		{DriverID: "driver-1", Destination: "Uptown", AvailableSeats: 1},
		{DriverID: "driver-2", Destination: "Uptown", AvailableSeats: 1},
	}, nil)
	mockRepo.EXPECT().CountMatchedByDriver(gomock.Any(), "driver-2").Return(0, nil)
	mockRepo.EXPECT().AssignDriver(gomock.Any(), "req-1", "driver-2", 50, models.MatchStatusMatched, "driver-1").
		Return(true, nil)
	mockGW.EXPECT().NotifyDriver(gomock.Any(), "driver-2", gomock.Any()).Return(nil)
	mockGW.EXPECT().NotifyRider(gomock.Any(), "rider-1", gomock.Any()).Return(nil)

	err := uc.DeclineMatch(context.Background(), "req-1", "driver-1")
	assert.NoError(t, err)
}

func TestDeclineMatch_RevertsToPendingWhenNoReplacement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	mockGW := mocks.NewMockMatchGW(ctrl)
	uc := NewMatchUC(newTestConfig(), mockRepo, mockGW)

	mockRepo.EXPECT().GetMatch(gomock.Any(), "req-1").Return(&models.Match{
		ID:            "req-1",
		RiderID:       "rider-1",
		DriverID:      "driver-1",
		PickupStation: "Central",
		Destination:   "Uptown",
		Status:        models.MatchStatusMatched,
	}, nil)
	mockGW.EXPECT().ListDrivers(gomock.Any(), "Central").Return([]models.DriverInfo{
		{DriverID: "driver-1", Destination: "Uptown", AvailableSeats: 1},
	}, nil)
	mockRepo.EXPECT().RevertToPending(gomock.Any(), "req-1", "driver-1").Return(true, nil)
	mockGW.EXPECT().NotifyRider(gomock.Any(), "rider-1", gomock.Any()).Return(nil)

	err := uc.DeclineMatch(context.Background(), "req-1", "driver-1")
	assert.NoError(t, err)
}

func TestCancelMatch_AlreadyCancelledIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	mockGW := mocks.NewMockMatchGW(ctrl)
	uc := NewMatchUC(newTestConfig(), mockRepo, mockGW)

	mockRepo.EXPECT().GetMatch(gomock.Any(), "req-1").Return(&models.Match{
		ID:      "req-1",
		RiderID: "rider-1",
		Status:  models.MatchStatusCancelled,
	}, nil)

	assert.NoError(t, uc.CancelMatch(context.Background(), "req-1", "rider-1"))
}

func TestCancelMatch_WrongRiderIsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	mockGW := mocks.NewMockMatchGW(ctrl)
	uc := NewMatchUC(newTestConfig(), mockRepo, mockGW)

	mockRepo.EXPECT().GetMatch(gomock.Any(), "req-1").Return(&models.Match{
		ID:      "req-1",
		RiderID: "rider-1",
		Status:  models.MatchStatusPending,
	}, nil)

	err := uc.CancelMatch(context.Background(), "req-1", "rider-2")
	assert.ErrorIs(t, err, match.ErrInvalidState)
}

func TestCancelMatch_ConfirmedIsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	mockGW := mocks.NewMockMatchGW(ctrl)
	uc := NewMatchUC(newTestConfig(), mockRepo, mockGW)

	mockRepo.EXPECT().GetMatch(gomock.Any(), "req-1").Return(&models.Match{
		ID:      "req-1",
		RiderID: "rider-1",
		Status:  models.MatchStatusConfirmed,
	}, nil)

	err := uc.CancelMatch(context.Background(), "req-1", "rider-1")
	assert.ErrorIs(t, err, match.ErrInvalidState)
}

func TestCancelMatch_NotifiesAssignedDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	mockGW := mocks.NewMockMatchGW(ctrl)
	uc := NewMatchUC(newTestConfig(), mockRepo, mockGW)

	mockRepo.EXPECT().GetMatch(gomock.Any(), "req-1").Return(&models.Match{
		ID:       "req-1",
		RiderID:  "rider-1",
		DriverID: "driver-1",
		Status:   models.MatchStatusMatched,
	}, nil)
	mockRepo.EXPECT().CancelMatch(gomock.Any(), "req-1").Return(true, nil)
	mockGW.EXPECT().NotifyRider(gomock.Any(), "rider-1", gomock.Any()).Return(nil)
	mockGW.EXPECT().NotifyDriver(gomock.Any(), "driver-1", gomock.Any()).Return(nil)
	mockGW.EXPECT().ClearRiderRequest(gomock.Any(), "rider-1", "req-1", models.MatchStatusCancelled).Return(nil)

	assert.NoError(t, uc.CancelMatch(context.Background(), "req-1", "rider-1"))
}

func TestDestinationCompatible(t *testing.T) {
	loose := NewMatchUC(newTestConfig(), nil, nil)

	strictCfg := newTestConfig()
	strictCfg.Match.LooseDestination = false
	strict := NewMatchUC(strictCfg, nil, nil)

	testCases := []struct {
		name       string
		driverDest string
		riderDest  string
		loose      bool
		strict     bool
	}{
		{"exact", "Uptown", "Uptown", true, true},
		{"case insensitive", "uptown", "UPTOWN", true, true},
		{"rider substring of driver", "Uptown Mall", "uptown", true, false},
		{"driver substring of rider", "Mall", "Uptown Mall", true, false},
		{"disjoint", "Eastside", "Uptown", false, false},
		{"empty rider destination", "Uptown", "", false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.loose, loose.destinationCompatible(tc.driverDest, tc.riderDest))
			assert.Equal(t, tc.strict, strict.destinationCompatible(tc.driverDest, tc.riderDest))
		})
	}
}
