package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/lastmile/backend/internal/pkg/models"
	"github.com/lastmile/backend/services/rider"
	"github.com/lastmile/backend/services/rider/mocks"
)

func newRiderUC(t *testing.T) (*RiderUC, *mocks.MockRiderRepo, *mocks.MockRiderGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockRiderRepo(ctrl)
	mockGW := mocks.NewMockRiderGW(ctrl)
	return NewRiderUC(&models.Config{}, mockRepo, mockGW), mockRepo, mockGW
}

func TestRequestRide_MatchedImmediately(t *testing.T) {
	uc, mockRepo, mockGW := newRiderUC(t)

	mockRepo.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).Return(true, nil)
	mockGW.EXPECT().RequestMatch(gomock.Any(), models.MatchRequest{
		RiderID:       "rider-1",
		PickupStation: "Central",
		Destination:   "Uptown",
		RequestID:     "req-1",
	}).Return(&models.MatchResult{
		MatchID:  "req-1",
		Found:    true,
		DriverID: "driver-1",
		Fare:     75,
	}, nil)
	mockRepo.EXPECT().ApplyTripUpdate(gomock.Any(), "rider-1", "req-1", models.RideRequestMatched, 75).
		Return(true, nil)

	req, result, err := uc.RequestRide(context.Background(), "rider-1", models.RideRequestInput{
		RequestID:    "req-1",
		MetroStation: "Central",
		Destination:  "Uptown",
	})
	assert.NoError(t, err)
	assert.Equal(t, models.RideRequestMatched, req.Status)
	assert.Equal(t, "driver-1", req.DriverID)
	assert.Equal(t, 75, req.Fare)
	assert.True(t, result.Found)
}

func TestRequestRide_AssignsRequestIDWhenOmitted(t *testing.T) {
	uc, mockRepo, mockGW := newRiderUC(t)

	mockRepo.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.RideRequest) (bool, error) {
			assert.NotEmpty(t, req.RequestID)
			return true, nil
		})
	mockGW.EXPECT().RequestMatch(gomock.Any(), gomock.Any()).
		Return(&models.MatchResult{Found: false}, nil)

	req, _, err := uc.RequestRide(context.Background(), "rider-1", models.RideRequestInput{
		MetroStation: "Central",
		Destination:  "Uptown",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, req.RequestID)
	assert.Equal(t, models.RideRequestPending, req.Status)
}

func TestRequestRide_ActiveRequestExists(t *testing.T) {
	uc, mockRepo, _ := newRiderUC(t)

	mockRepo.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).
		Return(false, rider.ErrActiveRequestExists)

	_, _, err := uc.RequestRide(context.Background(), "rider-1", models.RideRequestInput{
		RequestID:    "req-2",
		MetroStation: "Central",
		Destination:  "Uptown",
	})
	assert.ErrorIs(t, err, rider.ErrActiveRequestExists)
}

func TestRequestRide_ReplayReturnsStoredState(t *testing.T) {
	uc, mockRepo, _ := newRiderUC(t)

	mockRepo.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).Return(false, nil)
	mockRepo.EXPECT().GetRequest(gomock.Any(), "rider-1", "req-1").Return(&models.RideRequest{
		RequestID: "req-1",
		RiderID:   "rider-1",
		Status:    models.RideRequestMatched,
		DriverID:  "driver-1",
		Fare:      75,
	}, nil)

	req, result, err := uc.RequestRide(context.Background(), "rider-1", models.RideRequestInput{
		RequestID:    "req-1",
		MetroStation: "Central",
		Destination:  "Uptown",
	})
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, models.RideRequestMatched, req.Status)
}

func TestRequestRide_MatcherDownLeavesRequestPending(t *testing.T) {
	uc, mockRepo, mockGW := newRiderUC(t)

	mockRepo.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).Return(true, nil)
	mockGW.EXPECT().RequestMatch(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("match service down"))

	req, result, err := uc.RequestRide(context.Background(), "rider-1", models.RideRequestInput{
		RequestID:    "req-1",
		MetroStation: "Central",
		Destination:  "Uptown",
	})
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, models.RideRequestPending, req.Status)
}

func TestCancelRide(t *testing.T) {
	t.Run("Cancels match before flipping the mirror", func(t *testing.T) {
		uc, mockRepo, mockGW := newRiderUC(t)

		mockRepo.EXPECT().GetRequest(gomock.Any(), "rider-1", "req-1").Return(&models.RideRequest{
			RequestID: "req-1",
			RiderID:   "rider-1",
			Status:    models.RideRequestMatched,
		}, nil)
		cancel := mockGW.EXPECT().CancelMatch(gomock.Any(), "rider-1", "req-1").Return(nil)
		mockRepo.EXPECT().MarkTerminal(gomock.Any(), "rider-1", "req-1", models.RideRequestCancelled).
			After(cancel).Return(true, nil)

		assert.NoError(t, uc.CancelRide(context.Background(), "rider-1", "req-1"))
	})

	t.Run("Already cancelled is a no-op", func(t *testing.T) {
		uc, mockRepo, _ := newRiderUC(t)

		mockRepo.EXPECT().GetRequest(gomock.Any(), "rider-1", "req-1").Return(&models.RideRequest{
			RequestID: "req-1",
			Status:    models.RideRequestCancelled,
		}, nil)

		assert.NoError(t, uc.CancelRide(context.Background(), "rider-1", "req-1"))
	})

	t.Run("In progress cannot be cancelled", func(t *testing.T) {
		uc, mockRepo, _ := newRiderUC(t)

		mockRepo.EXPECT().GetRequest(gomock.Any(), "rider-1", "req-1").Return(&models.RideRequest{
			RequestID: "req-1",
			Status:    models.RideRequestInProgress,
		}, nil)

		assert.ErrorIs(t, uc.CancelRide(context.Background(), "rider-1", "req-1"), rider.ErrInvalidState)
	})

	t.Run("Matcher rejection keeps the mirror untouched", func(t *testing.T) {
		uc, mockRepo, mockGW := newRiderUC(t)

		mockRepo.EXPECT().GetRequest(gomock.Any(), "rider-1", "req-1").Return(&models.RideRequest{
			RequestID: "req-1",
			Status:    models.RideRequestMatched,
		}, nil)
		mockGW.EXPECT().CancelMatch(gomock.Any(), "rider-1", "req-1").
			Return(errors.New("match already confirmed"))

		err := uc.CancelRide(context.Background(), "rider-1", "req-1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to cancel match")
	})
}

func TestRateDriver(t *testing.T) {
	t.Run("Out of range", func(t *testing.T) {
		uc, _, _ := newRiderUC(t)
		assert.Error(t, uc.RateDriver(context.Background(), "rider-1", "req-1", 6))
	})

	t.Run("Only completed rides can be rated", func(t *testing.T) {
		uc, mockRepo, _ := newRiderUC(t)
		mockRepo.EXPECT().RateDriver(gomock.Any(), "rider-1", "req-1", 4).Return(false, nil)

		assert.ErrorIs(t, uc.RateDriver(context.Background(), "rider-1", "req-1", 4), rider.ErrInvalidState)
	})

	t.Run("Recorded", func(t *testing.T) {
		uc, mockRepo, _ := newRiderUC(t)
		mockRepo.EXPECT().RateDriver(gomock.Any(), "rider-1", "req-1", 5).Return(true, nil)

		assert.NoError(t, uc.RateDriver(context.Background(), "rider-1", "req-1", 5))
	})
}

func TestApplyMatchStatus(t *testing.T) {
	t.Run("Cancellation flips the mirror", func(t *testing.T) {
		uc, mockRepo, _ := newRiderUC(t)
		mockRepo.EXPECT().MarkTerminal(gomock.Any(), "rider-1", "req-1", models.RideRequestCancelled).
			Return(true, nil)

		assert.NoError(t, uc.ApplyMatchStatus(context.Background(), "rider-1", "req-1", models.MatchStatusCancelled))
	})

	t.Run("Replayed cancellation is idempotent", func(t *testing.T) {
		uc, mockRepo, _ := newRiderUC(t)
		mockRepo.EXPECT().MarkTerminal(gomock.Any(), "rider-1", "req-1", models.RideRequestCancelled).
			Return(false, nil)

		assert.NoError(t, uc.ApplyMatchStatus(context.Background(), "rider-1", "req-1", models.MatchStatusCancelled))
	})

	t.Run("Non-terminal statuses are ignored", func(t *testing.T) {
		uc, _, _ := newRiderUC(t)
		assert.NoError(t, uc.ApplyMatchStatus(context.Background(), "rider-1", "req-1", models.MatchStatusMatched))
	})
}

func TestApplyTripUpdate_UnknownRequest(t *testing.T) {
	uc, mockRepo, _ := newRiderUC(t)
	mockRepo.EXPECT().ApplyTripUpdate(gomock.Any(), "rider-1", "trip-9", models.RideRequestCompleted, 80).
		Return(false, nil)

	err := uc.ApplyTripUpdate(context.Background(), "rider-1", "trip-9", models.RideRequestCompleted, 80)
	assert.ErrorIs(t, err, rider.ErrRequestNotFound)
}
