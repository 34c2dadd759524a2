package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/lastmile/backend/internal/pkg/events"
	"github.com/lastmile/backend/internal/pkg/models"
	"github.com/lastmile/backend/services/match/mocks"
)

func TestHandleDriverAvailability_OneSeatClaimsOneMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	mockGW := mocks.NewMockMatchGW(ctrl)
	uc := NewMatchUC(newTestConfig(), mockRepo, mockGW)

	mockRepo.EXPECT().CountMatchedByDriver(gomock.Any(), "driver-1").Return(0, nil)
	mockGW.EXPECT().GetDriver(gomock.Any(), "driver-1").Return(&models.Driver{
		DriverID:      "driver-1",
		Destination:   "Uptown",
		MetroStations: []string{"Central"},
	}, nil)
	// Two queued matches both qualify, but the event carried one free seat
	mockRepo.EXPECT().ListPendingMatches(gomock.Any()).Return([]*models.Match{
		{ID: "req-1", RiderID: "rider-1", PickupStation: "Central", Destination: "Uptown", Status: models.MatchStatusPending},
		{ID: "req-2", RiderID: "rider-2", PickupStation: "Central", Destination: "Uptown", Status: models.MatchStatusPending},
	}, nil)
	mockRepo.EXPECT().AssignDriver(gomock.Any(), "req-1", "driver-1", 50, models.MatchStatusPending, "").
		Return(true, nil)
	mockGW.EXPECT().NotifyDriver(gomock.Any(), "driver-1", gomock.Any()).Return(nil)
	mockGW.EXPECT().NotifyRider(gomock.Any(), "rider-1", gomock.Any()).Return(nil)

	uc.HandleDriverAvailability(context.Background(), events.DriverAvailability{
		DriverID:       "driver-1",
		AvailableSeats: 1,
		Destination:    "Uptown",
	})
}

func TestHandleDriverAvailability_SkipsUnservedStations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	mockGW := mocks.NewMockMatchGW(ctrl)
	uc := NewMatchUC(newTestConfig(), mockRepo, mockGW)

	mockRepo.EXPECT().CountMatchedByDriver(gomock.Any(), "driver-1").Return(0, nil)
	mockGW.EXPECT().GetDriver(gomock.Any(), "driver-1").Return(&models.Driver{
		DriverID:      "driver-1",
		Destination:   "Uptown",
		MetroStations: []string{"Central"},
	}, nil)
	mockRepo.EXPECT().ListPendingMatches(gomock.Any()).Return([]*models.Match{
		{ID: "req-1", RiderID: "rider-1", PickupStation: "Westgate", Destination: "Uptown", Status: models.MatchStatusPending},
	}, nil)

	uc.HandleDriverAvailability(context.Background(), events.DriverAvailability{
		DriverID:       "driver-1",
		AvailableSeats: 2,
		Destination:    "Uptown",
	})
}

func TestHandleDriverAvailability_TentativeSeatsConsumeCapacity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	mockGW := mocks.NewMockMatchGW(ctrl)
	uc := NewMatchUC(newTestConfig(), mockRepo, mockGW)

	// The announced seats are already shadowed by MATCHED assignments, so
	// the queue is never scanned.
	mockRepo.EXPECT().CountMatchedByDriver(gomock.Any(), "driver-1").Return(2, nil)

	uc.HandleDriverAvailability(context.Background(), events.DriverAvailability{
		DriverID:       "driver-1",
		AvailableSeats: 2,
		Destination:    "Uptown",
	})
}

func TestHandleDriverAvailability_LostAssignmentRaceMovesOn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMatchRepo(ctrl)
	mockGW := mocks.NewMockMatchGW(ctrl)
	uc := NewMatchUC(newTestConfig(), mockRepo, mockGW)

	mockRepo.EXPECT().CountMatchedByDriver(gomock.Any(), "driver-1").Return(0, nil)
	mockGW.EXPECT().GetDriver(gomock.Any(), "driver-1").Return(&models.Driver{
		DriverID:      "driver-1",
		Destination:   "Uptown",
		MetroStations: []string{"Central"},
	}, nil)
	mockRepo.EXPECT().ListPendingMatches(gomock.Any()).Return([]*models.Match{
		{ID: "req-1", RiderID: "rider-1", PickupStation: "Central", Destination: "Uptown", Status: models.MatchStatusPending},
		{ID: "req-2", RiderID: "rider-2", PickupStation: "Central", Destination: "Uptown", Status: models.MatchStatusPending},
	}, nil)
	// req-1 was claimed by another writer; the seat moves to req-2
	mockRepo.EXPECT().AssignDriver(gomock.Any(), "req-1", "driver-1", 50, models.MatchStatusPending, "").
		Return(false, nil)
	mockRepo.EXPECT().AssignDriver(gomock.Any(), "req-2", "driver-1", 50, models.MatchStatusPending, "").
		Return(true, nil)
	mockGW.EXPECT().NotifyDriver(gomock.Any(), "driver-1", gomock.Any()).Return(nil)
	mockGW.EXPECT().NotifyRider(gomock.Any(), "rider-2", gomock.Any()).Return(nil)

	uc.HandleDriverAvailability(context.Background(), events.DriverAvailability{
		DriverID:       "driver-1",
		AvailableSeats: 1,
		Destination:    "Uptown",
	})
}
