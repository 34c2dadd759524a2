package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/lastmile/backend/internal/pkg/events"
	"github.com/lastmile/backend/internal/pkg/models"
	"github.com/lastmile/backend/services/driver"
	"github.com/lastmile/backend/services/driver/mocks"
)

func TestRegisterRoute_PublishesAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	mockGW := mocks.NewMockDriverGW(ctrl)
	uc := NewDriverUC(&models.Config{}, mockRepo, mockGW)

	req := models.RegisterRouteRequest{
		Destination:    "Uptown",
		AvailableSeats: 3,
		MetroStations:  []string{"Central", "Westgate"},
	}

	mockRepo.EXPECT().RegisterRoute(gomock.Any(), "driver-1", req).Return(&models.Driver{
		DriverID:       "driver-1",
		RouteID:        "route-1",
		Destination:    "Uptown",
		AvailableSeats: 3,
	}, nil)
	mockGW.EXPECT().PublishAvailability(gomock.Any(), events.DriverAvailability{
		DriverID:       "driver-1",
		AvailableSeats: 3,
		Destination:    "Uptown",
	}).Return(nil)

	routeID, err := uc.RegisterRoute(context.Background(), "driver-1", req)
	assert.NoError(t, err)
	assert.Equal(t, "route-1", routeID)
}

func TestRegisterRoute_NegativeSeats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewDriverUC(&models.Config{}, mocks.NewMockDriverRepo(ctrl), mocks.NewMockDriverGW(ctrl))

	_, err := uc.RegisterRoute(context.Background(), "driver-1", models.RegisterRouteRequest{
		Destination:    "Uptown",
		AvailableSeats: -1,
	})
	assert.Error(t, err)
}

func TestRegisterRoute_PublishFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	mockGW := mocks.NewMockDriverGW(ctrl)
	uc := NewDriverUC(&models.Config{}, mockRepo, mockGW)

	req := models.RegisterRouteRequest{Destination: "Uptown", AvailableSeats: 2}

	mockRepo.EXPECT().RegisterRoute(gomock.Any(), "driver-1", req).Return(&models.Driver{
		DriverID:       "driver-1",
		RouteID:        "route-1",
		Destination:    "Uptown",
		AvailableSeats: 2,
	}, nil)
	mockGW.EXPECT().PublishAvailability(gomock.Any(), gomock.Any()).
		Return(errors.New("nats down"))

	routeID, err := uc.RegisterRoute(context.Background(), "driver-1", req)
	assert.NoError(t, err)
	assert.Equal(t, "route-1", routeID)
}

func TestAcceptTrip_NoSeatAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	mockGW := mocks.NewMockDriverGW(ctrl)
	uc := NewDriverUC(&models.Config{}, mockRepo, mockGW)

	mockRepo.EXPECT().ReserveSeat(gomock.Any(), "driver-1", gomock.Any()).Return(false, nil)

	err := uc.AcceptTrip(context.Background(), "driver-1", models.AcceptTripRequest{TripID: "trip-1"})
	assert.ErrorIs(t, err, driver.ErrNoSeatAvailable)
}

func TestCompleteActiveTrip_AnnouncesFreedSeatAndEarnings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	mockGW := mocks.NewMockDriverGW(ctrl)
	uc := NewDriverUC(&models.Config{}, mockRepo, mockGW)

	mockRepo.EXPECT().ReleaseSeat(gomock.Any(), "driver-1", "trip-1").Return(&models.TripRecord{
		TripID: "trip-1",
		Fare:   75,
		Status: models.TripRecordCompleted,
	}, nil)
	mockRepo.EXPECT().GetDriver(gomock.Any(), "driver-1").Return(&models.Driver{
		DriverID:       "driver-1",
		Destination:    "Uptown",
		AvailableSeats: 1,
		TotalEarnings:  150,
	}, nil)
	mockGW.EXPECT().PublishAvailability(gomock.Any(), events.DriverAvailability{
		DriverID:       "driver-1",
		AvailableSeats: 1,
		Destination:    "Uptown",
	}).Return(nil)
	mockGW.EXPECT().PublishDashboard(gomock.Any(), "driver-1", "EARNINGS,150").Return(nil)

	rec, err := uc.CompleteActiveTrip(context.Background(), "driver-1", "trip-1")
	assert.NoError(t, err)
	assert.Equal(t, 75, rec.Fare)
}

func TestGetRideHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	mockGW := mocks.NewMockDriverGW(ctrl)
	uc := NewDriverUC(&models.Config{}, mockRepo, mockGW)

	mockRepo.EXPECT().ListRideHistory(gomock.Any(), "driver-1").Return([]models.TripRecord{
		{TripID: "trip-2", Fare: 50, Status: models.TripRecordCompleted},
		{TripID: "trip-1", Fare: 75, Status: models.TripRecordCompleted},
	}, nil)

	records, err := uc.GetRideHistory(context.Background(), "driver-1")
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "trip-2", records[0].TripID)
}

func TestCompleteActiveTrip_ReloadFailureStillReturnsRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	mockGW := mocks.NewMockDriverGW(ctrl)
	uc := NewDriverUC(&models.Config{}, mockRepo, mockGW)

	mockRepo.EXPECT().ReleaseSeat(gomock.Any(), "driver-1", "trip-1").Return(&models.TripRecord{
		TripID: "trip-1",
		Fare:   75,
	}, nil)
	mockRepo.EXPECT().GetDriver(gomock.Any(), "driver-1").
		Return(nil, errors.New("database error"))

	rec, err := uc.CompleteActiveTrip(context.Background(), "driver-1", "trip-1")
	assert.NoError(t, err)
	assert.Equal(t, "trip-1", rec.TripID)
}
