package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/lastmile/backend/internal/pkg/database"
	"github.com/lastmile/backend/internal/pkg/models"
	wspkg "github.com/lastmile/backend/internal/pkg/websocket"
	"github.com/lastmile/backend/internal/utils"
	"github.com/lastmile/backend/services/trip"
)

// Handler serves the trip ledger HTTP and websocket endpoints
type Handler struct {
	tripUC      trip.TripUC
	redisClient *database.RedisClient
	wsManager   *wspkg.Manager
}

// NewHandler creates a new trip handler
func NewHandler(tripUC trip.TripUC, redisClient *database.RedisClient) *Handler {
	return &Handler{
		tripUC:      tripUC,
		redisClient: redisClient,
		wsManager:   wspkg.NewManager(),
	}
}

// CreateTrip handles POST /trips
func (h *Handler) CreateTrip(c echo.Context) error {
	var req models.CreateTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	t, err := h.tripUC.CreateTrip(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, trip.ErrSeatUnavailable) {
			// Capacity exhaustion is a domain outcome
			return utils.FailureResponse(c, http.StatusOK, "No seat available")
		}
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip created", t)
}

// RecordPickup handles POST /trips/:id/pickup
func (h *Handler) RecordPickup(c echo.Context) error {
	t, err := h.tripUC.RecordPickup(c.Request().Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, trip.ErrTripNotFound):
			return utils.NotFoundResponse(c, "Trip not found")
		case errors.Is(err, trip.ErrInvalidState):
			return utils.ConflictResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Pickup recorded", t)
}

// RecordDropoff handles POST /trips/:id/dropoff
func (h *Handler) RecordDropoff(c echo.Context) error {
	var req models.DropoffRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	t, err := h.tripUC.RecordDropoff(c.Request().Context(), c.Param("id"), req.Fare)
	if err != nil {
		switch {
		case errors.Is(err, trip.ErrTripNotFound):
			return utils.NotFoundResponse(c, "Trip not found")
		case errors.Is(err, trip.ErrInvalidState):
			return utils.ConflictResponse(c, "Trip is not active")
		}
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Dropoff recorded", t)
}

// GetTrip handles GET /trips/:id
func (h *Handler) GetTrip(c echo.Context) error {
	t, err := h.tripUC.GetTrip(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, trip.ErrTripNotFound) {
			return utils.NotFoundResponse(c, "Trip not found")
		}
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "", t)
}

// ListRiderTrips handles GET /trips?rider_id=R
func (h *Handler) ListRiderTrips(c echo.Context) error {
	riderID := c.QueryParam("rider_id")
	if riderID == "" {
		return utils.BadRequestResponse(c, "rider_id is required")
	}

	trips, err := h.tripUC.ListTripsByRider(c.Request().Context(), riderID)
	if err != nil {
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "", trips)
}
