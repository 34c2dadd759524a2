package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/lastmile/backend/internal/pkg/models"
	"github.com/lastmile/backend/internal/utils"
	"github.com/lastmile/backend/services/rider"
)

// Handler serves the rider service HTTP endpoints
type Handler struct {
	riderUC rider.RiderUC
}

// NewHandler creates a new rider handler
func NewHandler(riderUC rider.RiderUC) *Handler {
	return &Handler{riderUC: riderUC}
}

// RequestRide handles POST /riders/:id/requests
func (h *Handler) RequestRide(c echo.Context) error {
	riderID := c.Param("id")

	var input models.RideRequestInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	req, result, err := h.riderUC.RequestRide(c.Request().Context(), riderID, input)
	if err != nil {
		if errors.Is(err, rider.ErrActiveRequestExists) {
			return utils.ConflictResponse(c, "An active ride request already exists")
		}
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride requested", map[string]interface{}{
		"request": req,
		"match":   result,
	})
}

// CancelRide handles POST /riders/:id/requests/:requestId/cancel
func (h *Handler) CancelRide(c echo.Context) error {
	err := h.riderUC.CancelRide(c.Request().Context(), c.Param("id"), c.Param("requestId"))
	if err != nil {
		switch {
		case errors.Is(err, rider.ErrRequestNotFound):
			return utils.NotFoundResponse(c, "Ride request not found")
		case errors.Is(err, rider.ErrInvalidState):
			return utils.ConflictResponse(c, "Ride request can no longer be cancelled")
		}
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride request cancelled", nil)
}

// GetActiveRequest handles GET /riders/:id/requests/active
func (h *Handler) GetActiveRequest(c echo.Context) error {
	req, err := h.riderUC.GetActiveRequest(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, rider.ErrRequestNotFound) {
			return utils.NotFoundResponse(c, "No active ride request")
		}
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "", req)
}

// ListRequests handles GET /riders/:id/requests
func (h *Handler) ListRequests(c echo.Context) error {
	requests, err := h.riderUC.ListRequests(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "", requests)
}

// RateDriver handles POST /riders/:id/requests/:requestId/rating
func (h *Handler) RateDriver(c echo.Context) error {
	var body struct {
		Rating int `json:"rating"`
	}
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	err := h.riderUC.RateDriver(c.Request().Context(), c.Param("id"), c.Param("requestId"), body.Rating)
	if err != nil {
		if errors.Is(err, rider.ErrInvalidState) {
			return utils.ConflictResponse(c, "Only completed rides can be rated")
		}
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Rating recorded", nil)
}

// ApplyTripUpdate handles POST /internal/riders/:id/trips/:tripId
func (h *Handler) ApplyTripUpdate(c echo.Context) error {
	var body struct {
		Status string `json:"status"`
		Fare   int    `json:"fare"`
	}
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	err := h.riderUC.ApplyTripUpdate(c.Request().Context(),
		c.Param("id"), c.Param("tripId"),
		models.RideRequestStatus(body.Status), body.Fare)
	if err != nil {
		if errors.Is(err, rider.ErrRequestNotFound) {
			return utils.NotFoundResponse(c, "No live request for this trip")
		}
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip update applied", nil)
}

// ApplyMatchStatus handles POST /internal/riders/:id/requests/:requestId/status
func (h *Handler) ApplyMatchStatus(c echo.Context) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	err := h.riderUC.ApplyMatchStatus(c.Request().Context(),
		c.Param("id"), c.Param("requestId"), models.MatchStatus(body.Status))
	if err != nil {
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Match status applied", nil)
}
