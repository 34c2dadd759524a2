package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/lastmile/backend/internal/pkg/database"
	"github.com/lastmile/backend/internal/pkg/models"
	wspkg "github.com/lastmile/backend/internal/pkg/websocket"
	"github.com/lastmile/backend/internal/utils"
	"github.com/lastmile/backend/services/driver"
)

// Handler serves the driver ledger HTTP and websocket endpoints
type Handler struct {
	driverUC    driver.DriverUC
	redisClient *database.RedisClient
	wsManager   *wspkg.Manager
}

// NewHandler creates a new driver handler
func NewHandler(driverUC driver.DriverUC, redisClient *database.RedisClient) *Handler {
	return &Handler{
		driverUC:    driverUC,
		redisClient: redisClient,
		wsManager:   wspkg.NewManager(),
	}
}

// RegisterRoute handles POST /drivers/:id/route
func (h *Handler) RegisterRoute(c echo.Context) error {
	driverID := c.Param("id")

	var req models.RegisterRouteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if req.Destination == "" {
		return utils.BadRequestResponse(c, "destination is required")
	}

	routeID, err := h.driverUC.RegisterRoute(c.Request().Context(), driverID, req)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Route registered successfully", map[string]string{
		"route_id": routeID,
	})
}

// UpdateLocation handles PUT /drivers/:id/location
func (h *Handler) UpdateLocation(c echo.Context) error {
	driverID := c.Param("id")

	var req models.UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	err := h.driverUC.UpdateLocation(c.Request().Context(), driverID, req.Latitude, req.Longitude)
	if err != nil {
		if errors.Is(err, driver.ErrDriverNotFound) {
			return utils.NotFoundResponse(c, "Driver not found")
		}
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location updated successfully", nil)
}

// GetDriver handles GET /drivers/:id
func (h *Handler) GetDriver(c echo.Context) error {
	d, err := h.driverUC.GetDriver(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, driver.ErrDriverNotFound) {
			return utils.NotFoundResponse(c, "Driver not found")
		}
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "", d)
}

// ListDrivers handles GET /drivers?station=S
func (h *Handler) ListDrivers(c echo.Context) error {
	infos, err := h.driverUC.ListDrivers(c.Request().Context(), c.QueryParam("station"))
	if err != nil {
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "", infos)
}

// GetRideHistory handles GET /drivers/:id/history
func (h *Handler) GetRideHistory(c echo.Context) error {
	records, err := h.driverUC.GetRideHistory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "", records)
}

// AcceptTrip handles POST /internal/drivers/:id/trips
func (h *Handler) AcceptTrip(c echo.Context) error {
	driverID := c.Param("id")

	var req models.AcceptTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if req.TripID == "" {
		return utils.BadRequestResponse(c, "trip_id is required")
	}

	err := h.driverUC.AcceptTrip(c.Request().Context(), driverID, req)
	if err != nil {
		if errors.Is(err, driver.ErrNoSeatAvailable) {
			// Capacity exhaustion is a domain outcome, not a server error
			return utils.FailureResponse(c, http.StatusOK, "No seat available")
		}
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip accepted", nil)
}

// StartTrip handles POST /internal/drivers/:id/trips/:tripId/start
func (h *Handler) StartTrip(c echo.Context) error {
	err := h.driverUC.StartTrip(c.Request().Context(), c.Param("id"), c.Param("tripId"))
	if err != nil {
		if errors.Is(err, driver.ErrTripNotFound) {
			return utils.NotFoundResponse(c, "Trip not found for driver")
		}
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip started", nil)
}

// CompleteActiveTrip handles POST /internal/drivers/:id/trips/:tripId/complete
func (h *Handler) CompleteActiveTrip(c echo.Context) error {
	rec, err := h.driverUC.CompleteActiveTrip(c.Request().Context(), c.Param("id"), c.Param("tripId"))
	if err != nil {
		if errors.Is(err, driver.ErrTripNotFound) {
			return utils.NotFoundResponse(c, "Trip not found for driver")
		}
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip completed", rec)
}
