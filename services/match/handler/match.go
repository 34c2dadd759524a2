package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/lastmile/backend/internal/pkg/database"
	"github.com/lastmile/backend/internal/pkg/models"
	wspkg "github.com/lastmile/backend/internal/pkg/websocket"
	"github.com/lastmile/backend/internal/utils"
	"github.com/lastmile/backend/services/match"
)

// Handler serves the match service HTTP, websocket and NATS endpoints
type Handler struct {
	matchUC     match.MatchUC
	redisClient *database.RedisClient
	wsManager   *wspkg.Manager
}

// NewHandler creates a new match handler
func NewHandler(matchUC match.MatchUC, redisClient *database.RedisClient) *Handler {
	return &Handler{
		matchUC:     matchUC,
		redisClient: redisClient,
		wsManager:   wspkg.NewManager(),
	}
}

// RequestMatch handles POST /matches
func (h *Handler) RequestMatch(c echo.Context) error {
	var req models.MatchRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if req.RiderID == "" || req.PickupStation == "" || req.Destination == "" {
		return utils.BadRequestResponse(c, "rider_id, pickup_station and destination are required")
	}

	result, err := h.matchUC.RequestMatch(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, match.ErrMissingRequestID) {
			return utils.BadRequestResponse(c, "request_id is required")
		}
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	message := "Driver matched"
	if !result.Found {
		message = "No driver available, request queued"
	}
	return utils.SuccessResponse(c, http.StatusOK, message, result)
}

// AcceptMatch handles POST /matches/:id/accept
func (h *Handler) AcceptMatch(c echo.Context) error {
	var req models.MatchActionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if req.DriverID == "" {
		return utils.BadRequestResponse(c, "driver_id is required")
	}

	trip, err := h.matchUC.AcceptMatch(c.Request().Context(), c.Param("id"), req.DriverID)
	if err != nil {
		switch {
		case errors.Is(err, match.ErrMatchNotFound):
			return utils.NotFoundResponse(c, "Match not found")
		case errors.Is(err, match.ErrInvalidState):
			return utils.ConflictResponse(c, "Match is not awaiting this driver's acceptance")
		}
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Match confirmed", trip)
}

// DeclineMatch handles POST /matches/:id/decline
func (h *Handler) DeclineMatch(c echo.Context) error {
	var req models.MatchActionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if req.DriverID == "" {
		return utils.BadRequestResponse(c, "driver_id is required")
	}

	err := h.matchUC.DeclineMatch(c.Request().Context(), c.Param("id"), req.DriverID)
	if err != nil {
		switch {
		case errors.Is(err, match.ErrMatchNotFound):
			return utils.NotFoundResponse(c, "Match not found")
		case errors.Is(err, match.ErrInvalidState):
			return utils.ConflictResponse(c, "Match is not awaiting this driver's acceptance")
		}
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Match declined", nil)
}

// CancelMatch handles POST /matches/:id/cancel
func (h *Handler) CancelMatch(c echo.Context) error {
	var req models.MatchActionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if req.RiderID == "" {
		return utils.BadRequestResponse(c, "rider_id is required")
	}

	err := h.matchUC.CancelMatch(c.Request().Context(), c.Param("id"), req.RiderID)
	if err != nil {
		switch {
		case errors.Is(err, match.ErrMatchNotFound):
			return utils.NotFoundResponse(c, "Match not found")
		case errors.Is(err, match.ErrInvalidState):
			return utils.ConflictResponse(c, "Match is confirmed or does not belong to this rider")
		}
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Match cancelled", nil)
}

// GetMatchStatus handles GET /matches/:id
func (h *Handler) GetMatchStatus(c echo.Context) error {
	m, err := h.matchUC.GetMatchStatus(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, match.ErrMatchNotFound) {
			return utils.NotFoundResponse(c, "Match not found")
		}
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "", m)
}
