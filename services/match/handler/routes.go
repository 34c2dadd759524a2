package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the match service routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	matches := e.Group("/matches")
	matches.POST("", h.RequestMatch)
	matches.GET("/:id", h.GetMatchStatus)
	matches.POST("/:id/accept", h.AcceptMatch)
	matches.POST("/:id/decline", h.DeclineMatch)
	matches.POST("/:id/cancel", h.CancelMatch)

	e.GET("/ws/status", h.StatusWebSocket)
}
