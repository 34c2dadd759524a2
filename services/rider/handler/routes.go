package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the rider service routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	riders := e.Group("/riders")
	riders.POST("/:id/requests", h.RequestRide)
	riders.GET("/:id/requests", h.ListRequests)
	riders.GET("/:id/requests/active", h.GetActiveRequest)
	riders.POST("/:id/requests/:requestId/cancel", h.CancelRide)
	riders.POST("/:id/requests/:requestId/rating", h.RateDriver)

	internal := e.Group("/internal/riders")
	internal.POST("/:id/trips/:tripId", h.ApplyTripUpdate)
	internal.POST("/:id/requests/:requestId/status", h.ApplyMatchStatus)
}
