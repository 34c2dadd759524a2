package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the trip service routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	trips := e.Group("/trips")
	trips.POST("", h.CreateTrip)
	trips.GET("", h.ListRiderTrips)
	trips.GET("/:id", h.GetTrip)
	trips.POST("/:id/pickup", h.RecordPickup)
	trips.POST("/:id/dropoff", h.RecordDropoff)

	e.GET("/ws/trips", h.TripWebSocket)
}
