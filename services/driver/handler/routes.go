package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the driver service routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	drivers := e.Group("/drivers")
	drivers.POST("/:id/route", h.RegisterRoute)
	drivers.PUT("/:id/location", h.UpdateLocation)
	drivers.GET("/:id", h.GetDriver)
	drivers.GET("/:id/history", h.GetRideHistory)
	drivers.GET("", h.ListDrivers)

	internal := e.Group("/internal/drivers")
	internal.POST("/:id/trips", h.AcceptTrip)
	internal.POST("/:id/trips/:tripId/start", h.StartTrip)
	internal.POST("/:id/trips/:tripId/complete", h.CompleteActiveTrip)

	e.GET("/ws/dashboard", h.DashboardWebSocket)
}
