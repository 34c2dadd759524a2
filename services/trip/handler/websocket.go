package handler

import (
	"context"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/lastmile/backend/internal/pkg/constants"
	"github.com/lastmile/backend/internal/pkg/events"
	"github.com/lastmile/backend/internal/pkg/logger"
	"github.com/lastmile/backend/internal/pkg/models"
)

// TripWebSocket handles GET /ws/trips?trip_id=T. It streams status records
// for one trip until the client disconnects.
func (h *Handler) TripWebSocket(c echo.Context) error {
	tripID := c.QueryParam("trip_id")
	if tripID == "" {
		return echo.NewHTTPError(400, "trip_id is required")
	}
	return h.wsManager.HandleConnection(c, func(client *models.WebSocketClient, ws *websocket.Conn) error {
		return h.streamTrip(client, ws, tripID)
	})
}

func (h *Handler) streamTrip(client *models.WebSocketClient, ws *websocket.Conn, tripID string) error {
	client.Conn = ws
	h.wsManager.AddClient(client)
	defer h.wsManager.RemoveClient(client.UserID)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initial snapshot so late subscribers see the current status
	if t, err := h.tripUC.GetTrip(ctx, tripID); err == nil {
		h.wsManager.NotifyClient(client.UserID, "trip_status", t)
	}

	channel := fmt.Sprintf(constants.ChannelTripUpdates, tripID)
	sub := h.redisClient.Subscribe(ctx, channel)
	defer sub.Close()

	// Drain the socket so client disconnects are noticed
	go func() {
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-sub.Channel():
			if !ok {
				return nil
			}
			id, status, ok := events.DecodeTripUpdate(msg.Payload)
			if !ok {
				logger.Debug("Ignoring malformed trip-update record",
					logger.String("trip_id", tripID),
					logger.String("payload", msg.Payload))
				continue
			}
			h.wsManager.NotifyClient(client.UserID, "trip_update", map[string]string{
				"trip_id": id,
				"status":  status,
			})
		}
	}
}
