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

// DashboardWebSocket handles GET /ws/dashboard. It subscribes to the
// driver's dashboard channel and forwards each record until the driver
// disconnects; the subscription is released on disconnect.
func (h *Handler) DashboardWebSocket(c echo.Context) error {
	return h.wsManager.HandleConnection(c, h.handleDashboardClient)
}

func (h *Handler) handleDashboardClient(client *models.WebSocketClient, ws *websocket.Conn) error {
	client.Conn = ws
	h.wsManager.AddClient(client)
	defer h.wsManager.RemoveClient(client.UserID)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initial snapshot so a reconnecting driver sees current legs
	if d, err := h.driverUC.GetDriver(ctx, client.UserID); err == nil {
		h.wsManager.NotifyClient(client.UserID, "active_trips", d.ActiveTrips)
	}

	channel := fmt.Sprintf(constants.ChannelDriverDashboard, client.UserID)
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
			fields, ok := events.Decode(msg.Payload, 2)
			if !ok {
				// Malformed records are ignored, not fatal
				logger.Debug("Ignoring malformed dashboard record",
					logger.String("driver_id", client.UserID),
					logger.String("payload", msg.Payload))
				continue
			}
			h.wsManager.NotifyClient(client.UserID, fields[0], fields[1:])
		}
	}
}
