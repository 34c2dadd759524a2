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

// StatusWebSocket handles GET /ws/status. It streams match-status records
// for the connected rider until disconnect.
func (h *Handler) StatusWebSocket(c echo.Context) error {
	return h.wsManager.HandleConnection(c, h.handleStatusClient)
}

func (h *Handler) handleStatusClient(client *models.WebSocketClient, ws *websocket.Conn) error {
	client.Conn = ws
	h.wsManager.AddClient(client)
	defer h.wsManager.RemoveClient(client.UserID)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	channel := fmt.Sprintf(constants.ChannelMatchStatus, client.UserID)
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
			record, ok := events.DecodeMatchStatus(msg.Payload)
			if !ok {
				logger.Debug("Ignoring malformed match-status record",
					logger.String("rider_id", client.UserID),
					logger.String("payload", msg.Payload))
				continue
			}
			h.wsManager.NotifyClient(client.UserID, "match_status", record)
		}
	}
}
