package websocket

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/lastmile/backend/internal/pkg/models"
)

// HeaderUserID carries the caller identity. Token verification happens at
// the edge, outside this module.
const HeaderUserID = "X-User-ID"

// Manager manages WebSocket connections and client state
type Manager struct {
	sync.RWMutex
	clients  map[string]*models.WebSocketClient
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager() *Manager {
	return &Manager{
		clients: make(map[string]*models.WebSocketClient),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection identifies and upgrades a new WebSocket connection, then
// hands it to the client handler. The connection is closed when the handler
// returns.
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*models.WebSocketClient, *websocket.Conn) error) error {
	userID := c.Request().Header.Get(HeaderUserID)
	if userID == "" {
		userID = c.QueryParam("user_id")
	}
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user identity is required")
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	return handleClient(&models.WebSocketClient{UserID: userID}, ws)
}

// AddClient safely adds a client to the manager
func (m *Manager) AddClient(client *models.WebSocketClient) {
	m.Lock()
	defer m.Unlock()
	m.clients[client.UserID] = client
}

// RemoveClient safely removes a client from the manager
func (m *Manager) RemoveClient(userID string) {
	m.Lock()
	defer m.Unlock()
	delete(m.clients, userID)
}

// GetClient returns a client by ID
func (m *Manager) GetClient(userID string) (*models.WebSocketClient, bool) {
	m.RLock()
	defer m.RUnlock()
	client, exists := m.clients[userID]
	return client, exists
}

// NotifyClient pushes an event to a connected client, if present
func (m *Manager) NotifyClient(userID string, event string, data interface{}) {
	client, exists := m.GetClient(userID)
	if !exists || client.Conn == nil {
		return
	}
	_ = client.Conn.WriteJSON(models.WSMessage{Event: event, Data: data})
}
