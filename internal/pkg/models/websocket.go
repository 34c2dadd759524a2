package models

import "github.com/gorilla/websocket"

// WebSocketClient tracks an active streaming connection
type WebSocketClient struct {
	UserID string
	Conn   *websocket.Conn
}

// WSMessage is the envelope pushed to websocket clients
type WSMessage struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}
