package handler

import (
	"net/http"

	"github.com/google/uuid"
	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	ws "marketdesk/internal/infrastructure/websocket"
	"marketdesk/pkg/errors"
	"marketdesk/pkg/response"
)

type WebSocketHandler struct {
	wsManager *ws.Manager
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Restrict this in production
	},
}

func NewWebSocketHandler(wsManager *ws.Manager) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager: wsManager,
	}
}

// HandleWebSocket upgrades the connection and registers it for
// snapshot change events.
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return response.Error(c, errors.Internal("Failed to upgrade connection", err))
	}

	client := &ws.Client{
		ID:   uuid.New().String(),
		Conn: conn,
		Send: make(chan []byte, 256),
	}

	h.wsManager.Register <- client

	go client.WritePump()
	go client.ReadPump(h.wsManager)

	return nil
}
