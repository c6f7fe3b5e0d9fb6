package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Client represents a connected console session
type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan []byte
}

// Manager manages all active console connections and pushes snapshot
// change events so open list screens can re-fetch.
type Manager struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	broadcast  chan []byte
	mutex      sync.RWMutex
}

// SnapshotEvent tells a console that one collection changed.
type SnapshotEvent struct {
	Kind      string    `json:"kind"`
	Total     int       `json:"total"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		broadcast:  make(chan []byte, 16),
	}
}

// Start runs the manager's main loop in a goroutine
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client.ID] = client
				m.mutex.Unlock()
				log.Printf("Console connected: %s", client.ID)

			case client := <-m.Unregister:
				m.mutex.Lock()
				if _, ok := m.clients[client.ID]; ok {
					delete(m.clients, client.ID)
					close(client.Send)
				}
				m.mutex.Unlock()
				log.Printf("Console disconnected: %s", client.ID)

			case message := <-m.broadcast:
				m.mutex.Lock()
				for _, client := range m.clients {
					select {
					case client.Send <- message:
					default:
						close(client.Send)
						delete(m.clients, client.ID)
					}
				}
				m.mutex.Unlock()

			case <-ctx.Done():
				return
			}
		}
	}()
}

// BroadcastSnapshotEvent notifies every connected console that the
// given collection changed.
func (m *Manager) BroadcastSnapshotEvent(kind string, total int) {
	event := SnapshotEvent{
		Kind:      kind,
		Total:     total,
		UpdatedAt: time.Now().UTC(),
	}
	message, err := json.Marshal(event)
	if err != nil {
		log.Printf("error encoding snapshot event: %v", err)
		return
	}

	// Store notifications must never block on a full or stopped
	// manager; a dropped event only delays the next console re-fetch.
	select {
	case m.broadcast <- message:
	default:
		log.Printf("snapshot event dropped: broadcast queue full")
	}
}

// ReadPump reads messages from the connection until it closes. Incoming
// messages are ignored; the channel is push only.
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("error: %v", err)
			}
			break
		}
	}
}

// WritePump sends messages to the connection
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("error: %v", err)
			return
		}
	}
}
