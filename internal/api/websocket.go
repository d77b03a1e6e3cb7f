package api

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/sakinah-app/sakinah/internal/logging"
)

// GlobalHub is the shared WebSocket hub for broadcasting guidance events.
var GlobalHub *Hub

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// EventMessage is a guidance lifecycle event sent to WebSocket clients.
type EventMessage struct {
	Type      string `json:"type"` // "guidance_started", "guidance_complete", "guidance_error"
	SessionID string `json:"session_id,omitempty"`
	Feeling   string `json:"feeling,omitempty"`
	Message   string `json:"message,omitempty"`
	Timestamp string `json:"timestamp"`
}

// Client represents a WebSocket client connection.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Hub maintains active WebSocket connections and broadcasts messages.
type Hub struct {
	mu         sync.RWMutex
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
}

// NewHub creates a new WebSocket hub.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run starts the hub's main loop to handle client registration and
// broadcasting.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			logging.WebSocketEvent("client_connected", len(h.clients))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			logging.WebSocketEvent("client_disconnected", len(h.clients))

		case message := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Client channel full, disconnect.
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Broadcast sends an event to all connected clients.
func (h *Hub) Broadcast(msg EventMessage) {
	if msg.Timestamp == "" {
		msg.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	data, err := json.Marshal(msg)
	if err != nil {
		logging.Error("failed to marshal event message", "error", err)
		return
	}

	select {
	case h.broadcast <- data:
	default:
		logging.Warn("broadcast channel full, dropping message")
	}
}

// broadcastEvent sends a guidance lifecycle event through the global hub.
func broadcastEvent(eventType, sessionID, feeling, message string) {
	if GlobalHub == nil {
		return
	}
	GlobalHub.Broadcast(EventMessage{
		Type:      eventType,
		SessionID: sessionID,
		Feeling:   feeling,
		Message:   message,
	})
}

// wsUpgrader checks the request origin against the configured CORS list;
// with no configured origins every origin is accepted.
var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		if len(ServerConfig.AllowedOrigins) == 0 {
			return true
		}
		origin := r.Header.Get("Origin")
		for _, o := range ServerConfig.AllowedOrigins {
			if origin == o {
				return true
			}
		}
		return false
	},
}

// handleWebSocket upgrades the connection and registers it with the hub.
func handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Error("websocket upgrade failed", "error", err)
		return
	}

	client := &Client{
		hub:  GlobalHub,
		conn: conn,
		send: make(chan []byte, 64),
	}
	client.hub.register <- client

	go client.writePump()
	go client.readPump()
}

// readPump drains inbound frames so control messages are processed; the
// feed is broadcast-only.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump forwards broadcast messages to the client and keeps the
// connection alive with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
