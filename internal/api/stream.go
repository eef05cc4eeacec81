package api

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"cinecam/pkg/camera"
)

const streamWriteTimeout = 2 * time.Second

// StreamFrame is one message on the pose stream.
type StreamFrame struct {
	Pose   camera.Pose   `json:"pose"`
	Status camera.Status `json:"status"`
}

// StreamHandler pushes director frames to websocket clients.
type StreamHandler struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]struct{}
	upgrader websocket.Upgrader
}

// NewStreamHandler creates a new StreamHandler.
func NewStreamHandler() *StreamHandler {
	return &StreamHandler{
		clients: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			// The overlay UI may be served from another origin.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleStream upgrades the connection and registers the client.
func (h *StreamHandler) HandleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("Failed to upgrade stream connection", "error", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()
	slog.Info("Stream client connected", "clients", count)

	// Reader loop: we ignore client messages but need to consume them
	// to notice disconnects.
	go func() {
		defer h.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Broadcast sends a frame to every connected client. Clients that can't
// keep up are dropped.
func (h *StreamHandler) Broadcast(frame StreamFrame) {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for c := range h.clients {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	for _, c := range conns {
		_ = c.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
		if err := c.WriteJSON(frame); err != nil {
			h.drop(c)
		}
	}
}

// ClientCount returns the number of connected stream clients.
func (h *StreamHandler) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects all clients.
func (h *StreamHandler) Close() {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for c := range h.clients {
		conns = append(conns, c)
	}
	h.clients = make(map[*websocket.Conn]struct{})
	h.mu.Unlock()

	for _, c := range conns {
		_ = c.Close()
	}
}

func (h *StreamHandler) drop(conn *websocket.Conn) {
	h.mu.Lock()
	_, ok := h.clients[conn]
	delete(h.clients, conn)
	h.mu.Unlock()

	if ok {
		_ = conn.Close()
		slog.Info("Stream client disconnected")
	}
}
