package sse

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/execution-hub/presentation-hub/internal/domain/notification"
)

const eventHeartbeat = "heartbeat"

// Hub fans notification events out to connected dashboard streams. A client
// whose buffer is full misses the event rather than blocking the sender.
type Hub struct {
	mu        sync.RWMutex
	clients   map[string]*notification.SSEClient
	heartbeat time.Duration
	logger    zerolog.Logger
}

func NewHub(heartbeat time.Duration, logger zerolog.Logger) *Hub {
	return &Hub{
		clients:   make(map[string]*notification.SSEClient),
		heartbeat: heartbeat,
		logger:    logger.With().Str("component", "sse").Logger(),
	}
}

func (h *Hub) Register(client *notification.SSEClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client.ClientID] = client
	h.logger.Debug().Str("client_id", client.ClientID).Int("clients", len(h.clients)).Msg("stream connected")
}

func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[clientID]; ok {
		c.Close()
		delete(h.clients, clientID)
		h.logger.Debug().Str("client_id", clientID).Int("clients", len(h.clients)).Msg("stream disconnected")
	}
}

func (h *Hub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) BroadcastToAll(message *notification.SSEMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	dropped := 0
	for _, c := range h.clients {
		if !trySend(c, message) {
			dropped++
		}
	}
	if dropped > 0 {
		h.logger.Warn().Str("event", message.Event).Int("dropped", dropped).Msg("slow streams missed event")
	}
}

func (h *Hub) SendToClient(clientID string, message *notification.SSEMessage) error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	c := h.clients[clientID]
	if c == nil {
		return notification.ErrClientNotFound
	}
	if !trySend(c, message) {
		return notification.ErrChannelFull
	}
	return nil
}

// Start sends heartbeats until ctx is done, then disconnects every client.
func (h *Hub) Start(ctx context.Context) {
	if h.heartbeat <= 0 {
		<-ctx.Done()
		h.Stop()
		return
	}
	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			h.Stop()
			return
		case <-ticker.C:
			h.BroadcastToAll(notification.NewSSEMessage(eventHeartbeat, []byte(`{}`)))
		}
	}
}

func (h *Hub) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, c := range h.clients {
		c.Close()
		delete(h.clients, id)
	}
}

func trySend(c *notification.SSEClient, msg *notification.SSEMessage) bool {
	select {
	case c.MessageChan <- msg:
		return true
	default:
		return false
	}
}
