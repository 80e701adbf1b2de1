// Package hub fans controller state out to WebSocket clients.
package hub

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// Hub manages WebSocket clients and per-player message broadcast.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
	log        zerolog.Logger
}

func New(log zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		log:        log.With().Str("component", "hub").Logger(),
	}
}

// Register adds a new client to the hub.
func (h *Hub) Register(c *Client) {
	h.register <- c
}

// Unregister removes a client from the hub.
func (h *Hub) Unregister(c *Client) {
	h.unregister <- c
}

// BroadcastToPlayer sends a message to every client listening to the
// given 1-based player index.
func (h *Hub) BroadcastToPlayer(msg []byte, player int) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		if client.Player() != player {
			continue
		}
		select {
		case client.send <- msg:
		default:
			// Client send buffer full, disconnect.
			go func(c *Client) {
				h.unregister <- c
			}(client)
		}
	}
}

// Run processes client registration until ctx is cancelled. Should be
// run in a goroutine.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			h.log.Info().Int("total", total).Msg("client connected")

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			h.log.Info().Int("total", total).Msg("client disconnected")
		}
	}
}
