package hub

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/openpad/gamepad"
	"github.com/openpad/gamepad/internal/monitoring"
	"github.com/openpad/gamepad/internal/poller"
)

const (
	fullSyncInterval = 5 * time.Second
	deltaCountSync   = 100
)

// Broadcaster consumes poller updates and fans them out to the hub:
// delta messages for state changes, event messages for button edges, and
// a periodic full sync so late or lossy clients converge.
type Broadcaster struct {
	hub     *Hub
	updates <-chan poller.Update
	log     zerolog.Logger

	// mu guards the published-state bookkeeping: Run writes it while
	// SendInitialState reads it from websocket handler goroutines.
	mu        sync.Mutex
	lastState [gamepad.MaxPlayerCount]gamepad.State
	deltas    [gamepad.MaxPlayerCount]int64
	seq       int64
}

func NewBroadcaster(h *Hub, updates <-chan poller.Update, log zerolog.Logger) *Broadcaster {
	return &Broadcaster{
		hub:     h,
		updates: updates,
		log:     log.With().Str("component", "broadcaster").Logger(),
	}
}

// Run loops until ctx is cancelled. Should be run in a goroutine.
func (b *Broadcaster) Run(ctx context.Context) {
	ticker := time.NewTicker(fullSyncInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case u, ok := <-b.updates:
			if !ok {
				return
			}
			b.handle(u)

		case <-ticker.C:
			b.fullSync()
		}
	}
}

func (b *Broadcaster) fullSync() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for player := range b.lastState {
		if b.lastState[player].Connected {
			b.seq++
			b.sendFull(player+1, b.lastState[player])
		}
	}
}

func (b *Broadcaster) handle(u poller.Update) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delta := ComputeDelta(b.lastState[u.Player], u.State)
	b.lastState[u.Player] = u.State
	player := u.Player + 1 // clients address players 1-based

	for _, tr := range u.Transitions {
		b.seq++
		b.send(NewEventMessage(b.seq, player, tr.Button, tr.State), player)
	}

	if delta.IsEmpty() {
		return
	}

	b.seq++
	b.deltas[u.Player]++
	if b.deltas[u.Player] >= deltaCountSync {
		b.deltas[u.Player] = 0
		b.sendFull(player, u.State)
		return
	}
	b.send(NewDeltaMessage(b.seq, player, delta), player)
}

// SendInitialState pushes the current full state of the client's player
// to a newly connected client. Safe to call from handler goroutines.
func (b *Broadcaster) SendInitialState(c *Client) {
	player := c.Player()

	b.mu.Lock()
	b.seq++
	seq := b.seq
	state := b.lastState[player-1]
	b.mu.Unlock()

	msg := NewFullMessage(seq, player, &state)
	data, err := json.Marshal(msg)
	if err != nil {
		b.log.Error().Err(err).Msg("marshal initial state")
		return
	}
	select {
	case c.send <- data:
	default:
	}
}

func (b *Broadcaster) sendFull(player int, state gamepad.State) {
	b.send(NewFullMessage(b.seq, player, &state), player)
}

func (b *Broadcaster) send(msg *WSMessage, player int) {
	data, err := json.Marshal(msg)
	if err != nil {
		b.log.Error().Err(err).Str("type", msg.Type).Msg("marshal message")
		return
	}
	b.hub.BroadcastToPlayer(data, player)
	monitoring.BroadcastsTotal.Inc()
}
