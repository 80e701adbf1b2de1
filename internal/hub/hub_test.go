package hub

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/openpad/gamepad"
	"github.com/openpad/gamepad/internal/poller"
)

func newTestClient(h *Hub) *Client {
	return NewClient(h, nil, zerolog.Nop())
}

// addClient registers a client directly, bypassing the Run loop.
func addClient(h *Hub, c *Client) {
	h.mu.Lock()
	h.clients[c] = true
	h.mu.Unlock()
}

func TestHubRunStopsOnCancel(t *testing.T) {
	h := New(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestHubRegisterUnregister(t *testing.T) {
	h := New(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.Run(ctx)

	c := newTestClient(h)
	h.Register(c)
	h.Unregister(c)

	select {
	case _, open := <-c.send:
		if open {
			t.Fatal("send channel delivered a message instead of closing")
		}
	case <-time.After(time.Second):
		t.Fatal("send channel not closed after unregister")
	}
}

func TestBroadcastFollowsPlayerSwitch(t *testing.T) {
	h := New(zerolog.Nop())
	c := newTestClient(h)
	addClient(h, c)

	if got := c.Player(); got != 1 {
		t.Fatalf("new client listens to player %d, want 1", got)
	}

	h.BroadcastToPlayer([]byte("p1"), 1)
	if len(c.send) != 1 {
		t.Fatalf("message for player 1 not delivered, queue len %d", len(c.send))
	}
	<-c.send

	c.setPlayer(2)
	h.BroadcastToPlayer([]byte("p1"), 1)
	if len(c.send) != 0 {
		t.Fatal("client still receives player 1 messages after switching to 2")
	}
	h.BroadcastToPlayer([]byte("p2"), 2)
	if len(c.send) != 1 {
		t.Fatal("message for player 2 not delivered after switch")
	}
}

// Exercises the broadcaster's shared bookkeeping from two sides at once:
// state updates flowing through handle and new connections pulling the
// current state via SendInitialState. Run with the race detector.
func TestBroadcasterConcurrentInitialState(t *testing.T) {
	h := New(zerolog.Nop())
	c := newTestClient(h)
	addClient(h, c)

	b := NewBroadcaster(h, nil, zerolog.Nop())

	const rounds = 50
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			state := gamepad.State{Connected: true}
			state.Triggers.Left = float64(i%2) * 0.5
			b.handle(poller.Update{Player: 0, State: state})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			b.SendInitialState(c)
		}
	}()
	wg.Wait()

	// Every handle round changed the left trigger and every initial-state
	// push bumps the sequence, so the counter lands exactly at the total.
	b.mu.Lock()
	seq := b.seq
	b.mu.Unlock()
	if seq != 2*rounds {
		t.Errorf("seq = %d after %d updates and %d syncs, want %d", seq, rounds, rounds, 2*rounds)
	}

	seen := make(map[int64]bool)
	for len(c.send) > 0 {
		var msg WSMessage
		if err := json.Unmarshal(<-c.send, &msg); err != nil {
			t.Fatalf("undecodable message: %v", err)
		}
		if msg.Seq <= 0 || msg.Seq > 2*rounds {
			t.Fatalf("seq %d out of range", msg.Seq)
		}
		if seen[msg.Seq] {
			t.Fatalf("seq %d delivered twice", msg.Seq)
		}
		seen[msg.Seq] = true
	}
}

// ReadPump rebinding the listened player must not tear against broadcast
// reads of the same field.
func TestClientPlayerConcurrentAccess(t *testing.T) {
	h := New(zerolog.Nop())
	c := newTestClient(h)
	addClient(h, c)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			c.setPlayer(1 + i%gamepad.MaxPlayerCount)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			h.BroadcastToPlayer([]byte("x"), 1+i%gamepad.MaxPlayerCount)
		}
	}()
	wg.Wait()

	if p := c.Player(); p < 1 || p > gamepad.MaxPlayerCount {
		t.Errorf("player index %d out of range after concurrent switches", p)
	}
}
