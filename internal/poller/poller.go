// Package poller drives the per-frame polling sequence: raw snapshots in,
// normalized states and button transition edges out.
package poller

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/openpad/gamepad"
	"github.com/openpad/gamepad/internal/monitoring"
)

// Transition is one button edge observed between two frames.
type Transition struct {
	Button gamepad.Button
	State  gamepad.ButtonState
}

// Update is one player's state change, published whenever the normalized
// state differs from the previously published one or a button edge fired.
type Update struct {
	Player      int
	State       gamepad.State
	Transitions []Transition
}

// Poller polls every player slot once per tick, runs the snapshots through
// a per-player ButtonStateTracker and publishes the resulting updates.
type Poller struct {
	pad      *gamepad.Gamepad
	mode     gamepad.DeadZone
	interval time.Duration
	trackers [gamepad.MaxPlayerCount]gamepad.ButtonStateTracker
	prev     [gamepad.MaxPlayerCount]gamepad.State
	updates  chan Update
	log      zerolog.Logger
}

func New(pad *gamepad.Gamepad, mode gamepad.DeadZone, interval time.Duration, log zerolog.Logger) *Poller {
	return &Poller{
		pad:      pad,
		mode:     mode,
		interval: interval,
		updates:  make(chan Update, 64),
		log:      log.With().Str("component", "poller").Logger(),
	}
}

// Updates returns the channel on which state updates are published.
func (p *Poller) Updates() <-chan Update {
	return p.updates
}

// Run ticks until ctx is cancelled. The polling sequence is synchronous
// and single-threaded; only this goroutine touches the trackers.
func (p *Poller) Run(ctx context.Context) {
	p.log.Info().
		Stringer("mode", p.mode).
		Dur("interval", p.interval).
		Msg("polling started")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.tick()
		}
	}
}

func (p *Poller) tick() {
	connected := 0
	for player := 0; player < gamepad.MaxPlayerCount; player++ {
		state := p.pad.GetState(player, p.mode)
		monitoring.PollsTotal.Inc()
		if state.Connected {
			connected++
		}

		tracker := &p.trackers[player]
		tracker.Update(state)

		var transitions []Transition
		for b := gamepad.Button(0); b < gamepad.ButtonCount; b++ {
			s := tracker.State(b)
			if s == gamepad.Pressed || s == gamepad.Released {
				transitions = append(transitions, Transition{Button: b, State: s})
				monitoring.TransitionsTotal.WithLabelValues(s.String()).Inc()
			}
		}

		if state == p.prev[player] && len(transitions) == 0 {
			continue
		}
		p.prev[player] = state

		select {
		case p.updates <- Update{Player: player, State: state, Transitions: transitions}:
		default:
			// Drop when the consumer lags; the next full state
			// supersedes anything lost.
		}
	}
	monitoring.ConnectedPads.Set(float64(connected))
}

// SelectPlayer validates a 1-based player index requested by a client.
func (p *Poller) SelectPlayer(player int) bool {
	return player >= 1 && player <= gamepad.MaxPlayerCount
}

// Rumble forwards a client vibration request for a 1-based player index.
func (p *Poller) Rumble(player int, left, right float64) bool {
	if !p.SelectPlayer(player) {
		return false
	}
	return p.pad.SetVibration(player-1, left, right)
}
