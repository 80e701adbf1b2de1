package hub

import (
	"time"

	"github.com/openpad/gamepad"
)

// WSMessage is a server-to-client message.
type WSMessage struct {
	Type      string         `json:"type"` // "full", "delta", "event", "player_selected", "rumble_result"
	Seq       int64          `json:"seq"`
	Timestamp int64          `json:"timestamp"` // unix milliseconds
	Player    int            `json:"player,omitempty"`
	Data      *gamepad.State `json:"data,omitempty"`    // full state for "full"
	Changes   *Delta         `json:"changes,omitempty"` // changed fields for "delta"
	Button    string         `json:"button,omitempty"`  // button name for "event"
	Event     string         `json:"event,omitempty"`   // "pressed" or "released" for "event"
	OK        *bool          `json:"ok,omitempty"`      // result for "rumble_result"
}

// NewFullMessage carries a complete normalized state.
func NewFullMessage(seq int64, player int, state *gamepad.State) *WSMessage {
	return &WSMessage{
		Type:      "full",
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		Player:    player,
		Data:      state,
	}
}

// NewDeltaMessage carries only the fields that changed since the last
// published state.
func NewDeltaMessage(seq int64, player int, changes *Delta) *WSMessage {
	return &WSMessage{
		Type:      "delta",
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		Player:    player,
		Changes:   changes,
	}
}

// NewEventMessage carries one button transition edge.
func NewEventMessage(seq int64, player int, button gamepad.Button, state gamepad.ButtonState) *WSMessage {
	return &WSMessage{
		Type:      "event",
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		Player:    player,
		Button:    button.String(),
		Event:     state.String(),
	}
}

// NewPlayerSelectedMessage confirms a player switch.
func NewPlayerSelectedMessage(player int) *WSMessage {
	return &WSMessage{
		Type:      "player_selected",
		Timestamp: time.Now().UnixMilli(),
		Player:    player,
	}
}

// NewRumbleResultMessage reports whether a vibration request was accepted.
func NewRumbleResultMessage(player int, ok bool) *WSMessage {
	return &WSMessage{
		Type:      "rumble_result",
		Timestamp: time.Now().UnixMilli(),
		Player:    player,
		OK:        &ok,
	}
}

// ClientMessage is a client-to-server command.
type ClientMessage struct {
	Type   string  `json:"type"` // "select_player" or "rumble"
	Player int     `json:"player,omitempty"`
	Left   float64 `json:"left,omitempty"`
	Right  float64 `json:"right,omitempty"`
}
