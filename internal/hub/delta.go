package hub

import (
	"math"

	"github.com/openpad/gamepad"
)

// analogThreshold suppresses deltas for sub-precision stick jitter.
const analogThreshold = 0.01

// Delta holds the State sections that changed between two snapshots.
type Delta struct {
	Connected   *bool                `json:"connected,omitempty"`
	Buttons     *gamepad.Buttons     `json:"buttons,omitempty"`
	DPad        *gamepad.DPad        `json:"dpad,omitempty"`
	ThumbSticks *gamepad.ThumbSticks `json:"thumbSticks,omitempty"`
	Triggers    *gamepad.Triggers    `json:"triggers,omitempty"`
}

func (d *Delta) IsEmpty() bool {
	return d.Connected == nil &&
		d.Buttons == nil &&
		d.DPad == nil &&
		d.ThumbSticks == nil &&
		d.Triggers == nil
}

func floatEqual(a, b float64) bool {
	return math.Abs(a-b) < analogThreshold
}

// ComputeDelta compares two states section by section.
func ComputeDelta(old, cur gamepad.State) *Delta {
	d := &Delta{}

	if old.Connected != cur.Connected {
		d.Connected = &cur.Connected
	}
	if old.Buttons != cur.Buttons {
		d.Buttons = &cur.Buttons
	}
	if old.DPad != cur.DPad {
		d.DPad = &cur.DPad
	}

	if !floatEqual(old.ThumbSticks.LeftX, cur.ThumbSticks.LeftX) ||
		!floatEqual(old.ThumbSticks.LeftY, cur.ThumbSticks.LeftY) ||
		!floatEqual(old.ThumbSticks.RightX, cur.ThumbSticks.RightX) ||
		!floatEqual(old.ThumbSticks.RightY, cur.ThumbSticks.RightY) {
		d.ThumbSticks = &cur.ThumbSticks
	}

	if !floatEqual(old.Triggers.Left, cur.Triggers.Left) ||
		!floatEqual(old.Triggers.Right, cur.Triggers.Right) {
		d.Triggers = &cur.Triggers
	}

	return d
}
