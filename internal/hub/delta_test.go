package hub

import (
	"testing"

	"github.com/openpad/gamepad"
)

func TestComputeDeltaEmpty(t *testing.T) {
	s := gamepad.State{Connected: true}
	if d := ComputeDelta(s, s); !d.IsEmpty() {
		t.Errorf("delta of identical states not empty: %+v", d)
	}
}

func TestComputeDeltaSections(t *testing.T) {
	old := gamepad.State{Connected: true}

	cur := old
	cur.Buttons.A = true
	d := ComputeDelta(old, cur)
	if d.Buttons == nil || !d.Buttons.A {
		t.Error("button change not reported")
	}
	if d.DPad != nil || d.ThumbSticks != nil || d.Triggers != nil || d.Connected != nil {
		t.Errorf("unrelated sections reported: %+v", d)
	}

	cur = old
	cur.ThumbSticks.LeftX = 0.5
	d = ComputeDelta(old, cur)
	if d.ThumbSticks == nil {
		t.Error("stick change not reported")
	}

	cur = old
	cur.Connected = false
	d = ComputeDelta(old, cur)
	if d.Connected == nil || *d.Connected {
		t.Error("disconnect not reported")
	}
}

func TestComputeDeltaJitterSuppressed(t *testing.T) {
	old := gamepad.State{Connected: true}
	cur := old
	cur.ThumbSticks.RightY = 0.004
	cur.Triggers.Left = 0.009
	if d := ComputeDelta(old, cur); !d.IsEmpty() {
		t.Errorf("sub-threshold analog change reported: %+v", d)
	}
}
