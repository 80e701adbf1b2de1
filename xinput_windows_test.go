//go:build windows

package gamepad

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestThrottleRetryConnectedSlot(t *testing.T) {
	d := NewXInputDriver(zerolog.Nop())
	d.connected[0] = true
	if d.throttleRetry(0) {
		t.Error("connected slot throttled")
	}
}

func TestThrottleRetryOutOfRangePlayer(t *testing.T) {
	d := NewXInputDriver(zerolog.Nop())
	for _, player := range []int{-1, MaxPlayerCount, 100} {
		if !d.throttleRetry(player) {
			t.Errorf("player %d not throttled", player)
		}
	}
}

func TestThrottleRetrySameSlotWindow(t *testing.T) {
	d := NewXInputDriver(zerolog.Nop())

	// A disconnected slot read moments ago is denied for a full second.
	d.lastRead[1] = time.Now().Add(-100 * time.Millisecond)
	if !d.throttleRetry(1) {
		t.Error("poll allowed inside the same-slot retry window")
	}

	d.lastRead[1] = time.Now().Add(-1100 * time.Millisecond)
	if d.throttleRetry(1) {
		t.Error("poll denied after the same-slot retry window elapsed")
	}
}

func TestThrottleRetryCrossSlotWindow(t *testing.T) {
	d := NewXInputDriver(zerolog.Nop())

	// A recent empty read of any sibling slot denies other slots for a
	// quarter of the interval.
	d.lastRead[0] = time.Now().Add(-100 * time.Millisecond)
	if !d.throttleRetry(2) {
		t.Error("poll allowed inside the cross-slot retry window")
	}

	d.lastRead[0] = time.Now().Add(-300 * time.Millisecond)
	if d.throttleRetry(2) {
		t.Error("poll denied after the cross-slot retry window elapsed")
	}
}

func TestThrottleRetryIgnoresConnectedSiblings(t *testing.T) {
	d := NewXInputDriver(zerolog.Nop())

	// Connected slots never contribute a retry window.
	d.connected[0] = true
	d.lastRead[0] = time.Now()
	if d.throttleRetry(3) {
		t.Error("connected sibling throttled an empty slot")
	}
}
