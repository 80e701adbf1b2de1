package gamepad

import (
	"fmt"
	"math"
)

// DeadZone selects the analog filtering policy applied to stick readings.
type DeadZone int

const (
	// DeadZoneIndependentAxes filters each stick axis on its own.
	DeadZoneIndependentAxes DeadZone = iota
	// DeadZoneCircular filters the stick radially, preserving direction.
	DeadZoneCircular
	// DeadZoneNone rescales the raw range without removing a dead zone.
	DeadZoneNone
)

func (d DeadZone) String() string {
	switch d {
	case DeadZoneIndependentAxes:
		return "independent"
	case DeadZoneCircular:
		return "circular"
	case DeadZoneNone:
		return "none"
	}
	return "unknown"
}

// ParseDeadZone converts a configuration string into a DeadZone mode.
func ParseDeadZone(s string) (DeadZone, error) {
	switch s {
	case "independent", "":
		return DeadZoneIndependentAxes, nil
	case "circular":
		return DeadZoneCircular, nil
	case "none":
		return DeadZoneNone, nil
	}
	return DeadZoneIndependentAxes, fmt.Errorf("unknown dead-zone mode %q", s)
}

// Recommended thresholds for XInput-class hardware. Thumb axes report
// -32768..32767, triggers 0..255.
const (
	ThumbMax           = 32767
	LeftThumbDeadZone  = 7849
	RightThumbDeadZone = 8689
	TriggerMax         = 255
	TriggerThreshold   = 30
)

// ApplyLinearDeadZone maps one raw axis reading into [-1, 1], collapsing
// everything within deadZoneSize of rest to exactly zero. The value is
// shifted toward zero before scaling so there is no discontinuity at the
// dead-zone boundary, and reaches ±1 exactly at ±maxValue.
func ApplyLinearDeadZone(value, maxValue, deadZoneSize float64) float64 {
	switch {
	case value < -deadZoneSize:
		value += deadZoneSize
	case value > deadZoneSize:
		value -= deadZoneSize
	default:
		// Values inside the dead zone come out zero.
		return 0
	}
	return clamp(value/(maxValue-deadZoneSize), -1, 1)
}

// ApplyStickDeadZone filters a two-axis stick sample according to mode.
// Circular mode rescales the magnitude radially, which keeps diagonal
// input from being biased by the square shape of per-axis filtering.
func ApplyStickDeadZone(x, y float64, mode DeadZone, maxValue, deadZoneSize float64) (float64, float64) {
	switch mode {
	case DeadZoneIndependentAxes:
		return ApplyLinearDeadZone(x, maxValue, deadZoneSize),
			ApplyLinearDeadZone(y, maxValue, deadZoneSize)

	case DeadZoneCircular:
		dist := math.Sqrt(x*x + y*y)
		wanted := ApplyLinearDeadZone(dist, maxValue, deadZoneSize)
		// wanted == 0 also covers dist == 0, so we never divide by zero.
		scale := 0.0
		if wanted > 0 {
			scale = wanted / dist
		}
		return clamp(x*scale, -1, 1), clamp(y*scale, -1, 1)

	default: // DeadZoneNone
		return ApplyLinearDeadZone(x, maxValue, 0),
			ApplyLinearDeadZone(y, maxValue, 0)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
