package gamepad

import (
	"math"
	"testing"
)

const epsilon = 1e-4

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestApplyLinearDeadZone(t *testing.T) {
	tests := []struct {
		name         string
		value        float64
		maxValue     float64
		deadZoneSize float64
		want         float64
	}{
		{"zero", 0, 1, 0.24, 0},
		{"inside dead zone positive", 0.2, 1, 0.24, 0},
		{"inside dead zone negative", -0.2, 1, 0.24, 0},
		{"at dead zone boundary", 0.24, 1, 0.24, 0},
		{"xbox recommended", 0.5, 1, 0.24, (0.5 - 0.24) / (1 - 0.24)},
		{"reaches one at max", 1, 1, 0.24, 1},
		{"reaches minus one at negative max", -1, 1, 0.24, -1},
		{"clamps beyond max", 1.5, 1, 0.24, 1},
		{"clamps beyond negative max", -1.5, 1, 0.24, -1},
		{"left thumb raw units", 20000, 32767, 7849, (20000.0 - 7849) / (32767 - 7849)},
		{"trigger raw units", 255, 255, 30, 1},
		{"no dead zone rescale", 0.5, 1, 0, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyLinearDeadZone(tt.value, tt.maxValue, tt.deadZoneSize)
			if !almostEqual(got, tt.want) {
				t.Errorf("ApplyLinearDeadZone(%v, %v, %v) = %v, want %v",
					tt.value, tt.maxValue, tt.deadZoneSize, got, tt.want)
			}
		})
	}
}

func TestApplyLinearDeadZoneOddSymmetry(t *testing.T) {
	for v := 0.0; v <= 2.0; v += 0.05 {
		pos := ApplyLinearDeadZone(v, 1, 0.24)
		neg := ApplyLinearDeadZone(-v, 1, 0.24)
		if !almostEqual(pos, -neg) {
			t.Fatalf("f(%v) = %v but f(%v) = %v, want odd symmetry", v, pos, -v, neg)
		}
	}
}

func TestApplyLinearDeadZoneBounded(t *testing.T) {
	for v := -100000.0; v <= 100000.0; v += 1000 {
		got := ApplyLinearDeadZone(v, 32767, 7849)
		if got < -1 || got > 1 {
			t.Fatalf("ApplyLinearDeadZone(%v, 32767, 7849) = %v out of [-1, 1]", v, got)
		}
	}
}

func TestApplyStickDeadZoneIndependentAxes(t *testing.T) {
	x, y := ApplyStickDeadZone(20000, 0, DeadZoneIndependentAxes, 32767, 7849)
	want := (20000.0 - 7849) / (32767 - 7849)
	if !almostEqual(x, want) {
		t.Errorf("x = %v, want %v", x, want)
	}
	if y != 0 {
		t.Errorf("y = %v, want 0", y)
	}
}

func TestApplyStickDeadZoneCircularZero(t *testing.T) {
	x, y := ApplyStickDeadZone(0, 0, DeadZoneCircular, 32767, 7849)
	if x != 0 || y != 0 {
		t.Errorf("got (%v, %v), want (0, 0)", x, y)
	}
}

func TestApplyStickDeadZoneCircularInsideZone(t *testing.T) {
	// Magnitude sqrt(5000^2+5000^2) ≈ 7071 < 7849.
	x, y := ApplyStickDeadZone(5000, 5000, DeadZoneCircular, 32767, 7849)
	if x != 0 || y != 0 {
		t.Errorf("got (%v, %v), want (0, 0)", x, y)
	}
}

func TestApplyStickDeadZoneCircularPreservesDirection(t *testing.T) {
	samples := [][2]float64{
		{20000, 0},
		{0, 20000},
		{15000, 15000},
		{-12000, 9000},
		{-8000, -20000},
		{30000, -10000},
	}
	for _, s := range samples {
		x, y := ApplyStickDeadZone(s[0], s[1], DeadZoneCircular, 32767, 7849)
		wantAngle := math.Atan2(s[1], s[0])
		gotAngle := math.Atan2(y, x)
		if !almostEqual(wantAngle, gotAngle) {
			t.Errorf("input (%v, %v): angle %v, want %v", s[0], s[1], gotAngle, wantAngle)
		}
	}
}

func TestApplyStickDeadZoneCircularDiagonalUnbiased(t *testing.T) {
	// A full diagonal deflection must not exceed unit magnitude.
	x, y := ApplyStickDeadZone(32767, 32767, DeadZoneCircular, 32767, 7849)
	if mag := math.Hypot(x, y); mag > 1+epsilon {
		t.Errorf("magnitude %v exceeds 1", mag)
	}
}

func TestApplyStickDeadZoneNone(t *testing.T) {
	x, y := ApplyStickDeadZone(16384, -16384, DeadZoneNone, 32768, 7849)
	if !almostEqual(x, 0.5) || !almostEqual(y, -0.5) {
		t.Errorf("got (%v, %v), want (0.5, -0.5)", x, y)
	}
}

func TestParseDeadZone(t *testing.T) {
	tests := []struct {
		in      string
		want    DeadZone
		wantErr bool
	}{
		{"independent", DeadZoneIndependentAxes, false},
		{"circular", DeadZoneCircular, false},
		{"none", DeadZoneNone, false},
		{"", DeadZoneIndependentAxes, false},
		{"radial", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseDeadZone(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDeadZone(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseDeadZone(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
