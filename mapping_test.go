package gamepad

import "testing"

func TestGetMappingKnownDevices(t *testing.T) {
	tests := []struct {
		vendor, product uint16
		want            string
	}{
		{0x045E, 0x028E, "xbox"},
		{0x054C, 0x0CE6, "playstation"},
		{0x057E, 0x2009, "switch_pro"},
		{0xBEEF, 0xCAFE, "generic"},
	}
	for _, tt := range tests {
		if got := GetMapping(tt.vendor, tt.product); got.Name != tt.want {
			t.Errorf("GetMapping(%04X, %04X) = %q, want %q", tt.vendor, tt.product, got.Name, tt.want)
		}
	}
}

func TestScaleTrigger(t *testing.T) {
	tests := []struct {
		name          string
		raw, min, max int16
		want          uint8
	}{
		{"full range rest", -32768, -32768, 32767, 0},
		{"full range max", 32767, -32768, 32767, 255},
		{"half range", 0, -32768, 32767, 127},
		{"positive range max", 32767, 0, 32767, 255},
		{"below min clamps", -100, 0, 32767, 0},
		{"degenerate range", 100, 50, 50, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scaleTrigger(tt.raw, tt.min, tt.max); got != tt.want {
				t.Errorf("scaleTrigger(%d, %d, %d) = %d, want %d", tt.raw, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestInvertAxis(t *testing.T) {
	if got := invertAxis(-32768); got != 32767 {
		t.Errorf("invertAxis(-32768) = %d, want 32767", got)
	}
	if got := invertAxis(32767); got != -32767 {
		t.Errorf("invertAxis(32767) = %d, want -32767", got)
	}
	if got := invertAxis(0); got != 0 {
		t.Errorf("invertAxis(0) = %d, want 0", got)
	}
}

func TestMappingButtonMasksDistinct(t *testing.T) {
	for _, m := range []*DeviceMapping{xboxMapping, playstationMapping, switchProMapping, genericMapping} {
		seen := map[uint16]bool{}
		for _, bm := range m.Buttons {
			if seen[bm.Mask] {
				t.Errorf("mapping %q reuses mask %04X", m.Name, bm.Mask)
			}
			seen[bm.Mask] = true
		}
	}
}
