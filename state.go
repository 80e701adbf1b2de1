package gamepad

// MaxPlayerCount is the number of player slots a Driver exposes.
const MaxPlayerCount = 4

// Button bits of a RawState bitmask, matching the XInput wButtons layout.
const (
	RawButtonDPadUp        uint16 = 0x0001
	RawButtonDPadDown      uint16 = 0x0002
	RawButtonDPadLeft      uint16 = 0x0004
	RawButtonDPadRight     uint16 = 0x0008
	RawButtonStart         uint16 = 0x0010
	RawButtonBack          uint16 = 0x0020
	RawButtonLeftThumb     uint16 = 0x0040
	RawButtonRightThumb    uint16 = 0x0080
	RawButtonLeftShoulder  uint16 = 0x0100
	RawButtonRightShoulder uint16 = 0x0200
	RawButtonA             uint16 = 0x1000
	RawButtonB             uint16 = 0x2000
	RawButtonX             uint16 = 0x4000
	RawButtonY             uint16 = 0x8000
)

// RawState is one unfiltered controller snapshot as produced by a Driver
// poll: native axis units, trigger bytes and a packed button bitmask.
type RawState struct {
	Connected    bool
	Packet       uint32
	Buttons      uint16
	LeftTrigger  uint8
	RightTrigger uint8
	ThumbLX      int16
	ThumbLY      int16
	ThumbRX      int16
	ThumbRY      int16
}

type Buttons struct {
	A             bool `json:"a"`
	B             bool `json:"b"`
	X             bool `json:"x"`
	Y             bool `json:"y"`
	LeftStick     bool `json:"leftStick"`
	RightStick    bool `json:"rightStick"`
	LeftShoulder  bool `json:"leftShoulder"`
	RightShoulder bool `json:"rightShoulder"`
	Back          bool `json:"back"`
	Start         bool `json:"start"`
}

type DPad struct {
	Up    bool `json:"up"`
	Down  bool `json:"down"`
	Left  bool `json:"left"`
	Right bool `json:"right"`
}

// ThumbSticks holds dead-zone filtered stick positions, each axis in [-1, 1].
type ThumbSticks struct {
	LeftX  float64 `json:"leftX"`
	LeftY  float64 `json:"leftY"`
	RightX float64 `json:"rightX"`
	RightY float64 `json:"rightY"`
}

// Triggers holds normalized trigger magnitudes in [0, 1].
type Triggers struct {
	Left  float64 `json:"left"`
	Right float64 `json:"right"`
}

// State is the normalized per-player controller state. It is derived fresh
// from a RawState on every poll and holds no reference to the device.
type State struct {
	Connected   bool        `json:"connected"`
	Packet      uint32      `json:"packet"`
	Buttons     Buttons     `json:"buttons"`
	DPad        DPad        `json:"dpad"`
	ThumbSticks ThumbSticks `json:"thumbSticks"`
	Triggers    Triggers    `json:"triggers"`
}

// DeviceType is the reported device subtype. The values match the XInput
// DEVSUBTYPE codes so drivers can pass them through unchanged.
type DeviceType uint8

const (
	DeviceUnknown         DeviceType = 0
	DeviceGamepad         DeviceType = 1
	DeviceWheel           DeviceType = 2
	DeviceArcadeStick     DeviceType = 3
	DeviceFlightStick     DeviceType = 4
	DeviceDancePad        DeviceType = 5
	DeviceGuitar          DeviceType = 6
	DeviceGuitarAlternate DeviceType = 7
	DeviceDrumKit         DeviceType = 8
	DeviceGuitarBass      DeviceType = 11
	DeviceArcadePad       DeviceType = 19
)

func (t DeviceType) String() string {
	switch t {
	case DeviceGamepad:
		return "gamepad"
	case DeviceWheel:
		return "wheel"
	case DeviceArcadeStick:
		return "arcade_stick"
	case DeviceFlightStick:
		return "flight_stick"
	case DeviceDancePad:
		return "dance_pad"
	case DeviceGuitar:
		return "guitar"
	case DeviceGuitarAlternate:
		return "guitar_alternate"
	case DeviceDrumKit:
		return "drum_kit"
	case DeviceGuitarBass:
		return "guitar_bass"
	case DeviceArcadePad:
		return "arcade_pad"
	}
	return "unknown"
}

// Capabilities describes the device occupying a player slot.
type Capabilities struct {
	Connected bool       `json:"connected"`
	Type      DeviceType `json:"type"`
	ID        uint64     `json:"id"`
}
