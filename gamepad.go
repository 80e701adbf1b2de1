// Package gamepad provides a cross-platform controller input abstraction.
// A platform Driver produces raw per-player snapshots; this package
// normalizes stick and trigger readings through configurable dead-zone
// filtering, exposes vibration pass-through, and tracks frame-to-frame
// button transitions.
package gamepad

// Driver is the platform capability a Gamepad consumes. Implementations
// exist for XInput (Windows), the SDL3 joystick API, and a null device
// for unsupported platforms.
type Driver interface {
	// Poll returns the current raw snapshot for a player slot. A slot
	// with no device reads as the zero RawState.
	Poll(player int) RawState
	// Capabilities describes the device occupying a player slot.
	Capabilities(player int) Capabilities
	// SetVibration forwards normalized motor intensities in [0, 1] and
	// reports whether the device accepted them.
	SetVibration(player int, left, right float64) bool
	// Suspend pauses input reporting, e.g. while the host loses focus.
	Suspend()
	// Resume re-enables input reporting after Suspend.
	Resume()
	// Close releases platform resources held by the driver.
	Close()
}

// Gamepad is the request/response front over a Driver: it polls raw
// snapshots and returns dead-zone filtered states for up to
// MaxPlayerCount players.
type Gamepad struct {
	driver Driver
}

func New(driver Driver) *Gamepad {
	return &Gamepad{driver: driver}
}

// GetState polls one player slot and normalizes the result with mode.
// An out-of-range player or a disconnected pad yields the zero State,
// which downstream consumers treat as "nothing pressed".
func (g *Gamepad) GetState(player int, mode DeadZone) State {
	if player < 0 || player >= MaxPlayerCount {
		return State{}
	}
	raw := g.driver.Poll(player)
	if !raw.Connected {
		return State{}
	}
	return Normalize(raw, mode)
}

// GetCapabilities reports the device subtype for a player slot.
func (g *Gamepad) GetCapabilities(player int) Capabilities {
	if player < 0 || player >= MaxPlayerCount {
		return Capabilities{}
	}
	return g.driver.Capabilities(player)
}

// SetVibration forwards motor intensities in [0, 1] to the platform.
func (g *Gamepad) SetVibration(player int, left, right float64) bool {
	if player < 0 || player >= MaxPlayerCount {
		return false
	}
	return g.driver.SetVibration(player, clamp(left, 0, 1), clamp(right, 0, 1))
}

// Suspend pauses input reporting on the underlying driver.
func (g *Gamepad) Suspend() { g.driver.Suspend() }

// Resume re-enables input reporting on the underlying driver.
func (g *Gamepad) Resume() { g.driver.Resume() }

// Close releases the underlying driver.
func (g *Gamepad) Close() { g.driver.Close() }

// Normalize converts a raw snapshot into a filtered State. Stick axes are
// filtered with the platform-recommended per-stick dead zones, triggers
// with the trigger threshold; DeadZoneNone drops the trigger threshold to
// zero so the full raw range is rescaled.
func Normalize(raw RawState, mode DeadZone) State {
	s := State{Connected: raw.Connected, Packet: raw.Packet}

	s.Buttons = Buttons{
		A:             raw.Buttons&RawButtonA != 0,
		B:             raw.Buttons&RawButtonB != 0,
		X:             raw.Buttons&RawButtonX != 0,
		Y:             raw.Buttons&RawButtonY != 0,
		LeftStick:     raw.Buttons&RawButtonLeftThumb != 0,
		RightStick:    raw.Buttons&RawButtonRightThumb != 0,
		LeftShoulder:  raw.Buttons&RawButtonLeftShoulder != 0,
		RightShoulder: raw.Buttons&RawButtonRightShoulder != 0,
		Back:          raw.Buttons&RawButtonBack != 0,
		Start:         raw.Buttons&RawButtonStart != 0,
	}
	s.DPad = DPad{
		Up:    raw.Buttons&RawButtonDPadUp != 0,
		Down:  raw.Buttons&RawButtonDPadDown != 0,
		Left:  raw.Buttons&RawButtonDPadLeft != 0,
		Right: raw.Buttons&RawButtonDPadRight != 0,
	}

	threshold := float64(TriggerThreshold)
	if mode == DeadZoneNone {
		threshold = 0
	}
	s.Triggers.Left = ApplyLinearDeadZone(float64(raw.LeftTrigger), TriggerMax, threshold)
	s.Triggers.Right = ApplyLinearDeadZone(float64(raw.RightTrigger), TriggerMax, threshold)

	s.ThumbSticks.LeftX, s.ThumbSticks.LeftY = ApplyStickDeadZone(
		float64(raw.ThumbLX), float64(raw.ThumbLY), mode, ThumbMax, LeftThumbDeadZone)
	s.ThumbSticks.RightX, s.ThumbSticks.RightY = ApplyStickDeadZone(
		float64(raw.ThumbRX), float64(raw.ThumbRY), mode, ThumbMax, RightThumbDeadZone)

	return s
}
