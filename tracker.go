package gamepad

// Button identifies one tracked digital input. The set covers the face
// buttons, stick clicks, shoulders, back/start and the four d-pad
// directions, in a fixed order.
type Button int

const (
	ButtonA Button = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonLeftStick
	ButtonRightStick
	ButtonLeftShoulder
	ButtonRightShoulder
	ButtonBack
	ButtonStart
	ButtonDPadUp
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight

	// ButtonCount is the number of tracked buttons.
	ButtonCount
)

var buttonNames = [ButtonCount]string{
	"a", "b", "x", "y",
	"leftStick", "rightStick",
	"leftShoulder", "rightShoulder",
	"back", "start",
	"dpadUp", "dpadDown", "dpadLeft", "dpadRight",
}

func (b Button) String() string {
	if b < 0 || b >= ButtonCount {
		return "unknown"
	}
	return buttonNames[b]
}

// Pressed reports the raw pressed state of b in s.
func (s State) Pressed(b Button) bool {
	switch b {
	case ButtonA:
		return s.Buttons.A
	case ButtonB:
		return s.Buttons.B
	case ButtonX:
		return s.Buttons.X
	case ButtonY:
		return s.Buttons.Y
	case ButtonLeftStick:
		return s.Buttons.LeftStick
	case ButtonRightStick:
		return s.Buttons.RightStick
	case ButtonLeftShoulder:
		return s.Buttons.LeftShoulder
	case ButtonRightShoulder:
		return s.Buttons.RightShoulder
	case ButtonBack:
		return s.Buttons.Back
	case ButtonStart:
		return s.Buttons.Start
	case ButtonDPadUp:
		return s.DPad.Up
	case ButtonDPadDown:
		return s.DPad.Down
	case ButtonDPadLeft:
		return s.DPad.Left
	case ButtonDPadRight:
		return s.DPad.Right
	}
	return false
}

// ButtonState classifies a button's frame-to-frame transition.
type ButtonState int

const (
	// Up: not pressed this frame, not pressed last frame.
	Up ButtonState = iota
	// Held: pressed this frame and last frame.
	Held
	// Released: not pressed this frame, pressed last frame.
	Released
	// Pressed: pressed this frame, not pressed last frame.
	Pressed
)

func (s ButtonState) String() string {
	switch s {
	case Up:
		return "up"
	case Held:
		return "held"
	case Released:
		return "released"
	case Pressed:
		return "pressed"
	}
	return "unknown"
}

// ButtonStateTracker derives edge-triggered button semantics across frames
// by comparing each update against the previous frame's raw snapshot. The
// zero value is ready to use and reads as all-Up. It is not safe for
// concurrent use; it assumes exclusive ownership by one caller.
type ButtonStateTracker struct {
	states    [ButtonCount]ButtonState
	lastState State
}

// Update classifies every tracked button against the retained snapshot,
// then retains state as the comparison baseline for the next call. The
// baseline is always the last raw input, never a computed state.
func (t *ButtonStateTracker) Update(state State) {
	for b := Button(0); b < ButtonCount; b++ {
		cur, prev := state.Pressed(b), t.lastState.Pressed(b)
		switch {
		case cur && prev:
			t.states[b] = Held
		case cur:
			t.states[b] = Pressed
		case prev:
			t.states[b] = Released
		default:
			t.states[b] = Up
		}
	}
	t.lastState = state
}

// Reset returns the tracker to its all-Up baseline.
func (t *ButtonStateTracker) Reset() {
	*t = ButtonStateTracker{}
}

// State returns the transition computed by the most recent Update for b.
func (t *ButtonStateTracker) State(b Button) ButtonState {
	if b < 0 || b >= ButtonCount {
		return Up
	}
	return t.states[b]
}

// LastState returns the raw snapshot retained from the previous Update.
func (t *ButtonStateTracker) LastState() State {
	return t.lastState
}
