package gamepad

// NullDriver is the no-device backend for unsupported platforms. Every
// slot reads as disconnected and vibration requests are rejected.
type NullDriver struct{}

func (NullDriver) Poll(int) RawState { return RawState{} }

func (NullDriver) Capabilities(int) Capabilities { return Capabilities{} }

func (NullDriver) SetVibration(int, float64, float64) bool { return false }

func (NullDriver) Suspend() {}

func (NullDriver) Resume() {}

func (NullDriver) Close() {}
