//go:build !windows

package gamepad

import "github.com/rs/zerolog"

// NewPlatformDriver returns the native controller backend for this build:
// XInput on Windows, the null driver everywhere else. Non-Windows hosts
// normally use NewSDLDriver instead.
func NewPlatformDriver(zerolog.Logger) Driver {
	return NullDriver{}
}
