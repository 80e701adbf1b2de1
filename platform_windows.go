//go:build windows

package gamepad

import "github.com/rs/zerolog"

// NewPlatformDriver returns the native controller backend for this build:
// XInput on Windows, the null driver everywhere else.
func NewPlatformDriver(log zerolog.Logger) Driver {
	return NewXInputDriver(log)
}
