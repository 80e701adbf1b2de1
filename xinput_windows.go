//go:build windows

package gamepad

import (
	"sync"
	"time"
	"unsafe"

	"github.com/rs/zerolog"
	"golang.org/x/sys/windows"
)

var (
	xinputDLL                 = windows.NewLazySystemDLL("xinput1_4.dll")
	procXInputGetState        = xinputDLL.NewProc("XInputGetState")
	procXInputSetState        = xinputDLL.NewProc("XInputSetState")
	procXInputGetCapabilities = xinputDLL.NewProc("XInputGetCapabilities")
	procXInputEnable          = xinputDLL.NewProc("XInputEnable")
)

const (
	errDeviceNotConnected = 1167 // ERROR_DEVICE_NOT_CONNECTED
	xinputDevtypeGamepad  = 1    // XINPUT_DEVTYPE_GAMEPAD

	// Polling a slot with no device makes XInput re-enumerate, which is
	// slow, so disconnected slots are retried on an interval instead of
	// every frame. Slots other than the requested one use a shorter
	// window so one probing call per second still covers all four.
	retryInterval      = time.Second
	crossRetryInterval = retryInterval / 4
)

type xinputGamepad struct {
	Buttons      uint16
	LeftTrigger  uint8
	RightTrigger uint8
	ThumbLX      int16
	ThumbLY      int16
	ThumbRX      int16
	ThumbRY      int16
}

type xinputState struct {
	PacketNumber uint32
	Gamepad      xinputGamepad
}

type xinputVibration struct {
	LeftMotorSpeed  uint16
	RightMotorSpeed uint16
}

type xinputCapabilities struct {
	Type      uint8
	SubType   uint8
	Flags     uint16
	Gamepad   xinputGamepad
	Vibration xinputVibration
}

// XInputDriver polls the Windows XInput service for up to four players.
type XInputDriver struct {
	mu        sync.Mutex
	connected [MaxPlayerCount]bool
	lastRead  [MaxPlayerCount]time.Time
	log       zerolog.Logger
}

func NewXInputDriver(log zerolog.Logger) *XInputDriver {
	return &XInputDriver{log: log.With().Str("driver", "xinput").Logger()}
}

// throttleRetry reports whether polling this slot should be skipped
// because a recent read already found it (or a sibling slot) empty.
// Callers must hold d.mu.
func (d *XInputDriver) throttleRetry(player int) bool {
	if player < 0 || player >= MaxPlayerCount {
		return true
	}
	if d.connected[player] {
		return false
	}
	now := time.Now()
	for j := range d.connected {
		if d.connected[j] {
			continue
		}
		interval := retryInterval
		if j != player {
			interval = crossRetryInterval
		}
		if delta := now.Sub(d.lastRead[j]); delta >= 0 && delta < interval {
			return true
		}
	}
	return false
}

func (d *XInputDriver) markDisconnected(player int) {
	if d.connected[player] {
		d.log.Debug().Int("player", player).Msg("pad disconnected")
	}
	d.connected[player] = false
	d.lastRead[player] = time.Now()
}

func (d *XInputDriver) Poll(player int) RawState {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.throttleRetry(player) {
		return RawState{}
	}

	var xs xinputState
	ret, _, _ := procXInputGetState.Call(uintptr(uint32(player)), uintptr(unsafe.Pointer(&xs)))
	if ret == errDeviceNotConnected {
		d.markDisconnected(player)
		return RawState{}
	}
	if !d.connected[player] {
		d.log.Debug().Int("player", player).Msg("pad connected")
	}
	d.connected[player] = true

	return RawState{
		Connected:    true,
		Packet:       xs.PacketNumber,
		Buttons:      xs.Gamepad.Buttons,
		LeftTrigger:  xs.Gamepad.LeftTrigger,
		RightTrigger: xs.Gamepad.RightTrigger,
		ThumbLX:      xs.Gamepad.ThumbLX,
		ThumbLY:      xs.Gamepad.ThumbLY,
		ThumbRX:      xs.Gamepad.ThumbRX,
		ThumbRY:      xs.Gamepad.ThumbRY,
	}
}

func (d *XInputDriver) Capabilities(player int) Capabilities {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.throttleRetry(player) {
		return Capabilities{}
	}

	var xc xinputCapabilities
	ret, _, _ := procXInputGetCapabilities.Call(uintptr(uint32(player)), 0, uintptr(unsafe.Pointer(&xc)))
	if ret == errDeviceNotConnected {
		d.markDisconnected(player)
		return Capabilities{}
	}
	d.connected[player] = true

	caps := Capabilities{Connected: true, ID: uint64(player)}
	if xc.Type == xinputDevtypeGamepad {
		caps.Type = DeviceType(xc.SubType)
	}
	return caps
}

func (d *XInputDriver) SetVibration(player int, left, right float64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.throttleRetry(player) {
		return false
	}

	vib := xinputVibration{
		LeftMotorSpeed:  uint16(left * 0xFFFF),
		RightMotorSpeed: uint16(right * 0xFFFF),
	}
	ret, _, _ := procXInputSetState.Call(uintptr(uint32(player)), uintptr(unsafe.Pointer(&vib)))
	if ret == errDeviceNotConnected {
		d.markDisconnected(player)
		return false
	}
	d.connected[player] = true
	return ret == 0
}

// Suspend disables XInput reporting; polls return neutral data until Resume.
func (d *XInputDriver) Suspend() {
	procXInputEnable.Call(0)
}

func (d *XInputDriver) Resume() {
	procXInputEnable.Call(1)
}

func (d *XInputDriver) Close() {}
