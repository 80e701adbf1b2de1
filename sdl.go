package gamepad

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/jupiterrider/purego-sdl3/sdl"
	"github.com/rs/zerolog"
)

const (
	pumpDelayNS = 16_000_000 // ~60Hz

	hatUp    uint8 = 0x01
	hatRight uint8 = 0x02
	hatDown  uint8 = 0x04
	hatLeft  uint8 = 0x08
)

type sdlSlot struct {
	joystick *sdl.Joystick
	mapping  *DeviceMapping
	name     string
	id       sdl.JoystickID
}

// SDLDriver reads controllers through the SDL3 joystick API. Connected
// joysticks are assigned to the first free player slot and released on
// removal. Run pumps events and snapshots on its own thread; Poll serves
// the most recent snapshot for a slot.
//
// SDL joystick rumble is not wired through this backend; SetVibration
// always reports failure.
type SDLDriver struct {
	mu        sync.RWMutex
	slots     [MaxPlayerCount]*sdlSlot
	raw       [MaxPlayerCount]RawState
	suspended bool
	log       zerolog.Logger
}

func NewSDLDriver(log zerolog.Logger) *SDLDriver {
	return &SDLDriver{log: log.With().Str("driver", "sdl").Logger()}
}

// Run initializes SDL and pumps hotplug events and state snapshots until
// ctx is cancelled. Call it from a dedicated goroutine; the OS thread is
// locked for the lifetime of the pump.
func (d *SDLDriver) Run(ctx context.Context) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if !sdl.Init(sdl.InitJoystick) {
		return fmt.Errorf("sdl init: %s", sdl.GetError())
	}
	defer sdl.Quit()

	d.log.Info().Msg("SDL3 joystick subsystem initialized")

	// Pick up joysticks that were connected before we started.
	for _, id := range sdl.GetJoysticks() {
		d.open(id)
	}

	for {
		select {
		case <-ctx.Done():
			d.closeAll()
			return ctx.Err()
		default:
		}

		d.pumpEvents()
		d.snapshot()
		sdl.DelayNS(pumpDelayNS)
	}
}

func (d *SDLDriver) pumpEvents() {
	var event sdl.Event
	for sdl.PollEvent(&event) {
		switch event.Type() {
		case sdl.EventJoystickAdded:
			d.open(event.JDevice().Which)
		case sdl.EventJoystickRemoved:
			d.remove(event.JDevice().Which)
		}
	}
}

func (d *SDLDriver) open(instanceID sdl.JoystickID) {
	for _, s := range d.slots {
		if s != nil && s.id == instanceID {
			return
		}
	}

	js := sdl.OpenJoystick(instanceID)
	if js == nil {
		d.log.Warn().Int64("instance", int64(instanceID)).Msgf("open joystick: %s", sdl.GetError())
		return
	}

	slot := -1
	for i, s := range d.slots {
		if s == nil {
			slot = i
			break
		}
	}
	if slot < 0 {
		d.log.Warn().Str("name", sdl.GetJoystickName(js)).Msg("no free player slot")
		sdl.CloseJoystick(js)
		return
	}

	vendorID := sdl.GetJoystickVendor(js)
	productID := sdl.GetJoystickProduct(js)
	mapping := GetMapping(vendorID, productID)
	name := sdl.GetJoystickName(js)

	d.mu.Lock()
	d.slots[slot] = &sdlSlot{
		joystick: js,
		mapping:  mapping,
		name:     name,
		id:       sdl.GetJoystickID(js),
	}
	d.mu.Unlock()

	d.log.Info().
		Int("player", slot).
		Str("name", name).
		Str("mapping", mapping.Name).
		Msgf("joystick connected (VID=%04X PID=%04X)", vendorID, productID)
}

func (d *SDLDriver) remove(instanceID sdl.JoystickID) {
	for i, s := range d.slots {
		if s == nil || s.id != instanceID {
			continue
		}
		d.log.Info().Int("player", i).Str("name", s.name).Msg("joystick disconnected")
		sdl.CloseJoystick(s.joystick)

		d.mu.Lock()
		d.slots[i] = nil
		d.raw[i] = RawState{}
		d.mu.Unlock()
		return
	}
}

func (d *SDLDriver) closeAll() {
	d.mu.Lock()
	for i, s := range d.slots {
		if s == nil {
			continue
		}
		sdl.CloseJoystick(s.joystick)
		d.slots[i] = nil
	}
	d.raw = [MaxPlayerCount]RawState{}
	d.mu.Unlock()
}

// snapshot refreshes the cached RawState for every occupied slot. The
// packet counter advances only when the snapshot differs from the last
// one, mirroring the XInput packet-number contract.
func (d *SDLDriver) snapshot() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.suspended {
		return
	}

	for i, s := range d.slots {
		if s == nil {
			continue
		}
		if !sdl.JoystickConnected(s.joystick) {
			d.raw[i] = RawState{}
			continue
		}

		cur := d.readSlot(s)
		prev := d.raw[i]
		cur.Packet = prev.Packet
		if cur != prev {
			cur.Packet++
		}
		d.raw[i] = cur
	}
}

func (d *SDLDriver) readSlot(s *sdlSlot) RawState {
	js := s.joystick
	raw := RawState{Connected: true}

	for _, am := range s.mapping.Axes {
		v := sdl.GetJoystickAxis(js, am.Index)
		if am.IsTrigger {
			val := scaleTrigger(v, am.RawMin, am.RawMax)
			switch am.Target {
			case AxisLeftTrigger:
				raw.LeftTrigger = val
			case AxisRightTrigger:
				raw.RightTrigger = val
			}
			continue
		}
		if am.Invert {
			v = invertAxis(v)
		}
		switch am.Target {
		case AxisLeftX:
			raw.ThumbLX = v
		case AxisLeftY:
			raw.ThumbLY = v
		case AxisRightX:
			raw.ThumbRX = v
		case AxisRightY:
			raw.ThumbRY = v
		}
	}

	numButtons := sdl.GetNumJoystickButtons(js)
	for _, bm := range s.mapping.Buttons {
		if bm.Index >= numButtons {
			continue
		}
		if sdl.GetJoystickButton(js, bm.Index) {
			raw.Buttons |= bm.Mask
		}
	}

	if s.mapping.HasHat && sdl.GetNumJoystickHats(js) > 0 {
		hat := sdl.GetJoystickHat(js, 0)
		if hat&hatUp != 0 {
			raw.Buttons |= RawButtonDPadUp
		}
		if hat&hatDown != 0 {
			raw.Buttons |= RawButtonDPadDown
		}
		if hat&hatLeft != 0 {
			raw.Buttons |= RawButtonDPadLeft
		}
		if hat&hatRight != 0 {
			raw.Buttons |= RawButtonDPadRight
		}
	}

	return raw
}

func (d *SDLDriver) Poll(player int) RawState {
	if player < 0 || player >= MaxPlayerCount {
		return RawState{}
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.raw[player]
}

func (d *SDLDriver) Capabilities(player int) Capabilities {
	if player < 0 || player >= MaxPlayerCount {
		return Capabilities{}
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	s := d.slots[player]
	if s == nil {
		return Capabilities{}
	}
	return Capabilities{Connected: true, Type: s.mapping.Type, ID: uint64(s.id)}
}

func (d *SDLDriver) SetVibration(int, float64, float64) bool { return false }

// Suspend freezes snapshots at a neutral state until Resume.
func (d *SDLDriver) Suspend() {
	d.mu.Lock()
	d.suspended = true
	for i := range d.raw {
		if d.raw[i].Connected {
			d.raw[i] = RawState{Connected: true, Packet: d.raw[i].Packet}
		}
	}
	d.mu.Unlock()
}

func (d *SDLDriver) Resume() {
	d.mu.Lock()
	d.suspended = false
	d.mu.Unlock()
}

// Close is a no-op; joysticks are released by Run's cleanup when its
// context is cancelled.
func (d *SDLDriver) Close() {}
