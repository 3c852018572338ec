// Package dsi defines the command primitive the panel controller drives:
// a synchronous opcode+payload write plus a blocking delay. The real
// transport (a DSI host controller) lives outside this module; tests and
// the bring-up CLI use the Trace implementation.
package dsi

import "time"

// Standard DCS opcodes used by the lifecycle controller.
const (
	OpEnterSleep     byte = 0x10
	OpExitSleep      byte = 0x11
	OpDisplayOff     byte = 0x28
	OpDisplayOn      byte = 0x29
	OpSetAddressMode byte = 0x36
	OpSetPixelFormat byte = 0x3A
)

// Bus is the synchronous command primitive. Write sends one opcode with
// its payload and reports bytes written or an error; Delay blocks the
// caller for d and has no failure mode. Implementations need not be safe
// for concurrent use: a panel instance owns its bus exclusively.
type Bus interface {
	Write(op byte, payload []byte) (int, error)
	Delay(d time.Duration)
}

// ResetLine drives the panel reset GPIO. SetReset(true) asserts the
// logical reset-active level. Like the GPIO write it wraps, it has no
// failure mode.
type ResetLine interface {
	SetReset(active bool)
}

// Power is the optional panel supply rail. Controllers probe for it with
// a nil check rather than a build flag.
type Power interface {
	EnablePower() error
	DisablePower() error
}
