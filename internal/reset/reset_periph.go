//go:build linux

// Package reset drives the panel reset GPIO through periph.io. The caller
// must have initialized the periph host (host.Init) before Open.
package reset

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"

	"dsipanel/internal/log"
)

// Line is a periph.io-backed reset line. It translates the controller's
// logical "reset active" to the physical pin level.
type Line struct {
	pin       gpio.PinOut
	activeLow bool
}

// Open resolves a pin by periph name (e.g. "GPIO24") and leaves it in the
// deasserted state. activeLow selects the wiring polarity: most LCM reset
// inputs are held in reset by a low level.
func Open(name string, activeLow bool) (*Line, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("reset: gpio %s not found", name)
	}
	l := &Line{pin: p, activeLow: activeLow}
	l.SetReset(false)
	return l, nil
}

// SetReset drives the logical reset level onto the pin. GPIO write errors
// are logged, matching the no-failure contract of the reset interface.
func (l *Line) SetReset(active bool) {
	level := gpio.Level(active != l.activeLow)
	if err := l.pin.Out(level); err != nil {
		log.Error("reset gpio write failed", err, "pin", l.pin.Name())
	}
}
