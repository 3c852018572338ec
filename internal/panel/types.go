// Package panel implements the bring-up controller for a MIPI-DSI LCD
// module: power/reset sequencing, replay of a vendor init command table,
// and the prepare/enable/disable/unprepare lifecycle exposed to the host
// display pipeline. The DSI transport, reset line and optional power rail
// are injected collaborators; the package itself never touches hardware.
package panel

import "time"

// Orientation mirrors the mounting orientation reported to the display
// pipeline. Only meaningful when the variant declares it.
type Orientation int

const (
	OrientationNormal Orientation = iota
	OrientationRotate90
	OrientationRotate180
	OrientationRotate270
)

func (o Orientation) String() string {
	switch o {
	case OrientationNormal:
		return "normal"
	case OrientationRotate90:
		return "rotate-90"
	case OrientationRotate180:
		return "rotate-180"
	case OrientationRotate270:
		return "rotate-270"
	default:
		return "unknown"
	}
}

// Entry is one directive of a vendor init table: either a single register
// write or a fixed delay. Exactly one of the two forms is populated.
type Entry struct {
	Op      byte
	Payload []byte
	Sleep   time.Duration
	isDelay bool
}

// Cmd builds a write entry for opcode op with the given payload bytes.
func Cmd(op byte, payload ...byte) Entry {
	return Entry{Op: op, Payload: payload}
}

// Wait builds a delay entry. Delays cannot fail during replay.
func Wait(d time.Duration) Entry {
	return Entry{Sleep: d, isDelay: true}
}

// IsDelay reports whether the entry is a delay rather than a write.
func (e Entry) IsDelay() bool { return e.isDelay }

// Table is an ordered, immutable init sequence bound to one panel variant.
// Callers must not mutate it after handing it to a Panel.
type Table []Entry

// Writes counts the write entries in the table.
func (t Table) Writes() int {
	n := 0
	for _, e := range t {
		if !e.isDelay {
			n++
		}
	}
	return n
}

// Config carries the per-variant bus and addressing parameters plus the
// init-placement flag that distinguishes the historical driver revisions.
type Config struct {
	// Lanes is the active DSI lane count, 1 to 4. Anything else is
	// rejected before the first bus write.
	Lanes int

	// PixelFormat is the COLMOD code written to the pixel-format
	// register (e.g. 0x77 for 24bpp RGB888).
	PixelFormat byte

	// AddressMode is the MADCTL code selecting scan direction and RGB
	// order.
	AddressMode byte

	// InitInPrepare selects where the init table and sleep-out run:
	// during Prepare (current revisions) or deferred to Enable (the
	// earliest revision's partitioning).
	InitInPrepare bool

	// Orientation reporting is an optional capability.
	HasOrientation bool
	Orientation    Orientation
}

// laneCode maps a lane count to the controller's lane-select register
// value. The mapping is fixed by the hardware: code = lanes - 1.
func laneCode(lanes int) (byte, error) {
	if lanes < 1 || lanes > 4 {
		return 0, &ConfigError{Field: "lanes", Reason: "lane count must be 1..4"}
	}
	return byte(lanes - 1), nil
}
