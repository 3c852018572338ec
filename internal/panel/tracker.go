package panel

import "dsipanel/internal/dsi"

// The JD9365-class controller behind the LF101 banks its register space
// into pages selected by a dedicated opcode. Opcode numbers are only
// meaningful relative to the active page: 0x3A is the pixel-format
// register on the user page but a gamma register on page 1.
const (
	opPageSelect byte = 0xE0
	userPage     byte = 0x00

	// Lane-count select register on the user page.
	opLaneSelect byte = 0x80
)

// authority holds the register values the controller owns. They are
// computed once from Config before a replay begins and written ahead of
// the table, never sourced from it.
type authority struct {
	addressMode byte
	pixelFormat byte
	laneCode    byte
}

func newAuthority(cfg Config) (authority, error) {
	lc, err := laneCode(cfg.Lanes)
	if err != nil {
		return authority{}, err
	}
	return authority{
		addressMode: cfg.AddressMode,
		pixelFormat: cfg.PixelFormat,
		laneCode:    lc,
	}, nil
}

// Conflict records a user-page table entry that collides with a
// controller-owned register and carries a different value. Conflicts are
// logged, never fatal: the table's value is still written (the vendor
// tables predate the controller-owned writes, so a collision is treated
// as the vendor knowing better — observed behavior kept as policy).
type Conflict struct {
	Op    byte
	Table byte // value the table is about to write
	Owned byte // authoritative value derived from Config
}

// pageTracker follows the page-select writes of one replay and flags
// user-page collisions with owned registers. It lives for the duration of
// a single replay; the page starts out unknown, which counts as non-user.
type pageTracker struct {
	page     byte
	known    bool
	reserved map[byte]byte
}

func newPageTracker(auth authority) *pageTracker {
	return &pageTracker{
		reserved: map[byte]byte{
			dsi.OpSetAddressMode: auth.addressMode,
			dsi.OpSetPixelFormat: auth.pixelFormat,
			opLaneSelect:         auth.laneCode,
		},
	}
}

func (t *pageTracker) onUserPage() bool {
	return t.known && t.page == userPage
}

// observe inspects a write entry before it is issued. A page-select entry
// updates the tracked page and never conflicts. On the user page, an entry
// for an owned opcode whose payload differs from the owned value returns a
// Conflict; everywhere else nil.
func (t *pageTracker) observe(e Entry) *Conflict {
	if e.Op == opPageSelect {
		if len(e.Payload) > 0 {
			t.page = e.Payload[0]
			t.known = true
		}
		return nil
	}
	if !t.onUserPage() || len(e.Payload) == 0 {
		return nil
	}
	owned, ok := t.reserved[e.Op]
	if !ok || e.Payload[0] == owned {
		return nil
	}
	return &Conflict{Op: e.Op, Table: e.Payload[0], Owned: owned}
}
