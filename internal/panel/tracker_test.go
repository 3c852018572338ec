package panel

import (
	"testing"

	"dsipanel/internal/dsi"
)

func TestTrackerConflictsOnlyOnUserPage(t *testing.T) {
	auth := authority{addressMode: 0x00, pixelFormat: 0x77, laneCode: 0x03}

	cases := []struct {
		name     string
		entries  []Entry
		conflict bool
	}{
		{
			name: "reserved opcode before any page select",
			// Page unknown counts as non-user.
			entries:  []Entry{Cmd(dsi.OpSetPixelFormat, 0x55)},
			conflict: false,
		},
		{
			name: "reserved opcode on non-user page",
			// 0x3A is a gamma register on page 1.
			entries:  []Entry{Cmd(opPageSelect, 0x01), Cmd(dsi.OpSetPixelFormat, 0x01)},
			conflict: false,
		},
		{
			name:     "reserved opcode on user page, differing value",
			entries:  []Entry{Cmd(opPageSelect, userPage), Cmd(dsi.OpSetPixelFormat, 0x55)},
			conflict: true,
		},
		{
			name:     "reserved opcode on user page, matching value",
			entries:  []Entry{Cmd(opPageSelect, userPage), Cmd(dsi.OpSetPixelFormat, 0x77)},
			conflict: false,
		},
		{
			name:     "lane select on user page, differing value",
			entries:  []Entry{Cmd(opPageSelect, userPage), Cmd(opLaneSelect, 0x01)},
			conflict: true,
		},
		{
			name:     "address mode on user page, differing value",
			entries:  []Entry{Cmd(opPageSelect, userPage), Cmd(dsi.OpSetAddressMode, 0xC0)},
			conflict: true,
		},
		{
			name:     "unreserved opcode on user page",
			entries:  []Entry{Cmd(opPageSelect, userPage), Cmd(0xE7, 0x0C)},
			conflict: false,
		},
		{
			name: "page switch away clears authority checks",
			entries: []Entry{
				Cmd(opPageSelect, userPage),
				Cmd(opPageSelect, 0x04),
				Cmd(dsi.OpSetAddressMode, 0xC0),
			},
			conflict: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := newPageTracker(auth)
			var got *Conflict
			for _, e := range tc.entries {
				if c := tr.observe(e); c != nil {
					got = c
				}
			}
			if (got != nil) != tc.conflict {
				t.Errorf("conflict = %v, want %v (record: %+v)", got != nil, tc.conflict, got)
			}
		})
	}
}

func TestTrackerConflictCarriesBothValues(t *testing.T) {
	tr := newPageTracker(authority{pixelFormat: 0x77})
	tr.observe(Cmd(opPageSelect, userPage))
	c := tr.observe(Cmd(dsi.OpSetPixelFormat, 0x66))
	if c == nil {
		t.Fatal("expected a conflict record")
	}
	if c.Op != dsi.OpSetPixelFormat || c.Table != 0x66 || c.Owned != 0x77 {
		t.Errorf("conflict = %+v, want op=0x3A table=0x66 owned=0x77", c)
	}
}

func TestTrackerPageSelectNeverConflicts(t *testing.T) {
	tr := newPageTracker(authority{})
	tr.observe(Cmd(opPageSelect, userPage))
	if c := tr.observe(Cmd(opPageSelect, 0x02)); c != nil {
		t.Errorf("page select flagged as conflict: %+v", c)
	}
	if tr.onUserPage() {
		t.Error("tracker still on user page after switching to page 2")
	}
}

func TestNewAuthorityRejectsBadLanes(t *testing.T) {
	cfg := testConfig()
	cfg.Lanes = 6
	if _, err := newAuthority(cfg); err == nil {
		t.Fatal("newAuthority accepted 6 lanes")
	}
}
