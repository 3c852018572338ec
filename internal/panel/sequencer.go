package panel

import (
	"dsipanel/internal/dsi"
	"dsipanel/internal/log"
)

// sequencer replays one init table through the bus, consulting a fresh
// pageTracker per replay. A failed write aborts immediately: entries past
// the failure never run and nothing already written is rolled back, so the
// device may be left half-initialized. The lifecycle controller handles
// that by powering the panel fully off instead of retrying.
type sequencer struct {
	bus     dsi.Bus
	tracker *pageTracker
}

func newSequencer(bus dsi.Bus, auth authority) *sequencer {
	return &sequencer{bus: bus, tracker: newPageTracker(auth)}
}

func (s *sequencer) replay(table Table) error {
	for i, e := range table {
		if e.IsDelay() {
			s.bus.Delay(e.Sleep)
			continue
		}
		if c := s.tracker.observe(e); c != nil {
			log.Warn("init table overrides controller-owned register",
				"op", c.Op, "table_value", c.Table, "owned_value", c.Owned, "entry", i)
		}
		if _, err := s.bus.Write(e.Op, e.Payload); err != nil {
			return &WriteError{Op: e.Op, Index: i, Err: err}
		}
	}
	return nil
}
