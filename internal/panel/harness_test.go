package panel

import (
	"errors"
	"time"
)

// event is one observed interaction with the fake hardware, in issue order.
type event struct {
	kind    string // "write", "delay", "reset", "power"
	op      byte
	payload []byte
	d       time.Duration
	active  bool
	on      bool
}

var errBus = errors.New("bus write rejected")

// fakeHW doubles as bus, reset line and power rail so that ordering across
// all three is captured in a single event log.
type fakeHW struct {
	events []event

	// failAt makes the Nth write (0-based, counting every write) fail.
	// Negative means never. A failed write is not recorded as issued.
	failAt int
	wrote  int

	powerEnableErr  error
	powerDisableErr error
	powerOn         bool
	powerDisables   int
}

func newFakeHW() *fakeHW {
	return &fakeHW{failAt: -1}
}

func (f *fakeHW) Write(op byte, payload []byte) (int, error) {
	if f.failAt >= 0 && f.wrote == f.failAt {
		return 0, errBus
	}
	f.wrote++
	f.events = append(f.events, event{kind: "write", op: op, payload: append([]byte(nil), payload...)})
	return 1 + len(payload), nil
}

func (f *fakeHW) Delay(d time.Duration) {
	f.events = append(f.events, event{kind: "delay", d: d})
}

func (f *fakeHW) SetReset(active bool) {
	f.events = append(f.events, event{kind: "reset", active: active})
}

func (f *fakeHW) EnablePower() error {
	if f.powerEnableErr != nil {
		return f.powerEnableErr
	}
	f.powerOn = true
	f.events = append(f.events, event{kind: "power", on: true})
	return nil
}

func (f *fakeHW) DisablePower() error {
	f.powerDisables++
	if f.powerDisableErr != nil {
		return f.powerDisableErr
	}
	f.powerOn = false
	f.events = append(f.events, event{kind: "power", on: false})
	return nil
}

func (f *fakeHW) writes() []event {
	var out []event
	for _, e := range f.events {
		if e.kind == "write" {
			out = append(out, e)
		}
	}
	return out
}

func (f *fakeHW) lastWriteOf(op byte) (event, bool) {
	var found event
	ok := false
	for _, e := range f.writes() {
		if e.op == op {
			found, ok = e, true
		}
	}
	return found, ok
}

// testConfig is a valid 4-lane config with init during prepare.
func testConfig() Config {
	return Config{
		Lanes:         4,
		PixelFormat:   0x77,
		AddressMode:   0x00,
		InitInPrepare: true,
	}
}

// testTable is a small table shaped like the vendor data: page selects,
// user-page writes, one delay.
func testTable() Table {
	return Table{
		Cmd(opPageSelect, userPage),
		Cmd(0xE1, 0x93),
		Cmd(opPageSelect, 0x01),
		Cmd(0x3A, 0x01), // gamma register on page 1, not pixel format
		Wait(20 * time.Millisecond),
		Cmd(opPageSelect, userPage),
		Cmd(0x11, 0x00),
	}
}

func newTestPanel(hw *fakeHW, cfg Config, table Table) *Panel {
	return New("test-panel", TimingMode{}, cfg, table, Hardware{Bus: hw, Reset: hw})
}
