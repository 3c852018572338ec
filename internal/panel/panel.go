package panel

import (
	"fmt"
	"time"

	"dsipanel/internal/dsi"
	"dsipanel/internal/log"
)

// State is the lifecycle position of a panel instance.
type State int

const (
	StateUnprepared State = iota
	StatePrepared
	StateEnabled
)

func (s State) String() string {
	switch s {
	case StateUnprepared:
		return "unprepared"
	case StatePrepared:
		return "prepared"
	case StateEnabled:
		return "enabled"
	default:
		return "invalid"
	}
}

// Reset pulse and settle times. The three reset holds are a hardware
// contract of the LCM, not tunable per call.
const (
	resetAssertHold   = 5 * time.Millisecond
	resetReleaseHold  = 10 * time.Millisecond
	resetCompleteHold = 120 * time.Millisecond

	powerUpSettle  = 5 * time.Millisecond
	preInitSettle  = 10 * time.Millisecond
	postInitSettle = 120 * time.Millisecond
)

// Hardware bundles the collaborators a panel instance owns exclusively.
// Power is optional; Bus and Reset are required.
type Hardware struct {
	Bus   dsi.Bus
	Reset dsi.ResetLine
	Power dsi.Power
}

// Panel is the bring-up controller for one physical LCD module. All
// operations are synchronous and block through every mandated delay.
// Instances are not safe for concurrent use: the host framework serializes
// lifecycle calls, exactly one in flight at a time.
type Panel struct {
	name  string
	mode  TimingMode
	cfg   Config
	table Table
	hw    Hardware
	state State
}

// New binds a variant's mode, config and init table to its hardware. No
// bus traffic happens until Prepare.
func New(name string, mode TimingMode, cfg Config, table Table, hw Hardware) *Panel {
	return &Panel{name: name, mode: mode, cfg: cfg, table: table, hw: hw}
}

// Mode returns the variant's video timings.
func (p *Panel) Mode() TimingMode { return p.mode }

// State returns the current lifecycle state.
func (p *Panel) State() State { return p.state }

// Orientation reports the mounting orientation when the variant declares
// one; ok is false otherwise.
func (p *Panel) Orientation() (o Orientation, ok bool) {
	if !p.cfg.HasOrientation {
		return OrientationNormal, false
	}
	return p.cfg.Orientation, true
}

// Prepare powers and resets the panel and, for variants that initialize
// during prepare, replays the init table and brings the controller out of
// sleep. It is a no-op if the panel is already prepared or enabled. On a
// failure after the supply was switched on, the supply is switched back
// off and the original error is returned unchanged.
func (p *Panel) Prepare() error {
	if p.state != StateUnprepared {
		return nil
	}

	// Reject bad configuration before any bus or pin traffic.
	auth, err := newAuthority(p.cfg)
	if err != nil {
		return err
	}
	if p.hw.Bus == nil {
		return &ConfigError{Field: "bus", Reason: "command bus is required"}
	}
	if p.hw.Reset == nil {
		return &ConfigError{Field: "reset", Reason: "reset line is required"}
	}

	if p.hw.Power != nil {
		if err := p.hw.Power.EnablePower(); err != nil {
			return fmt.Errorf("panel %s: power enable: %w", p.name, err)
		}
		p.hw.Bus.Delay(powerUpSettle)
	}

	// Reset pulse: assert, release, assert-complete.
	p.hw.Reset.SetReset(true)
	p.hw.Bus.Delay(resetAssertHold)
	p.hw.Reset.SetReset(false)
	p.hw.Bus.Delay(resetReleaseHold)
	p.hw.Reset.SetReset(true)
	p.hw.Bus.Delay(resetCompleteHold)

	if p.cfg.InitInPrepare {
		if err := p.initPanel(auth); err != nil {
			log.Error("panel init failed, powering off", err, "panel", p.name)
			p.powerOff()
			return err
		}
	}

	p.state = StatePrepared
	log.Debug("panel prepared", "panel", p.name)
	return nil
}

// Enable transitions a prepared panel to enabled. Variants that defer
// initialization out of prepare run the init table and display-on here.
// Calling Enable on an unprepared panel is a caller error.
func (p *Panel) Enable() error {
	if p.state == StateEnabled {
		return nil
	}
	if p.state != StatePrepared {
		return &StateError{Op: "enable", State: p.state}
	}

	if !p.cfg.InitInPrepare {
		auth, err := newAuthority(p.cfg)
		if err != nil {
			return err
		}
		if err := p.initPanel(auth); err != nil {
			return err
		}
	}

	p.state = StateEnabled
	log.Debug("panel enabled", "panel", p.name)
	return nil
}

// Disable transitions an enabled panel back to prepared, blanking the
// display first for variants that enable it in Enable. It is a no-op when
// the panel is not enabled.
func (p *Panel) Disable() error {
	if p.state != StateEnabled {
		return nil
	}

	if !p.cfg.InitInPrepare {
		if err := p.write(dsi.OpDisplayOff); err != nil {
			return err
		}
		if err := p.write(dsi.OpEnterSleep); err != nil {
			return err
		}
	}

	p.state = StatePrepared
	log.Debug("panel disabled", "panel", p.name)
	return nil
}

// Unprepare puts the controller to sleep, holds it in reset and cuts the
// supply if one is present. It is a no-op when already unprepared. Bus
// failures propagate without rollback: no intermediate power state is held
// open beyond what was already true.
func (p *Panel) Unprepare() error {
	if p.state == StateUnprepared {
		return nil
	}

	if p.cfg.InitInPrepare {
		if err := p.write(dsi.OpDisplayOff); err != nil {
			return err
		}
		if err := p.write(dsi.OpEnterSleep); err != nil {
			return err
		}
	}

	p.hw.Reset.SetReset(true)
	p.hw.Bus.Delay(resetCompleteHold)

	p.powerOff()

	p.state = StateUnprepared
	log.Debug("panel unprepared", "panel", p.name)
	return nil
}

// initPanel writes the controller-owned registers, replays the variant's
// init table, then walks the controller out of sleep into active scanout.
func (p *Panel) initPanel(auth authority) error {
	p.hw.Bus.Delay(preInitSettle)

	// Controller-owned registers go out ahead of the vendor table, on the
	// user page. The table may legitimately override them; the sequencer
	// records any such collision.
	owned := []Entry{
		Cmd(opPageSelect, userPage),
		Cmd(dsi.OpSetAddressMode, auth.addressMode),
		Cmd(dsi.OpSetPixelFormat, auth.pixelFormat),
		Cmd(opLaneSelect, auth.laneCode),
	}
	for _, e := range owned {
		if _, err := p.hw.Bus.Write(e.Op, e.Payload); err != nil {
			return &WriteError{Op: e.Op, Index: -1, Err: err}
		}
	}

	seq := newSequencer(p.hw.Bus, auth)
	if err := seq.replay(p.table); err != nil {
		return err
	}
	p.hw.Bus.Delay(postInitSettle)

	if err := p.write(dsi.OpExitSleep); err != nil {
		return err
	}
	return p.write(dsi.OpDisplayOn)
}

// write issues a parameterless DCS command outside of table replay.
func (p *Panel) write(op byte) error {
	if _, err := p.hw.Bus.Write(op, nil); err != nil {
		return &WriteError{Op: op, Index: -1, Err: err}
	}
	return nil
}

// powerOff cuts the optional supply. Disable failures are logged and
// swallowed so they never mask the error that triggered the unwind.
func (p *Panel) powerOff() {
	if p.hw.Power == nil {
		return
	}
	if err := p.hw.Power.DisablePower(); err != nil {
		log.Error("power disable failed", err, "panel", p.name)
	}
}
