package dsi

import (
	"time"

	"dsipanel/internal/log"
)

// Trace is a Bus that records the command stream instead of (or alongside)
// driving hardware. It backs the CLI's dry-run mode: the full bring-up
// sequence can be audited on a development host with no DSI link attached.
type Trace struct {
	// RealDelays makes Delay actually sleep, reproducing bring-up
	// latency. Off by default so table audits finish instantly.
	RealDelays bool

	writes  int
	delayed time.Duration
}

func (t *Trace) Write(op byte, payload []byte) (int, error) {
	log.Debug("dsi write", "op", hexByte(op), "payload", hexBytes(payload))
	t.writes++
	return 1 + len(payload), nil
}

func (t *Trace) Delay(d time.Duration) {
	log.Debug("dsi delay", "ms", d.Milliseconds())
	t.delayed += d
	if t.RealDelays {
		time.Sleep(d)
	}
}

// Writes reports how many writes have been traced.
func (t *Trace) Writes() int { return t.writes }

// Delayed reports the cumulative requested delay time.
func (t *Trace) Delayed() time.Duration { return t.delayed }

// SetReset lets a Trace double as the reset line in dry-run mode.
func (t *Trace) SetReset(active bool) {
	log.Debug("reset line", "active", active)
}

const hexDigits = "0123456789ABCDEF"

func hexByte(b byte) string {
	return "0x" + string([]byte{hexDigits[b>>4], hexDigits[b&0xF]})
}

func hexBytes(p []byte) string {
	if len(p) == 0 {
		return "[]"
	}
	out := "["
	for i, b := range p {
		if i > 0 {
			out += " "
		}
		out += hexByte(b)
	}
	return out + "]"
}
