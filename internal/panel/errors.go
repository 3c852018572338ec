package panel

import "fmt"

// ConfigError reports an invalid or incomplete panel configuration. It is
// returned before any bus traffic has been issued.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("panel config: %s: %s", e.Field, e.Reason)
}

// StateError reports a lifecycle operation invoked from a state it is not
// valid in, e.g. Enable on an unprepared panel. It is a caller bug, never
// repaired silently.
type StateError struct {
	Op    string
	State State
}

func (e *StateError) Error() string {
	return fmt.Sprintf("panel: %s called in state %s", e.Op, e.State)
}

// WriteError reports a failed bus write. Op is the DCS opcode that failed;
// Index is the command-table position when the failure happened during a
// replay, or -1 for controller-issued writes.
type WriteError struct {
	Op    byte
	Index int
	Err   error
}

func (e *WriteError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("panel: write 0x%02X (table entry %d) failed: %v", e.Op, e.Index, e.Err)
	}
	return fmt.Sprintf("panel: write 0x%02X failed: %v", e.Op, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
