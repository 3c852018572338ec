//go:build !linux

// Stub so the tool builds on development hosts without GPIO hardware;
// dry-run mode does not call Open at all.
package reset

import "fmt"

type Line struct{}

func Open(name string, activeLow bool) (*Line, error) {
	return nil, fmt.Errorf("reset: gpio control is only available on linux")
}

func (l *Line) SetReset(active bool) {}
