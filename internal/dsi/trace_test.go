package dsi

import (
	"testing"
	"time"
)

func TestTraceCountsTraffic(t *testing.T) {
	tr := &Trace{}

	if n, err := tr.Write(OpExitSleep, nil); err != nil || n != 1 {
		t.Fatalf("Write = %d,%v, want 1,nil", n, err)
	}
	if n, err := tr.Write(0xE0, []byte{0x00}); err != nil || n != 2 {
		t.Fatalf("Write = %d,%v, want 2,nil", n, err)
	}
	tr.Delay(5 * time.Millisecond)
	tr.Delay(120 * time.Millisecond)

	if got := tr.Writes(); got != 2 {
		t.Errorf("Writes = %d, want 2", got)
	}
	if got := tr.Delayed(); got != 125*time.Millisecond {
		t.Errorf("Delayed = %v, want 125ms", got)
	}
}

func TestHexFormatting(t *testing.T) {
	if got := hexByte(0x0A); got != "0x0A" {
		t.Errorf("hexByte = %q", got)
	}
	if got := hexBytes(nil); got != "[]" {
		t.Errorf("hexBytes(nil) = %q", got)
	}
	if got := hexBytes([]byte{0x00, 0xFF}); got != "[0x00 0xFF]" {
		t.Errorf("hexBytes = %q", got)
	}
}
