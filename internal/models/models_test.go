package models

import (
	"testing"
	"time"
)

func TestIntervalStateConstants(t *testing.T) {
	if StateOpen != "open" {
		t.Fatalf("StateOpen = %q", StateOpen)
	}
	if StateClosed != "closed" {
		t.Fatalf("StateClosed = %q", StateClosed)
	}
}

func TestTimeIntervalZeroValues(t *testing.T) {
	var i TimeInterval
	if i.EndTime != nil {
		t.Fatalf("expected nil EndTime by default")
	}
	if !i.IsOpen() || i.State() != StateOpen {
		t.Fatalf("expected zero interval to be open")
	}
}

func TestElapsed(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)
	open := TimeInterval{StartTime: start}
	if got := open.Elapsed(start.Add(90*time.Second + 400*time.Millisecond)); got != 90*time.Second {
		t.Fatalf("open Elapsed = %v, want 90s", got)
	}
	if got := open.Elapsed(start.Add(-time.Minute)); got != 0 {
		t.Fatalf("Elapsed before start = %v, want 0", got)
	}

	end := start.Add(time.Hour)
	closed := TimeInterval{StartTime: start, EndTime: &end, DurationSeconds: 3600}
	if closed.State() != StateClosed {
		t.Fatalf("expected closed state")
	}
	if got := closed.Elapsed(start.Add(48 * time.Hour)); got != time.Hour {
		t.Fatalf("closed Elapsed = %v, want 1h", got)
	}
	if closed.Date() != "2024-01-01" {
		t.Fatalf("Date = %q", closed.Date())
	}
}
