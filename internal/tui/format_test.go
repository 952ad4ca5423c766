package tui

import (
	"strings"
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{45 * time.Second, "45s"},
		{-time.Second, "0s"},
		{10 * time.Minute, "10m"},
		{2 * time.Hour, "2h"},
		{2*time.Hour + 15*time.Minute, "2h 15m"},
		{26*time.Hour + time.Minute, "26h 1m"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Fatalf("FormatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatElapsed(t *testing.T) {
	if got := formatElapsed(90 * time.Minute); got != "01:30:00" {
		t.Fatalf("formatElapsed = %q", got)
	}
	if got := formatElapsed(-time.Minute); got != "00:00:00" {
		t.Fatalf("formatElapsed negative = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("truncate short = %q", got)
	}
	got := truncate(strings.Repeat("x", 20), 10)
	if !strings.HasSuffix(got, "...") || len(got) != 10 {
		t.Fatalf("truncate long = %q", got)
	}
	if truncate("abc", 0) != "" {
		t.Fatalf("expected empty for zero width")
	}
}

func TestTaskWidth(t *testing.T) {
	if got := taskWidth(0); got != 36 {
		t.Fatalf("taskWidth(0) = %d", got)
	}
	if got := taskWidth(20); got != 10 {
		t.Fatalf("taskWidth(20) = %d", got)
	}
	if got := taskWidth(200); got != 36 {
		t.Fatalf("taskWidth(200) = %d", got)
	}
}

func TestVisibleWindow(t *testing.T) {
	if s, e := visibleWindow(5, 3, 12); s != 0 || e != 5 {
		t.Fatalf("short list window = %d,%d", s, e)
	}
	if s, e := visibleWindow(30, 29, 12); s != 18 || e != 30 {
		t.Fatalf("tail window = %d,%d", s, e)
	}
	if s, e := visibleWindow(30, 10, 12); s != 4 || e != 16 {
		t.Fatalf("middle window = %d,%d", s, e)
	}
}

func TestFilterSuggestions(t *testing.T) {
	recent := []string{"Code review", "Write report", "Review PR", "a", "b", "c", "d"}
	if got := filterSuggestions(recent, ""); len(got) != 5 {
		t.Fatalf("expected limit of 5, got %v", got)
	}
	if got := filterSuggestions(recent, "REV"); len(got) != 2 || got[1] != "Review PR" {
		t.Fatalf("case-insensitive filter gave %v", got)
	}
	if got := filterSuggestions(recent, "review pr"); len(got) != 0 {
		t.Fatalf("exact match should be hidden, got %v", got)
	}
}

func TestHelpForFocus(t *testing.T) {
	r := defaultRegistry()
	input := r.HelpFor(FocusInput)
	if !strings.Contains(input, "[enter]Start") || strings.Contains(input, "[q]Quit") {
		t.Fatalf("unexpected input help %q", input)
	}
	entries := r.HelpFor(FocusEntries)
	if !strings.Contains(entries, "[s]Stop") || !strings.Contains(entries, "[d]Delete") {
		t.Fatalf("unexpected entries help %q", entries)
	}
}
