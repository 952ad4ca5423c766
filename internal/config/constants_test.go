package config

import "testing"

func TestConstants(t *testing.T) {
	if TickInterval <= 0 {
		t.Fatalf("TickInterval must be positive")
	}
	if DefaultStatementTimeout <= 0 {
		t.Fatalf("DefaultStatementTimeout must be positive")
	}
	if DefaultRecentWindow != 14 {
		t.Fatalf("DefaultRecentWindow = %d, want 14", DefaultRecentWindow)
	}
	if AppName == "" {
		t.Fatalf("AppName should not be empty")
	}
	if DBFileName == "" {
		t.Fatalf("DBFileName should not be empty")
	}
	if MaxSuggestions <= 0 || MaxVisibleEntries <= 0 {
		t.Fatalf("display limits must be positive")
	}
}
