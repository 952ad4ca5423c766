package util

import (
	"errors"
	"strings"
	"testing"
)

func TestTaskName(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		limit   int
		want    string
		wantErr bool
	}{
		{"trims", "  Write report  ", 255, "Write report", false},
		{"blank", "   ", 255, "", true},
		{"at limit", strings.Repeat("a", 10), 10, strings.Repeat("a", 10), false},
		{"over limit", strings.Repeat("a", 11), 10, "", true},
		{"wide runes count twice", strings.Repeat("界", 6), 10, "", true},
		{"no limit", strings.Repeat("界", 300), 0, strings.Repeat("界", 300), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TaskName(tt.raw, tt.limit)
			if (err != nil) != tt.wantErr {
				t.Fatalf("TaskName(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("TaskName(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
	if _, err := TaskName("", 10); !errors.Is(err, ErrTaskNameRequired) {
		t.Fatalf("expected ErrTaskNameRequired, got %v", err)
	}
}
