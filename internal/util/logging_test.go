package util

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger(t *testing.T) {
	log, err := NewLogger("debug", "json")
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	if !log.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug level to be enabled")
	}
	if _, err := NewLogger("loud", "console"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestLogError(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(core)

	LogError(log, "ignored", nil)
	LogError(log, "close database", errors.New("boom"))
	LogError(nil, "no logger", errors.New("boom"))

	if logs.Len() != 1 {
		t.Fatalf("expected 1 log entry, got %d", logs.Len())
	}
	if entry := logs.All()[0]; entry.Message != "close database" {
		t.Fatalf("unexpected message %q", entry.Message)
	}
}

func TestNewLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	log, err := NewLogger("info", "json", path)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	log.Info("hello", zap.String("k", "v"))
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file failed: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"hello"`) {
		t.Fatalf("log file missing entry: %s", data)
	}
}
