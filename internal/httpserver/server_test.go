package httpserver

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/akyairhashvil/lighttrack/internal/database"
	"github.com/gin-gonic/gin"
)

// TestEndToEndAgainstStore drives the real store through the HTTP layer.
func TestEndToEndAgainstStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()
	now := time.Date(2024, 1, 15, 9, 0, 0, 0, time.Local)
	clock := func() time.Time { return now }

	db, err := database.Open(ctx, filepath.Join(t.TempDir(), "test.db"), database.WithClock(clock))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	srv, err := New(db, Config{Mode: gin.TestMode, Now: clock})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if w, _ := do(t, srv, http.MethodPost, "/api/timer/start", taskReq{TaskName: "Write report"}); w.Code != http.StatusOK {
		t.Fatalf("start failed: %d %s", w.Code, w.Body.String())
	}
	now = now.Add(90 * time.Minute)
	w, resp := do(t, srv, http.MethodPost, "/api/timer/stop", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("stop failed: %d", w.Code)
	}
	var stopped successResp
	decodeData(t, resp, &stopped)
	if !stopped.Success {
		t.Fatalf("expected stop to succeed")
	}

	_, resp = do(t, srv, http.MethodGet, "/api/stats", nil)
	var stats []statsResp
	decodeData(t, resp, &stats)
	if len(stats) != 1 || stats[0].TotalSeconds != 5400 {
		t.Fatalf("unexpected stats %+v", stats)
	}

	end := "2024-01-15 09:00:00"
	w, _ = do(t, srv, http.MethodPut, "/api/entries/1", updateReq{TaskName: "Write report", StartTime: "2024-01-15 09:00:00", EndTime: &end})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected zero-length edit to be rejected, got %d", w.Code)
	}

	w, _ = do(t, srv, http.MethodGet, "/api/entries/range?from=2024-01-16&to=2024-01-15", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected reversed range to be rejected, got %d", w.Code)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	srv, _, _ := newTestServer(t)
	srv.addr = "127.0.0.1:0"
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()
	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}
