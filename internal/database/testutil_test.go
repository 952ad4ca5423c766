package database

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(t time.Time) *fakeClock {
	return &fakeClock{now: t}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func at(year int, month time.Month, day, hour, min, sec int) time.Time {
	return time.Date(year, month, day, hour, min, sec, 0, time.Local)
}

func setupTestDB(t *testing.T, ctx context.Context, clock *fakeClock) *Database {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	var opts []Option
	if clock != nil {
		opts = append(opts, WithClock(clock.Now))
	}
	db, err := Open(ctx, dbPath, opts...)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

// seedInterval inserts a row directly, bypassing the timer flow.
func seedInterval(t *testing.T, ctx context.Context, db *Database, name string, start time.Time, end *time.Time) int64 {
	t.Helper()
	var duration int64
	if end != nil {
		d, err := intervalDuration(start, *end)
		if err != nil {
			t.Fatalf("intervalDuration failed: %v", err)
		}
		duration = d
	}
	res, err := db.DB.ExecContext(ctx,
		"INSERT INTO time_slots (task_name, start_time, end_time, duration_seconds) VALUES (?, ?, ?, ?)",
		name, formatTimestamp(start), nullableTime(end), duration)
	if err != nil {
		t.Fatalf("seed interval failed: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("seed interval id failed: %v", err)
	}
	return id
}

func closedAfter(start time.Time, seconds int) *time.Time {
	end := start.Add(time.Duration(seconds) * time.Second)
	return &end
}

func countIntervals(t *testing.T, ctx context.Context, db *Database) int {
	t.Helper()
	var count int
	if err := db.DB.QueryRowContext(ctx, "SELECT COUNT(1) FROM time_slots").Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return count
}
