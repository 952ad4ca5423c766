package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestOpen_MigrationsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx, nil)
	if err := db.migrate(ctx); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("db close failed: %v", err)
	}
	again, err := Open(ctx, db.Path())
	if err != nil {
		t.Fatalf("Open second run failed: %v", err)
	}
	if err := again.Close(); err != nil {
		t.Fatalf("second close failed: %v", err)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(context.Background(), ""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestOpenCreatesParentDirectories(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "dir", "tracking.db")
	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()
	if db.Path() != path {
		t.Fatalf("Path = %q, want %q", db.Path(), path)
	}
}

func TestOpenEnablesWAL(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx, nil)
	var mode string
	if err := db.DB.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("journal_mode query failed: %v", err)
	}
	if !strings.EqualFold(mode, "wal") {
		t.Fatalf("journal_mode = %q, want wal", mode)
	}
}

func TestRecordsSurviveReopen(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock(at(2024, 3, 4, 9, 0, 0))
	path := filepath.Join(t.TempDir(), "persist.db")

	db, err := Open(ctx, path, WithClock(clock.Now))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := db.StartTimer(ctx, "Persist"); err != nil {
		t.Fatalf("StartTimer failed: %v", err)
	}
	clock.Advance(10 * time.Minute)
	if ok, err := db.StopTimer(ctx); err != nil || !ok {
		t.Fatalf("StopTimer = %v, %v", ok, err)
	}
	if _, err := db.StartTimer(ctx, "Still running"); err != nil {
		t.Fatalf("StartTimer failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := Open(ctx, path, WithClock(clock.Now))
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	entries, err := reopened.EntriesForDate(ctx, clock.Now())
	if err != nil {
		t.Fatalf("EntriesForDate failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries after reopen, got %d", len(entries))
	}
	if entries[0].TaskName != "Persist" || entries[0].DurationSeconds != 600 {
		t.Fatalf("unexpected first entry %+v", entries[0])
	}
	active, err := reopened.ActiveTimer(ctx)
	if err != nil {
		t.Fatalf("ActiveTimer failed: %v", err)
	}
	if active == nil || active.TaskName != "Still running" {
		t.Fatalf("expected running timer to survive reopen, got %+v", active)
	}
}

func TestWithTxRollback(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx, nil)
	err := db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO time_slots (task_name, start_time) VALUES (?, ?)", "Tx", "2024-01-01 09:00:00"); err != nil {
			return err
		}
		return fmt.Errorf("force rollback")
	})
	if err == nil {
		t.Fatalf("expected error from WithTx")
	}
	if count := countIntervals(t, ctx, db); count != 0 {
		t.Fatalf("expected rollback to remove interval, got count %d", count)
	}
}

func TestStorageFailurePropagates(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx, nil)
	if _, err := db.DB.ExecContext(ctx, "DROP TABLE time_slots"); err != nil {
		t.Fatalf("drop table failed: %v", err)
	}
	_, err := db.StartTimer(ctx, "Broken")
	if err == nil {
		t.Fatalf("expected storage error when table is missing")
	}
	var opErr *OpError
	if !errors.As(err, &opErr) || opErr.Op != "start" || opErr.Resource != EntityInterval {
		t.Fatalf("expected start OpError, got %v", err)
	}
	if _, err := db.StopTimer(ctx); err == nil {
		t.Fatalf("expected StopTimer to surface storage error")
	}
	if _, err := db.EntriesForDate(ctx, at(2024, 1, 1, 0, 0, 0)); err == nil {
		t.Fatalf("expected EntriesForDate to surface storage error")
	}
}
