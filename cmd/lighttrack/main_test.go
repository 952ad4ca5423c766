package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/lighttrack/internal/database"
)

var testNow = time.Date(2024, time.January, 17, 12, 0, 0, 0, time.Local)

func openTestDB(t *testing.T, now *time.Time) *database.Database {
	t.Helper()
	ctx := context.Background()
	db, err := database.Open(ctx, filepath.Join(t.TempDir(), "test.db"),
		database.WithClock(func() time.Time { return *now }))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// track records a closed interval of d starting at start.
func track(t *testing.T, db *database.Database, now *time.Time, name string, start time.Time, d time.Duration) {
	t.Helper()
	ctx := context.Background()
	*now = start
	if _, err := db.StartTimer(ctx, name); err != nil {
		t.Fatalf("StartTimer failed: %v", err)
	}
	*now = start.Add(d)
	if _, err := db.StopTimer(ctx); err != nil {
		t.Fatalf("StopTimer failed: %v", err)
	}
}

func TestParseFlagsDefaults(t *testing.T) {
	opts, err := parseFlags(nil, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags failed: %v", err)
	}
	if opts.preset != "today" || opts.format != "text" {
		t.Fatalf("unexpected defaults: %+v", opts)
	}
	if !opts.interactive() {
		t.Fatalf("no flags should start the terminal UI")
	}
}

func TestParseFlagsRejectsFormat(t *testing.T) {
	if _, err := parseFlags([]string{"-report", "-format", "csv"}, io.Discard); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestParseFlagsModes(t *testing.T) {
	for _, args := range [][]string{{"-serve"}, {"-report"}, {"-export", "out.json"}, {"-import", "in.json"}} {
		opts, err := parseFlags(args, io.Discard)
		if err != nil {
			t.Fatalf("parseFlags(%v) failed: %v", args, err)
		}
		if opts.interactive() {
			t.Fatalf("parseFlags(%v) should not be interactive", args)
		}
	}
}

func TestDateRange(t *testing.T) {
	opts := options{preset: "yesterday"}
	r, err := opts.dateRange(testNow)
	if err != nil {
		t.Fatalf("dateRange failed: %v", err)
	}
	if got := r.From.Format("2006-01-02"); got != "2024-01-16" || !r.Single() {
		t.Fatalf("yesterday resolved to %s..%s", got, r.To.Format("2006-01-02"))
	}

	opts = options{preset: "yesterday", from: "2024-01-01", to: "2024-01-07"}
	r, err = opts.dateRange(testNow)
	if err != nil {
		t.Fatalf("dateRange failed: %v", err)
	}
	if r.From.Format("2006-01-02") != "2024-01-01" || r.To.Format("2006-01-02") != "2024-01-07" {
		t.Fatalf("explicit range ignored: %+v", r)
	}

	opts = options{from: "2024-01-03"}
	r, err = opts.dateRange(testNow)
	if err != nil {
		t.Fatalf("dateRange failed: %v", err)
	}
	if !r.Single() {
		t.Fatalf("-from alone should select one day")
	}

	if _, err := (options{from: "03.01.2024"}).dateRange(testNow); err == nil {
		t.Fatalf("expected error for malformed date")
	}
	if _, err := (options{preset: "fortnight"}).dateRange(testNow); err == nil {
		t.Fatalf("expected error for unknown preset")
	}
}

func TestRunReportText(t *testing.T) {
	now := testNow
	db := openTestDB(t, &now)
	track(t, db, &now, "DEV-1234 Fix login", time.Date(2024, 1, 15, 9, 0, 0, 0, time.Local), 90*time.Minute)
	track(t, db, &now, "Meetings", time.Date(2024, 1, 16, 14, 0, 0, 0, time.Local), 35*time.Minute)

	var out bytes.Buffer
	opts := options{from: "2024-01-15", to: "2024-01-16", format: "text"}
	if err := runReport(context.Background(), db, opts, testNow, &out); err != nil {
		t.Fatalf("runReport failed: %v", err)
	}
	want := "# 15.01.2024 (1h 30m)\nDEV-1234: 1h 30m - Fix login\n\n# 16.01.2024 (35m)\nMeetings: 35m\n"
	if out.String() != want {
		t.Fatalf("report mismatch:\n%q\nwant\n%q", out.String(), want)
	}
}

func TestRunReportEmpty(t *testing.T) {
	now := testNow
	db := openTestDB(t, &now)

	var out bytes.Buffer
	if err := runReport(context.Background(), db, options{preset: "today", format: "text"}, testNow, &out); err != nil {
		t.Fatalf("runReport failed: %v", err)
	}
	if !strings.Contains(out.String(), "Nothing tracked for 17.01.2024") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRunReportPDF(t *testing.T) {
	now := testNow
	db := openTestDB(t, &now)
	track(t, db, &now, "Write report", time.Date(2024, 1, 17, 9, 0, 0, 0, time.Local), time.Hour)

	dir := t.TempDir()
	var out bytes.Buffer
	opts := options{preset: "today", format: "pdf", outDir: dir}
	if err := runReport(context.Background(), db, opts, testNow, &out); err != nil {
		t.Fatalf("runReport failed: %v", err)
	}
	path := filepath.Join(dir, "report_2024-01-17.pdf")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected %s: %v", path, err)
	}
	if !strings.Contains(out.String(), path) {
		t.Fatalf("output should name the file, got %q", out.String())
	}
}

func TestExportImport(t *testing.T) {
	now := testNow
	src := openTestDB(t, &now)
	track(t, src, &now, "A", time.Date(2024, 1, 15, 9, 0, 0, 0, time.Local), 30*time.Minute)
	track(t, src, &now, "B", time.Date(2024, 1, 16, 9, 0, 0, 0, time.Local), 45*time.Minute)

	file := filepath.Join(t.TempDir(), "export.json")
	ctx := context.Background()
	opts := options{from: "2024-01-15", to: "2024-01-16", exportPath: file}
	if err := runExport(ctx, src, opts, testNow, io.Discard); err != nil {
		t.Fatalf("runExport failed: %v", err)
	}

	dstNow := testNow
	dst := openTestDB(t, &dstNow)
	var out bytes.Buffer
	if err := runImport(ctx, dst, file, &out); err != nil {
		t.Fatalf("runImport failed: %v", err)
	}
	if !strings.Contains(out.String(), "Imported 2 intervals") {
		t.Fatalf("unexpected output %q", out.String())
	}
	stats, err := dst.StatsForRange(ctx, time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local), time.Date(2024, 1, 16, 0, 0, 0, 0, time.Local))
	if err != nil {
		t.Fatalf("StatsForRange failed: %v", err)
	}
	if len(stats) != 2 || stats[0].TaskName != "B" || stats[0].TotalSeconds != 2700 {
		t.Fatalf("unexpected stats after import: %+v", stats)
	}
}

func TestRunImportMissingFile(t *testing.T) {
	now := testNow
	db := openTestDB(t, &now)
	if err := runImport(context.Background(), db, filepath.Join(t.TempDir(), "missing.json"), io.Discard); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
