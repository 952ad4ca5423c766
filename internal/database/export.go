package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/akyairhashvil/lighttrack/internal/config"
	"go.uber.org/zap"
)

const exportVersion = 1

type ExportInterval struct {
	ID              int64   `json:"id"`
	TaskName        string  `json:"task_name"`
	StartTime       string  `json:"start_time"`
	EndTime         *string `json:"end_time,omitempty"`
	DurationSeconds int64   `json:"duration_seconds"`
}

type ExportPayload struct {
	Version    int              `json:"version"`
	ExportedAt string           `json:"exported_at"`
	From       string           `json:"from"`
	To         string           `json:"to"`
	Intervals  []ExportInterval `json:"intervals"`
}

// ExportIntervals serialises every closed interval started within [from, to].
// A running timer is left out so the payload always imports.
func (d *Database) ExportIntervals(ctx context.Context, from, to time.Time) ([]byte, error) {
	intervals, err := d.EntriesForRange(ctx, from, to)
	if err != nil {
		return nil, wrapIntervalErr("export", 0, err)
	}
	payload := ExportPayload{
		Version:    exportVersion,
		ExportedAt: formatTimestamp(d.clock()),
		From:       formatDate(from),
		To:         formatDate(to),
		Intervals:  make([]ExportInterval, 0, len(intervals)),
	}
	for _, i := range intervals {
		if i.IsOpen() {
			continue
		}
		end := formatTimestamp(*i.EndTime)
		payload.Intervals = append(payload.Intervals, ExportInterval{
			ID:              i.ID,
			TaskName:        i.TaskName,
			StartTime:       formatTimestamp(i.StartTime),
			EndTime:         &end,
			DurationSeconds: i.DurationSeconds,
		})
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, wrapIntervalErr("export", 0, err)
	}
	return data, nil
}

// ImportIntervals inserts closed intervals from an export payload. Ids are
// reassigned, names trimmed and durations recomputed from the timestamps. The
// whole payload is rejected if any interval is open or fails edit validation.
func (d *Database) ImportIntervals(ctx context.Context, data []byte) (int, error) {
	var payload ExportPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return 0, wrapIntervalErr("import", 0, fmt.Errorf("%w: %v", ErrInvalidPayload, err))
	}
	if payload.Version != exportVersion {
		return 0, wrapIntervalErr("import", 0, fmt.Errorf("%w: unsupported export version %d", ErrInvalidPayload, payload.Version))
	}

	type row struct {
		name     string
		start    time.Time
		end      time.Time
		duration int64
	}
	rows := make([]row, 0, len(payload.Intervals))
	for _, e := range payload.Intervals {
		if e.EndTime == nil {
			return 0, wrapIntervalErr("import", e.ID, fmt.Errorf("%w: open intervals cannot be imported", ErrInvalidInterval))
		}
		start, err := parseTimestamp(e.StartTime)
		if err != nil {
			return 0, wrapIntervalErr("import", e.ID, fmt.Errorf("%w: %v", ErrInvalidInterval, err))
		}
		end, err := parseTimestamp(*e.EndTime)
		if err != nil {
			return 0, wrapIntervalErr("import", e.ID, fmt.Errorf("%w: %v", ErrInvalidInterval, err))
		}
		name, duration, err := validateEdit(e.TaskName, start, &end)
		if err != nil {
			return 0, wrapIntervalErr("import", e.ID, err)
		}
		rows = append(rows, row{name: name, start: start, end: end, duration: duration})
	}

	ctx, cancel := d.withTimeout(ctx, config.DefaultStatementTimeout*4)
	defer cancel()
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx,
			"INSERT INTO time_slots (task_name, start_time, end_time, duration_seconds) VALUES (?, ?, ?, ?)")
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, r := range rows {
			if _, err := stmt.ExecContext(ctx, r.name, formatTimestamp(r.start), formatTimestamp(r.end), r.duration); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, wrapIntervalErr("import", 0, err)
	}
	d.log.Info("intervals imported", zap.Int("count", len(rows)))
	return len(rows), nil
}
