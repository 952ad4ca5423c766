package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/akyairhashvil/lighttrack/internal/models"
	"go.uber.org/zap"
)

const intervalColumns = "id, task_name, start_time, end_time, duration_seconds"

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanInterval(r rowScanner) (models.TimeInterval, error) {
	var i models.TimeInterval
	var start, end localTime
	var duration sql.NullInt64
	if err := r.Scan(&i.ID, &i.TaskName, &start, &end, &duration); err != nil {
		return i, err
	}
	i.StartTime = start.Time
	i.EndTime = end.ptr()
	if i.EndTime != nil {
		i.DurationSeconds = duration.Int64
	}
	return i, nil
}

// StartTimer opens a new interval for taskName at the current time and
// returns its id. Any interval still running is closed first in the same
// transaction, so at most one interval is ever open.
func (d *Database) StartTimer(ctx context.Context, taskName string) (int64, error) {
	id, _, err := d.startTimer(ctx, "start", taskName)
	return id, err
}

// SwitchTask stops the running timer (if any) and starts taskName. It reports
// whether a running timer was closed.
func (d *Database) SwitchTask(ctx context.Context, taskName string) (int64, bool, error) {
	id, closed, err := d.startTimer(ctx, "switch", taskName)
	return id, closed > 0, err
}

func (d *Database) startTimer(ctx context.Context, op, taskName string) (int64, int, error) {
	ctx, cancel := d.withTimeout(ctx, d.timeout)
	defer cancel()

	now := d.clock()
	var id int64
	var closed int
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		var err error
		closed, err = d.closeOpenIntervals(ctx, tx, now)
		if err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx,
			"INSERT INTO time_slots (task_name, start_time, end_time, duration_seconds) VALUES (?, ?, NULL, 0)",
			taskName, formatTimestamp(now))
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return 0, 0, wrapIntervalErr(op, 0, err)
	}
	d.log.Debug("timer started",
		zap.String("op", op),
		zap.Int64("id", id),
		zap.String("task", taskName),
		zap.Int("closed", closed))
	return id, closed, nil
}

// closeOpenIntervals stamps every open interval with now.
func (d *Database) closeOpenIntervals(ctx context.Context, tx *sql.Tx, now time.Time) (int, error) {
	rows, err := tx.QueryContext(ctx, "SELECT id, start_time FROM time_slots WHERE end_time IS NULL ORDER BY id DESC")
	if err != nil {
		return 0, err
	}
	type openRow struct {
		id    int64
		start time.Time
	}
	var open []openRow
	for rows.Next() {
		var r openRow
		var start localTime
		if err := rows.Scan(&r.id, &start); err != nil {
			rows.Close()
			return 0, err
		}
		r.start = start.Time
		open = append(open, r)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return 0, err
	}
	rows.Close()

	for _, r := range open {
		if err := closeInterval(ctx, tx, r.id, r.start, now); err != nil {
			return 0, err
		}
	}
	return len(open), nil
}

func closeInterval(ctx context.Context, tx *sql.Tx, id int64, start, now time.Time) error {
	end := closingTime(start, now)
	duration, err := intervalDuration(start, end)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx,
		"UPDATE time_slots SET end_time = ?, duration_seconds = ? WHERE id = ?",
		formatTimestamp(end), duration, id)
	return err
}

// StopTimer closes the most recently started open interval. It returns false
// when no timer is running.
func (d *Database) StopTimer(ctx context.Context) (bool, error) {
	ctx, cancel := d.withTimeout(ctx, d.timeout)
	defer cancel()

	now := d.clock()
	var stoppedID int64
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		var id int64
		var start localTime
		err := tx.QueryRowContext(ctx,
			"SELECT id, start_time FROM time_slots WHERE end_time IS NULL ORDER BY id DESC LIMIT 1").
			Scan(&id, &start)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := closeInterval(ctx, tx, id, start.Time, now); err != nil {
			return err
		}
		stoppedID = id
		return nil
	})
	if err != nil {
		return false, wrapIntervalErr("stop", 0, err)
	}
	if stoppedID == 0 {
		return false, nil
	}
	d.log.Debug("timer stopped", zap.Int64("id", stoppedID))
	return true, nil
}

// ActiveTimer returns the open interval with the greatest id, or nil.
func (d *Database) ActiveTimer(ctx context.Context) (*models.TimeInterval, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (*models.TimeInterval, error) {
		row := d.DB.QueryRowContext(ctx,
			"SELECT "+intervalColumns+" FROM time_slots WHERE end_time IS NULL ORDER BY id DESC LIMIT 1")
		i, err := scanInterval(row)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		if err != nil {
			return nil, wrapIntervalErr("active", 0, err)
		}
		return &i, nil
	})
}

// GetInterval returns a single interval by id.
func (d *Database) GetInterval(ctx context.Context, id int64) (models.TimeInterval, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (models.TimeInterval, error) {
		row := d.DB.QueryRowContext(ctx, "SELECT "+intervalColumns+" FROM time_slots WHERE id = ?", id)
		i, err := scanInterval(row)
		if errors.Is(err, sql.ErrNoRows) {
			return i, wrapIntervalErr("get", id, ErrNotFound)
		}
		if err != nil {
			return i, wrapIntervalErr("get", id, err)
		}
		return i, nil
	})
}

// UpdateInterval rewrites the task name and timestamps of an interval and
// recomputes its duration. A nil end reopens the interval. It returns false
// when id does not exist and ErrInvalidInterval when the edit is rejected.
func (d *Database) UpdateInterval(ctx context.Context, id int64, taskName string, start time.Time, end *time.Time) (bool, error) {
	name, duration, err := validateEdit(taskName, start, end)
	if err != nil {
		return false, wrapIntervalErr("update", id, err)
	}
	return withDBContextResult(d, ctx, func(ctx context.Context) (bool, error) {
		res, err := d.DB.ExecContext(ctx, `
			UPDATE time_slots
			SET task_name = ?,
			    start_time = ?,
			    end_time = ?,
			    duration_seconds = ?
			WHERE id = ?`,
			name, formatTimestamp(start), nullableTime(end), duration, id)
		if err != nil {
			return false, wrapIntervalErr("update", id, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return false, wrapIntervalErr("update", id, err)
		}
		if n == 0 {
			return false, nil
		}
		d.log.Debug("interval updated", zap.Int64("id", id), zap.Bool("open", end == nil))
		return true, nil
	})
}

// DeleteInterval removes an interval and reports whether it existed.
func (d *Database) DeleteInterval(ctx context.Context, id int64) (bool, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (bool, error) {
		res, err := d.DB.ExecContext(ctx, "DELETE FROM time_slots WHERE id = ?", id)
		if err != nil {
			return false, wrapIntervalErr("delete", id, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return false, wrapIntervalErr("delete", id, err)
		}
		if n > 0 {
			d.log.Debug("interval deleted", zap.Int64("id", id))
		}
		return n > 0, nil
	})
}
