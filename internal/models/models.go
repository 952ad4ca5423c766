package models

import (
	"time"

	"github.com/akyairhashvil/lighttrack/internal/config"
)

// IntervalState enumerates the lifecycle of a time interval.
type IntervalState string

const (
	StateOpen   IntervalState = "open"
	StateClosed IntervalState = "closed"
)

// TimeInterval is one contiguous span of tracked time for a task.
type TimeInterval struct {
	ID              int64
	TaskName        string
	StartTime       time.Time
	EndTime         *time.Time // nil while the timer is running
	DurationSeconds int64      // 0 while open
}

// IsOpen reports whether the interval is still running.
func (i TimeInterval) IsOpen() bool {
	return i.EndTime == nil
}

// State returns the lifecycle state derived from EndTime.
func (i TimeInterval) State() IntervalState {
	if i.IsOpen() {
		return StateOpen
	}
	return StateClosed
}

// Elapsed returns the tracked time. Open intervals are measured against now.
func (i TimeInterval) Elapsed(now time.Time) time.Duration {
	if i.IsOpen() {
		d := now.Sub(i.StartTime)
		if d < 0 {
			return 0
		}
		return d.Truncate(time.Second)
	}
	return time.Duration(i.DurationSeconds) * time.Second
}

// Date returns the local calendar date of the start time as YYYY-MM-DD.
func (i TimeInterval) Date() string {
	return i.StartTime.Format(config.DateLayout)
}

// TaskStats aggregates closed intervals sharing the same task name.
type TaskStats struct {
	TaskName     string
	TotalSeconds int64
	EntryCount   int
}

// TaskUsage describes how recently and how often a task name was used.
type TaskUsage struct {
	TaskName string
	LastUsed time.Time
	Uses     int
}
