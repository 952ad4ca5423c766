package database

import (
	"fmt"
	"strings"
	"time"
)

// intervalDuration is the single place durations are derived. Every path that
// writes an end time (stop, switch, edit, import) goes through it, so
// duration_seconds always equals the floor of end - start in whole seconds.
func intervalDuration(start, end time.Time) (int64, error) {
	start = start.Truncate(time.Second)
	end = end.Truncate(time.Second)
	if end.Before(start) {
		return 0, fmt.Errorf("%w: end %s is before start %s", ErrInvalidInterval,
			formatTimestamp(end), formatTimestamp(start))
	}
	return int64(end.Sub(start) / time.Second), nil
}

// closingTime returns the end stamp for a timer being stopped at now. A clock
// that stepped backwards closes the interval at its own start.
func closingTime(start, now time.Time) time.Time {
	if now.Before(start) {
		return start
	}
	return now
}

// validateEdit checks a caller-supplied rewrite of an interval. Edits must name
// a task and, when closed, end strictly after they start.
func validateEdit(taskName string, start time.Time, end *time.Time) (string, int64, error) {
	name := strings.TrimSpace(taskName)
	if name == "" {
		return "", 0, fmt.Errorf("%w: task name is empty", ErrInvalidInterval)
	}
	if start.IsZero() {
		return "", 0, fmt.Errorf("%w: start time is required", ErrInvalidInterval)
	}
	if end == nil {
		return name, 0, nil
	}
	if !end.Truncate(time.Second).After(start.Truncate(time.Second)) {
		return "", 0, fmt.Errorf("%w: end time must be after start time", ErrInvalidInterval)
	}
	duration, err := intervalDuration(start, *end)
	if err != nil {
		return "", 0, err
	}
	return name, duration, nil
}

// validateRange checks an inclusive calendar range.
func validateRange(from, to time.Time) error {
	if formatDate(from) > formatDate(to) {
		return fmt.Errorf("%w: %s is after %s", ErrInvalidRange, formatDate(from), formatDate(to))
	}
	return nil
}
