package util

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"02.01.2006 15:04",
	dateLayout,
}

// ParseTimestamp parses a local wall-clock timestamp. Seconds, the T
// separator and the DD.MM.YYYY HH:MM display form are all accepted.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", s)
}

// ParseDate parses YYYY-MM-DD as local midnight.
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(dateLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return d, nil
}

// StartOfDay returns local midnight of t's calendar date.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// WeekRange returns Monday and Sunday of the week containing t.
func WeekRange(t time.Time) (time.Time, time.Time) {
	offset := int(t.Weekday())
	if offset == 0 {
		offset = 7
	}
	start := StartOfDay(t).AddDate(0, 0, -offset+1)
	end := start.AddDate(0, 0, 6)
	return start, end
}

// DateRange is an inclusive span of calendar dates.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Single reports whether the range covers exactly one day.
func (r DateRange) Single() bool {
	return r.From.Format(dateLayout) == r.To.Format(dateLayout)
}

// Preset names accepted by PresetRange.
const (
	PresetToday     = "today"
	PresetYesterday = "yesterday"
	PresetThisWeek  = "this-week"
	PresetLastWeek  = "last-week"
)

// PresetRange resolves a named preset relative to now.
func PresetRange(name string, now time.Time) (DateRange, error) {
	today := StartOfDay(now)
	switch name {
	case PresetToday:
		return DateRange{From: today, To: today}, nil
	case PresetYesterday:
		y := today.AddDate(0, 0, -1)
		return DateRange{From: y, To: y}, nil
	case PresetThisWeek:
		from, to := WeekRange(today)
		return DateRange{From: from, To: to}, nil
	case PresetLastWeek:
		from, to := WeekRange(today.AddDate(0, 0, -7))
		return DateRange{From: from, To: to}, nil
	}
	return DateRange{}, fmt.Errorf("unknown date preset %q", name)
}
