// Package report renders recorded intervals for people: the plain-text track
// summary pasted into ticket systems and the PDF range report.
package report

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/akyairhashvil/lighttrack/internal/config"
	"github.com/akyairhashvil/lighttrack/internal/models"
	"github.com/akyairhashvil/lighttrack/internal/util"
)

var devTicket = regexp.MustCompile(`^(DEV-\d{3,6})\s*(.*)$`)

// FormatDurationCompact renders whole minutes: 0m, 45m, 2h, 1h 5m.
func FormatDurationCompact(seconds int64) string {
	if seconds <= 0 {
		return "0m"
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	if h > 0 {
		if m > 0 {
			return fmt.Sprintf("%dh %dm", h, m)
		}
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatClock renders a duration as HH:MM:SS.
func FormatClock(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}

// SummaryLine renders one task total. Ticket-prefixed names move the
// description after the duration.
func SummaryLine(taskName string, seconds int64) string {
	duration := FormatDurationCompact(seconds)
	match := devTicket.FindStringSubmatch(taskName)
	if match == nil {
		return fmt.Sprintf("%s: %s", taskName, duration)
	}
	description := strings.TrimSpace(match[2])
	if description == "" {
		return fmt.Sprintf("%s: %s", match[1], duration)
	}
	return fmt.Sprintf("%s: %s - %s", match[1], duration, description)
}

// DaySummary is the per-task total of one calendar day.
type DaySummary struct {
	Date         string // YYYY-MM-DD
	TotalSeconds int64
	Tasks        []models.TaskStats
}

// GroupByDay totals intervals per start date and task name. Days come back in
// date order and tasks sorted by name. Open intervals count with their stored
// duration of zero.
func GroupByDay(entries []models.TimeInterval) []DaySummary {
	byDay := map[string]map[string]*models.TaskStats{}
	for _, e := range entries {
		day := e.Date()
		tasks, ok := byDay[day]
		if !ok {
			tasks = map[string]*models.TaskStats{}
			byDay[day] = tasks
		}
		s, ok := tasks[e.TaskName]
		if !ok {
			s = &models.TaskStats{TaskName: e.TaskName}
			tasks[e.TaskName] = s
		}
		s.TotalSeconds += e.DurationSeconds
		s.EntryCount++
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	out := make([]DaySummary, 0, len(days))
	for _, day := range days {
		summary := DaySummary{Date: day}
		for _, s := range byDay[day] {
			summary.Tasks = append(summary.Tasks, *s)
			summary.TotalSeconds += s.TotalSeconds
		}
		sort.Slice(summary.Tasks, func(i, j int) bool {
			return summary.Tasks[i].TaskName < summary.Tasks[j].TaskName
		})
		out = append(out, summary)
	}
	return out
}

// BuildTrackSummary renders intervals as a day-grouped text block:
//
//	# 15.01.2024 (2h 5m)
//	DEV-1234: 1h 30m - Fix login
//	Meetings: 35m
//
// Days are separated by a blank line.
func BuildTrackSummary(entries []models.TimeInterval) string {
	var lines []string
	for _, day := range GroupByDay(entries) {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, fmt.Sprintf("# %s (%s)", displayDate(day.Date), FormatDurationCompact(day.TotalSeconds)))
		for _, task := range day.Tasks {
			lines = append(lines, SummaryLine(task.TaskName, task.TotalSeconds))
		}
	}
	return strings.Join(lines, "\n")
}

func displayDate(isoDate string) string {
	parts := strings.Split(isoDate, "-")
	if len(parts) != 3 {
		return isoDate
	}
	return parts[2] + "." + parts[1] + "." + parts[0]
}

// RangeTitle renders the heading for an inclusive range.
func RangeTitle(r util.DateRange) string {
	from := r.From.Format(config.DisplayDate)
	to := r.To.Format(config.DisplayDate)
	if from == to {
		return from
	}
	return from + " - " + to
}
