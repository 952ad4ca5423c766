package testutil

import (
	"time"

	"github.com/akyairhashvil/lighttrack/internal/models"
)

// IntervalBuilder provides fluent API for creating test intervals.
type IntervalBuilder struct {
	interval models.TimeInterval
}

// NewInterval starts a closed one-hour interval on 2024-01-15 at 09:00 local.
func NewInterval() *IntervalBuilder {
	start := time.Date(2024, time.January, 15, 9, 0, 0, 0, time.Local)
	end := start.Add(time.Hour)
	return &IntervalBuilder{
		interval: models.TimeInterval{
			ID:              1,
			TaskName:        "Test Task",
			StartTime:       start,
			EndTime:         &end,
			DurationSeconds: 3600,
		},
	}
}

func (b *IntervalBuilder) WithID(id int64) *IntervalBuilder {
	b.interval.ID = id
	return b
}

func (b *IntervalBuilder) Named(name string) *IntervalBuilder {
	b.interval.TaskName = name
	return b
}

// StartedAt moves the start, keeping the current duration.
func (b *IntervalBuilder) StartedAt(t time.Time) *IntervalBuilder {
	b.interval.StartTime = t
	if !b.interval.IsOpen() {
		end := t.Add(time.Duration(b.interval.DurationSeconds) * time.Second)
		b.interval.EndTime = &end
	}
	return b
}

func (b *IntervalBuilder) Lasting(d time.Duration) *IntervalBuilder {
	end := b.interval.StartTime.Add(d)
	b.interval.EndTime = &end
	b.interval.DurationSeconds = int64(d / time.Second)
	return b
}

func (b *IntervalBuilder) Open() *IntervalBuilder {
	b.interval.EndTime = nil
	b.interval.DurationSeconds = 0
	return b
}

func (b *IntervalBuilder) Build() models.TimeInterval {
	return b.interval
}

// Stats builds a TaskStats row.
func Stats(name string, seconds int64, count int) models.TaskStats {
	return models.TaskStats{TaskName: name, TotalSeconds: seconds, EntryCount: count}
}
