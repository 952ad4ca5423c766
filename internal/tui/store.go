package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/lighttrack/internal/models"
)

// Store defines the persistence methods the TUI requires.
type Store interface {
	StartTimer(ctx context.Context, taskName string) (int64, error)
	StopTimer(ctx context.Context) (bool, error)
	SwitchTask(ctx context.Context, taskName string) (int64, bool, error)
	ActiveTimer(ctx context.Context) (*models.TimeInterval, error)

	EntriesForDate(ctx context.Context, day time.Time) ([]models.TimeInterval, error)
	DeleteInterval(ctx context.Context, id int64) (bool, error)

	StatsForDate(ctx context.Context, day time.Time) ([]models.TaskStats, error)
	RecentTaskNames(ctx context.Context, windowDays int) ([]string, error)
}
