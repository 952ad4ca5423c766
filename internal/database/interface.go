package database

import (
	"context"
	"time"

	"github.com/akyairhashvil/lighttrack/internal/models"
)

// TimerRepository drives the running timer.
type TimerRepository interface {
	StartTimer(ctx context.Context, taskName string) (int64, error)
	StopTimer(ctx context.Context) (bool, error)
	SwitchTask(ctx context.Context, taskName string) (int64, bool, error)
	ActiveTimer(ctx context.Context) (*models.TimeInterval, error)
}

// EntryRepository reads and edits recorded intervals.
type EntryRepository interface {
	GetInterval(ctx context.Context, id int64) (models.TimeInterval, error)
	EntriesForDate(ctx context.Context, day time.Time) ([]models.TimeInterval, error)
	EntriesForRange(ctx context.Context, from, to time.Time) ([]models.TimeInterval, error)
	UpdateInterval(ctx context.Context, id int64, taskName string, start time.Time, end *time.Time) (bool, error)
	DeleteInterval(ctx context.Context, id int64) (bool, error)
}

// StatsRepository answers aggregate and suggestion queries.
type StatsRepository interface {
	StatsForDate(ctx context.Context, day time.Time) ([]models.TaskStats, error)
	StatsForRange(ctx context.Context, from, to time.Time) ([]models.TaskStats, error)
	RecentTaskNames(ctx context.Context, windowDays int) ([]string, error)
	RecentTaskUsage(ctx context.Context, windowDays int) ([]models.TaskUsage, error)
}

// TransferRepository moves intervals in and out as JSON.
type TransferRepository interface {
	ExportIntervals(ctx context.Context, from, to time.Time) ([]byte, error)
	ImportIntervals(ctx context.Context, data []byte) (int, error)
}

// Repository combines all repository interfaces.
//
//go:generate mockgen -source=interface.go -destination=../mocks/mock_repository.go -package=mocks
type Repository interface {
	TimerRepository
	EntryRepository
	StatsRepository
	TransferRepository
}

var _ Repository = (*Database)(nil)
