package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/akyairhashvil/lighttrack/internal/config"
	"github.com/akyairhashvil/lighttrack/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---
type TickMsg time.Time

type dataLoadedMsg struct {
	day     time.Time
	active  *models.TimeInterval
	entries []models.TimeInterval
	stats   []models.TaskStats
	recent  []string
	err     error
}

type actionMsg struct {
	status string
	err    error
}

func tickCmd() tea.Cmd {
	return tea.Tick(config.TickInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func loadCmd(ctx context.Context, store Store, day time.Time, window int) tea.Cmd {
	return func() tea.Msg {
		msg := dataLoadedMsg{day: day}
		if msg.active, msg.err = store.ActiveTimer(ctx); msg.err != nil {
			return msg
		}
		if msg.entries, msg.err = store.EntriesForDate(ctx, day); msg.err != nil {
			return msg
		}
		if msg.stats, msg.err = store.StatsForDate(ctx, day); msg.err != nil {
			return msg
		}
		msg.recent, msg.err = store.RecentTaskNames(ctx, window)
		return msg
	}
}

func startCmd(ctx context.Context, store Store, name string, running bool) tea.Cmd {
	return func() tea.Msg {
		if running {
			if _, _, err := store.SwitchTask(ctx, name); err != nil {
				return actionMsg{err: err}
			}
			return actionMsg{status: fmt.Sprintf("Switched to %q", name)}
		}
		if _, err := store.StartTimer(ctx, name); err != nil {
			return actionMsg{err: err}
		}
		return actionMsg{status: fmt.Sprintf("Started %q", name)}
	}
}

func stopCmd(ctx context.Context, store Store) tea.Cmd {
	return func() tea.Msg {
		stopped, err := store.StopTimer(ctx)
		if err != nil {
			return actionMsg{err: err}
		}
		if !stopped {
			return actionMsg{status: "No timer running"}
		}
		return actionMsg{status: "Timer stopped"}
	}
}

func deleteCmd(ctx context.Context, store Store, id int64) tea.Cmd {
	return func() tea.Msg {
		deleted, err := store.DeleteInterval(ctx, id)
		if err != nil {
			return actionMsg{err: err}
		}
		if !deleted {
			return actionMsg{status: "Entry already gone"}
		}
		return actionMsg{status: "Entry deleted"}
	}
}
