// Package tui is the terminal front end: a live timer, a task input with
// recent-name suggestions, and today's entries and totals.
package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/lighttrack/internal/config"
	"github.com/akyairhashvil/lighttrack/internal/models"
	"github.com/akyairhashvil/lighttrack/internal/util"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Options tune the model; zero values fall back to defaults.
type Options struct {
	RecentWindowDays int
	Theme            string
	Now              func() time.Time
	Logger           *zap.Logger
}

// Model is the root bubbletea model.
type Model struct {
	ctx      context.Context
	store    Store
	keys     *HandlerRegistry
	now      func() time.Time
	log      *zap.Logger
	window   int
	day      time.Time
	loaded   bool
	input    textinput.Model
	focus    int
	active   *models.TimeInterval
	entries  []models.TimeInterval
	stats    []models.TaskStats
	recent   []string
	suggest  []string
	suggIdx  int
	cursor   int
	deleting int64

	statusMessage string
	statusIsError bool
	width, height int
}

func NewModel(ctx context.Context, store Store, opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "What are you working on?"
	ti.CharLimit = config.MaxTaskNameLength
	ti.Width = config.TargetTaskWidth
	ti.Focus()

	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.RecentWindowDays <= 0 {
		opts.RecentWindowDays = config.DefaultRecentWindow
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Theme != "" {
		SetTheme(opts.Theme)
	}
	return Model{
		ctx:     ctx,
		store:   store,
		keys:    defaultRegistry(),
		now:     opts.Now,
		log:     opts.Logger,
		window:  opts.RecentWindowDays,
		day:     util.StartOfDay(opts.Now()),
		input:   ti,
		focus:   FocusInput,
		suggIdx: -1,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.load(), tickCmd())
}

func (m Model) load() tea.Cmd {
	return loadCmd(m.ctx, m.store, m.day, m.window)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = taskWidth(msg.Width)
		return m, nil

	case TickMsg:
		today := util.StartOfDay(m.now())
		if !today.Equal(m.day) {
			m.day = today
			return m, tea.Batch(m.load(), tickCmd())
		}
		return m, tickCmd()

	case dataLoadedMsg:
		if msg.err != nil {
			m.log.Error("load failed", zap.Error(msg.err))
			m.setStatus(msg.err.Error(), true)
			return m, nil
		}
		m.loaded = true
		m.active = msg.active
		m.entries = msg.entries
		m.stats = msg.stats
		m.recent = msg.recent
		m.cursor = util.Clamp(m.cursor, 0, max(len(m.entries)-1, 0))
		m.refreshSuggestions()
		return m, nil

	case actionMsg:
		if msg.err != nil {
			m.log.Error("action failed", zap.Error(msg.err))
			m.setStatus(msg.err.Error(), true)
		} else {
			m.setStatus(msg.status, false)
		}
		return m, m.load()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.focus == FocusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}
	if m.deleting != 0 {
		return m.handleDeleteConfirm(key)
	}
	if next, cmd, handled := m.keys.Handle(m, key); handled {
		return next, cmd
	}
	if m.focus != FocusInput {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.suggIdx = -1
	m.refreshSuggestions()
	return m, cmd
}

func (m Model) handleDeleteConfirm(key string) (tea.Model, tea.Cmd) {
	id := m.deleting
	m.deleting = 0
	switch key {
	case "y", "Y":
		return m, deleteCmd(m.ctx, m.store, id)
	}
	m.setStatus("Delete cancelled", false)
	return m, nil
}

func (m *Model) setStatus(text string, isErr bool) {
	m.statusMessage = text
	m.statusIsError = isErr
}

func (m *Model) refreshSuggestions() {
	m.suggest = filterSuggestions(m.recent, m.input.Value())
	if m.suggIdx >= len(m.suggest) {
		m.suggIdx = len(m.suggest) - 1
	}
}

// --- Key handlers ---

func handleSubmit(m Model, _ string) (Model, tea.Cmd, bool) {
	raw := m.input.Value()
	if m.suggIdx >= 0 && m.suggIdx < len(m.suggest) {
		raw = m.suggest[m.suggIdx]
	}
	name, err := util.TaskName(raw, config.MaxTaskNameLength)
	if err != nil {
		m.setStatus(err.Error(), true)
		return m, nil, true
	}
	cmd := startCmd(m.ctx, m.store, name, m.active != nil)
	m.input.SetValue("")
	m.suggIdx = -1
	m.refreshSuggestions()
	return m, cmd, true
}

func handleAcceptSuggestion(m Model, _ string) (Model, tea.Cmd, bool) {
	if len(m.suggest) == 0 {
		return m, nil, true
	}
	idx := m.suggIdx
	if idx < 0 {
		idx = 0
	}
	m.input.SetValue(m.suggest[idx])
	m.input.CursorEnd()
	m.suggIdx = -1
	m.refreshSuggestions()
	return m, nil, true
}

func handleSuggestionMove(m Model, key string) (Model, tea.Cmd, bool) {
	if len(m.suggest) == 0 {
		return m, nil, true
	}
	if key == "up" {
		m.suggIdx--
	} else {
		m.suggIdx++
	}
	m.suggIdx = util.Clamp(m.suggIdx, -1, len(m.suggest)-1)
	return m, nil, true
}

func handleStop(m Model, _ string) (Model, tea.Cmd, bool) {
	return m, stopCmd(m.ctx, m.store), true
}

func handleResume(m Model, _ string) (Model, tea.Cmd, bool) {
	if len(m.entries) == 0 {
		return m, nil, true
	}
	name := m.entries[m.cursor].TaskName
	return m, startCmd(m.ctx, m.store, name, m.active != nil), true
}

func handleDelete(m Model, _ string) (Model, tea.Cmd, bool) {
	if len(m.entries) == 0 {
		return m, nil, true
	}
	m.deleting = m.entries[m.cursor].ID
	m.setStatus("Delete this entry? [y/N]", false)
	return m, nil, true
}

func handleCursor(m Model, key string) (Model, tea.Cmd, bool) {
	switch key {
	case "up", "k":
		m.cursor--
	case "down", "j":
		m.cursor++
	}
	m.cursor = util.Clamp(m.cursor, 0, max(len(m.entries)-1, 0))
	return m, nil, true
}

func handleFocusInput(m Model, _ string) (Model, tea.Cmd, bool) {
	m.focus = FocusInput
	return m, m.input.Focus(), true
}

func handleFocusEntries(m Model, _ string) (Model, tea.Cmd, bool) {
	m.focus = FocusEntries
	m.input.Blur()
	m.suggIdx = -1
	return m, nil, true
}

func handleRefresh(m Model, _ string) (Model, tea.Cmd, bool) {
	return m, m.load(), true
}

func handleQuit(m Model, _ string) (Model, tea.Cmd, bool) {
	return m, tea.Quit, true
}
