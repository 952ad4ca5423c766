package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Focus areas a binding can apply to.
const (
	FocusInput = iota
	FocusEntries
)

type KeyHandler func(m Model, key string) (Model, tea.Cmd, bool)

type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	Focus       []int
	Priority    int
}

func (b KeyBinding) AppliesTo(focus int) bool {
	if len(b.Focus) == 0 {
		return true
	}
	for _, f := range b.Focus {
		if f == focus {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m Model, key string) (Model, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesTo(m.focus) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) BindingsFor(focus int) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesTo(focus) {
			out = append(out, b)
		}
	}
	return out
}

// HelpFor renders "[key]Description" pairs for the footer, first binding per
// description wins.
func (r *HandlerRegistry) HelpFor(focus int) string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.BindingsFor(focus) {
		if b.Description == "" || seen[b.Description] {
			continue
		}
		seen[b.Description] = true
		parts = append(parts, "["+b.Key+"]"+b.Description)
	}
	return strings.Join(parts, "|")
}

func defaultRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	input := []int{FocusInput}
	entries := []int{FocusEntries}

	r.Register(KeyBinding{Key: "enter", Handler: handleSubmit, Description: "Start", Focus: input, Priority: 10})
	r.Register(KeyBinding{Key: "tab", Handler: handleAcceptSuggestion, Description: "Complete", Focus: input, Priority: 5})
	r.Register(KeyBinding{Key: "up", Handler: handleSuggestionMove, Focus: input})
	r.Register(KeyBinding{Key: "down", Handler: handleSuggestionMove, Focus: input})
	r.Register(KeyBinding{Key: "ctrl+s", Handler: handleStop, Description: "Stop", Focus: input})
	r.Register(KeyBinding{Key: "esc", Handler: handleFocusEntries, Description: "Entries", Focus: input})

	r.Register(KeyBinding{Key: "s", Handler: handleStop, Description: "Stop", Focus: entries, Priority: 10})
	r.Register(KeyBinding{Key: "enter", Handler: handleResume, Description: "Resume", Focus: entries, Priority: 9})
	r.Register(KeyBinding{Key: "d", Handler: handleDelete, Description: "Delete", Focus: entries})
	r.Register(KeyBinding{Key: "up", Handler: handleCursor, Focus: entries})
	r.Register(KeyBinding{Key: "k", Handler: handleCursor, Focus: entries})
	r.Register(KeyBinding{Key: "down", Handler: handleCursor, Focus: entries})
	r.Register(KeyBinding{Key: "j", Handler: handleCursor, Focus: entries})
	r.Register(KeyBinding{Key: "i", Handler: handleFocusInput, Description: "Task", Focus: entries})
	r.Register(KeyBinding{Key: "/", Handler: handleFocusInput, Focus: entries})
	r.Register(KeyBinding{Key: "r", Handler: handleRefresh, Description: "Refresh", Focus: entries})
	r.Register(KeyBinding{Key: "q", Handler: handleQuit, Description: "Quit", Focus: entries})
	return r
}
