package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/lighttrack/internal/config"
	"github.com/akyairhashvil/lighttrack/internal/util"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if !m.loaded && m.statusMessage == "" {
		return "\n  Loading...\n"
	}
	sections := []string{
		m.renderHeader(),
		m.renderTimer(),
		m.renderInput(),
		m.renderBody(),
		m.renderFooter(),
	}
	return CurrentTheme.Base.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderHeader() string {
	title := CurrentTheme.Header.Render(config.AppName)
	date := CurrentTheme.Dim.Render(m.day.Format("Mon ") + m.day.Format(config.DisplayDate))
	return title + "  " + date
}

func (m Model) renderTimer() string {
	width := taskWidth(m.width)
	var line string
	if m.active == nil {
		line = CurrentTheme.Idle.Render("No timer running")
	} else {
		elapsed := m.active.Elapsed(m.now())
		line = CurrentTheme.Running.Render("● "+truncate(m.active.TaskName, width)) +
			"  " + CurrentTheme.Clock.Render(formatElapsed(elapsed))
	}
	return CurrentTheme.Panel.BorderForeground(CurrentTheme.Border).Render(line)
}

func (m Model) renderInput() string {
	label := "Task"
	if m.active != nil {
		label = "Switch to"
	}
	if m.focus == FocusInput {
		label = CurrentTheme.Focused.Render(label)
	} else {
		label = CurrentTheme.Dim.Render(label)
	}
	var b strings.Builder
	b.WriteString(label + "\n")
	b.WriteString(CurrentTheme.Input.Render(m.input.View()))
	if m.focus == FocusInput {
		for i, s := range m.suggest {
			b.WriteString("\n")
			text := "  " + truncate(s, taskWidth(m.width))
			if i == m.suggIdx {
				b.WriteString(CurrentTheme.Focused.Render("> " + truncate(s, taskWidth(m.width))))
			} else {
				b.WriteString(CurrentTheme.Dim.Render(text))
			}
		}
	}
	return b.String()
}

func (m Model) renderBody() string {
	entries := m.renderEntries()
	stats := m.renderStats()
	if m.width >= 2*config.MinPanelWidth+taskWidth(m.width) {
		return lipgloss.JoinHorizontal(lipgloss.Top, entries, "  ", stats)
	}
	return lipgloss.JoinVertical(lipgloss.Left, entries, stats)
}

func (m Model) renderEntries() string {
	var b strings.Builder
	title := fmt.Sprintf("Today (%d)", len(m.entries))
	if m.focus == FocusEntries {
		b.WriteString(CurrentTheme.Focused.Render(title))
	} else {
		b.WriteString(CurrentTheme.Header.Render(title))
	}
	if len(m.entries) == 0 {
		b.WriteString("\n" + CurrentTheme.Dim.Render("Nothing tracked yet."))
		return CurrentTheme.Panel.Render(b.String())
	}

	start, end := visibleWindow(len(m.entries), m.cursor, config.MaxVisibleEntries)
	width := taskWidth(m.width)
	now := m.now()
	for i := start; i < end; i++ {
		e := m.entries[i]
		until := "     "
		if e.EndTime != nil {
			until = e.EndTime.Format("15:04")
		}
		line := fmt.Sprintf("%s-%s %s %s", e.StartTime.Format("15:04"), until,
			formatElapsed(e.Elapsed(now)), pad(truncate(e.TaskName, width), width))
		b.WriteString("\n")
		switch {
		case m.focus == FocusEntries && i == m.cursor:
			b.WriteString(CurrentTheme.Focused.Render("> " + line))
		case e.IsOpen():
			b.WriteString(CurrentTheme.Running.Render("  " + line))
		default:
			b.WriteString(CurrentTheme.Task.Render("  " + line))
		}
	}
	if end-start < len(m.entries) {
		b.WriteString("\n" + CurrentTheme.Dim.Render(fmt.Sprintf("  %d-%d of %d", start+1, end, len(m.entries))))
	}
	return CurrentTheme.Panel.Render(b.String())
}

func (m Model) renderStats() string {
	var b strings.Builder
	b.WriteString(CurrentTheme.Header.Render("Totals"))
	if len(m.stats) == 0 {
		b.WriteString("\n" + CurrentTheme.Dim.Render("No completed intervals."))
		return CurrentTheme.Panel.Width(config.MinPanelWidth).Render(b.String())
	}
	width := max(taskWidth(m.width)-12, config.MinTaskWidth)
	var total int64
	for _, s := range m.stats {
		total += s.TotalSeconds
		d := FormatDuration(time.Duration(s.TotalSeconds) * time.Second)
		b.WriteString("\n" + CurrentTheme.Task.Render(fmt.Sprintf("%s %7s %3dx", pad(truncate(s.TaskName, width), width), d, s.EntryCount)))
	}
	b.WriteString("\n" + CurrentTheme.Highlight.Render("Total "+FormatDuration(time.Duration(total)*time.Second)))
	return CurrentTheme.Panel.Width(config.MinPanelWidth).Render(b.String())
}

func (m Model) renderFooter() string {
	var lines []string
	if m.statusMessage != "" {
		if m.statusIsError {
			lines = append(lines, CurrentTheme.Error.Render(m.statusMessage))
		} else {
			lines = append(lines, CurrentTheme.Success.Render(m.statusMessage))
		}
	}
	lines = append(lines, CurrentTheme.Dim.Render(m.keys.HelpFor(m.focus)+"|[ctrl+c]Quit"))
	return strings.Join(lines, "\n")
}

// visibleWindow returns [start, end) of a list of n rows, size rows tall,
// keeping cursor in view.
func visibleWindow(n, cursor, size int) (int, int) {
	if n <= size {
		return 0, n
	}
	start := util.Clamp(cursor-size/2, 0, n-size)
	return start, start + size
}
