package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// EventLog is the scrolling panel of fitting and tooltip notifications.
type EventLog struct {
	logView viewport.Model
	lines   []string
	maxLogs int
	width   int
}

func NewEventLog() *EventLog {
	v := viewport.New(60, 5)
	// Border/padding are applied by the surrounding log panel.
	v.Style = lipgloss.NewStyle()

	return &EventLog{
		logView: v,
		lines:   make([]string, 0),
		maxLogs: 200,
	}
}

// Add appends a formatted line and keeps the view pinned to the newest entry
// unless the user scrolled away.
func (l *EventLog) Add(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
	if len(l.lines) > l.maxLogs {
		l.lines = l.lines[1:]
	}
	l.refresh()
}

// Lines returns the recorded notifications, oldest first.
func (l *EventLog) Lines() []string {
	return l.lines
}

func (l *EventLog) SetSize(width, height int) {
	l.width = width
	l.logView.Width = max(20, width-4)
	l.logView.Height = max(3, min(8, height/4))
	l.refresh()
}

func (l *EventLog) View() string {
	return l.logView.View()
}

func (l *EventLog) refresh() {
	wasAtBottom := l.logView.AtBottom()

	w := l.logView.Width
	if w <= 0 {
		w = max(30, l.width-4)
	}

	rendered := make([]string, 0, len(l.lines))
	for _, text := range l.lines {
		line := truncate(text, max(10, w-2))
		style := logLineStyle
		switch {
		case strings.HasPrefix(text, "truncated"):
			style = logLineStyle.Foreground(warningColor)
		case strings.HasPrefix(text, "tooltip"):
			style = logLineStyle.Foreground(highlightColor)
		}
		rendered = append(rendered, style.Render(line))
	}

	l.logView.SetContent(strings.Join(rendered, "\n"))
	if wasAtBottom {
		l.logView.GotoBottom()
	}
}
