package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
)

// DefaultEventLogLimit is how many lines an EventLog keeps.
const DefaultEventLogLimit = 200

// EventLog keeps the most recent split events and shows the tail of them.
type EventLog struct {
	lines []string
	limit int
	view  viewport.Model
}

// NewEventLog creates a log holding at most limit lines.
func NewEventLog(limit int) *EventLog {
	if limit <= 0 {
		limit = DefaultEventLogLimit
	}
	return &EventLog{limit: limit, view: viewport.New(0, 0)}
}

// Append adds a line tagged with kind, which picks its color.
func (l *EventLog) Append(kind, line string) {
	if style, ok := eventStyles[kind]; ok {
		line = style.Render(line)
	}
	l.lines = append(l.lines, line)
	if over := len(l.lines) - l.limit; over > 0 {
		l.lines = append(l.lines[:0], l.lines[over:]...)
	}
}

// Len returns the number of lines held.
func (l *EventLog) Len() int {
	return len(l.lines)
}

// Lines returns a copy of the held lines.
func (l *EventLog) Lines() []string {
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Render shows the newest lines that fit.
func (l *EventLog) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	l.view.Width = width
	l.view.Height = height
	if len(l.lines) == 0 {
		l.view.SetContent(mutedStyle.Render("no events yet"))
	} else {
		l.view.SetContent(strings.Join(l.lines, "\n"))
	}
	l.view.GotoBottom()
	return fit(l.view.View(), width, height)
}
