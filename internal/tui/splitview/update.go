package splitview

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/splitpane/internal/split"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.relayout()
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case clickTimeoutMsg:
		m.root.walk(func(n *node) {
			n.split.Tick(msg.At)
		})
		return m, nil
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	pt := split.Point{X: float64(msg.X), Y: float64(msg.Y)}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		idx, g := m.gutterAt(msg.X, msg.Y)
		if g == nil {
			return m, nil
		}
		m.focus = idx
		m.press = g
		g.node.split.StartDrag(g.num, pt)
		return m, nil

	case tea.MouseActionMotion:
		if m.press == nil {
			return m, nil
		}
		m.press.node.split.Drag(pt)
		m.relayout()
		return m, nil

	case tea.MouseActionRelease:
		if m.press == nil {
			return m, nil
		}
		g := m.press
		m.press = nil
		g.node.split.ReleaseGutter(g.num, pt)
		m.relayout()
		return m, m.clickTimeout(g.node.split)
	}

	return m, nil
}

// clickTimeout schedules the flush of a click waiting for a possible second
// click.
func (m Model) clickTimeout(s *split.Split) tea.Cmd {
	if !s.HasPendingClick() {
		return nil
	}
	window := s.Options().GutterDblClickDuration
	return tea.Tick(window, func(t time.Time) tea.Msg {
		return clickTimeoutMsg{At: t}
	})
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "tab":
		m.focus++
		m.relayout()
		return m, nil

	case "shift+tab":
		m.focus--
		m.relayout()
		return m, nil

	case "left", "up":
		m.nudge(-1)
		return m, nil

	case "right", "down":
		m.nudge(1)
		return m, nil

	case "h":
		m.hideFocused()
		return m, nil

	case "s":
		shown := m.root.showAll()
		m.relayout()
		m.status = fmt.Sprintf("%d pane(s) shown", shown)
		m.log.With("count", shown).Info("panes shown")
		return m, nil

	case "r":
		m.root.reset()
		m.relayout()
		m.status = "sizes reset"
		m.log.Info("sizes reset")
		return m, nil
	}

	return m, nil
}

// nudge moves the focused gutter by dir gutter steps with a synthetic drag.
func (m *Model) nudge(dir int) {
	g := m.focused()
	if g == nil {
		return
	}
	s := g.node.split
	step := s.Options().GutterStep * float64(dir)

	origin := split.Point{}
	if !s.StartDrag(g.num, origin) {
		m.status = "gutter cannot move"
		return
	}
	if s.Options().Direction == split.Vertical {
		s.Drag(split.Point{Y: step})
	} else {
		s.Drag(split.Point{X: step})
	}
	s.StopDrag()
	m.relayout()
	m.status = fmt.Sprintf("%s/%d  %s", g.node.name, g.num, split.FormatSizes(s.VisibleSizes()))
}

// hideFocused parks the pane just before the focused gutter.
func (m *Model) hideFocused() {
	g := m.focused()
	if g == nil {
		m.status = "nothing to hide"
		return
	}
	panes := g.node.split.Panes()
	pane := panes[g.num-1]
	g.node.split.HidePane(pane)
	m.relayout()
	m.status = fmt.Sprintf("%s hidden", pane.ID)
	m.log.With("pane", pane.ID).Info("pane hidden")
}
