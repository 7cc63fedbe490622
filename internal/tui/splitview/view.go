package splitview

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const helpLine = "tab gutter  ←/→ move  h hide  s show  r reset  q quit"

// View renders the current model state
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	st := renderState{focus: m.focused(), drag: m.press}
	if st.drag != nil && !st.drag.node.split.IsDragging() {
		st.drag = nil
	}

	parts := []string{m.renderHeader()}
	if body := m.body(); body.H > 0 {
		parts = append(parts, m.root.render(st))
	}
	if m.height > headerHeight {
		parts = append(parts, m.renderFooter())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderHeader() string {
	opts := m.root.split.Options()
	title := titleStyle.Render(m.layout.Name)
	info := subtitleStyle.Render(fmt.Sprintf("  %s · %s · %d gutter(s)", opts.Direction, opts.Unit, m.Gutters()))
	return lipgloss.NewStyle().Inline(true).Width(m.width).MaxWidth(m.width).Render(title + info)
}

func (m Model) renderFooter() string {
	text := footerStyle.Render(helpLine)
	if m.status != "" {
		text = statusStyle.Render(m.status) + footerStyle.Render("  │  "+helpLine)
	}
	return lipgloss.NewStyle().Inline(true).Width(m.width).MaxWidth(m.width).Render(text)
}
