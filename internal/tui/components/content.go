package components

import "github.com/charmbracelet/lipgloss"

// Content is anything a leaf pane can display.
type Content interface {
	// Render draws the content into a width x height cell box.
	Render(width, height int) string
}

// fit clips s to width x height cells, then pads it to exactly that size.
// Lines are cut, never wrapped.
func fit(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	clipped := lipgloss.NewStyle().MaxWidth(width).MaxHeight(height).Render(s)
	return lipgloss.NewStyle().Width(width).Height(height).Render(clipped)
}
