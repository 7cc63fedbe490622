package components

import "github.com/charmbracelet/lipgloss"

var (
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	labelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	eventStyles = map[string]lipgloss.Style{
		"start":    lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		"progress": lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		"end":      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		"click":    lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		"dblclick": lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
	}
)
