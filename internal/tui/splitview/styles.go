package splitview

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor = lipgloss.Color("99")  // Purple
	accentColor  = lipgloss.Color("212") // Pink
	mutedColor   = lipgloss.Color("245") // Gray
	gutterColor  = lipgloss.Color("238") // Dark gray
	warningColor = lipgloss.Color("226") // Yellow

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	paneTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))

	gutterStyle = lipgloss.NewStyle().
			Foreground(gutterColor)

	focusedGutterStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Bold(true)

	draggingGutterStyle = lipgloss.NewStyle().
				Foreground(warningColor).
				Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	statusStyle = lipgloss.NewStyle().
			Foreground(accentColor)
)
