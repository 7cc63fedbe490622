package splitview

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestView_Initializing(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Initializing...", NewModel(testLayout(0), nil).View())
}

func TestView_FillsWindow(t *testing.T) {
	t.Parallel()

	m := sized(t, NewModel(testLayout(0), nil), 41, 12)
	view := m.View()

	require.Equal(t, 12, lipgloss.Height(view))
	require.Equal(t, 41, lipgloss.Width(view))
	require.Contains(t, view, "test")
	require.Contains(t, view, "Alpha")
	require.Contains(t, view, "alpha")
	require.Contains(t, view, "no events yet")
	require.Contains(t, view, "│")
	require.Contains(t, view, "─")
}

func TestView_MeterFollowsFocus(t *testing.T) {
	t.Parallel()

	m := sized(t, NewModel(testLayout(0), nil), 60, 14)
	require.Contains(t, m.View(), "50.0% (30)")

	m, _ = send(t, m, key("tab"))
	view := m.View()
	require.Contains(t, view, "3.0 (3)")
}

func TestView_DefaultLayout(t *testing.T) {
	t.Parallel()

	m := sized(t, NewModel(nil, nil), 100, 30)
	view := m.View()

	require.Equal(t, 30, lipgloss.Height(view))
	require.Contains(t, view, "Hydrogen")
	require.Contains(t, view, "Events")
	require.NotContains(t, view, "Notes", "hidden panes are not drawn")
}

func TestView_Quitting(t *testing.T) {
	t.Parallel()

	m, _ := send(t, sized(t, NewModel(testLayout(0), nil), 41, 12), key("q"))
	require.Empty(t, m.View())
}

func TestView_StatusLine(t *testing.T) {
	t.Parallel()

	m := sized(t, NewModel(testLayout(0), nil), 80, 12)
	m, _ = send(t, m, key("h"))

	lines := strings.Split(m.View(), "\n")
	require.Contains(t, lines[len(lines)-1], "a hidden")
}
