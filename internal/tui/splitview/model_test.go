package splitview

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/splitpane/internal/config"
)

// testLayout is a 50/50 percent split whose right pane holds a vertical pixel
// split of a 3 row pane and a wildcard.
func testLayout(dblClickMs int) *config.Layout {
	return &config.Layout{
		Version: "1",
		Name:    "test",
		Split: config.SplitSpec{
			Direction:  "horizontal",
			Unit:       "percent",
			DblClickMs: dblClickMs,
			Panes: []config.PaneSpec{
				{ID: "a", Title: "Alpha", Size: config.Fixed(50), Content: config.ContentText, Text: "alpha"},
				{
					ID:   "b",
					Size: config.Fixed(50),
					Split: &config.SplitSpec{
						Direction: "vertical",
						Unit:      "pixel",
						Panes: []config.PaneSpec{
							{ID: "c", Size: config.Fixed(3), Content: config.ContentMeter},
							{ID: "d", Size: config.Wildcard(), Content: config.ContentLog},
						},
					},
				},
			},
		},
	}
}

func sized(t *testing.T, m Model, width, height int) Model {
	t.Helper()
	updated, cmd := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	require.Nil(t, cmd)
	model, ok := updated.(Model)
	require.True(t, ok)
	return model
}

func TestNewModel(t *testing.T) {
	t.Parallel()

	m := NewModel(testLayout(0), nil)
	require.NotNil(t, m.Split())
	require.Equal(t, 2, m.Split().Len())
	require.Len(t, m.Splits(), 2)
	require.Contains(t, m.Splits(), "root")
	require.Contains(t, m.Splits(), "b")
	require.Zero(t, m.Gutters(), "no gutters before the first window size")
	require.Nil(t, m.Init())
}

func TestNewModelDefaultLayout(t *testing.T) {
	t.Parallel()

	m := sized(t, NewModel(nil, nil), 100, 30)
	require.Equal(t, 3, m.Gutters())
	require.Contains(t, m.Splits(), "side")
}

func TestModelGutterGeometry(t *testing.T) {
	t.Parallel()

	m := sized(t, NewModel(testLayout(0), nil), 41, 12)

	gutters := m.gutters()
	require.Len(t, gutters, 2)

	require.Equal(t, "root", gutters[0].node.name)
	require.Equal(t, rect{X: 20, Y: 1, W: 1, H: 10}, gutters[0].rect)

	require.Equal(t, "b", gutters[1].node.name)
	require.Equal(t, rect{X: 21, Y: 4, W: 20, H: 1}, gutters[1].rect)

	require.Equal(t, []int{20, 20}, m.Split().PaneCells())
	require.Equal(t, []int{3, 6}, m.Splits()["b"].PaneCells())
}

func TestModelFocusWraps(t *testing.T) {
	t.Parallel()

	m := sized(t, NewModel(testLayout(0), nil), 41, 12)
	name, num, ok := m.FocusedGutter()
	require.True(t, ok)
	require.Equal(t, "root", name)
	require.Equal(t, 1, num)

	m.focus = -1
	name, _, _ = m.FocusedGutter()
	require.Equal(t, "b", name)

	m.focus = 5
	name, _, _ = m.FocusedGutter()
	require.Equal(t, "b", name)
}

func TestModelFocusedGutterWithoutLayout(t *testing.T) {
	t.Parallel()

	_, _, ok := NewModel(testLayout(0), nil).FocusedGutter()
	require.False(t, ok)
}
