package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/splitpane/internal/logger"
	"github.com/alexisbeaulieu97/splitpane/internal/split"
)

func TestSplitSpecBuild(t *testing.T) {
	t.Parallel()

	layout := DefaultLayout()
	sp, panes := layout.Split.Build(101, logger.Nop())

	require.Len(t, panes, 2)
	require.Equal(t, "table", panes[0].ID)
	require.Equal(t, 2, sp.Len())
	require.Equal(t, []*float64{split.Size(60), split.Size(40)}, sp.VisibleSizes())
	require.Equal(t, []int{60, 40}, sp.PaneCells())

	minSize, maxSize, ok := sp.Bounds(panes[0])
	require.True(t, ok)
	require.Equal(t, 20.0, *minSize)
	require.Equal(t, 80.0, *maxSize)

	opts := sp.Options()
	require.Equal(t, split.Horizontal, opts.Direction)
	require.Equal(t, split.UnitPercent, opts.Unit)
	require.Equal(t, 300*time.Millisecond, opts.GutterDblClickDuration)
}

func TestSplitSpecBuildNestedPixel(t *testing.T) {
	t.Parallel()

	nested := DefaultLayout().Split.Panes[1].Split
	sp, panes := nested.Build(30, nil)

	require.Len(t, panes, 4)
	require.Equal(t, 3, sp.Len())
	require.Len(t, sp.HiddenPanes(), 1)
	require.Equal(t, "notes", sp.HiddenPanes()[0].ID)
	require.Equal(t, []*float64{split.Size(6), nil, split.Size(5)}, sp.VisibleSizes())
	require.Equal(t, []int{6, 17, 5}, sp.PaneCells())
	require.Equal(t, split.Vertical, sp.Options().Direction)
	require.Equal(t, split.UnitPixel, sp.Options().Unit)
}

func TestSplitSpecOptions(t *testing.T) {
	t.Parallel()

	gutter := 2.0
	spec := SplitSpec{
		Direction:    "vertical",
		Unit:         "pixel",
		GutterSize:   &gutter,
		GutterStep:   3,
		RestrictMove: true,
		Disabled:     true,
		Dir:          "rtl",
		Panes:        []PaneSpec{{ID: "only", Size: Wildcard()}},
	}

	sp, _ := spec.Build(10, nil)
	opts := sp.Options()
	require.Equal(t, 2.0, opts.GutterSize)
	require.Equal(t, 3.0, opts.GutterStep)
	require.True(t, opts.RestrictMove)
	require.True(t, opts.Disabled)
	require.Equal(t, split.RTL, opts.Dir)
	require.Equal(t, 10.0, opts.Length)
}

func TestPaneSpecPane(t *testing.T) {
	t.Parallel()

	order := 3
	minPixels := 5.0
	spec := PaneSpec{ID: "p", Size: Fixed(25), Order: &order, MinPixels: &minPixels, LockSize: true}
	pane := spec.Pane()

	require.Equal(t, "p", pane.ID)
	require.Equal(t, 25.0, *pane.Size)
	require.Equal(t, 3, *pane.Order)
	require.Equal(t, 5.0, *pane.MinPixels)
	require.True(t, pane.LockSize)
	require.True(t, pane.Visible)

	minPixels = 9
	require.Equal(t, 5.0, *pane.MinPixels)
}
