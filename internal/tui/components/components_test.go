package components

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/splitpane/internal/split"
)

func TestFit(t *testing.T) {
	t.Parallel()

	t.Run("pads to the box", func(t *testing.T) {
		t.Parallel()
		out := fit("hi", 6, 3)
		require.Equal(t, 6, lipgloss.Width(out))
		require.Equal(t, 3, lipgloss.Height(out))
	})

	t.Run("clips tall content", func(t *testing.T) {
		t.Parallel()
		out := fit("a\nb\nc\nd", 4, 2)
		require.Equal(t, 2, lipgloss.Height(out))
		require.NotContains(t, out, "c")
	})

	t.Run("empty box", func(t *testing.T) {
		t.Parallel()
		require.Empty(t, fit("hi", 0, 3))
		require.Empty(t, fit("hi", 3, 0))
	})
}

func TestText(t *testing.T) {
	t.Parallel()

	text := NewText("hello there")
	out := text.Render(20, 2)
	require.Contains(t, out, "hello there")
	require.Equal(t, 20, lipgloss.Width(out))
	require.Equal(t, 2, lipgloss.Height(out))
	require.Empty(t, text.Render(0, 0))
}

func TestEventLog(t *testing.T) {
	t.Parallel()

	t.Run("shows placeholder when empty", func(t *testing.T) {
		t.Parallel()
		log := NewEventLog(0)
		require.Contains(t, log.Render(30, 3), "no events yet")
	})

	t.Run("keeps only the newest lines", func(t *testing.T) {
		t.Parallel()
		log := NewEventLog(3)
		for i := 1; i <= 5; i++ {
			log.Append("click", fmt.Sprintf("event %d", i))
		}
		require.Equal(t, 3, log.Len())
		require.Contains(t, log.Lines()[0], "event 3")
		require.Contains(t, log.Lines()[2], "event 5")
	})

	t.Run("renders the tail", func(t *testing.T) {
		t.Parallel()
		log := NewEventLog(10)
		for i := 1; i <= 6; i++ {
			log.Append("end", fmt.Sprintf("line %d", i))
		}
		out := log.Render(20, 2)
		require.Contains(t, out, "line 6")
		require.Contains(t, out, "line 5")
		require.NotContains(t, out, "line 1")
		require.Equal(t, 2, lipgloss.Height(out))
	})
}

func TestElementsTable(t *testing.T) {
	t.Parallel()

	tbl := NewElementsTable(SampleElements)
	require.Equal(t, len(SampleElements), tbl.Rows())

	out := tbl.Render(48, 8)
	require.Contains(t, out, "Name")
	require.Contains(t, out, "Hydrogen")
	require.LessOrEqual(t, lipgloss.Width(out), 48)
	require.Equal(t, 8, lipgloss.Height(out))

	require.Empty(t, tbl.Render(0, 8))
}

func TestElementColumns(t *testing.T) {
	t.Parallel()

	for _, width := range []int{0, 10, 40, 120} {
		cols := elementColumns(width)
		require.Len(t, cols, 4)
		total := 0
		for _, c := range cols {
			require.Positive(t, c.Width)
			total += c.Width
		}
		if width >= 12 {
			require.Equal(t, width-8, total)
		}
	}
}

func TestMeterEntries(t *testing.T) {
	t.Parallel()

	s := split.New(split.WithLength(101))
	s.AddPane(split.NewPane("left").WithSize(30))
	s.AddPane(split.NewPane("right").WithSize(70))

	entries := MeterEntries(s)
	require.Len(t, entries, 2)
	require.Equal(t, "left", entries[0].Label)
	require.Equal(t, "30.0% (30)", entries[0].Value)
	require.InDelta(t, 0.3, entries[0].Ratio, 1e-9)
	require.InDelta(t, 0.7, entries[1].Ratio, 1e-9)
}

func TestMeterEntriesPixel(t *testing.T) {
	t.Parallel()

	s := split.New(split.WithUnit(split.UnitPixel), split.WithLength(21))
	s.AddPane(split.NewPane("fixed").WithSize(5))
	s.AddPane(split.NewPane("rest"))

	entries := MeterEntries(s)
	require.Equal(t, "5.0 (5)", entries[0].Value)
	require.Equal(t, "* (15)", entries[1].Value)
}

func TestSizeMeterRender(t *testing.T) {
	t.Parallel()

	meter := NewSizeMeter()
	require.Contains(t, meter.Render(20, 2), "no panes")

	meter.Set([]MeterEntry{
		{Label: "a", Value: "25.0% (10)", Ratio: 0.25},
		{Label: "bb", Value: "75.0% (30)", Ratio: 1.5},
	})
	require.Len(t, meter.Entries(), 2)

	out := meter.Render(40, 3)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "25.0% (10)")
	require.Contains(t, lines[1], "bb")
	require.Equal(t, 40, lipgloss.Width(out))
}
