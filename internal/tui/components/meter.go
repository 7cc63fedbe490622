package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/splitpane/internal/split"
)

// MeterEntry is one bar of a SizeMeter.
type MeterEntry struct {
	Label string
	Value string
	Ratio float64
}

// SizeMeter renders the share of each displayed pane as a progress bar.
type SizeMeter struct {
	bar     progress.Model
	entries []MeterEntry
}

// NewSizeMeter creates an empty meter.
func NewSizeMeter() *SizeMeter {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 30
	return &SizeMeter{bar: bar}
}

// Set replaces the bars.
func (m *SizeMeter) Set(entries []MeterEntry) {
	m.entries = append(m.entries[:0], entries...)
}

// Entries returns a copy of the bars.
func (m *SizeMeter) Entries() []MeterEntry {
	out := make([]MeterEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Track fills the meter from the displayed panes of s. Ratios are taken from
// the cells each pane gets.
func (m *SizeMeter) Track(s *split.Split) {
	m.Set(MeterEntries(s))
}

// MeterEntries describes the displayed panes of s.
func MeterEntries(s *split.Split) []MeterEntry {
	panes := s.Panes()
	sizes := s.VisibleSizes()
	cells := s.PaneCells()

	total := 0
	for _, c := range cells {
		total += c
	}

	unit := "%"
	if s.Options().Unit == split.UnitPixel {
		unit = ""
	}

	entries := make([]MeterEntry, len(panes))
	for i, p := range panes {
		ratio := 0.0
		if total > 0 {
			ratio = float64(cells[i]) / float64(total)
		}
		value := split.FormatSize(sizes[i])
		if sizes[i] != nil {
			value = fmt.Sprintf("%.1f%s", *sizes[i], unit)
		}
		entries[i] = MeterEntry{
			Label: p.ID,
			Value: fmt.Sprintf("%s (%d)", value, cells[i]),
			Ratio: ratio,
		}
	}
	return entries
}

// Render draws one line per pane: label, bar and value.
func (m *SizeMeter) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(m.entries) == 0 {
		return fit(mutedStyle.Render("no panes"), width, height)
	}

	labelWidth, valueWidth := 0, 0
	for _, e := range m.entries {
		labelWidth = max(labelWidth, lipgloss.Width(e.Label))
		valueWidth = max(valueWidth, lipgloss.Width(e.Value))
	}

	bar := m.bar
	bar.Width = max(1, width-labelWidth-valueWidth-2)

	lines := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		ratio := math.Max(0, math.Min(1, e.Ratio))
		label := labelStyle.Width(labelWidth).Render(e.Label)
		value := valueStyle.Render(e.Value)
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Left, label, " ", bar.ViewAs(ratio), " ", value))
	}
	return fit(strings.Join(lines, "\n"), width, height)
}
