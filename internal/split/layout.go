package split

import (
	"math"
	"sort"
)

// SegmentKind tells panes and gutters apart in a Layout.
type SegmentKind int

const (
	SegmentPane SegmentKind = iota
	SegmentGutter
)

// Segment is a run of cells along the split axis. Index is the pane index for
// SegmentPane and the 1-based gutter number for SegmentGutter.
type Segment struct {
	Kind   SegmentKind
	Index  int
	Offset int
	Length int
}

// End returns the offset just past the segment.
func (seg Segment) End() int {
	return seg.Offset + seg.Length
}

// Layout converts the current sizes into whole cells. Pane lengths always add
// up to the container length minus the gutters; fractional cells go to the
// panes with the largest remainders. In RTL horizontal splits the first pane
// sits at the far end of the container.
func (s *Split) Layout() []Segment {
	n := len(s.displayed)
	if n == 0 {
		return nil
	}

	total := int(math.Floor(s.opts.Length))
	gutter := int(math.Round(s.opts.GutterSize))
	available := total - (n-1)*gutter
	if available < 0 {
		available = 0
	}

	cells := s.paneCells(available)

	segments := make([]Segment, 0, 2*n-1)
	offset := 0
	for i, c := range cells {
		if i > 0 {
			g := clampLength(gutter, total-offset)
			segments = append(segments, Segment{Kind: SegmentGutter, Index: i, Offset: offset, Length: g})
			offset += g
		}
		c = clampLength(c, total-offset)
		segments = append(segments, Segment{Kind: SegmentPane, Index: i, Offset: offset, Length: c})
		offset += c
	}

	if s.opts.Dir == RTL && s.opts.Direction == Horizontal {
		for i := range segments {
			segments[i].Offset = total - segments[i].Offset - segments[i].Length
		}
	}
	return segments
}

// PaneCells returns the cell length of each displayed pane.
func (s *Split) PaneCells() []int {
	out := make([]int, len(s.displayed))
	for _, seg := range s.Layout() {
		if seg.Kind == SegmentPane {
			out[seg.Index] = seg.Length
		}
	}
	return out
}

// GutterAt returns the gutter number covering cell pos, or 0.
func (s *Split) GutterAt(pos int) int {
	for _, seg := range s.Layout() {
		if seg.Kind == SegmentGutter && seg.Length > 0 && pos >= seg.Offset && pos < seg.End() {
			return seg.Index
		}
	}
	return 0
}

func (s *Split) paneCells(available int) []int {
	n := len(s.displayed)
	if n == 1 {
		return []int{available}
	}

	raw := make([]float64, n)
	wildcard := -1
	if s.opts.Unit == UnitPercent {
		for i, a := range s.displayed {
			raw[i] = sizeOrZero(a.size) / 100 * float64(available)
		}
	} else {
		claimed := 0.0
		for i, a := range s.displayed {
			if a.size == nil {
				if wildcard < 0 {
					wildcard = i
				}
				continue
			}
			raw[i] = *a.size
			claimed += *a.size
		}
		if wildcard >= 0 {
			raw[wildcard] = math.Max(0, float64(available)-claimed)
		}
	}

	return apportion(raw, available, wildcard)
}

// apportion rounds sizes to whole cells without exceeding total. Leftover
// cells go by largest remainder, then to sink (or the last pane).
func apportion(sizes []float64, total, sink int) []int {
	const epsilon = 1e-9

	type remainder struct {
		index int
		frac  float64
	}

	cells := make([]int, len(sizes))
	rems := make([]remainder, 0, len(sizes))
	used := 0
	for i, v := range sizes {
		if v < 0 || math.IsNaN(v) {
			v = 0
		}
		c := int(math.Floor(v + epsilon))
		cells[i] = c
		used += c
		rems = append(rems, remainder{index: i, frac: v - float64(c)})
	}

	sort.SliceStable(rems, func(i, j int) bool { return rems[i].frac > rems[j].frac })
	for _, r := range rems {
		if used >= total || r.frac <= epsilon {
			break
		}
		cells[r.index]++
		used++
	}

	if used < total && len(cells) > 0 {
		if sink < 0 {
			sink = len(cells) - 1
		}
		cells[sink] += total - used
		used = total
	}

	for i := len(cells) - 1; i >= 0 && used > total; i-- {
		cut := used - total
		if cut > cells[i] {
			cut = cells[i]
		}
		cells[i] -= cut
		used -= cut
	}
	return cells
}

func clampLength(v, room int) int {
	if room < 0 {
		return 0
	}
	if v > room {
		return room
	}
	return v
}
