package split

import (
	"math"
	"time"
)

// AreaSnapshot freezes one pane's size at drag start.
type AreaSnapshot struct {
	PaneID             string
	SizePixelAtStart   float64
	SizePercentAtStart float64

	area *area
}

// Snapshot is the state captured when a gutter is pressed. Every pointer move
// of the drag is resolved against it.
type Snapshot struct {
	GutterNum         int
	LastSteppedOffset float64

	// AllAreasSizePixel is the container length minus the gutters.
	AllAreasSizePixel float64
	// AllInvolvedAreasSizePercent is the combined percent of the panes taking
	// part in the drag; it is preserved exactly by every move.
	AllInvolvedAreasSizePercent float64

	// AreasBeforeGutter and AreasAfterGutter list the participating panes,
	// nearest to the gutter first.
	AreasBeforeGutter []*AreaSnapshot
	AreasAfterGutter  []*AreaSnapshot
}

// IsDragging reports whether a gutter drag is in progress.
func (s *Split) IsDragging() bool {
	return s.dragging
}

// Snapshot returns a copy of the active drag snapshot, or nil.
func (s *Split) Snapshot() *Snapshot {
	if s.snapshot == nil {
		return nil
	}
	cp := *s.snapshot
	cp.AreasBeforeGutter = cloneAreaSnapshots(s.snapshot.AreasBeforeGutter)
	cp.AreasAfterGutter = cloneAreaSnapshots(s.snapshot.AreasAfterGutter)
	return &cp
}

// HasPendingClick reports whether a click is waiting for the double click
// window to expire.
func (s *Split) HasPendingClick() bool {
	return s.pendingClick != nil
}

// StartDrag handles a press on gutterNum (1-based) at p. It returns true when a
// drag began. The press point is kept even when dragging is impossible so that
// a release at the same point still counts as a click.
func (s *Split) StartDrag(gutterNum int, p Point) bool {
	s.StopDrag()

	start := p
	s.startPoint = &start
	s.endPoint = nil

	if s.opts.Disabled || gutterNum < 1 || gutterNum > s.GutterCount() {
		return false
	}

	all := s.allAreasSizePixel()
	if s.opts.Unit == UnitPercent && all <= 0 {
		return false
	}

	snap := &Snapshot{
		GutterNum:         gutterNum,
		AllAreasSizePixel: all,
	}

	gutterOrder := gutterNum*2 - 1
	pixels := s.pixelSizes()
	for i, a := range s.displayed {
		as := &AreaSnapshot{
			PaneID:             a.pane.ID,
			SizePixelAtStart:   pixels[i],
			SizePercentAtStart: -1,
			area:               a,
		}
		if s.opts.Unit == UnitPercent {
			as.SizePercentAtStart = sizeOrZero(a.size)
		}

		switch {
		case a.order < gutterOrder:
			if s.opts.RestrictMove {
				snap.AreasBeforeGutter = []*AreaSnapshot{as}
			} else {
				snap.AreasBeforeGutter = append([]*AreaSnapshot{as}, snap.AreasBeforeGutter...)
			}
		case a.order > gutterOrder:
			if s.opts.RestrictMove {
				if len(snap.AreasAfterGutter) == 0 {
					snap.AreasAfterGutter = []*AreaSnapshot{as}
				}
			} else {
				snap.AreasAfterGutter = append(snap.AreasAfterGutter, as)
			}
		}
	}

	for _, as := range snap.AreasBeforeGutter {
		snap.AllInvolvedAreasSizePercent += as.SizePercentAtStart
	}
	for _, as := range snap.AreasAfterGutter {
		snap.AllInvolvedAreasSizePercent += as.SizePercentAtStart
	}

	if len(snap.AreasBeforeGutter) == 0 || len(snap.AreasAfterGutter) == 0 {
		return false
	}

	s.snapshot = snap
	s.dragging = true
	s.started = false
	s.log.WithFields(map[string]any{"gutter": gutterNum, "restrict_move": s.opts.RestrictMove}).Debug("gutter pressed")
	return true
}

// Drag moves the active gutter to follow the pointer at p.
func (s *Split) Drag(p Point) {
	if !s.dragging || s.snapshot == nil {
		return
	}

	// Movement turns a pending click into nothing.
	s.pendingClick = nil

	end := p
	s.endPoint = &end
	if !s.started && end != *s.startPoint {
		s.started = true
		s.notify(EventDragStart, s.snapshot.GutterNum)
	}

	var offset float64
	if s.opts.Direction == Horizontal {
		offset = s.startPoint.X - end.X
	} else {
		offset = s.startPoint.Y - end.Y
	}
	if s.opts.Dir == RTL {
		offset = -offset
	}

	step := s.opts.GutterStep
	steppedOffset := math.Floor(offset/step+0.5) * step
	if steppedOffset == s.snapshot.LastSteppedOffset {
		return
	}
	s.snapshot.LastSteppedOffset = steppedOffset

	s.resolve(steppedOffset)
	s.refreshStyles()
	s.notify(EventDragProgress, s.snapshot.GutterNum)
}

// resolve distributes steppedOffset between both sides of the gutter. A
// positive offset moves the gutter towards the start of the container.
func (s *Split) resolve(steppedOffset float64) {
	unit := s.opts.Unit
	snap := s.snapshot
	all := snap.AllAreasSizePixel

	before := sideAbsorptionCapacity(unit, snap.AreasBeforeGutter, -steppedOffset, all)
	after := sideAbsorptionCapacity(unit, snap.AreasAfterGutter, steppedOffset, all)

	switch {
	case before.remain != 0 && after.remain != 0:
		// Neither side can take everything: the side that fell shorter limits
		// the other. Equal shortfalls are accepted as they are.
		switch {
		case math.Abs(before.remain) == math.Abs(after.remain):
		case math.Abs(before.remain) > math.Abs(after.remain):
			after = sideAbsorptionCapacity(unit, snap.AreasAfterGutter, steppedOffset+before.remain, all)
		default:
			before = sideAbsorptionCapacity(unit, snap.AreasBeforeGutter, -(steppedOffset - after.remain), all)
		}
	case before.remain != 0:
		after = sideAbsorptionCapacity(unit, snap.AreasAfterGutter, steppedOffset+before.remain, all)
	case after.remain != 0:
		before = sideAbsorptionCapacity(unit, snap.AreasBeforeGutter, -(steppedOffset - after.remain), all)
	}

	items := make([]*absorption, 0, len(before.list)+len(after.list))
	items = append(items, before.list...)
	items = append(items, after.list...)

	if unit == UnitPercent {
		correctPercentDrift(items, snap.AllInvolvedAreasSizePercent)
	}

	for _, item := range items {
		item.apply(unit)
	}
}

// correctPercentDrift makes the involved panes sum exactly to their combined
// size at drag start. The first pane that is not empty and not sitting on a
// bound takes the residue.
func correctPercentDrift(items []*absorption, involvedPercent float64) {
	var target *absorption
	for _, item := range items {
		v := item.percentAfterAbsorption
		a := item.snap.area
		if v != 0 && !sizeEquals(a.minSize, v) && !sizeEquals(a.maxSize, v) {
			target = item
			break
		}
	}
	if target == nil {
		return
	}

	others := 0.0
	for _, item := range items {
		if item != target {
			others += item.percentAfterAbsorption
		}
	}
	target.percentAfterAbsorption = involvedPercent - others
}

// StopDrag ends the active drag. An end event is sent when the last pointer
// position differs from the press point.
func (s *Split) StopDrag() {
	if !s.dragging {
		return
	}

	// Cleared before notifying: a listener may rebuild the split.
	s.dragging = false
	s.started = false
	moved := s.endPoint != nil && s.startPoint != nil && *s.endPoint != *s.startPoint
	gutterNum := 0
	if s.snapshot != nil {
		gutterNum = s.snapshot.GutterNum
	}
	s.snapshot = nil

	if moved {
		s.notify(EventDragEnd, gutterNum)
	}
}

// ReleaseGutter handles the pointer release at p after a press on gutterNum.
// A release away from the press point ends the drag; a release on it is a
// click, or a double click when it follows a click on the same gutter within
// the double click window. This holds even when the pointer wandered off and
// came back.
func (s *Split) ReleaseGutter(gutterNum int, p Point) {
	start := s.startPoint
	if s.dragging {
		end := p
		s.endPoint = &end
	}
	s.StopDrag()
	s.startPoint = nil
	s.endPoint = nil

	if start == nil || *start != p {
		return
	}
	s.click(gutterNum)
}

func (s *Split) click(gutterNum int) {
	now := s.opts.Clock()
	window := s.opts.GutterDblClickDuration

	if pc := s.pendingClick; pc != nil {
		s.pendingClick = nil
		if pc.gutter == gutterNum && now.Sub(pc.at) <= window {
			s.notify(EventGutterDblClick, gutterNum)
			return
		}
		s.notify(EventGutterClick, pc.gutter)
	}

	if window <= 0 {
		s.notify(EventGutterClick, gutterNum)
		return
	}
	s.pendingClick = &pendingClick{gutter: gutterNum, at: now}
}

// Tick delivers a pending click once the double click window has passed.
func (s *Split) Tick(now time.Time) {
	pc := s.pendingClick
	if pc == nil || now.Sub(pc.at) < s.opts.GutterDblClickDuration {
		return
	}
	s.pendingClick = nil
	s.notify(EventGutterClick, pc.gutter)
}

func cloneAreaSnapshots(in []*AreaSnapshot) []*AreaSnapshot {
	out := make([]*AreaSnapshot, len(in))
	for i, as := range in {
		cp := *as
		out[i] = &cp
	}
	return out
}
