package split

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/alexisbeaulieu97/splitpane/internal/logger"
	apperrors "github.com/alexisbeaulieu97/splitpane/pkg/errors"
)

var (
	// ErrSizeCount is returned when a size list does not match the displayed panes.
	ErrSizeCount = errors.New("size count does not match displayed panes")
	// ErrInvalidSizes is returned when sizes are not valid for the split unit.
	ErrInvalidSizes = errors.New("sizes are not valid for unit")
)

const (
	percentTotalLow  = 99.9
	percentTotalHigh = 100.1
)

// Split is the sizing engine for one row or column of panes.
type Split struct {
	opts Options
	log  *logger.Logger

	displayed []*area
	hidden    []*area

	dragging     bool
	started      bool
	snapshot     *Snapshot
	startPoint   *Point
	endPoint     *Point
	pendingClick *pendingClick

	listeners    []listener
	nextListener int
}

// New creates an empty Split.
func New(opts ...Option) *Split {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}

	log := o.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &Split{opts: o, log: log}
}

// Options returns a copy of the current settings.
func (s *Split) Options() Options {
	return s.opts
}

// Len returns the number of displayed panes.
func (s *Split) Len() int {
	return len(s.displayed)
}

// GutterCount returns the number of gutters between displayed panes.
func (s *Split) GutterCount() int {
	if len(s.displayed) == 0 {
		return 0
	}
	return len(s.displayed) - 1
}

// Panes returns the displayed panes in layout order.
func (s *Split) Panes() []*Pane {
	out := make([]*Pane, len(s.displayed))
	for i, a := range s.displayed {
		out[i] = a.pane
	}
	return out
}

// HiddenPanes returns the parked panes.
func (s *Split) HiddenPanes() []*Pane {
	out := make([]*Pane, len(s.hidden))
	for i, a := range s.hidden {
		out[i] = a.pane
	}
	return out
}

// Order returns the slot assigned to a displayed pane.
func (s *Split) Order(p *Pane) (int, bool) {
	idx := indexOfPane(s.displayed, p)
	if idx < 0 {
		return 0, false
	}
	return s.displayed[idx].order, true
}

// Bounds returns the min and max the engine enforces for a displayed pane.
func (s *Split) Bounds(p *Pane) (minSize, maxSize *float64, ok bool) {
	idx := indexOfPane(s.displayed, p)
	if idx < 0 {
		return nil, nil, false
	}
	a := s.displayed[idx]
	return cloneSize(a.minSize), cloneSize(a.maxSize), true
}

// AddPane registers p. Visible panes join the layout immediately, hidden ones
// are parked until ShowPane.
func (s *Split) AddPane(p *Pane) {
	if p == nil || indexOfPane(s.displayed, p) >= 0 || indexOfPane(s.hidden, p) >= 0 {
		return
	}

	a := &area{pane: p}
	if p.Visible {
		s.displayed = append(s.displayed, a)
		s.Build(true, true)
		return
	}
	s.hidden = append(s.hidden, a)
}

// RemovePane unregisters p.
func (s *Split) RemovePane(p *Pane) {
	if idx := indexOfPane(s.displayed, p); idx >= 0 {
		s.displayed = append(s.displayed[:idx], s.displayed[idx+1:]...)
		s.Build(true, true)
		return
	}
	if idx := indexOfPane(s.hidden, p); idx >= 0 {
		s.hidden = append(s.hidden[:idx], s.hidden[idx+1:]...)
	}
}

// UpdatePane rebuilds after the caller changed p's fields. Hidden panes are
// ignored until shown.
func (s *Split) UpdatePane(p *Pane, resetOrders, resetSizes bool) {
	if p == nil || !p.Visible || indexOfPane(s.displayed, p) < 0 {
		return
	}
	s.Build(resetOrders, resetSizes)
}

// ShowPane moves a parked pane to the end of the layout.
func (s *Split) ShowPane(p *Pane) {
	idx := indexOfPane(s.hidden, p)
	if idx < 0 {
		return
	}
	a := s.hidden[idx]
	s.hidden = append(s.hidden[:idx], s.hidden[idx+1:]...)
	p.Visible = true
	s.displayed = append(s.displayed, a)
	s.Build(true, true)
}

// HidePane parks a displayed pane, clearing its order and size.
func (s *Split) HidePane(p *Pane) {
	idx := indexOfPane(s.displayed, p)
	if idx < 0 {
		return
	}
	a := s.displayed[idx]
	s.displayed = append(s.displayed[:idx], s.displayed[idx+1:]...)
	a.order = 0
	a.size = Size(0)
	a.minSize = nil
	a.maxSize = nil
	p.Visible = false
	s.hidden = append(s.hidden, a)
	s.Build(true, true)
}

// VisibleSizes returns the current size of each displayed pane; the wildcard
// is nil.
func (s *Split) VisibleSizes() []*float64 {
	out := make([]*float64, len(s.displayed))
	for i, a := range s.displayed {
		out[i] = cloneSize(a.size)
	}
	return out
}

// SetVisibleSizes writes sizes onto the displayed panes and rebuilds them.
// Negative and NaN entries count as wildcards. It leaves the split untouched
// and returns an error wrapping ErrSizeCount or ErrInvalidSizes when the sizes
// cannot be used.
func (s *Split) SetVisibleSizes(sizes []*float64) error {
	sizes = wildcardNegatives(sizes)
	if len(sizes) != len(s.displayed) {
		s.log.WithFields(map[string]any{"want": len(s.displayed), "got": len(sizes)}).Warn("rejected size update")
		return apperrors.NewLayoutError("set_sizes", ErrSizeCount)
	}
	if !userSizesValid(s.opts.Unit, sizes, s.Panes(), s.allAreasSizePixel()) {
		s.log.With("sizes", FormatSizes(sizes)).Warn("rejected size update")
		return apperrors.NewLayoutError("set_sizes", ErrInvalidSizes)
	}

	for i, a := range s.displayed {
		a.pane.Size = cloneSize(sizes[i])
	}
	s.Build(false, true)
	return nil
}

// Build recomputes orders and sizes of the displayed panes. Any drag in
// progress is stopped first.
func (s *Split) Build(resetOrders, resetSizes bool) {
	s.StopDrag()

	if resetOrders {
		s.resetOrders()
	}
	if resetSizes {
		s.resetSizes()
	}
	s.refreshStyles()

	s.log.WithFields(map[string]any{
		"panes":        len(s.displayed),
		"unit":         s.opts.Unit.String(),
		"reset_orders": resetOrders,
		"reset_sizes":  resetSizes,
		"sizes":        FormatSizes(s.VisibleSizes()),
	}).Debug("split built")
}

func (s *Split) resetOrders() {
	explicit := true
	for _, a := range s.displayed {
		if a.pane.Order == nil {
			explicit = false
			break
		}
	}
	if explicit {
		sort.SliceStable(s.displayed, func(i, j int) bool {
			return *s.displayed[i].pane.Order < *s.displayed[j].pane.Order
		})
	}
	for i, a := range s.displayed {
		a.order = i * 2
	}
}

func (s *Split) resetSizes() {
	if len(s.displayed) == 0 {
		return
	}

	unit := s.opts.Unit
	allPixels := s.allAreasSizePixel()
	userSizes := make([]*float64, len(s.displayed))
	for i, a := range s.displayed {
		userSizes[i] = a.pane.Size
	}
	useUserSizes := userSizesValid(unit, userSizes, s.Panes(), allPixels)

	setBounds := func(a *area) {
		a.minSize = areaMinSize(a, unit, allPixels)
		a.maxSize = areaMaxSize(a, unit, allPixels)
	}
	clearBounds := func(a *area) {
		a.minSize = nil
		a.maxSize = nil
	}

	switch unit {
	case UnitPercent:
		defaultSize := 100 / float64(len(s.displayed))
		total := 0.0
		for _, v := range userSizes {
			if v != nil {
				total += *v
			}
		}
		for _, a := range s.displayed {
			switch {
			case !useUserSizes:
				a.size = Size(defaultSize)
			case total == 100:
				a.size = cloneSize(a.pane.Size)
			default:
				a.size = Size(*a.pane.Size * 100 / total)
			}
			setBounds(a)
		}

	case UnitPixel:
		if useUserSizes {
			for _, a := range s.displayed {
				a.size = cloneSize(a.pane.Size)
				setBounds(a)
			}
			return
		}

		wildcards := 0
		for _, v := range userSizes {
			if v == nil {
				wildcards++
			}
		}

		switch {
		case wildcards == 0:
			// The first pane is drafted as the wildcard.
			for i, a := range s.displayed {
				if i == 0 {
					a.size = nil
					clearBounds(a)
					continue
				}
				a.size = nonNegative(a.pane.Size)
				setBounds(a)
			}
		case wildcards > 1:
			// Only the first wildcard survives; later ones are pinned at 100.
			gotOne := false
			for _, a := range s.displayed {
				if a.pane.Size != nil {
					a.size = nonNegative(a.pane.Size)
					setBounds(a)
					continue
				}
				if !gotOne {
					a.size = nil
					gotOne = true
				} else {
					a.size = Size(100)
				}
				clearBounds(a)
			}
		default:
			// One wildcard but some sizes were unusable.
			for _, a := range s.displayed {
				if a.pane.Size == nil {
					a.size = nil
					clearBounds(a)
					continue
				}
				a.size = nonNegative(a.pane.Size)
				setBounds(a)
			}
		}
	}
}

// refreshBounds recomputes min/max without touching sizes. Pixel bounds of a
// percent split depend on the container length.
func (s *Split) refreshBounds() {
	allPixels := s.allAreasSizePixel()
	for _, a := range s.displayed {
		if s.opts.Unit == UnitPixel && a.size == nil {
			continue
		}
		a.minSize = areaMinSize(a, s.opts.Unit, allPixels)
		a.maxSize = areaMaxSize(a, s.opts.Unit, allPixels)
	}
}

// SetDirection switches the split axis.
func (s *Split) SetDirection(d Direction) {
	s.opts.Direction = d
	s.Build(false, false)
}

// SetUnit switches between percent and pixel sizing and resets sizes.
func (s *Split) SetUnit(u Unit) {
	s.opts.Unit = u
	s.Build(false, true)
}

// SetGutterSize changes the gutter thickness. Negative values fall back to
// DefaultGutterSize.
func (s *Split) SetGutterSize(size float64) {
	s.opts.GutterSize = positiveOr(size, DefaultGutterSize)
	s.Build(false, false)
}

// SetGutterStep changes the drag quantum.
func (s *Split) SetGutterStep(step float64) {
	s.opts.GutterStep = stepOr(step)
}

// SetRestrictMove limits drags to the two panes adjacent to the gutter.
func (s *Split) SetRestrictMove(restrict bool) {
	s.opts.RestrictMove = restrict
}

// SetDisabled turns gutter dragging off. Clicks are still reported.
func (s *Split) SetDisabled(disabled bool) {
	s.opts.Disabled = disabled
	if disabled {
		s.StopDrag()
	}
}

// SetDir changes the reading direction.
func (s *Split) SetDir(dir TextDir) {
	s.opts.Dir = dir
}

// SetGutterDblClickDuration changes the double click window.
func (s *Split) SetGutterDblClickDuration(d time.Duration) {
	if d < 0 {
		d = 0
	}
	s.opts.GutterDblClickDuration = d
}

// SetLength updates the container length along the split axis.
func (s *Split) SetLength(length float64) {
	length = positiveOr(length, 0)
	if length == s.opts.Length {
		return
	}
	s.StopDrag()
	s.opts.Length = length
	s.refreshBounds()
	s.refreshStyles()
}

// allAreasSizePixel is the container length left to panes once gutters are
// taken out.
func (s *Split) allAreasSizePixel() float64 {
	v := s.opts.Length - float64(s.GutterCount())*s.opts.GutterSize
	if v < 0 {
		return 0
	}
	return v
}

// pixelSizes returns the length each displayed pane occupies, in cells.
func (s *Split) pixelSizes() []float64 {
	out := make([]float64, len(s.displayed))
	if len(s.displayed) == 0 {
		return out
	}
	if len(s.displayed) == 1 {
		out[0] = s.opts.Length
		return out
	}

	all := s.allAreasSizePixel()
	if s.opts.Unit == UnitPercent {
		for i, a := range s.displayed {
			out[i] = sizeOrZero(a.size) / 100 * all
		}
		return out
	}

	wildcard := -1
	claimed := 0.0
	for i, a := range s.displayed {
		if a.size == nil {
			if wildcard < 0 {
				wildcard = i
			}
			continue
		}
		out[i] = *a.size
		claimed += *a.size
	}
	if wildcard >= 0 {
		out[wildcard] = math.Max(0, all-claimed)
	}
	return out
}

// userSizesValid reports whether the sizes supplied on panes can be used as is.
// Percent sizes must all be set, sum to 100 and sit inside their pane bounds.
// Pixel sizes must contain exactly one wildcard.
func userSizesValid(unit Unit, sizes []*float64, panes []*Pane, allPixels float64) bool {
	for _, v := range sizes {
		if v != nil && (math.IsNaN(*v) || *v < 0) {
			return false
		}
	}

	switch unit {
	case UnitPixel:
		wildcards := 0
		for _, v := range sizes {
			if v == nil {
				wildcards++
			}
		}
		return wildcards == 1
	default:
		total := 0.0
		for i, v := range sizes {
			if v == nil {
				return false
			}
			total += *v
			if i < len(panes) && panes[i] != nil {
				if minSize := configuredMin(panes[i], unit, allPixels); minSize != nil && *v < *minSize {
					return false
				}
				if maxSize := configuredMax(panes[i], unit, allPixels); maxSize != nil && *v > *maxSize {
					return false
				}
			}
		}
		return total > percentTotalLow && total < percentTotalHigh
	}
}

func indexOfPane(areas []*area, p *Pane) int {
	if p == nil {
		return -1
	}
	for i, a := range areas {
		if a.pane == p {
			return i
		}
	}
	return -1
}

func sizeOrZero(s *float64) float64 {
	if s == nil {
		return 0
	}
	return *s
}

func wildcardNegatives(sizes []*float64) []*float64 {
	out := make([]*float64, len(sizes))
	for i, v := range sizes {
		if v != nil && !math.IsNaN(*v) && *v >= 0 {
			out[i] = cloneSize(v)
		}
	}
	return out
}

func nonNegative(s *float64) *float64 {
	if s == nil {
		return nil
	}
	if math.IsNaN(*s) || *s < 0 {
		return Size(0)
	}
	return cloneSize(s)
}
