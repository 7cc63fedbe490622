package split

import "fmt"

// FlexStyle is the flex-box equivalent of a pane's size: how it grows, how it
// shrinks and its basis. MinLocked and MaxLocked flag a pane sitting on one of
// its bounds.
type FlexStyle struct {
	Grow      int
	Shrink    int
	Basis     string
	MinLocked bool
	MaxLocked bool
}

func (f FlexStyle) String() string {
	return fmt.Sprintf("%d %d %s", f.Grow, f.Shrink, f.Basis)
}

// Styles returns the flex style of each displayed pane.
func (s *Split) Styles() []FlexStyle {
	out := make([]FlexStyle, len(s.displayed))
	for i, a := range s.displayed {
		out[i] = a.style
	}
	return out
}

func (s *Split) refreshStyles() {
	single := len(s.displayed) == 1

	if s.opts.Unit == UnitPercent {
		sumGutterSize := float64(s.GutterCount()) * s.opts.GutterSize
		for _, a := range s.displayed {
			if single {
				a.style = FlexStyle{Basis: "100%"}
				continue
			}
			size := sizeOrZero(a.size)
			a.style = FlexStyle{
				Basis:     fmt.Sprintf("calc( %s%% - %spx )", formatNumber(size), formatNumber(size/100*sumGutterSize)),
				MinLocked: a.minSize != nil && *a.minSize == size,
				MaxLocked: a.maxSize != nil && *a.maxSize == size,
			}
		}
		return
	}

	for _, a := range s.displayed {
		switch {
		case a.size == nil && single:
			a.style = FlexStyle{Grow: 1, Shrink: 1, Basis: "100%"}
		case a.size == nil:
			a.style = FlexStyle{Grow: 1, Shrink: 1, Basis: "auto"}
		case single:
			a.style = FlexStyle{Basis: "100%"}
		default:
			a.style = FlexStyle{
				Basis:     formatNumber(*a.size) + "px",
				MinLocked: a.minSize != nil && sizeEquals(a.size, *a.minSize),
				MaxLocked: a.maxSize != nil && sizeEquals(a.size, *a.maxSize),
			}
		}
	}
}
