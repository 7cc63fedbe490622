package split

import (
	"strconv"
	"strings"
)

// Unit selects how pane sizes are interpreted.
type Unit int

const (
	// UnitPercent sizes panes as a share of the container, summing to 100.
	UnitPercent Unit = iota
	// UnitPixel sizes panes in absolute cells with a single wildcard pane.
	UnitPixel
)

func (u Unit) String() string {
	if u == UnitPixel {
		return "pixel"
	}
	return "percent"
}

// ParseUnit maps "pixel" to UnitPixel and everything else to UnitPercent.
func ParseUnit(s string) Unit {
	if strings.EqualFold(strings.TrimSpace(s), "pixel") {
		return UnitPixel
	}
	return UnitPercent
}

// Direction is the axis along which panes are laid out.
type Direction int

const (
	// Horizontal places panes side by side; gutters are dragged along x.
	Horizontal Direction = iota
	// Vertical stacks panes; gutters are dragged along y.
	Vertical
)

func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseDirection maps "vertical" to Vertical and everything else to Horizontal.
func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), "vertical") {
		return Vertical
	}
	return Horizontal
}

// TextDir is the reading direction of the container.
type TextDir int

const (
	LTR TextDir = iota
	RTL
)

func (d TextDir) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// ParseTextDir maps "rtl" to RTL and everything else to LTR.
func ParseTextDir(s string) TextDir {
	if strings.EqualFold(strings.TrimSpace(s), "rtl") {
		return RTL
	}
	return LTR
}

// Point is a pointer position in container cells.
type Point struct {
	X float64
	Y float64
}

// Size returns a pointer to v, for use as a pane size or constraint.
func Size(v float64) *float64 {
	return &v
}

// FormatSize renders a size the way layouts are written: the number, or "*"
// for the wildcard.
func FormatSize(s *float64) string {
	if s == nil {
		return "*"
	}
	return formatNumber(*s)
}

// FormatSizes renders a size list as a space separated string.
func FormatSizes(sizes []*float64) string {
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = FormatSize(s)
	}
	return strings.Join(parts, " ")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func cloneSize(s *float64) *float64 {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func sizeEquals(a *float64, v float64) bool {
	return a != nil && *a == v
}
