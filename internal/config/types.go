package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/splitpane/internal/split"
)

// Content kinds a leaf pane can show.
const (
	ContentText     = "text"
	ContentElements = "elements"
	ContentLog      = "log"
	ContentMeter    = "meter"
)

// Layout is a full layout document.
type Layout struct {
	Version     string    `yaml:"version" validate:"required,oneof=1"`
	Name        string    `yaml:"name" validate:"required,min=1,max=100"`
	Description string    `yaml:"description,omitempty"`
	Split       SplitSpec `yaml:"split"`
}

// SplitSpec describes one split and its panes. A pane may hold a nested split.
type SplitSpec struct {
	Direction    string     `yaml:"direction,omitempty" validate:"omitempty,oneof=horizontal vertical"`
	Unit         string     `yaml:"unit,omitempty" validate:"omitempty,oneof=percent pixel"`
	GutterSize   *float64   `yaml:"gutter_size,omitempty" validate:"omitempty,min=0,max=10"`
	GutterStep   float64    `yaml:"gutter_step,omitempty" validate:"omitempty,gt=0,max=100"`
	RestrictMove bool       `yaml:"restrict_move,omitempty"`
	Disabled     bool       `yaml:"disabled,omitempty"`
	Dir          string     `yaml:"dir,omitempty" validate:"omitempty,oneof=ltr rtl"`
	DblClickMs   int        `yaml:"dbl_click_ms,omitempty" validate:"omitempty,min=0,max=5000"`
	Panes        []PaneSpec `yaml:"panes" validate:"required,min=1,dive"`
}

// PaneSpec describes a single pane.
type PaneSpec struct {
	ID        string     `yaml:"id" validate:"required,pane_id"`
	Title     string     `yaml:"title,omitempty" validate:"max=60"`
	Order     *int       `yaml:"order,omitempty" validate:"omitempty,min=0"`
	Size      SizeValue  `yaml:"size,omitempty" validate:"pane_size"`
	MinSize   *float64   `yaml:"min_size,omitempty" validate:"omitempty,min=0"`
	MaxSize   *float64   `yaml:"max_size,omitempty" validate:"omitempty,min=0"`
	MinPixels *float64   `yaml:"min_pixels,omitempty" validate:"omitempty,min=0"`
	MaxPixels *float64   `yaml:"max_pixels,omitempty" validate:"omitempty,min=0"`
	LockSize  bool       `yaml:"lock_size,omitempty"`
	Visible   *bool      `yaml:"visible,omitempty"`
	Content   string     `yaml:"content,omitempty" validate:"omitempty,oneof=text elements log meter"`
	Text      string     `yaml:"text,omitempty"`
	Split     *SplitSpec `yaml:"split,omitempty"`
}

// SizeValue is a pane size as written in a layout: a number, "*" for the
// wildcard, or nothing.
type SizeValue struct {
	Set      bool
	Wildcard bool
	Value    float64
}

// Fixed returns a SizeValue holding v.
func Fixed(v float64) SizeValue {
	return SizeValue{Set: true, Value: v}
}

// Wildcard returns the "*" SizeValue.
func Wildcard() SizeValue {
	return SizeValue{Set: true, Wildcard: true}
}

// UnmarshalYAML accepts numbers and "*".
func (s *SizeValue) UnmarshalYAML(value *yaml.Node) error {
	*s = SizeValue{}
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: size must be a number or \"*\"", value.Line)
	}
	if value.Tag == "!!null" {
		return nil
	}

	raw := strings.TrimSpace(value.Value)
	if raw == "*" {
		*s = Wildcard()
		return nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("line %d: size must be a number or \"*\", got %q", value.Line, raw)
	}
	*s = Fixed(v)
	return nil
}

// MarshalYAML writes the size back in layout form.
func (s SizeValue) MarshalYAML() (any, error) {
	switch {
	case !s.Set:
		return nil, nil
	case s.Wildcard:
		return "*", nil
	default:
		return s.Value, nil
	}
}

// Pointer converts the size to the engine form; unset and "*" are nil.
func (s SizeValue) Pointer() *float64 {
	if !s.Set || s.Wildcard {
		return nil
	}
	return split.Size(s.Value)
}

func (s SizeValue) String() string {
	switch {
	case !s.Set:
		return ""
	case s.Wildcard:
		return "*"
	default:
		return strconv.FormatFloat(s.Value, 'f', -1, 64)
	}
}

// IsVisible reports whether the pane starts displayed. Panes are visible unless
// they say otherwise.
func (p PaneSpec) IsVisible() bool {
	return p.Visible == nil || *p.Visible
}

// ContentKind returns the content to render, defaulting to text.
func (p PaneSpec) ContentKind() string {
	if p.Content == "" {
		return ContentText
	}
	return p.Content
}

// DisplayTitle returns the title, falling back to the pane id.
func (p PaneSpec) DisplayTitle() string {
	if strings.TrimSpace(p.Title) != "" {
		return p.Title
	}
	return p.ID
}

// UnitValue returns the engine unit.
func (s SplitSpec) UnitValue() split.Unit {
	return split.ParseUnit(s.Unit)
}

// DirectionValue returns the engine direction.
func (s SplitSpec) DirectionValue() split.Direction {
	return split.ParseDirection(s.Direction)
}

// DblClickDuration returns the double click window.
func (s SplitSpec) DblClickDuration() time.Duration {
	return time.Duration(s.DblClickMs) * time.Millisecond
}
