package split

import (
	"time"

	"github.com/alexisbeaulieu97/splitpane/internal/logger"
)

const (
	// DefaultGutterSize is the gutter thickness in cells.
	DefaultGutterSize = 1
	// DefaultGutterStep quantizes drag offsets to whole cells.
	DefaultGutterStep = 1
)

// Options configures a Split.
type Options struct {
	Direction    Direction
	Unit         Unit
	GutterSize   float64
	GutterStep   float64
	RestrictMove bool
	Disabled     bool
	Dir          TextDir

	// GutterDblClickDuration is the window in which a second click on the same
	// gutter counts as a double click. Zero reports every click immediately.
	GutterDblClickDuration time.Duration

	// Length is the container length along the split axis, in cells.
	Length float64

	Logger *logger.Logger
	Clock  func() time.Time
}

// Option mutates Options at construction time.
type Option func(*Options)

// DefaultOptions returns the settings a Split starts with.
func DefaultOptions() Options {
	return Options{
		Direction:  Horizontal,
		Unit:       UnitPercent,
		GutterSize: DefaultGutterSize,
		GutterStep: DefaultGutterStep,
		Dir:        LTR,
		Clock:      time.Now,
	}
}

func WithDirection(d Direction) Option { return func(o *Options) { o.Direction = d } }

func WithUnit(u Unit) Option { return func(o *Options) { o.Unit = u } }

func WithGutterSize(size float64) Option {
	return func(o *Options) { o.GutterSize = positiveOr(size, DefaultGutterSize) }
}

func WithGutterStep(step float64) Option {
	return func(o *Options) { o.GutterStep = stepOr(step) }
}

func WithRestrictMove(restrict bool) Option { return func(o *Options) { o.RestrictMove = restrict } }

func WithDisabled(disabled bool) Option { return func(o *Options) { o.Disabled = disabled } }

func WithTextDir(dir TextDir) Option { return func(o *Options) { o.Dir = dir } }

func WithDblClickDuration(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			d = 0
		}
		o.GutterDblClickDuration = d
	}
}

// WithLength sets the initial container length.
func WithLength(length float64) Option {
	return func(o *Options) { o.Length = positiveOr(length, 0) }
}

func WithLogger(log *logger.Logger) Option { return func(o *Options) { o.Logger = log } }

// WithClock replaces time.Now for click timing.
func WithClock(clock func() time.Time) Option {
	return func(o *Options) {
		if clock != nil {
			o.Clock = clock
		}
	}
}

func positiveOr(v, fallback float64) float64 {
	if v != v || v < 0 {
		return fallback
	}
	return v
}

func stepOr(v float64) float64 {
	if v != v || v <= 0 {
		return DefaultGutterStep
	}
	return v
}
