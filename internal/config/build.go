package config

import (
	"github.com/alexisbeaulieu97/splitpane/internal/logger"
	"github.com/alexisbeaulieu97/splitpane/internal/split"
)

// Options converts the document settings into split options.
func (s *SplitSpec) Options() []split.Option {
	opts := []split.Option{
		split.WithDirection(s.DirectionValue()),
		split.WithUnit(s.UnitValue()),
		split.WithTextDir(split.ParseTextDir(s.Dir)),
		split.WithRestrictMove(s.RestrictMove),
		split.WithDisabled(s.Disabled),
		split.WithDblClickDuration(s.DblClickDuration()),
	}
	if s.GutterSize != nil {
		opts = append(opts, split.WithGutterSize(*s.GutterSize))
	}
	if s.GutterStep > 0 {
		opts = append(opts, split.WithGutterStep(s.GutterStep))
	}
	return opts
}

// Pane converts a pane document into an engine pane.
func (p *PaneSpec) Pane() *split.Pane {
	pane := split.NewPane(p.ID)
	pane.Size = p.Size.Pointer()
	pane.MinSize = cloneFloat(p.MinSize)
	pane.MaxSize = cloneFloat(p.MaxSize)
	pane.MinPixels = cloneFloat(p.MinPixels)
	pane.MaxPixels = cloneFloat(p.MaxPixels)
	pane.LockSize = p.LockSize
	pane.Visible = p.IsVisible()
	if p.Order != nil {
		pane.WithOrder(*p.Order)
	}
	return pane
}

// Build creates the split for this level only, with panes registered in
// document order. Panes are returned in the same order, hidden ones included.
// Nested splits are left to the caller.
func (s *SplitSpec) Build(length int, log *logger.Logger) (*split.Split, []*split.Pane) {
	opts := append(s.Options(), split.WithLength(float64(length)), split.WithLogger(log))
	sp := split.New(opts...)

	panes := make([]*split.Pane, 0, len(s.Panes))
	for i := range s.Panes {
		pane := s.Panes[i].Pane()
		panes = append(panes, pane)
		sp.AddPane(pane)
	}
	return sp, panes
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
