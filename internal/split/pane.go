package split

// Pane is a resizable region registered with a Split. Its fields are the
// user-facing inputs; the sizes the engine actually uses live on the Split and
// are reported through VisibleSizes and events.
type Pane struct {
	ID string

	// Order sorts displayed panes when every one of them sets it. Otherwise
	// registration order wins.
	Order *int

	// Size is a percentage (UnitPercent) or a cell count (UnitPixel). Nil is the
	// wildcard in pixel mode and "unset" in percent mode.
	Size *float64

	// MinSize and MaxSize bound the pane in the active unit.
	MinSize *float64
	MaxSize *float64

	// MinPixels and MaxPixels bound the pane in cells when the split works in
	// percent. They are converted with the current container length and only
	// apply when MinSize/MaxSize are unset.
	MinPixels *float64
	MaxPixels *float64

	// LockSize pins the pane at its size; drags never resize it.
	LockSize bool

	Visible bool
}

// NewPane returns a visible pane with no explicit size.
func NewPane(id string) *Pane {
	return &Pane{ID: id, Visible: true}
}

// WithSize sets the pane size and returns the pane.
func (p *Pane) WithSize(v float64) *Pane {
	p.Size = Size(v)
	return p
}

// WithBounds sets MinSize and MaxSize. Negative values leave a bound unset.
func (p *Pane) WithBounds(minSize, maxSize float64) *Pane {
	if minSize >= 0 {
		p.MinSize = Size(minSize)
	}
	if maxSize >= 0 {
		p.MaxSize = Size(maxSize)
	}
	return p
}

// WithOrder sets an explicit order.
func (p *Pane) WithOrder(order int) *Pane {
	p.Order = &order
	return p
}

// area is the engine-side state of a displayed or parked pane.
type area struct {
	pane    *Pane
	order   int
	size    *float64
	minSize *float64
	maxSize *float64
	style   FlexStyle
}

// configuredMin returns the pane minimum expressed in unit. allPixels is the
// length available to panes and is used to convert pixel bounds to percent.
func configuredMin(p *Pane, unit Unit, allPixels float64) *float64 {
	return configuredBound(p.MinSize, p.MinPixels, unit, allPixels)
}

func configuredMax(p *Pane, unit Unit, allPixels float64) *float64 {
	return configuredBound(p.MaxSize, p.MaxPixels, unit, allPixels)
}

func configuredBound(size, pixels *float64, unit Unit, allPixels float64) *float64 {
	if size != nil {
		return cloneSize(size)
	}
	if pixels == nil {
		return nil
	}
	if unit == UnitPixel {
		return cloneSize(pixels)
	}
	if allPixels <= 0 {
		return nil
	}
	return Size(*pixels / allPixels * 100)
}

// areaMinSize is the minimum the engine enforces for a: none for the wildcard,
// the size itself when locked, and never above the current size.
func areaMinSize(a *area, unit Unit, allPixels float64) *float64 {
	if a.size == nil {
		return nil
	}
	if a.pane.LockSize {
		return cloneSize(a.size)
	}
	minSize := configuredMin(a.pane, unit, allPixels)
	if minSize == nil {
		return nil
	}
	if *minSize > *a.size {
		return cloneSize(a.size)
	}
	return minSize
}

func areaMaxSize(a *area, unit Unit, allPixels float64) *float64 {
	if a.size == nil {
		return nil
	}
	if a.pane.LockSize {
		return cloneSize(a.size)
	}
	maxSize := configuredMax(a.pane, unit, allPixels)
	if maxSize == nil {
		return nil
	}
	if *maxSize < *a.size {
		return cloneSize(a.size)
	}
	return maxSize
}
