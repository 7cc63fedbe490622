package split

// absorption is what one pane can take of a requested pixel delta.
type absorption struct {
	snap *AreaSnapshot

	// pixelAbsorb is the delta actually applied to the pane.
	pixelAbsorb float64
	// percentAfterAbsorption is the new percent size; unused in pixel mode.
	percentAfterAbsorption float64
	// pixelRemain is the part of the request the pane could not take.
	pixelRemain float64
}

// sideAbsorption is the combined result for all panes on one side of a gutter.
type sideAbsorption struct {
	remain float64
	list   []*absorption
}

// sideAbsorptionCapacity feeds pixels to the panes of one side, nearest first,
// each pane receiving whatever the previous one could not absorb.
func sideAbsorptionCapacity(unit Unit, side []*AreaSnapshot, pixels, allAreasSizePixel float64) sideAbsorption {
	acc := sideAbsorption{remain: pixels, list: make([]*absorption, 0, len(side))}
	for _, snap := range side {
		res := areaAbsorptionCapacity(unit, snap, acc.remain, allAreasSizePixel)
		acc.list = append(acc.list, res)
		acc.remain = res.pixelRemain
	}
	return acc
}

func areaAbsorptionCapacity(unit Unit, snap *AreaSnapshot, pixels, allAreasSizePixel float64) *absorption {
	if pixels == 0 {
		return &absorption{snap: snap, percentAfterAbsorption: snap.SizePercentAtStart}
	}

	// A pane already at zero cannot shrink.
	if snap.SizePixelAtStart == 0 && pixels < 0 {
		return &absorption{snap: snap, pixelRemain: pixels}
	}

	if unit == UnitPercent {
		return areaAbsorptionCapacityPercent(snap, pixels, allAreasSizePixel)
	}
	return areaAbsorptionCapacityPixel(snap, pixels)
}

func areaAbsorptionCapacityPercent(snap *AreaSnapshot, pixels, allAreasSizePixel float64) *absorption {
	tempPixelSize := snap.SizePixelAtStart + pixels
	tempPercentSize := tempPixelSize / allAreasSizePixel * 100
	a := snap.area

	if pixels > 0 {
		if a.maxSize != nil && tempPercentSize > *a.maxSize {
			maxSizePixel := *a.maxSize / 100 * allAreasSizePixel
			return &absorption{
				snap:                   snap,
				pixelAbsorb:            maxSizePixel - snap.SizePixelAtStart,
				percentAfterAbsorption: *a.maxSize,
				pixelRemain:            tempPixelSize - maxSizePixel,
			}
		}
		if tempPercentSize > 100 {
			tempPercentSize = 100
		}
		return &absorption{snap: snap, pixelAbsorb: pixels, percentAfterAbsorption: tempPercentSize}
	}

	if a.minSize != nil && tempPercentSize < *a.minSize {
		minSizePixel := *a.minSize / 100 * allAreasSizePixel
		return &absorption{
			snap:                   snap,
			pixelAbsorb:            minSizePixel - snap.SizePixelAtStart,
			percentAfterAbsorption: *a.minSize,
			pixelRemain:            tempPixelSize - minSizePixel,
		}
	}
	if tempPercentSize < 0 {
		return &absorption{
			snap:        snap,
			pixelAbsorb: -snap.SizePixelAtStart,
			pixelRemain: tempPixelSize,
		}
	}
	return &absorption{snap: snap, pixelAbsorb: pixels, percentAfterAbsorption: tempPercentSize}
}

func areaAbsorptionCapacityPixel(snap *AreaSnapshot, pixels float64) *absorption {
	tempPixelSize := snap.SizePixelAtStart + pixels
	a := snap.area

	if pixels > 0 {
		if a.maxSize != nil && tempPixelSize > *a.maxSize {
			return &absorption{
				snap:                   snap,
				pixelAbsorb:            *a.maxSize - snap.SizePixelAtStart,
				percentAfterAbsorption: -1,
				pixelRemain:            tempPixelSize - *a.maxSize,
			}
		}
		return &absorption{snap: snap, pixelAbsorb: pixels, percentAfterAbsorption: -1}
	}

	if a.minSize != nil && tempPixelSize < *a.minSize {
		return &absorption{
			snap:                   snap,
			pixelAbsorb:            *a.minSize - snap.SizePixelAtStart,
			percentAfterAbsorption: -1,
			pixelRemain:            tempPixelSize - *a.minSize,
		}
	}
	if tempPixelSize < 0 {
		return &absorption{
			snap:                   snap,
			pixelAbsorb:            -snap.SizePixelAtStart,
			percentAfterAbsorption: -1,
			pixelRemain:            tempPixelSize,
		}
	}
	return &absorption{snap: snap, pixelAbsorb: pixels, percentAfterAbsorption: -1}
}

// apply writes the absorbed size back to the pane. The pixel wildcard keeps its
// nil size and simply fills what is left.
func (r *absorption) apply(unit Unit) {
	a := r.snap.area
	if unit == UnitPercent {
		a.size = Size(r.percentAfterAbsorption)
		return
	}
	if a.size != nil {
		a.size = Size(r.snap.SizePixelAtStart + r.pixelAbsorb)
	}
}
