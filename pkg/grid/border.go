package grid

import "github.com/contactsheet/gridcell/pkg/raster"

// ContentRegion is the composite interior after stripping the outer margin,
// in image-space coordinates.
type ContentRegion struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// Width returns the horizontal extent of the region.
func (r ContentRegion) Width() int { return r.Right - r.Left }

// Height returns the vertical extent of the region.
func (r ContentRegion) Height() int { return r.Bottom - r.Top }

// DetectBorders scans inward from each of the four edges to find where the
// outer near-white margin ends. An edge with no margin yields offset 0; an
// all-white image yields the maximal border on every edge.
func DetectBorders(buf *raster.Buffer, cfg Config) ContentRegion {
	maxX := int(float64(buf.Width) * cfg.BorderMaxFraction)
	maxY := int(float64(buf.Height) * cfg.BorderMaxFraction)

	left := scanEdge(maxX, buf.Height, cfg, func(depth, offset int) uint8 {
		return buf.Brightness(depth, offset)
	})
	right := scanEdge(maxX, buf.Height, cfg, func(depth, offset int) uint8 {
		return buf.Brightness(buf.Width-1-depth, offset)
	})
	top := scanEdge(maxY, buf.Width, cfg, func(depth, offset int) uint8 {
		return buf.Brightness(offset, depth)
	})
	bottom := scanEdge(maxY, buf.Width, cfg, func(depth, offset int) uint8 {
		return buf.Brightness(offset, buf.Height-1-depth)
	})

	return ContentRegion{
		Left:   left,
		Top:    top,
		Right:  buf.Width - right,
		Bottom: buf.Height - bottom,
	}
}

// scanEdge walks inward one depth at a time. A short lookahead past a
// failing depth bridges anti-aliased transitions without stopping early.
func scanEdge(depthMax, length int, cfg Config, sample func(depth, offset int) uint8) int {
	border := 0
	misses := 0
	for depth := 0; depth < depthMax; depth++ {
		if depthIsBorder(depth, length, cfg, sample) {
			border = depth + 1
			misses = 0
			continue
		}
		misses++
		if misses > cfg.BorderLookahead {
			break
		}
	}
	return border
}

// depthIsBorder samples a strided subset of pixels along the perpendicular
// axis and classifies the depth as margin when enough of them are near-white.
func depthIsBorder(depth, length int, cfg Config, sample func(depth, offset int) uint8) bool {
	stride := length / cfg.BorderProbes
	if stride < 1 {
		stride = 1
	}

	total, bright := 0, 0
	for offset := 0; offset < length; offset += stride {
		total++
		if sample(depth, offset) >= cfg.BorderBrightness {
			bright++
		}
	}
	return total > 0 && float64(bright)/float64(total) >= cfg.BorderFraction
}
