package grid

import "math"

// CellBoundary is one of the three ranges on an axis, in content-local units.
type CellBoundary struct {
	Start float64
	End   float64
}

// Center returns the midpoint of the range.
func (c CellBoundary) Center() float64 { return (c.Start + c.End) / 2 }

// CellBoundaries converts the two dividers into three contiguous ranges,
// removing half of each divider's measured thickness on both sides of it.
func CellBoundaries(d1, d2 Divider, n int) [3]CellBoundary {
	bounds := [3]CellBoundary{
		{Start: 0, End: d1.Pos - d1.Thickness/2},
		{Start: d1.Pos + d1.Thickness/2, End: d2.Pos - d2.Thickness/2},
		{Start: d2.Pos + d2.Thickness/2, End: float64(n)},
	}
	for i := range bounds {
		bounds[i].Start = clampFloat(bounds[i].Start, 0, float64(n))
		bounds[i].End = clampFloat(bounds[i].End, bounds[i].Start, float64(n))
	}
	return bounds
}

// ResolveClick picks the range whose center is nearest to the content-local
// coordinate. Each axis is resolved independently, so a click anywhere inside
// a cell maps to that cell even when gutters sit asymmetrically.
func ResolveClick(coord float64, bounds [3]CellBoundary) int {
	nearest := 0
	best := math.Inf(1)
	for i, b := range bounds {
		dist := math.Abs(coord - b.Center())
		if dist < best {
			best = dist
			nearest = i
		}
	}
	return nearest
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
