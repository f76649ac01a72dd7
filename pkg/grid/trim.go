package grid

import (
	"image"

	"github.com/contactsheet/gridcell/pkg/raster"
)

// TrimCell shaves residual near-white margin from each of the four sides of
// the chosen cell rectangle, one pixel at a time. Imprecise divider placement
// can leave a sliver of gutter inside the cell; this removes it. The floor
// check on each dimension guarantees termination.
func TrimCell(buf *raster.Buffer, rect image.Rectangle, cfg Config) image.Rectangle {
	rect = rect.Intersect(image.Rect(0, 0, buf.Width, buf.Height))
	if rect.Empty() {
		return rect
	}

	for rect.Dx() > cfg.TrimFloor && columnBlank(buf, rect.Min.X, rect.Min.Y, rect.Max.Y, cfg) {
		rect.Min.X++
	}
	for rect.Dx() > cfg.TrimFloor && columnBlank(buf, rect.Max.X-1, rect.Min.Y, rect.Max.Y, cfg) {
		rect.Max.X--
	}
	for rect.Dy() > cfg.TrimFloor && rowBlank(buf, rect.Min.Y, rect.Min.X, rect.Max.X, cfg) {
		rect.Min.Y++
	}
	for rect.Dy() > cfg.TrimFloor && rowBlank(buf, rect.Max.Y-1, rect.Min.X, rect.Max.X, cfg) {
		rect.Max.Y--
	}
	return rect
}

func columnBlank(buf *raster.Buffer, x, y0, y1 int, cfg Config) bool {
	bright := 0
	for y := y0; y < y1; y++ {
		if buf.Brightness(x, y) >= cfg.TrimBrightness {
			bright++
		}
	}
	return y1 > y0 && float64(bright)/float64(y1-y0) >= cfg.TrimFraction
}

func rowBlank(buf *raster.Buffer, y, x0, x1 int, cfg Config) bool {
	bright := 0
	for x := x0; x < x1; x++ {
		if buf.Brightness(x, y) >= cfg.TrimBrightness {
			bright++
		}
	}
	return x1 > x0 && float64(bright)/float64(x1-x0) >= cfg.TrimFraction
}
