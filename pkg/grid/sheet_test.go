package grid

import (
	"image"
	"image/color"

	"github.com/contactsheet/gridcell/pkg/raster"
)

// sheetSpec describes a synthetic contact sheet: gray content, near-white
// gutters centered on the given positions, and an optional white margin.
type sheetSpec struct {
	w, h       int
	margin     int
	colCenters []int // image-space centers of vertical gutter bands
	rowCenters []int
	thickness  int
	content    uint8
	gutter     uint8
}

func (s sheetSpec) defaults() sheetSpec {
	if s.thickness == 0 {
		s.thickness = 4
	}
	if s.content == 0 {
		s.content = 128
	}
	if s.gutter == 0 {
		s.gutter = 255
	}
	return s
}

func buildSheet(spec sheetSpec) *image.NRGBA {
	spec = spec.defaults()
	img := image.NewNRGBA(image.Rect(0, 0, spec.w, spec.h))
	for y := 0; y < spec.h; y++ {
		for x := 0; x < spec.w; x++ {
			v := spec.content
			switch {
			case x < spec.margin || y < spec.margin || x >= spec.w-spec.margin || y >= spec.h-spec.margin:
				v = 255
			case inBand(x, spec.colCenters, spec.thickness) || inBand(y, spec.rowCenters, spec.thickness):
				v = spec.gutter
			}
			img.SetNRGBA(x, y, color.NRGBA{v, v, v, 255})
		}
	}
	return img
}

func buildSheetBuffer(spec sheetSpec) *raster.Buffer {
	return raster.FromImage(buildSheet(spec))
}

func toGray(v uint8) color.NRGBA {
	return color.NRGBA{v, v, v, 255}
}

func inBand(pos int, centers []int, thickness int) bool {
	for _, c := range centers {
		if pos >= c-thickness/2 && pos < c+thickness-thickness/2 {
			return true
		}
	}
	return false
}
