package grid

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/contactsheet/gridcell/pkg/raster"
)

func TestTrimCellShavesResidualGutter(t *testing.T) {
	// Cell rectangle overlapping 8px of a vertical gutter on its left side.
	buf := buildSheetBuffer(sheetSpec{w: 200, h: 200, colCenters: []int{96}, thickness: 8})

	rect := TrimCell(buf, image.Rect(92, 20, 192, 180), DefaultConfig())

	assert.Equal(t, 100, rect.Min.X)
	assert.Equal(t, image.Rect(100, 20, 192, 180), rect)
}

func TestTrimCellLeavesContentAlone(t *testing.T) {
	buf := buildSheetBuffer(sheetSpec{w: 200, h: 200})

	rect := image.Rect(10, 10, 190, 190)
	assert.Equal(t, rect, TrimCell(buf, rect, DefaultConfig()))
}

func TestTrimCellAllWhiteStopsAtFloor(t *testing.T) {
	buf := buildSheetBuffer(sheetSpec{w: 200, h: 200, content: 255})

	rect := TrimCell(buf, image.Rect(0, 0, 200, 200), DefaultConfig())

	assert.Equal(t, 50, rect.Dx())
	assert.Equal(t, 50, rect.Dy())
}

func TestTrimCellClampsToImage(t *testing.T) {
	buf := buildSheetBuffer(sheetSpec{w: 100, h: 100})

	rect := TrimCell(buf, image.Rect(-20, -20, 150, 150), DefaultConfig())

	assert.Equal(t, image.Rect(0, 0, 100, 100), rect)
}

func TestTrimCellAllFourSides(t *testing.T) {
	// A gray square surrounded by white inside the rectangle: every side
	// shaves down to the square.
	img := buildSheet(sheetSpec{w: 300, h: 300, content: 255})
	for y := 100; y < 220; y++ {
		for x := 90; x < 210; x++ {
			img.SetNRGBA(x, y, toGray(128))
		}
	}
	buf := raster.FromImage(img)

	rect := TrimCell(buf, image.Rect(40, 40, 260, 260), DefaultConfig())

	assert.Equal(t, image.Rect(90, 100, 210, 220), rect)
}
