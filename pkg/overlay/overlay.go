// Package overlay renders debug visualizations of grid detection results.
package overlay

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	"github.com/contactsheet/gridcell"
)

// Draw paints the detected content region, divider bands, the chosen cell,
// and the click point onto a copy of the composite.
func Draw(img image.Image, a gridcell.Analysis, cell image.Rectangle, clickX, clickY float64) *image.NRGBA {
	nrgba := imaging.Clone(img)
	w := nrgba.Bounds().Dx()
	h := nrgba.Bounds().Dy()

	green := color.NRGBA{0, 255, 0, 255}  // content region
	gold := color.NRGBA{255, 204, 0, 255} // dividers
	red := color.NRGBA{255, 0, 0, 255}    // chosen cell
	blue := color.NRGBA{0, 170, 255, 255} // click point
	stroke := int(math.Max(2, 0.004*float64(minInt(w, h))))
	cross := int(math.Max(4, 0.01*float64(minInt(w, h))))

	drawRect(nrgba, image.Rect(a.Region.Left, a.Region.Top, a.Region.Right, a.Region.Bottom), green, stroke)

	for _, d := range a.ColDividers {
		x := a.Region.Left + int(d.Pos)
		for s := 0; s < stroke; s++ {
			drawVLine(nrgba, x+s, a.Region.Top, a.Region.Bottom, gold)
		}
	}
	for _, d := range a.RowDividers {
		y := a.Region.Top + int(d.Pos)
		for s := 0; s < stroke; s++ {
			drawHLine(nrgba, y+s, a.Region.Left, a.Region.Right, gold)
		}
	}

	drawRect(nrgba, cell, red, stroke)

	px := int(clamp(clickX, 0, 1)*float64(w) + 0.5)
	py := int(clamp(clickY, 0, 1)*float64(h) + 0.5)
	drawHLine(nrgba, py, px-cross, px+cross, blue)
	drawVLine(nrgba, px, py-cross, py+cross, blue)

	return nrgba
}

func drawRect(img *image.NRGBA, r image.Rectangle, c color.NRGBA, stroke int) {
	for s := 0; s < stroke; s++ {
		drawHLine(img, r.Min.Y+s, r.Min.X, r.Max.X, c)
		drawHLine(img, r.Max.Y-1-s, r.Min.X, r.Max.X, c)
		drawVLine(img, r.Min.X+s, r.Min.Y, r.Max.Y, c)
		drawVLine(img, r.Max.X-1-s, r.Min.Y, r.Max.Y, c)
	}
}

func drawHLine(img *image.NRGBA, y, x0, x1 int, c color.NRGBA) {
	if y < 0 || y >= img.Bounds().Dy() {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if x1 <= 0 || x0 >= img.Bounds().Dx() {
		return
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 > img.Bounds().Dx() {
		x1 = img.Bounds().Dx()
	}
	i := y*img.Stride + x0*4
	for x := x0; x < x1; x++ {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
		i += 4
	}
}

func drawVLine(img *image.NRGBA, x, y0, y1 int, c color.NRGBA) {
	if x < 0 || x >= img.Bounds().Dx() {
		return
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	if y1 <= 0 || y0 >= img.Bounds().Dy() {
		return
	}
	if y0 < 0 {
		y0 = 0
	}
	if y1 > img.Bounds().Dy() {
		y1 = img.Bounds().Dy()
	}
	i := y0*img.Stride + x*4
	for y := y0; y < y1; y++ {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
		i += img.Stride
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
