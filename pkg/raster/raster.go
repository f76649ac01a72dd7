// Package raster decodes composite images and exposes per-pixel brightness.
//
// Every pipeline stage downstream of the decoder reads brightness values only,
// so the decoded image is flattened once into an intensity buffer and shared
// immutably from there on.
package raster

import (
	"errors"
	"image"
)

// ErrDecode reports a payload that cannot be decoded or has zero area.
var ErrDecode = errors.New("raster: undecodable image payload")

// Buffer holds per-pixel brightness for a decoded composite.
type Buffer struct {
	Width  int
	Height int
	pix    []uint8
}

// FromImage flattens an image into a brightness buffer using (r+g+b)/3.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	buf := &Buffer{Width: w, Height: h, pix: make([]uint8, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			buf.pix[y*w+x] = uint8(((r >> 8) + (g >> 8) + (b >> 8)) / 3)
		}
	}
	return buf
}

// Brightness returns the intensity at (x, y). Out-of-bounds reads return 0.
func (b *Buffer) Brightness(x, y int) uint8 {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return 0
	}
	return b.pix[y*b.Width+x]
}
