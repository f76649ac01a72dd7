// Package cropper clamps extraction rectangles to safe bounds and renders
// the final encoded payload.
package cropper

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// ErrRender reports a failure to produce the cropped output payload.
var ErrRender = errors.New("cropper: render failed")

// Config controls clamping floors and output encoding.
type Config struct {
	Quality   int  // JPEG/WebP quality (1-100)
	Lossless  bool // WebP lossless mode
	MinSize   int  // per-dimension crop floor
	EdgeInset int  // max distance the crop origin may sit from the far edge
}

// DefaultConfig returns the standard clamping and encoding settings.
func DefaultConfig() Config {
	return Config{
		Quality:   90,
		MinSize:   50,
		EdgeInset: 10,
	}
}

// Clamp forces a rectangle into safe bounds: a non-negative origin kept away
// from the far edges, and dimensions at least MinSize without exceeding the
// remaining image extent. A degenerate input yields a small valid crop
// rather than an error.
func (c Config) Clamp(rect image.Rectangle, width, height int) image.Rectangle {
	x, y := rect.Min.X, rect.Min.Y
	w, h := rect.Dx(), rect.Dy()

	x = clampInt(x, 0, width-c.EdgeInset)
	y = clampInt(y, 0, height-c.EdgeInset)

	if w < c.MinSize {
		w = c.MinSize
	}
	if h < c.MinSize {
		h = c.MinSize
	}

	// Pull the origin back rather than shrinking below the floor; only an
	// image smaller than the floor itself can produce a smaller crop.
	if x+w > width {
		x = width - w
		if x < 0 {
			x, w = 0, width
		}
	}
	if y+h > height {
		y = height - h
		if y < 0 {
			y, h = 0, height
		}
	}
	return image.Rect(x, y, x+w, y+h)
}

// Render crops img to rect and re-encodes it in the requested format family.
// Unrecognized formats encode as PNG.
func (c Config) Render(img image.Image, rect image.Rectangle, format string) ([]byte, error) {
	cropped := imaging.Crop(img, rect)
	if cropped.Bounds().Empty() {
		return nil, fmt.Errorf("%w: empty crop rectangle %v", ErrRender, rect)
	}

	var buf bytes.Buffer
	var err error
	switch format {
	case "jpeg", "jpg":
		err = jpeg.Encode(&buf, cropped, &jpeg.Options{Quality: c.Quality})
	case "webp":
		err = webp.Encode(&buf, cropped, &webp.Options{Lossless: c.Lossless, Quality: float32(c.Quality)})
	default:
		err = png.Encode(&buf, cropped)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
