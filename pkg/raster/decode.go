package raster

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	_ "golang.org/x/image/webp"
)

// Decode decodes an encoded raster and reports its format name.
// It tries the registered decoders first and falls back to an explicit
// WebP decode for payloads the registry cannot sniff.
func Decode(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		wimg, werr := webp.Decode(bytes.NewReader(data))
		if werr != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrDecode, err)
		}
		img, format = wimg, "webp"
	}

	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, "", fmt.Errorf("%w: zero-area image", ErrDecode)
	}
	return img, format, nil
}
