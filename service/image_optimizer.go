package service

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
)

// Max dimension of a sheet thumbnail
const maxSizeThumb = 300

// Thumbnail scales a rendered sheet down to fit a maxSizeThumb square and re-encodes it as PNG.
// Images already within bounds are re-encoded unchanged.
func Thumbnail(imageData []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxSizeThumb || bounds.Dy() > maxSizeThumb {
		img = imaging.Fit(img, maxSizeThumb, maxSizeThumb, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode to PNG: %w", err)
	}
	return buf.Bytes(), nil
}
