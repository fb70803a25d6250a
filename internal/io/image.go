package ioutils

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"golang.org/x/image/draw"
)

// ImageService produces artist thumbnails.
//
// Photos referenced from the data file come in any size and as JPEG or
// PNG; pages always link a JPEG that fits inside a square box.
type ImageService struct {
	quality int
}

// NewImageService creates a new ImageService encoding at JPEG quality 90.
func NewImageService() *ImageService {
	return &ImageService{quality: 90}
}

// Thumbnail decodes data and returns it re-encoded as JPEG, scaled down
// to fit within maxSize×maxSize with the aspect ratio preserved. Images
// already inside the box are only re-encoded.
//
// The Catmull-Rom kernel is used for scaling.
func (s *ImageService) Thumbnail(ctx context.Context, data []byte, maxSize int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width, height := fitWithin(bounds.Dx(), bounds.Dy(), maxSize)

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: s.quality}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// fitWithin returns width and height scaled so neither exceeds maxSize.
// A non-positive maxSize leaves the dimensions unchanged.
func fitWithin(width, height, maxSize int) (int, int) {
	if maxSize <= 0 || (width <= maxSize && height <= maxSize) {
		return width, height
	}

	if width >= height {
		h := height * maxSize / width
		if h < 1 {
			h = 1
		}
		return maxSize, h
	}

	w := width * maxSize / height
	if w < 1 {
		w = 1
	}
	return w, maxSize
}
