// Package imaging prepares profile pictures before they are stored.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // Register PNG decoder

	"golang.org/x/image/draw"
)

const (
	ProfileMaxDimension = 512
	ProfileQuality      = 80

	// Decode limits. image.Decode allocates the full canvas from the
	// header before reading pixel data.
	MaxSide   = 8192
	MaxPixels = 40_000_000
)

var (
	ErrNotAnImage = errors.New("file is not a supported image")
	ErrTooLarge   = errors.New("image dimensions are too large")
)

// CheckDimensions reads only the image header and rejects images whose
// declared size exceeds MaxSide or MaxPixels.
func CheckDimensions(data []byte) error {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotAnImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("%w: empty image %dx%d", ErrNotAnImage, cfg.Width, cfg.Height)
	}
	if cfg.Width > MaxSide || cfg.Height > MaxSide || cfg.Width*cfg.Height > MaxPixels {
		return fmt.Errorf("%w: %dx%d", ErrTooLarge, cfg.Width, cfg.Height)
	}
	return nil
}

// Downscale decodes a JPEG or PNG, fits it within maxDimension keeping the
// aspect ratio and re-encodes it as JPEG. Smaller images are only re-encoded.
func Downscale(data []byte, maxDimension, quality int) ([]byte, error) {
	if err := CheckDimensions(data); err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAnImage, err)
	}

	width, height := fitWithin(img.Bounds().Dx(), img.Bounds().Dy(), maxDimension)

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

func fitWithin(width, height, maxDimension int) (int, int) {
	if width <= maxDimension && height <= maxDimension {
		return width, height
	}
	if width > height {
		return maxDimension, max(1, height*maxDimension/width)
	}
	return max(1, width*maxDimension/height), maxDimension
}
