// Package background loads and prepares the raster images annotations are
// drawn over.
package background

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/example/inkover/internal/clipboard"
)

// Load reads an image file from disk. EXIF orientation is applied so photos
// straight off a camera come in upright.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("load background %s: %w", path, err)
	}
	return img, nil
}

// FromClipboard pulls an image off the system clipboard.
func FromClipboard() (image.Image, error) {
	img, err := clipboard.ReadImage()
	if err != nil {
		return nil, fmt.Errorf("load background from clipboard: %w", err)
	}
	return img, nil
}

// Rotation is a clockwise rotation applied to a preview, in degrees.
type Rotation int

const (
	Rotate0   Rotation = 0
	Rotate90  Rotation = 90
	Rotate180 Rotation = 180
	Rotate270 Rotation = 270
)

// Preview scales img by the given factor and applies a rotation. A
// non-positive scale leaves the size alone. It never mutates the input.
func Preview(img image.Image, scale float64, rot Rotation) image.Image {
	if img == nil {
		return nil
	}
	out := img
	if scale > 0 && scale != 1 {
		b := img.Bounds()
		w := int(float64(b.Dx())*scale + 0.5)
		h := int(float64(b.Dy())*scale + 0.5)
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		out = imaging.Resize(out, w, h, imaging.Lanczos)
	}
	switch rot {
	case Rotate90:
		// imaging rotates counter-clockwise; invert for clockwise semantics.
		out = imaging.Rotate270(out)
	case Rotate180:
		out = imaging.Rotate180(out)
	case Rotate270:
		out = imaging.Rotate90(out)
	}
	return out
}
