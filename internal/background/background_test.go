package background

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "bg.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeTestPNG(t, 32, 24)
	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 24 {
		t.Errorf("bounds = %v, want 32x24", b)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestPreviewScale(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	out := Preview(img, 0.5, Rotate0)
	if b := out.Bounds(); b.Dx() != 20 || b.Dy() != 10 {
		t.Errorf("scaled bounds = %v, want 20x10", b)
	}
	if out := Preview(img, 0, Rotate0); !out.Bounds().Eq(img.Bounds()) {
		t.Error("non-positive scale must leave the size alone")
	}
}

func TestPreviewRotationSwapsAxes(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for _, rot := range []Rotation{Rotate90, Rotate270} {
		out := Preview(img, 1, rot)
		if b := out.Bounds(); b.Dx() != 20 || b.Dy() != 40 {
			t.Errorf("rotate %d bounds = %v, want 20x40", rot, b)
		}
	}
	out := Preview(img, 1, Rotate180)
	if b := out.Bounds(); b.Dx() != 40 || b.Dy() != 20 {
		t.Errorf("rotate 180 bounds = %v, want 40x20", b)
	}
}

func TestPreviewNil(t *testing.T) {
	if Preview(nil, 2, Rotate90) != nil {
		t.Fatal("nil input must return nil")
	}
}
