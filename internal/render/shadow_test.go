package render

import (
	"image"
	"image/color"
	"testing"
)

func TestApplyShadowExpandsBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	subject := image.Pt(5, 5)
	img.Set(subject.X, subject.Y, color.RGBA{R: 255, A: 255})

	opts := ShadowOptions{Radius: 4, Offset: image.Pt(8, 6), Opacity: 0.5}
	out := ApplyShadow(img, opts)
	if out == nil {
		t.Fatal("expected output image")
	}
	expected := image.Rect(0, 0, 22, 20)
	if !out.Bounds().Eq(expected) {
		t.Fatalf("unexpected bounds %v, want %v", out.Bounds(), expected)
	}
	// Spot check that shadow alpha landed near the offset pixel.
	shadowPt := subject.Add(opts.Offset)
	if out.RGBAAt(shadowPt.X, shadowPt.Y).A == 0 {
		t.Fatalf("expected shadow alpha at %v", shadowPt)
	}
}

func TestApplyShadowNoShadowWhenOpacityZero(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	fill := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, fill)
		}
	}
	out := ApplyShadow(img, ShadowOptions{Radius: 12, Offset: image.Pt(20, 10), Opacity: 0})
	if out != img {
		t.Fatal("zero opacity must return the input unchanged")
	}
}

func TestApplyShadowNilInput(t *testing.T) {
	if out := ApplyShadow(nil, DefaultShadowOptions()); out != nil {
		t.Fatal("nil input must return nil")
	}
}

func TestApplyShadowKeepsSubjectOnTop(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 6, 6))
	fill := color.RGBA{R: 10, G: 200, B: 30, A: 255}
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			img.Set(x, y, fill)
		}
	}
	out := ApplyShadow(img, ShadowOptions{Radius: 2, Offset: image.Pt(4, 4), Opacity: 1})
	if got := out.RGBAAt(1, 1); got != fill {
		t.Fatalf("subject pixel changed: got %+v want %+v", got, fill)
	}
}
