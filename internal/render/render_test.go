package render

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/example/inkover/internal/element"
)

var red = color.RGBA{R: 255, A: 255}

func whiteBackground(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	return img
}

// countInked counts pixels inside rect that differ from the white background.
func countInked(img *image.RGBA, rect image.Rectangle) int {
	n := 0
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if c.R != 255 || c.G != 255 || c.B != 255 {
				n++
			}
		}
	}
	return n
}

func TestComposeNilBackground(t *testing.T) {
	stroke := element.NewFreehand(element.Style{Color: red, StrokeWidth: 2}, element.Point{X: 1, Y: 1})
	if got := Compose(nil, 10, 10, []element.Element{stroke}, nil); got != nil {
		t.Fatal("compose with nil background must return nil")
	}
	if got := Compose(whiteBackground(10, 10), 0, 10, nil, nil); got != nil {
		t.Fatal("compose with zero width must return nil")
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	bg := whiteBackground(60, 60)
	style := element.Style{Color: red, StrokeWidth: 3}
	fh := element.NewFreehand(style, element.Point{X: 5, Y: 5})
	fh.Append(element.Point{X: 30, Y: 40})
	els := []element.Element{
		fh,
		element.NewArrow(style, element.Point{X: 10, Y: 50}),
		element.NewText(style, element.Point{X: 5, Y: 30}, "ok"),
	}
	a := Compose(bg, 60, 60, els, nil)
	b := Compose(bg, 60, 60, els, nil)
	if a == nil || b == nil {
		t.Fatal("compose returned nil")
	}
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatal("two identical compose calls produced different pixels")
	}
}

func TestComposeScalesBackground(t *testing.T) {
	small := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := range small.Pix {
		small.Pix[i] = 255
	}
	out := Compose(small, 8, 8, nil, nil)
	if out == nil {
		t.Fatal("compose returned nil")
	}
	if got := out.Bounds(); got.Dx() != 8 || got.Dy() != 8 {
		t.Fatalf("output bounds = %v, want 8x8", got)
	}
	if out.RGBAAt(4, 4).R != 255 {
		t.Error("scaled background lost its fill")
	}
}

func TestSinglePointStrokeLeavesDot(t *testing.T) {
	bg := whiteBackground(40, 40)
	dot := element.NewFreehand(element.Style{Color: red, StrokeWidth: 6}, element.Point{X: 20, Y: 20})
	out := Compose(bg, 40, 40, []element.Element{dot}, nil)
	if out == nil {
		t.Fatal("compose returned nil")
	}
	if got := out.RGBAAt(20, 20); got.R != 255 || got.G != 0 {
		t.Fatalf("pixel at the click point = %v, want the stroke color", got)
	}
}

func TestNegativeRectMatchesNormalized(t *testing.T) {
	bg := whiteBackground(50, 50)
	style := element.Style{Color: red, StrokeWidth: 2}

	fwd := element.NewRect(style, element.Point{X: 10, Y: 10})
	fwd.End = element.Point{X: 35, Y: 30}
	rev := element.NewRect(style, element.Point{X: 35, Y: 30})
	rev.End = element.Point{X: 10, Y: 10}

	a := Compose(bg, 50, 50, []element.Element{fwd}, nil)
	b := Compose(bg, 50, 50, []element.Element{rev}, nil)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatal("dragging a rectangle backwards painted different pixels")
	}
}

func TestArrowPaintsHead(t *testing.T) {
	bg := whiteBackground(60, 50)
	arrow := element.NewArrow(element.Style{Color: red, StrokeWidth: 3}, element.Point{X: 5, Y: 25})
	arrow.End = element.Point{X: 45, Y: 25}
	out := Compose(bg, 60, 50, []element.Element{arrow}, nil)
	if out == nil {
		t.Fatal("compose returned nil")
	}
	// The shaft is horizontal, so any ink above it near the tip belongs to
	// an arrowhead leg.
	if countInked(out, image.Rect(33, 15, 46, 23)) == 0 {
		t.Error("no ink above the shaft near the tip: upper arrowhead leg missing")
	}
	if countInked(out, image.Rect(33, 28, 46, 36)) == 0 {
		t.Error("no ink below the shaft near the tip: lower arrowhead leg missing")
	}
}

func TestCircleRadiusFromDrag(t *testing.T) {
	bg := whiteBackground(60, 60)
	c := element.NewCircle(element.Style{Color: red, StrokeWidth: 2}, element.Point{X: 30, Y: 30})
	c.End = element.Point{X: 40, Y: 30} // radius 10
	out := Compose(bg, 60, 60, []element.Element{c}, nil)
	if countInked(out, image.Rect(39, 29, 42, 32)) == 0 {
		t.Error("no ink on the circle at radius distance")
	}
	if countInked(out, image.Rect(29, 29, 32, 32)) != 0 {
		t.Error("circle painted its centre; only the outline should be stroked")
	}
}

func TestTextPaintsAboveBaseline(t *testing.T) {
	bg := whiteBackground(120, 60)
	txt := element.NewText(element.Style{Color: red, StrokeWidth: 3}, element.Point{X: 10, Y: 40}, "Hi")
	out := Compose(bg, 120, 60, []element.Element{txt}, nil)
	if countInked(out, image.Rect(8, 10, 80, 40)) == 0 {
		t.Error("no glyph ink above the baseline anchor")
	}
}

func TestInProgressElementIncluded(t *testing.T) {
	bg := whiteBackground(30, 30)
	live := element.NewFreehand(element.Style{Color: red, StrokeWidth: 4}, element.Point{X: 15, Y: 15})
	out := Compose(bg, 30, 30, nil, live)
	if got := out.RGBAAt(15, 15); got.R != 255 || got.G != 0 {
		t.Fatalf("in-progress element not painted: pixel = %v", got)
	}
}
