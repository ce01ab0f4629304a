package element

import (
	"image/color"
	"math"
	"testing"
)

func TestFreehandCloneIsIndependent(t *testing.T) {
	st := Style{Color: color.RGBA{R: 255, A: 255}, StrokeWidth: 2}
	orig := NewFreehand(st, Point{X: 1, Y: 1})
	orig.Append(Point{X: 2, Y: 2})

	cloned := orig.Clone().(*Freehand)
	orig.Append(Point{X: 3, Y: 3})

	if len(cloned.Points) != 2 {
		t.Fatalf("clone picked up later appends: %d points", len(cloned.Points))
	}
	cloned.Points[0] = Point{X: 99, Y: 99}
	if orig.Points[0] != (Point{X: 1, Y: 1}) {
		t.Fatalf("mutating the clone leaked into the original: %+v", orig.Points[0])
	}
	if cloned.ID() != orig.ID() {
		t.Fatalf("clone changed identity: %s vs %s", cloned.ID(), orig.ID())
	}
}

func TestCircleRadiusDerived(t *testing.T) {
	c := NewCircle(Style{StrokeWidth: 1}, Point{X: 10, Y: 10})
	c.End = Point{X: 13, Y: 14}
	if got, want := c.Radius(), 5.0; math.Abs(got-want) > 1e-9 {
		t.Fatalf("radius = %v, want %v", got, want)
	}
}

func TestNewElementsGetDistinctIDs(t *testing.T) {
	st := Style{StrokeWidth: 1}
	a := NewRect(st, Point{})
	b := NewRect(st, Point{})
	if a.ID() == "" || a.ID() == b.ID() {
		t.Fatalf("expected distinct non-empty ids, got %q and %q", a.ID(), b.ID())
	}
}

func TestKindStrings(t *testing.T) {
	cases := map[Kind]string{
		KindFreehand: "freehand",
		KindRect:     "rect",
		KindCircle:   "circle",
		KindArrow:    "arrow",
		KindText:     "text",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func TestCloneListDeepCopies(t *testing.T) {
	st := Style{StrokeWidth: 2}
	fh := NewFreehand(st, Point{X: 5, Y: 5})
	list := []Element{fh, NewArrow(st, Point{X: 1, Y: 1})}

	cloned := CloneList(list)
	fh.Append(Point{X: 6, Y: 6})

	if got := cloned[0].(*Freehand); len(got.Points) != 1 {
		t.Fatalf("snapshot shares point storage with the live stroke: %d points", len(got.Points))
	}
	if CloneList(nil) != nil {
		t.Fatal("CloneList(nil) should stay nil")
	}
}
