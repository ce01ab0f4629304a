package engine

import (
	"math"
	"testing"

	"github.com/example/inkover/internal/element"
)

func TestMapperScalesIndependently(t *testing.T) {
	m := Mapper{
		View: Viewport{Left: 100, Top: 50, Width: 400, Height: 150},
		W:    800, H: 600,
	}
	got := m.ToSurface(300, 125)
	want := element.Point{X: 400, Y: 300}
	if got != want {
		t.Fatalf("ToSurface(300,125) = %v, want %v", got, want)
	}
}

func TestMapperRoundTrip(t *testing.T) {
	m := Mapper{
		View: Viewport{Left: 13, Top: 7, Width: 333, Height: 111},
		W:    1024, H: 768,
	}
	for _, p := range []element.Point{{X: 0, Y: 0}, {X: 512, Y: 384}, {X: 1023.5, Y: 767.25}} {
		cx, cy := m.ToClient(p)
		back := m.ToSurface(cx, cy)
		if math.Abs(back.X-p.X) > 1e-9 || math.Abs(back.Y-p.Y) > 1e-9 {
			t.Errorf("round trip %v -> (%v,%v) -> %v", p, cx, cy, back)
		}
	}
}

func TestMapperUnmountedReturnsOrigin(t *testing.T) {
	m := Mapper{W: 800, H: 600}
	if got := m.ToSurface(50, 50); got != (element.Point{}) {
		t.Errorf("unmounted mapper returned %v, want origin", got)
	}
	m = Mapper{View: Viewport{Width: 100, Height: 100}}
	if got := m.ToSurface(50, 50); got != (element.Point{}) {
		t.Errorf("mapper without surface size returned %v, want origin", got)
	}
}
