package engine

import "github.com/example/inkover/internal/element"

// Viewport is the on-screen bounding box of the drawing surface in client
// coordinates. A zero-size viewport means the surface is not mounted yet.
type Viewport struct {
	Left, Top     float64
	Width, Height float64
}

func (v Viewport) valid() bool { return v.Width > 0 && v.Height > 0 }

// Mapper converts pointer positions between client space and the fixed
// backing-store pixel grid of the surface. The two axes scale independently,
// so a surface displayed at a different aspect ratio still maps correctly.
type Mapper struct {
	View Viewport
	W, H int
}

// ToSurface maps a client-space pointer position into backing-store pixels.
// Coordinates stay floating point; nothing downstream rounds them. If the
// surface is not mounted the origin is returned instead of failing.
func (m Mapper) ToSurface(clientX, clientY float64) element.Point {
	if !m.View.valid() || m.W <= 0 || m.H <= 0 {
		return element.Point{}
	}
	scaleX := float64(m.W) / m.View.Width
	scaleY := float64(m.H) / m.View.Height
	return element.Point{
		X: (clientX - m.View.Left) * scaleX,
		Y: (clientY - m.View.Top) * scaleY,
	}
}

// ToClient maps a backing-store point back into client space. Hosts use it
// to position overlays (for example the pending-text caret) over the surface.
func (m Mapper) ToClient(p element.Point) (clientX, clientY float64) {
	if !m.View.valid() || m.W <= 0 || m.H <= 0 {
		return 0, 0
	}
	scaleX := float64(m.W) / m.View.Width
	scaleY := float64(m.H) / m.View.Height
	return p.X/scaleX + m.View.Left, p.Y/scaleY + m.View.Top
}
