// Package element defines the shapes that make up an annotation document.
//
// Every drawn shape is one of a closed set of kinds. The concrete types all
// live in this package and implement Element, so a renderer or hit-tester can
// type-switch without guarding against unknown implementations.
package element

import (
	"image/color"
	"math"

	"github.com/google/uuid"
)

// Point is a location in the backing-store pixel grid of the drawing
// surface. Coordinates are floating point; no rounding happens until pixels
// are actually painted.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between two points.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Style carries the stroke attributes shared by every element kind.
type Style struct {
	Color       color.RGBA
	StrokeWidth int
}

// Stroke returns the style itself. Embedding Style gives each element kind
// this accessor, which is how Element exposes style without per-kind getters.
func (s Style) Stroke() Style { return s }

// Kind discriminates the element variants.
type Kind int

const (
	KindFreehand Kind = iota
	KindRect
	KindCircle
	KindArrow
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindFreehand:
		return "freehand"
	case KindRect:
		return "rect"
	case KindCircle:
		return "circle"
	case KindArrow:
		return "arrow"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Element is one drawn shape together with its style attributes. The
// implementation set is closed; new kinds are added here, not by consumers.
type Element interface {
	Kind() Kind
	ID() string
	Stroke() Style
	Clone() Element

	sealed()
}

// ident gives every element a stable identity, assigned at construction.
type ident struct {
	id string
}

func newIdent() ident { return ident{id: uuid.NewString()} }

func (i ident) ID() string { return i.id }

// Freehand is a hand-drawn stroke: an ordered polyline of at least one
// point, appended in input order.
type Freehand struct {
	ident
	Style
	Points []Point
}

// NewFreehand starts a freehand stroke at origin.
func NewFreehand(st Style, origin Point) *Freehand {
	return &Freehand{ident: newIdent(), Style: st, Points: []Point{origin}}
}

// Append extends the stroke with the next sampled point.
func (f *Freehand) Append(p Point) {
	f.Points = append(f.Points, p)
}

func (f *Freehand) Kind() Kind { return KindFreehand }

func (f *Freehand) Clone() Element {
	pts := make([]Point, len(f.Points))
	copy(pts, f.Points)
	out := *f
	out.Points = pts
	return &out
}

func (f *Freehand) sealed() {}

// Rect is an axis-aligned stroked rectangle spanned by two corners. The
// extents are signed: End may lie above or left of Start.
type Rect struct {
	ident
	Style
	Start, End Point
}

// NewRect starts a rectangle anchored at p; both corners begin there.
func NewRect(st Style, p Point) *Rect {
	return &Rect{ident: newIdent(), Style: st, Start: p, End: p}
}

func (r *Rect) Kind() Kind { return KindRect }

func (r *Rect) Clone() Element {
	out := *r
	return &out
}

func (r *Rect) sealed() {}

// Circle is a stroked circle centred at Start. The radius is never stored;
// it is derived from the distance to End.
type Circle struct {
	ident
	Style
	Start, End Point
}

// NewCircle starts a circle centred at p with zero radius.
func NewCircle(st Style, p Point) *Circle {
	return &Circle{ident: newIdent(), Style: st, Start: p, End: p}
}

// Radius returns the derived radius.
func (c *Circle) Radius() float64 { return c.Start.Dist(c.End) }

func (c *Circle) Kind() Kind { return KindCircle }

func (c *Circle) Clone() Element {
	out := *c
	return &out
}

func (c *Circle) sealed() {}

// Arrow is a straight stroked line from Start to End with an open "V"
// arrowhead at End.
type Arrow struct {
	ident
	Style
	Start, End Point
}

// NewArrow starts an arrow anchored at p.
func NewArrow(st Style, p Point) *Arrow {
	return &Arrow{ident: newIdent(), Style: st, Start: p, End: p}
}

func (a *Arrow) Kind() Kind { return KindArrow }

func (a *Arrow) Clone() Element {
	out := *a
	return &out
}

func (a *Arrow) sealed() {}

// Text is a filled string drawn with its baseline at Start. Content is never
// empty: callers must reject empty input before constructing one.
type Text struct {
	ident
	Style
	Start   Point
	Content string
}

// NewText creates a text element at p. Empty content is the caller's bug;
// the engine filters cancelled or blank input before reaching here.
func NewText(st Style, p Point, content string) *Text {
	return &Text{ident: newIdent(), Style: st, Start: p, Content: content}
}

func (t *Text) Kind() Kind { return KindText }

func (t *Text) Clone() Element {
	out := *t
	return &out
}

func (t *Text) sealed() {}

// CloneList deep-copies a committed element list. History snapshots and
// callers that hand lists across package boundaries use this so later
// freehand appends cannot alias stored state.
func CloneList(els []Element) []Element {
	if els == nil {
		return nil
	}
	out := make([]Element, len(els))
	for i, el := range els {
		out[i] = el.Clone()
	}
	return out
}
