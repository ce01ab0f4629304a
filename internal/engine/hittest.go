package engine

import "github.com/example/inkover/internal/element"

// eraserRadiusFactor scales the active stroke width into the eraser radius.
const eraserRadiusFactor = 3

// intersects reports whether el falls under an eraser cursor of the given
// radius. Only freehand strokes participate: a stroke is hit when any of its
// points lies strictly inside the radius. Rectangles, circles, arrows and
// text are immune to the eraser. A bounding-geometry test for the other
// kinds is the obvious extension if that ever changes.
func intersects(el element.Element, cursor element.Point, radius float64) bool {
	fh, ok := el.(*element.Freehand)
	if !ok {
		return false
	}
	for _, p := range fh.Points {
		if p.Dist(cursor) < radius {
			return true
		}
	}
	return false
}
