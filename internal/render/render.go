// Package render flattens a vector annotation document onto its raster
// background. The output is deterministic: the same background, size and
// element list always produce the same pixels.
package render

import (
	"image"
	"image/draw"
	"log"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/example/inkover/internal/element"
)

const (
	// arrowheadLength is the length in surface pixels of each arrowhead leg.
	// It does not scale with the stroke width.
	arrowheadLength = 15.0
	// arrowheadAngle is the angle between the shaft and each arrowhead leg.
	arrowheadAngle = math.Pi / 6
	// fontSizeFactor scales the stroke width into a text point size.
	fontSizeFactor = 8
)

// Compose renders the background scaled to w by h and paints every committed
// element in z-order, followed by the in-progress element if any. A nil
// background or a non-positive size yields nil: there is nothing to draw on.
func Compose(bg image.Image, w, h int, committed []element.Element, inProgress element.Element) *image.RGBA {
	if bg == nil || w <= 0 || h <= 0 {
		return nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	b := bg.Bounds()
	if b.Dx() == w && b.Dy() == h {
		draw.Draw(dst, dst.Bounds(), bg, b.Min, draw.Src)
	} else {
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), bg, b, xdraw.Src, nil)
	}

	dc := gg.NewContextForRGBA(dst)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	for _, el := range committed {
		paint(dc, el)
	}
	if inProgress != nil {
		paint(dc, inProgress)
	}
	return dst
}

func paint(dc *gg.Context, el element.Element) {
	s := el.Stroke()
	dc.SetColor(s.Color)
	dc.SetLineWidth(float64(s.StrokeWidth))

	switch v := el.(type) {
	case *element.Freehand:
		paintFreehand(dc, v)
	case *element.Rect:
		x, y, w, h := normalizeRect(v.Start, v.End)
		dc.DrawRectangle(x, y, w, h)
		dc.Stroke()
	case *element.Circle:
		dc.DrawCircle(v.Start.X, v.Start.Y, v.Radius())
		dc.Stroke()
	case *element.Arrow:
		paintArrow(dc, v)
	case *element.Text:
		paintText(dc, v)
	}
}

func paintFreehand(dc *gg.Context, v *element.Freehand) {
	if len(v.Points) == 0 {
		return
	}
	if len(v.Points) == 1 {
		// A click without movement still leaves a visible dot.
		p := v.Points[0]
		dc.DrawPoint(p.X, p.Y, float64(v.Stroke().StrokeWidth)/2)
		dc.Fill()
		return
	}
	dc.MoveTo(v.Points[0].X, v.Points[0].Y)
	for _, p := range v.Points[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.Stroke()
}

func paintArrow(dc *gg.Context, v *element.Arrow) {
	dc.DrawLine(v.Start.X, v.Start.Y, v.End.X, v.End.Y)
	dc.Stroke()
	theta := math.Atan2(v.End.Y-v.Start.Y, v.End.X-v.Start.X)
	for _, a := range []float64{theta - arrowheadAngle, theta + arrowheadAngle} {
		dc.DrawLine(v.End.X, v.End.Y,
			v.End.X-arrowheadLength*math.Cos(a),
			v.End.Y-arrowheadLength*math.Sin(a))
		dc.Stroke()
	}
}

func paintText(dc *gg.Context, v *element.Text) {
	face, err := faceForSize(float64(v.Stroke().StrokeWidth * fontSizeFactor))
	if err != nil {
		log.Printf("render: text %q skipped: %v", v.Content, err)
		return
	}
	dc.SetFontFace(face)
	// The anchor is the baseline origin, not the glyph box corner.
	dc.DrawString(v.Content, v.Start.X, v.Start.Y)
}

// normalizeRect converts two opposite corners into an origin plus
// non-negative extents, so drags in any direction paint the same rectangle.
func normalizeRect(a, b element.Point) (x, y, w, h float64) {
	x = math.Min(a.X, b.X)
	y = math.Min(a.Y, b.Y)
	w = math.Abs(b.X - a.X)
	h = math.Abs(b.Y - a.Y)
	return x, y, w, h
}

var (
	fontOnce sync.Once
	fontTTF  *truetype.Font
	fontErr  error

	faceMu sync.Mutex
	faces  = map[float64]font.Face{}
)

func faceForSize(size float64) (font.Face, error) {
	fontOnce.Do(func() {
		fontTTF, fontErr = truetype.Parse(goregular.TTF)
	})
	if fontErr != nil {
		return nil, fontErr
	}
	faceMu.Lock()
	defer faceMu.Unlock()
	if f, ok := faces[size]; ok {
		return f, nil
	}
	f := truetype.NewFace(fontTTF, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	faces[size] = f
	return f, nil
}
