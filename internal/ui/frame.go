package ui

import (
	"image"
	"image/color"
	"image/draw"
	"log"
	"sync"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

const (
	topBarHeight = 24
	bottomHeight = 24
)

// frameDropThreshold specifies how many consecutive frames can be canceled
// before a draw is allowed to complete to keep the UI responsive.
const frameDropThreshold = 10

var (
	overlayFont *sfnt.Font
	messageFace font.Face

	overlayMu    sync.Mutex
	overlayFaces = map[int]font.Face{}
)

func init() {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Fatalf("parse font: %v", err)
	}
	overlayFont = f
	messageFace, err = opentype.NewFace(f, &opentype.FaceOptions{Size: 48, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Fatalf("font face: %v", err)
	}
}

// overlayFace returns a face for the pending-text overlay at the given pixel
// size. Faces are cached; sizes are clamped to something legible.
func overlayFace(size int) font.Face {
	if size < 8 {
		size = 8
	}
	if size > 96 {
		size = 96
	}
	overlayMu.Lock()
	defer overlayMu.Unlock()
	if f, ok := overlayFaces[size]; ok {
		return f
	}
	f, err := opentype.NewFace(overlayFont, &opentype.FaceOptions{Size: float64(size), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Printf("font face: %v", err)
		return messageFace
	}
	overlayFaces[size] = f
	return f
}

// fitZoom picks the zoom that fits the surface into the window next to the
// toolbar and bars.
func fitZoom(w, h, winW, winH, toolbarWidth int) float64 {
	availW := winW - toolbarWidth
	availH := winH - topBarHeight - bottomHeight
	if w <= 0 || h <= 0 || availW <= 0 || availH <= 0 {
		return 1
	}
	zx := float64(availW) / float64(w)
	zy := float64(availH) / float64(h)
	if zx < zy {
		return zx
	}
	return zy
}

// surfaceRect returns the destination rectangle for the scaled surface. The
// origin is anchored just below the top bar so the image position stays
// stable when the window resizes.
func surfaceRect(w, h int, zoom float64, toolbarWidth int) image.Rectangle {
	sw := int(float64(w) * zoom)
	sh := int(float64(h) * zoom)
	x0 := toolbarWidth
	y0 := topBarHeight
	return image.Rect(x0, y0, x0+sw, y0+sh)
}

// drawCheckerboard fills rect of dst with a checkerboard pattern of the
// given colors. size controls the checker square size.
func drawCheckerboard(dst *image.RGBA, rect image.Rectangle, size int, light, dark color.Color) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if ((x/size)+(y/size))%2 == 0 {
				dst.Set(x, y, light)
			} else {
				dst.Set(x, y, dark)
			}
		}
	}
}

// drawBackdrop fills dst with the session's cached checkerboard pattern.
func (s *Session) drawBackdrop(dst *image.RGBA) {
	b := dst.Bounds()
	if s.backdrop == nil || s.backdrop.Bounds() != b {
		s.backdrop = image.NewRGBA(b)
		drawCheckerboard(s.backdrop, s.backdrop.Bounds(), 8, s.th.CheckerLight, s.th.CheckerDark)
	}
	draw.Draw(dst, b, s.backdrop, image.Point{}, draw.Src)
}

// drawBorder outlines rect with a one pixel frame.
func drawBorder(dst *image.RGBA, rect image.Rectangle, c color.Color) {
	for x := rect.Min.X; x < rect.Max.X; x++ {
		dst.Set(x, rect.Min.Y, c)
		dst.Set(x, rect.Max.Y-1, c)
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		dst.Set(rect.Min.X, y, c)
		dst.Set(rect.Max.X-1, y, c)
	}
}

func scaleFrame(dst *image.RGBA, dstRect image.Rectangle, src *image.RGBA) {
	if src == nil {
		return
	}
	xdraw.NearestNeighbor.Scale(dst, dstRect, src, src.Bounds(), draw.Over, nil)
}
