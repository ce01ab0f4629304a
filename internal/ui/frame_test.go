package ui

import (
	"image"
	"testing"

	"github.com/example/inkover/internal/theme"
)

func TestFitZoom(t *testing.T) {
	for _, tt := range []struct {
		name         string
		w, h         int
		winW, winH   int
		toolbarWidth int
		want         float64
	}{
		{"exact fit", 100, 100, 148, 148, 48, 1},
		{"width limited", 200, 100, 148, 248, 48, 0.5},
		{"height limited", 100, 200, 248, 148, 48, 0.5},
		{"upscale small surface", 50, 50, 148, 148, 48, 2},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got := fitZoom(tt.w, tt.h, tt.winW, tt.winH, tt.toolbarWidth)
			if got != tt.want {
				t.Errorf("fitZoom(%d, %d, %d, %d, %d) = %v, want %v",
					tt.w, tt.h, tt.winW, tt.winH, tt.toolbarWidth, got, tt.want)
			}
		})
	}
}

func TestSurfaceRect(t *testing.T) {
	got := surfaceRect(200, 100, 0.5, 48)
	want := image.Rect(48, topBarHeight, 48+100, topBarHeight+50)
	if got != want {
		t.Errorf("surfaceRect(200, 100, 0.5, 48) = %v, want %v", got, want)
	}
}

func TestDrawBackdropCaches(t *testing.T) {
	s := &Session{th: theme.Default()}
	dst := image.NewRGBA(image.Rect(0, 0, 64, 64))
	s.drawBackdrop(dst)
	first := s.backdrop
	if first == nil {
		t.Fatal("backdrop not cached after first draw")
	}
	s.drawBackdrop(dst)
	if s.backdrop != first {
		t.Error("backdrop rebuilt for same bounds")
	}
	bigger := image.NewRGBA(image.Rect(0, 0, 128, 64))
	s.drawBackdrop(bigger)
	if s.backdrop == first {
		t.Error("backdrop not rebuilt for new bounds")
	}
}

func TestOverlayFaceClamps(t *testing.T) {
	small := overlayFace(1)
	if small == nil {
		t.Fatal("overlayFace(1) = nil")
	}
	if overlayFace(1) != overlayFace(4) {
		t.Error("undersized requests should share the minimum face")
	}
	if overlayFace(500) != overlayFace(96) {
		t.Error("oversized requests should share the maximum face")
	}
}
