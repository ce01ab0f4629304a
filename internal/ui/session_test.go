package ui

import (
	"testing"

	"github.com/example/inkover/internal/engine"
)

func TestNewWiresEngineChangeToRepaint(t *testing.T) {
	eng := engine.New(engine.WithSize(100, 100))
	eng.SetViewport(engine.Viewport{Width: 100, Height: 100})
	s := New(WithEngine(eng))

	eng.PointerDown(10, 10)
	select {
	case <-s.updateCh:
	default:
		t.Fatal("document change did not request a repaint")
	}

	// Drain and make sure further mutations request another one.
	eng.PointerMove(20, 20)
	eng.PointerUp(20, 20)
	select {
	case <-s.updateCh:
	default:
		t.Fatal("commit did not request a repaint")
	}
}

func TestNotifyDocumentChangedNeverBlocks(t *testing.T) {
	s := New()
	for i := 0; i < 3; i++ {
		s.NotifyDocumentChanged()
	}
	select {
	case <-s.updateCh:
	default:
		t.Fatal("expected a pending repaint request")
	}
}
