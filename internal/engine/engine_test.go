package engine

import (
	"image"
	"image/color"
	"testing"

	"github.com/example/inkover/internal/element"
)

func testEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	bg := image.NewRGBA(image.Rect(0, 0, 200, 100))
	opts = append([]Option{WithBackground(bg)}, opts...)
	e := New(opts...)
	e.SetViewport(Viewport{Left: 0, Top: 0, Width: 200, Height: 100})
	return e
}

func TestPenStrokeCommitsOneElement(t *testing.T) {
	e := testEngine(t, WithTool(ToolPen))
	e.PointerDown(10, 10)
	e.PointerMove(20, 15)
	e.PointerMove(30, 20)
	if e.InProgress() == nil {
		t.Fatal("expected an in-progress stroke before pointer-up")
	}
	e.PointerUp(30, 20)

	got := e.Committed()
	if len(got) != 1 {
		t.Fatalf("committed = %d elements, want 1", len(got))
	}
	fh, ok := got[0].(*element.Freehand)
	if !ok {
		t.Fatalf("committed element is %T, want *element.Freehand", got[0])
	}
	if len(fh.Points) != 3 {
		t.Fatalf("stroke has %d points, want 3", len(fh.Points))
	}
	if e.InProgress() != nil {
		t.Error("in-progress element not cleared after commit")
	}
	if e.HistoryLen() != 1 || e.HistoryCursor() != 0 {
		t.Errorf("history len=%d cursor=%d, want 1 and 0", e.HistoryLen(), e.HistoryCursor())
	}
}

func TestShapeToolsTrackEndAnchor(t *testing.T) {
	for _, tc := range []struct {
		tool Tool
		kind element.Kind
	}{
		{ToolRect, element.KindRect},
		{ToolCircle, element.KindCircle},
		{ToolArrow, element.KindArrow},
	} {
		e := testEngine(t, WithTool(tc.tool))
		e.PointerDown(10, 10)
		e.PointerMove(50, 40)
		e.PointerUp(50, 40)
		got := e.Committed()
		if len(got) != 1 || got[0].Kind() != tc.kind {
			t.Fatalf("%v: committed %v, want one %v", tc.tool, got, tc.kind)
		}
	}
}

func TestTextCommitIsAtomic(t *testing.T) {
	e := testEngine(t, WithTool(ToolText))
	e.PointerDown(40, 30)
	if e.State() != StateAwaitingText {
		t.Fatalf("state = %v, want StateAwaitingText", e.State())
	}

	// Pointer traffic while awaiting text must not disturb the document.
	e.PointerDown(90, 90)
	e.PointerMove(95, 95)
	e.PointerUp(95, 95)
	if len(e.Committed()) != 0 {
		t.Fatal("pointer events during text entry mutated the document")
	}

	e.CommitText("hello")
	got := e.Committed()
	if len(got) != 1 {
		t.Fatalf("committed = %d elements, want 1", len(got))
	}
	txt, ok := got[0].(*element.Text)
	if !ok || txt.Content != "hello" {
		t.Fatalf("committed element = %#v, want text %q", got[0], "hello")
	}
	if txt.Start != (element.Point{X: 40, Y: 30}) {
		t.Errorf("text anchored at %v, want (40,30)", txt.Start)
	}
	if e.HistoryLen() != 1 {
		t.Errorf("history len = %d, want exactly one snapshot", e.HistoryLen())
	}
}

func TestBlankTextCancels(t *testing.T) {
	e := testEngine(t, WithTool(ToolText))
	e.PointerDown(40, 30)
	e.CommitText("   ")
	if len(e.Committed()) != 0 || e.HistoryLen() != 0 {
		t.Fatal("blank text entry must leave document and history untouched")
	}
	if e.State() != StateIdle {
		t.Errorf("state = %v, want StateIdle", e.State())
	}

	e.PointerDown(40, 30)
	e.CancelText()
	if len(e.Committed()) != 0 || e.State() != StateIdle {
		t.Fatal("cancel must leave document untouched and return to idle")
	}
}

func TestEraserRemovesFreehandOnly(t *testing.T) {
	e := testEngine(t, WithTool(ToolPen), WithStrokeWidth(2))
	e.PointerDown(50, 50)
	e.PointerMove(55, 50)
	e.PointerUp(55, 50)

	e.SelectTool(ToolRect)
	e.PointerDown(45, 45)
	e.PointerMove(60, 60)
	e.PointerUp(60, 60)

	histBefore := e.HistoryLen()
	e.SelectTool(ToolEraser)
	e.PointerDown(51, 50)
	e.PointerMove(51, 50) // within radius 6 of the stroke
	e.PointerUp(51, 50)

	got := e.Committed()
	if len(got) != 1 || got[0].Kind() != element.KindRect {
		t.Fatalf("committed = %v, want only the rectangle to survive", got)
	}
	if e.HistoryLen() != histBefore {
		t.Errorf("eraser recorded a snapshot: history len %d -> %d", histBefore, e.HistoryLen())
	}
}

func TestEraserUsesStrictRadius(t *testing.T) {
	e := testEngine(t, WithTool(ToolPen), WithStrokeWidth(2))
	e.PointerDown(50, 50)
	e.PointerUp(50, 50)

	e.SelectTool(ToolEraser)
	e.PointerDown(56, 50)
	e.PointerMove(56, 50) // distance exactly stroke*3 = 6: outside, strictly less wins
	e.PointerUp(56, 50)
	if len(e.Committed()) != 1 {
		t.Fatal("point at exactly the eraser radius must not be erased")
	}

	e.PointerDown(55, 50)
	e.PointerMove(55, 50)
	e.PointerUp(55, 50)
	if len(e.Committed()) != 0 {
		t.Fatal("point strictly inside the eraser radius must be erased")
	}
}

func TestEraserClickWithoutMoveDoesNotErase(t *testing.T) {
	e := testEngine(t, WithTool(ToolPen), WithStrokeWidth(2))
	e.PointerDown(50, 50)
	e.PointerUp(50, 50)

	// Pointer-down only arms the eraser; hit-testing runs on move.
	e.SelectTool(ToolEraser)
	e.PointerDown(51, 50)
	e.PointerUp(51, 50)
	if len(e.Committed()) != 1 {
		t.Fatal("an eraser click with no movement must not remove anything")
	}

	e.PointerDown(51, 50)
	e.PointerMove(51, 50)
	e.PointerUp(51, 50)
	if len(e.Committed()) != 0 {
		t.Fatal("moving the armed eraser over the stroke must remove it")
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	e := testEngine(t, WithTool(ToolPen))
	for i := 0; i < 3; i++ {
		x := float64(10 + i*20)
		e.PointerDown(x, 10)
		e.PointerMove(x+5, 15)
		e.PointerUp(x+5, 15)
	}
	if len(e.Committed()) != 3 {
		t.Fatalf("committed = %d, want 3", len(e.Committed()))
	}

	e.Undo()
	if len(e.Committed()) != 2 {
		t.Fatalf("after undo committed = %d, want 2", len(e.Committed()))
	}
	e.Redo()
	if len(e.Committed()) != 3 {
		t.Fatalf("after redo committed = %d, want 3", len(e.Committed()))
	}

	// Undo everything: the last step empties the canvas, one more is a no-op.
	e.Undo()
	e.Undo()
	e.Undo()
	if len(e.Committed()) != 0 {
		t.Fatalf("after full unwind committed = %d, want 0", len(e.Committed()))
	}
	e.Undo()
	if len(e.Committed()) != 0 || e.HistoryCursor() != -1 {
		t.Error("undo past the bottom must be a no-op")
	}
	e.Redo()
	if len(e.Committed()) != 1 {
		t.Fatalf("redo from the bottom committed = %d, want 1", len(e.Committed()))
	}
}

func TestNewStrokeTruncatesRedo(t *testing.T) {
	e := testEngine(t, WithTool(ToolPen))
	e.PointerDown(10, 10)
	e.PointerUp(10, 10)
	e.PointerDown(30, 10)
	e.PointerUp(30, 10)
	e.Undo()

	e.PointerDown(50, 10)
	e.PointerUp(50, 10)
	e.Redo()
	if len(e.Committed()) != 2 {
		t.Fatalf("redo after a fresh commit committed = %d, want 2 (branch truncated)", len(e.Committed()))
	}
}

func TestToolSwitchDiscardsGesture(t *testing.T) {
	e := testEngine(t, WithTool(ToolPen))
	e.PointerDown(10, 10)
	e.PointerMove(20, 20)
	e.SelectTool(ToolRect)
	if e.InProgress() != nil || e.State() != StateIdle {
		t.Fatal("switching tools mid-gesture must discard the in-progress element")
	}
	e.PointerUp(20, 20)
	if len(e.Committed()) != 0 {
		t.Fatal("discarded gesture must not commit")
	}
}

func TestSetBackgroundResetsDocument(t *testing.T) {
	e := testEngine(t, WithTool(ToolPen))
	e.PointerDown(10, 10)
	e.PointerUp(10, 10)

	e.SetBackground(image.NewRGBA(image.Rect(0, 0, 80, 60)))
	if len(e.Committed()) != 0 || e.HistoryLen() != 0 {
		t.Fatal("new background must reset document and history")
	}
	if w, h := e.Size(); w != 80 || h != 60 {
		t.Errorf("size = %dx%d, want 80x60", w, h)
	}
}

func TestUnattachedEngineFlattensToNil(t *testing.T) {
	e := New(WithTool(ToolPen))
	if e.Attached() {
		t.Fatal("engine without a background reports attached")
	}
	if img := e.Flatten(); img != nil {
		t.Fatal("flatten without a background must return nil")
	}
}

func TestOnChangeFires(t *testing.T) {
	var n int
	e := testEngine(t, WithTool(ToolPen), WithOnChange(func() { n++ }))
	e.PointerDown(10, 10)
	e.PointerMove(20, 20)
	e.PointerUp(20, 20)
	if n != 3 {
		t.Errorf("onChange fired %d times over down/move/up, want 3", n)
	}
}

func TestParseTool(t *testing.T) {
	for in, want := range map[string]Tool{
		"pen": ToolPen, "RECT": ToolRect, "circle": ToolCircle,
		"arrow": ToolArrow, "text": ToolText, "eraser": ToolEraser,
	} {
		got, err := ParseTool(in)
		if err != nil || got != want {
			t.Errorf("ParseTool(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseTool("laser"); err == nil {
		t.Error("ParseTool accepted an unknown tool name")
	}
}

func TestDefaults(t *testing.T) {
	e := New()
	if e.Tool() != ToolPen {
		t.Errorf("default tool = %v, want pen", e.Tool())
	}
	if e.Color() != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("default color = %v, want red", e.Color())
	}
	if e.StrokeWidth() != 2 {
		t.Errorf("default stroke width = %d, want 2", e.StrokeWidth())
	}
}
