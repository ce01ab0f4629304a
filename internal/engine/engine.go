// Package engine implements the interactive annotation engine: a vector
// drawing surface composited over a raster background image. Pointer events
// drive a small tool state machine that builds drawing elements, commits
// them to an ordered document with linear undo/redo history, and flattens
// the result to a raster image for export.
//
// An engine instance owns its document and history outright. All methods
// are intended to be called from a single event loop; the engine does no
// locking of its own.
package engine

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/example/inkover/internal/element"
	"github.com/example/inkover/internal/history"
	"github.com/example/inkover/internal/render"
)

// Tool selects how pointer gestures are interpreted.
type Tool int

const (
	ToolPen Tool = iota
	ToolRect
	ToolCircle
	ToolArrow
	ToolText
	ToolEraser
)

func (t Tool) String() string {
	switch t {
	case ToolPen:
		return "pen"
	case ToolRect:
		return "rect"
	case ToolCircle:
		return "circle"
	case ToolArrow:
		return "arrow"
	case ToolText:
		return "text"
	case ToolEraser:
		return "eraser"
	default:
		return "unknown"
	}
}

// ParseTool resolves a tool name as used by the CLI and config file.
func ParseTool(s string) (Tool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pen", "draw", "freehand":
		return ToolPen, nil
	case "rect", "rectangle":
		return ToolRect, nil
	case "circle":
		return ToolCircle, nil
	case "arrow":
		return ToolArrow, nil
	case "text":
		return ToolText, nil
	case "eraser", "erase":
		return ToolEraser, nil
	default:
		return ToolPen, fmt.Errorf("unknown tool %q", s)
	}
}

// State is the gesture state of the engine.
type State int

const (
	// StateIdle means no gesture is in flight.
	StateIdle State = iota
	// StateDrawing means a pointer-down created an in-progress element
	// that pointer-moves are still extending.
	StateDrawing
	// StateAwaitingText means the text tool anchored a point and the host
	// must resolve the modal text entry via CommitText or CancelText.
	// Pointer events are ignored until then.
	StateAwaitingText
)

// Engine is one annotation surface: a background image at a fixed
// backing-store size, the committed element list, at most one in-progress
// element, and the undo/redo history.
type Engine struct {
	w, h int
	bg   image.Image

	tool   Tool
	color  color.RGBA
	stroke int

	mapper Mapper

	committed  []element.Element
	inProgress element.Element
	hist       *history.Stack

	state   State
	erasing bool
	textAt  element.Point

	onChange func()
}

// Option configures an Engine during creation.
type Option func(*Engine)

// WithBackground attaches the raster image the annotations are drawn over.
// When no explicit size is set the image's bounds become the backing store.
func WithBackground(img image.Image) Option {
	return func(e *Engine) {
		e.bg = img
		if img != nil && e.w == 0 && e.h == 0 {
			b := img.Bounds()
			e.w, e.h = b.Dx(), b.Dy()
		}
	}
}

// WithSize fixes the backing-store pixel dimensions of the surface.
func WithSize(w, h int) Option {
	return func(e *Engine) { e.w, e.h = w, h }
}

// WithTool sets the initially selected tool.
func WithTool(t Tool) Option { return func(e *Engine) { e.tool = t } }

// WithColor sets the initial stroke color.
func WithColor(c color.RGBA) Option { return func(e *Engine) { e.color = c } }

// WithStrokeWidth sets the initial stroke width.
func WithStrokeWidth(w int) Option {
	return func(e *Engine) {
		if w >= 1 {
			e.stroke = w
		}
	}
}

// WithOnChange registers a callback invoked after every transition that
// changes the committed list or the in-progress element. Hosts hang their
// redraw on it.
func WithOnChange(fn func()) Option { return func(e *Engine) { e.onChange = fn } }

// SetOnChange replaces the change callback. Hosts that build the engine
// before the window exists attach the repaint trigger here.
func (e *Engine) SetOnChange(fn func()) { e.onChange = fn }

// New creates an engine with an empty document and history.
func New(opts ...Option) *Engine {
	e := &Engine{
		tool:   ToolPen,
		color:  color.RGBA{R: 255, A: 255},
		stroke: 2,
		hist:   history.New(),
	}
	for _, o := range opts {
		o(e)
	}
	e.mapper = Mapper{W: e.w, H: e.h}
	return e
}

func (e *Engine) notify() {
	if e.onChange != nil {
		e.onChange()
	}
}

// SetViewport tells the mapper where the surface currently sits on screen.
// Hosts call it whenever the surface is laid out or resized.
func (e *Engine) SetViewport(v Viewport) {
	e.mapper.View = v
}

// MapToSurface converts a client-space pointer position to backing-store
// pixels using the current viewport.
func (e *Engine) MapToSurface(clientX, clientY float64) element.Point {
	return e.mapper.ToSurface(clientX, clientY)
}

// Mapper returns the current coordinate mapper.
func (e *Engine) Mapper() Mapper { return e.mapper }

// SelectTool switches the active tool. Any gesture in flight is discarded:
// mid-gesture tool switches never commit half-built elements.
func (e *Engine) SelectTool(t Tool) {
	if e.state == StateDrawing && e.inProgress != nil {
		e.inProgress = nil
		e.notify()
	}
	e.state = StateIdle
	e.erasing = false
	e.tool = t
}

// SelectColor sets the stroke color used for new elements.
func (e *Engine) SelectColor(c color.RGBA) { e.color = c }

// SelectStrokeWidth sets the stroke width used for new elements. It also
// scales the eraser radius.
func (e *Engine) SelectStrokeWidth(w int) {
	if w >= 1 {
		e.stroke = w
	}
}

func (e *Engine) style() element.Style {
	return element.Style{Color: e.color, StrokeWidth: e.stroke}
}

// PointerDown starts a gesture at the given client coordinates. The text
// tool anchors a point and suspends into StateAwaitingText; the eraser arms
// erasing without creating an element; every other tool seeds an
// in-progress element at the mapped point.
func (e *Engine) PointerDown(clientX, clientY float64) {
	if e.state == StateAwaitingText {
		return
	}
	p := e.mapper.ToSurface(clientX, clientY)
	switch e.tool {
	case ToolText:
		e.textAt = p
		e.state = StateAwaitingText
		e.notify()
	case ToolEraser:
		e.erasing = true
	case ToolPen:
		e.inProgress = element.NewFreehand(e.style(), p)
		e.state = StateDrawing
		e.notify()
	case ToolRect:
		e.inProgress = element.NewRect(e.style(), p)
		e.state = StateDrawing
		e.notify()
	case ToolCircle:
		e.inProgress = element.NewCircle(e.style(), p)
		e.state = StateDrawing
		e.notify()
	case ToolArrow:
		e.inProgress = element.NewArrow(e.style(), p)
		e.state = StateDrawing
		e.notify()
	}
}

// PointerMove extends the gesture in flight: the pen appends a point, the
// shape tools move their end anchor, and an armed eraser removes every
// committed freehand stroke under the cursor.
func (e *Engine) PointerMove(clientX, clientY float64) {
	if e.state == StateAwaitingText {
		return
	}
	p := e.mapper.ToSurface(clientX, clientY)
	if e.erasing && e.tool == ToolEraser {
		e.eraseAt(p)
		return
	}
	if e.state != StateDrawing || e.inProgress == nil {
		return
	}
	switch el := e.inProgress.(type) {
	case *element.Freehand:
		el.Append(p)
	case *element.Rect:
		el.End = p
	case *element.Circle:
		el.End = p
	case *element.Arrow:
		el.End = p
	}
	e.notify()
}

// PointerUp finishes the gesture. A drawing tool commits its in-progress
// element and records one history snapshot; the eraser merely disarms.
// Hosts also call this on pointer-leave.
func (e *Engine) PointerUp(clientX, clientY float64) {
	if e.state == StateAwaitingText {
		return
	}
	if e.tool == ToolEraser {
		e.erasing = false
		return
	}
	if e.state != StateDrawing || e.inProgress == nil {
		e.state = StateIdle
		return
	}
	e.committed = append(e.committed, e.inProgress)
	e.inProgress = nil
	e.state = StateIdle
	e.hist.Record(e.committed)
	e.notify()
}

// eraseAt removes every committed element intersecting the eraser cursor.
// Removals deliberately skip the history stack; see intersects for the
// matching hit-test behaviour.
func (e *Engine) eraseAt(cursor element.Point) {
	radius := float64(e.stroke * eraserRadiusFactor)
	kept := e.committed[:0]
	removed := false
	for _, el := range e.committed {
		if intersects(el, cursor, radius) {
			removed = true
			continue
		}
		kept = append(kept, el)
	}
	if removed {
		e.committed = kept
		e.notify()
	}
}

// CommitText resolves a pending text entry. Non-empty content creates one
// text element at the anchored point and records exactly one snapshot;
// blank content behaves like CancelText.
func (e *Engine) CommitText(content string) {
	if e.state != StateAwaitingText {
		return
	}
	e.state = StateIdle
	if strings.TrimSpace(content) == "" {
		e.notify()
		return
	}
	e.committed = append(e.committed, element.NewText(e.style(), e.textAt, content))
	e.hist.Record(e.committed)
	e.notify()
}

// CancelText dismisses a pending text entry without touching the document.
func (e *Engine) CancelText() {
	if e.state != StateAwaitingText {
		return
	}
	e.state = StateIdle
	e.notify()
}

// TextAnchor returns the point a pending text entry was anchored at. Only
// meaningful while State is StateAwaitingText.
func (e *Engine) TextAnchor() element.Point { return e.textAt }

// Undo rewinds to the previous committed snapshot. At the bottom of the
// history it is a no-op.
func (e *Engine) Undo() {
	if list, ok := e.hist.Undo(); ok {
		e.committed = list
		e.notify()
	}
}

// Redo replays an undone snapshot. At the top of the history it is a no-op.
func (e *Engine) Redo() {
	if list, ok := e.hist.Redo(); ok {
		e.committed = list
		e.notify()
	}
}

// Clear discards the entire document and history. Confirming the
// destructive intent with the user is the host's job.
func (e *Engine) Clear() {
	e.committed = nil
	e.inProgress = nil
	e.state = StateIdle
	e.erasing = false
	e.hist.Clear()
	e.notify()
}

// SetBackground swaps in a new background image and resets the document and
// history, matching the lifecycle of attaching the engine to a fresh image.
func (e *Engine) SetBackground(img image.Image) {
	e.bg = img
	if img != nil {
		b := img.Bounds()
		e.w, e.h = b.Dx(), b.Dy()
	}
	e.mapper.W, e.mapper.H = e.w, e.h
	e.committed = nil
	e.inProgress = nil
	e.state = StateIdle
	e.erasing = false
	e.hist.Clear()
	e.notify()
}

// Attached reports whether the engine has a background and a usable
// backing-store size. Rendering and export are no-ops until it does.
func (e *Engine) Attached() bool {
	return e.bg != nil && e.w > 0 && e.h > 0
}

// Flatten composites the background and the current document into a single
// raster image: exactly what the renderer currently displays. It returns
// nil while the engine is unattached.
func (e *Engine) Flatten() *image.RGBA {
	if !e.Attached() {
		return nil
	}
	return render.Compose(e.bg, e.w, e.h, e.committed, e.inProgress)
}

// Committed returns the committed element list in z-order. The slice is the
// caller's to keep; the elements are shared and must be treated read-only.
func (e *Engine) Committed() []element.Element {
	out := make([]element.Element, len(e.committed))
	copy(out, e.committed)
	return out
}

// InProgress returns the element currently being drawn, or nil.
func (e *Engine) InProgress() element.Element { return e.inProgress }

// State returns the current gesture state.
func (e *Engine) State() State { return e.state }

// Tool returns the active tool.
func (e *Engine) Tool() Tool { return e.tool }

// Color returns the active stroke color.
func (e *Engine) Color() color.RGBA { return e.color }

// StrokeWidth returns the active stroke width.
func (e *Engine) StrokeWidth() int { return e.stroke }

// Size returns the backing-store pixel dimensions.
func (e *Engine) Size() (w, h int) { return e.w, e.h }

// Background returns the attached background image, or nil.
func (e *Engine) Background() image.Image { return e.bg }

// HistoryLen returns the number of stored history snapshots.
func (e *Engine) HistoryLen() int { return e.hist.Len() }

// HistoryCursor returns the history cursor, or -1 before the first snapshot.
func (e *Engine) HistoryCursor() int { return e.hist.Cursor() }
