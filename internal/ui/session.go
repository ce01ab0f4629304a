// Package ui runs the interactive annotation window on shiny. A Session
// owns the window, the toolbar and keyboard bindings, and drives the
// annotation engine from pointer and key events.
package ui

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"sync"
	"time"
	"unicode"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/inkover/internal/background"
	"github.com/example/inkover/internal/engine"
	"github.com/example/inkover/internal/export"
	"github.com/example/inkover/internal/theme"
)

// Session holds the window state for one annotation surface.
type Session struct {
	eng      *engine.Engine
	exporter *export.Exporter
	th       *theme.Theme
	colorIdx int
	widthIdx int

	updateCh    chan struct{}
	sendControl func(controlEvent)

	settingsMu sync.Mutex
	settingsFn func(colorIdx, widthIdx int)

	onClose   func()
	closeOnce sync.Once

	// Window-loop state. Owned by Main and the paint worker.
	toolbarWidth   int
	backdrop       *image.RGBA
	toolButtons    []*ToolButton
	shortcutRects  []Shortcut
	hoverTool      int
	hoverPalette   int
	hoverWidth     int
	hoverShortcut  int
	keyboardAction map[KeyShortcut]string
}

// Option modifies a Session during creation.
type Option func(*Session)

// WithEngine sets the annotation engine the window drives.
func WithEngine(e *engine.Engine) Option { return func(s *Session) { s.eng = e } }

// WithExporter sets the exporter used by the save, PDF and copy actions.
func WithExporter(ex *export.Exporter) Option { return func(s *Session) { s.exporter = ex } }

// WithTheme sets the window theme.
func WithTheme(t *theme.Theme) Option { return func(s *Session) { s.th = t } }

// WithColorIndex sets the initial palette index for drawing tools.
func WithColorIndex(idx int) Option { return func(s *Session) { s.colorIdx = idx } }

// WithWidthIndex sets the initial stroke width index for drawing tools.
func WithWidthIndex(idx int) Option { return func(s *Session) { s.widthIdx = idx } }

// WithSettingsListener registers a callback for when drawing settings change.
func WithSettingsListener(fn func(colorIdx, widthIdx int)) Option {
	return func(s *Session) { s.settingsFn = fn }
}

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(s *Session) { s.onClose = fn } }

// New creates a Session with the provided options.
func New(opts ...Option) *Session {
	s := &Session{
		colorIdx:      defaultColorIndex,
		widthIdx:      defaultWidthIndex,
		updateCh:      make(chan struct{}, 1),
		hoverTool:     -1,
		hoverPalette:  -1,
		hoverWidth:    -1,
		hoverShortcut: -1,
	}
	for _, o := range opts {
		o(s)
	}
	if s.eng == nil {
		s.eng = engine.New()
	}
	if s.exporter == nil {
		s.exporter = &export.Exporter{}
	}
	if s.th == nil {
		s.th = theme.Default()
	}
	s.colorIdx = clampColorIndex(s.colorIdx)
	s.widthIdx = clampWidthIndex(s.widthIdx)
	s.eng.SelectColor(paletteColorAt(s.colorIdx))
	s.eng.SelectStrokeWidth(widthAt(s.widthIdx))
	s.eng.SetOnChange(s.NotifyDocumentChanged)
	return s
}

type controlEvent struct {
	ColorIdx *int
	WidthIdx *int
	Tool     *engine.Tool
	Action   string
}

type quitEvent struct{}

// NotifyDocumentChanged requests a repaint after the document mutates
// outside the window loop.
func (s *Session) NotifyDocumentChanged() {
	if s.updateCh == nil {
		return
	}
	select {
	case s.updateCh <- struct{}{}:
	default:
	}
}

// ApplySettings synchronizes drawing settings between the CLI and the window.
func (s *Session) ApplySettings(colorIdx, widthIdx int) {
	colorIdx = clampColorIndex(colorIdx)
	widthIdx = clampWidthIndex(widthIdx)

	s.settingsMu.Lock()
	s.colorIdx = colorIdx
	s.widthIdx = widthIdx
	fn := s.settingsFn
	sender := s.sendControl
	s.settingsMu.Unlock()

	if sender != nil {
		ci := colorIdx
		wi := widthIdx
		sender(controlEvent{ColorIdx: &ci, WidthIdx: &wi})
	}
	if fn != nil {
		fn(colorIdx, widthIdx)
	}
}

// ApplyTool changes the active tool from outside the window loop.
func (s *Session) ApplyTool(t engine.Tool) {
	s.settingsMu.Lock()
	sender := s.sendControl
	s.settingsMu.Unlock()
	if sender != nil {
		tool := t
		sender(controlEvent{Tool: &tool})
	}
}

// Invoke triggers a named window action (undo, redo, clear, save, pdf,
// copy, paste, quit) from outside the window loop.
func (s *Session) Invoke(action string) {
	s.settingsMu.Lock()
	sender := s.sendControl
	s.settingsMu.Unlock()
	if sender != nil {
		sender(controlEvent{Action: action})
	}
}

func (s *Session) applySettingsFromUI(colorIdx, widthIdx int) {
	colorIdx = clampColorIndex(colorIdx)
	widthIdx = clampWidthIndex(widthIdx)

	s.settingsMu.Lock()
	s.colorIdx = colorIdx
	s.widthIdx = widthIdx
	fn := s.settingsFn
	s.settingsMu.Unlock()

	s.eng.SelectColor(paletteColorAt(colorIdx))
	s.eng.SelectStrokeWidth(widthAt(widthIdx))

	if fn != nil {
		fn(colorIdx, widthIdx)
	}
}

func (s *Session) setControlSender(fn func(controlEvent)) {
	s.settingsMu.Lock()
	s.sendControl = fn
	s.settingsMu.Unlock()
}

func (s *Session) notifyClose() {
	s.closeOnce.Do(func() {
		s.setControlSender(nil)
		if s.onClose != nil {
			s.onClose()
		}
	})
}

// Run executes the window loop using shiny's driver.
func (s *Session) Run() { driver.Main(s.Main) }

func (s *Session) Main(scr screen.Screen) {
	// Size the toolbar to fit the program title and the widest tool label.
	d := &font.Drawer{Face: basicfont.Face7x13}
	toolbarWidth := d.MeasureString("Inkover").Ceil() + 8
	toolLabels := []string{"B:Pen", "X:Rect", "O:Circle", "A:Arrow", "T:Text", "E:Eraser"}
	for _, lbl := range toolLabels {
		if w := d.MeasureString(lbl).Ceil() + 8; w > toolbarWidth {
			toolbarWidth = w
		}
	}
	if toolbarWidth < 48 {
		toolbarWidth = 48
	}
	s.toolbarWidth = toolbarWidth

	surfW, surfH := s.eng.Size()
	width := surfW + toolbarWidth
	height := surfH + topBarHeight + bottomHeight
	w, err := scr.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: "Inkover"})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()

	defer s.notifyClose()

	if s.updateCh != nil {
		done := make(chan struct{})
		go func() {
			for {
				select {
				case <-s.updateCh:
					w.Send(paint.Event{})
				case <-done:
					return
				}
			}
		}()
		defer close(done)
	}

	s.setControlSender(func(ev controlEvent) { w.Send(ev) })

	colorIdx := clampColorIndex(s.colorIdx)
	widthIdx := clampWidthIndex(s.widthIdx)
	zoom := fitZoom(surfW, surfH, width, height, toolbarWidth)
	if zoom > 1 {
		zoom = 1
	}

	applyViewport := func() {
		dst := surfaceRect(surfW, surfH, zoom, toolbarWidth)
		s.eng.SetViewport(engine.Viewport{
			Left:   float64(dst.Min.X),
			Top:    float64(dst.Min.Y),
			Width:  float64(dst.Dx()),
			Height: float64(dst.Dy()),
		})
	}
	applyViewport()
	s.applySettingsFromUI(colorIdx, widthIdx)

	var message string
	var messageUntil time.Time
	var confirmClear bool
	var textInput string

	flash := func(msg string) {
		message = msg
		log.Print(message)
		messageUntil = time.Now().Add(2 * time.Second)
	}

	var paintMu sync.Mutex
	var paintCancel context.CancelFunc
	var dropCount int
	paintCh := make(chan paintState, 1)
	go func() {
		for st := range paintCh {
			ctx, cancel := context.WithCancel(context.Background())
			paintMu.Lock()
			paintCancel = cancel
			paintMu.Unlock()
			s.drawFrame(ctx, scr, w, st)
			paintMu.Lock()
			paintCancel = nil
			if ctx.Err() == nil {
				dropCount = 0
			}
			paintMu.Unlock()
		}
	}()
	cancelPaint := func() {
		paintMu.Lock()
		if paintCancel != nil {
			paintCancel()
		}
		paintMu.Unlock()
	}

	s.keyboardAction = map[KeyShortcut]string{}
	actions := map[string]func(){}
	register := func(name string, keys KeyboardShortcuts, fn func()) {
		actions[name] = fn
		if keys != nil {
			for _, sc := range keys.KeyboardShortcuts() {
				s.keyboardAction[sc] = name
			}
		}
	}

	s.toolButtons = nil
	for i, t := range []engine.Tool{engine.ToolPen, engine.ToolRect, engine.ToolCircle, engine.ToolArrow, engine.ToolText, engine.ToolEraser} {
		tool := t
		s.toolButtons = append(s.toolButtons, &ToolButton{
			label: toolLabels[i],
			tool:  tool,
			th:    s.th,
			onSelect: func() {
				s.eng.SelectTool(tool)
				confirmClear = false
			},
		})
	}

	register("save", shortcutList{{Rune: 's', Modifiers: key.ModControl}}, func() {
		path, err := s.exporter.Save(s.eng.Flatten())
		if err != nil {
			log.Printf("save: %v", err)
			return
		}
		if path == "" {
			return
		}
		flash(fmt.Sprintf("saved %s", path))
	})

	register("pdf", shortcutList{{Rune: 'p', Modifiers: key.ModControl}}, func() {
		path, err := s.exporter.SavePDF(s.eng.Flatten())
		if err != nil {
			log.Printf("pdf: %v", err)
			return
		}
		if path == "" {
			return
		}
		flash(fmt.Sprintf("saved %s", path))
	})

	register("copy", shortcutList{{Rune: 'c', Modifiers: key.ModControl}}, func() {
		if err := s.exporter.CopyToClipboard(s.eng.Flatten()); err != nil {
			log.Printf("copy: %v", err)
			return
		}
		flash("image copied to clipboard")
	})

	register("paste", shortcutList{{Rune: 'v', Modifiers: key.ModControl}}, func() {
		img, err := background.FromClipboard()
		if err != nil {
			log.Printf("paste: %v", err)
			return
		}
		s.eng.SetBackground(img)
		surfW, surfH = s.eng.Size()
		zoom = fitZoom(surfW, surfH, width, height, toolbarWidth)
		if zoom > 1 {
			zoom = 1
		}
		applyViewport()
		flash("pasted new background")
	})

	register("undo", shortcutList{{Rune: 'z', Modifiers: key.ModControl}}, func() {
		s.eng.Undo()
	})

	register("redo", shortcutList{{Rune: 'y', Modifiers: key.ModControl}}, func() {
		s.eng.Redo()
	})

	register("clear", shortcutList{{Rune: 'd', Modifiers: key.ModControl}}, func() {
		if !confirmClear {
			confirmClear = true
			flash("press ^D again to clear all annotations")
			return
		}
		confirmClear = false
		s.eng.Clear()
		flash("annotations cleared")
	})

	register("textdone", shortcutList{{Code: key.CodeReturnEnter}}, func() {
		s.eng.CommitText(textInput)
		textInput = ""
	})

	register("textcancel", shortcutList{{Code: key.CodeEscape}}, func() {
		s.eng.CancelText()
		textInput = ""
	})

	register("quit", nil, func() { w.Send(quitEvent{}) })

	handleShortcut := func(action string) {
		if fn, ok := actions[action]; ok {
			fn()
		}
		w.Send(paint.Event{})
	}

	setTool := func(t engine.Tool) {
		s.eng.SelectTool(t)
		confirmClear = false
		w.Send(paint.Event{})
	}

	for {
		e := w.NextEvent()
		switch e := e.(type) {
		case controlEvent:
			if e.ColorIdx != nil {
				colorIdx = clampColorIndex(*e.ColorIdx)
			}
			if e.WidthIdx != nil {
				widthIdx = clampWidthIndex(*e.WidthIdx)
			}
			if e.ColorIdx != nil || e.WidthIdx != nil {
				s.applySettingsFromUI(colorIdx, widthIdx)
			}
			if e.Tool != nil {
				s.eng.SelectTool(*e.Tool)
				confirmClear = false
			}
			if e.Action != "" {
				handleShortcut(e.Action)
			}
			w.Send(paint.Event{})
		case quitEvent:
			cancelPaint()
			return
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				cancelPaint()
				return
			}
		case size.Event:
			width = e.WidthPx
			height = e.HeightPx
			applyViewport()
			w.Send(paint.Event{})
		case paint.Event:
			paintMu.Lock()
			if paintCancel != nil {
				if dropCount < frameDropThreshold {
					paintCancel()
					dropCount++
				}
			}
			paintMu.Unlock()
			s.settingsMu.Lock()
			colorIdx = s.colorIdx
			widthIdx = s.widthIdx
			s.settingsMu.Unlock()
			anchorX, anchorY := s.eng.Mapper().ToClient(s.eng.TextAnchor())
			st := paintState{
				width:          width,
				height:         height,
				frame:          s.eng.Flatten(),
				surfW:          surfW,
				surfH:          surfH,
				zoom:           zoom,
				tool:           s.eng.Tool(),
				colorIdx:       colorIdx,
				widthIdx:       widthIdx,
				awaitingText:   s.eng.State() == engine.StateAwaitingText,
				textInput:      textInput,
				anchorX:        anchorX,
				anchorY:        anchorY,
				message:        message,
				messageUntil:   messageUntil,
				handleShortcut: handleShortcut,
			}
			select {
			case paintCh <- st:
			default:
				<-paintCh
				paintCh <- st
			}
		case mouse.Event:
			if message != "" && time.Now().Before(messageUntil) && e.Direction == mouse.DirPress {
				messageUntil = time.Time{}
				w.Send(paint.Event{})
				continue
			}
			if int(e.Y) >= height-bottomHeight {
				p := image.Point{int(e.X), int(e.Y)}
				s.hoverShortcut = -1
				for i := range s.shortcutRects {
					sc := &s.shortcutRects[i]
					if p.In(sc.Rect()) {
						s.hoverShortcut = i
						if e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress {
							sc.Activate()
						}
						break
					}
				}
				if e.Direction == mouse.DirNone {
					w.Send(paint.Event{})
				}
				continue
			}
			if int(e.Y) < topBarHeight {
				continue
			}
			if int(e.X) < toolbarWidth {
				s.handleToolbarMouse(e, w)
				continue
			}

			// Canvas. The engine maps client coordinates itself.
			switch e.Direction {
			case mouse.DirPress:
				if e.Button != mouse.ButtonLeft {
					continue
				}
				wasAwaiting := s.eng.State() == engine.StateAwaitingText
				s.eng.PointerDown(float64(e.X), float64(e.Y))
				if !wasAwaiting && s.eng.State() == engine.StateAwaitingText {
					textInput = ""
				}
				w.Send(paint.Event{})
			case mouse.DirNone:
				s.eng.PointerMove(float64(e.X), float64(e.Y))
				if s.eng.State() == engine.StateDrawing || s.eng.Tool() == engine.ToolEraser {
					w.Send(paint.Event{})
				}
			case mouse.DirRelease:
				if e.Button != mouse.ButtonLeft {
					continue
				}
				s.eng.PointerUp(float64(e.X), float64(e.Y))
				w.Send(paint.Event{})
			}
		case key.Event:
			if e.Direction != key.DirPress {
				continue
			}
			if s.eng.State() == engine.StateAwaitingText {
				switch e.Code {
				case key.CodeReturnEnter:
					s.eng.CommitText(textInput)
					textInput = ""
					w.Send(paint.Event{})
					continue
				case key.CodeEscape:
					s.eng.CancelText()
					textInput = ""
					w.Send(paint.Event{})
					continue
				case key.CodeDeleteBackspace:
					if len(textInput) > 0 {
						textInput = textInput[:len(textInput)-1]
						w.Send(paint.Event{})
					}
					continue
				}
				if e.Rune > 0 {
					textInput += string(e.Rune)
					w.Send(paint.Event{})
				}
				continue
			}
			ks := KeyShortcut{Rune: unicode.ToLower(e.Rune), Code: e.Code, Modifiers: e.Modifiers}
			if action, ok := s.keyboardAction[ks]; ok {
				if action != "clear" {
					confirmClear = false
				}
				handleShortcut(action)
				continue
			}
			confirmClear = false
			switch e.Rune {
			case 'b', 'B':
				setTool(engine.ToolPen)
			case 'x', 'X':
				setTool(engine.ToolRect)
			case 'o', 'O':
				setTool(engine.ToolCircle)
			case 'a', 'A':
				setTool(engine.ToolArrow)
			case 't', 'T':
				setTool(engine.ToolText)
			case 'e', 'E':
				setTool(engine.ToolEraser)
			case 'q', 'Q':
				cancelPaint()
				return
			case '+', '=':
				zoom *= 1.25
				applyViewport()
				w.Send(paint.Event{})
			case '-':
				zoom /= 1.25
				if zoom < 0.1 {
					zoom = 0.1
				}
				applyViewport()
				w.Send(paint.Event{})
			}
		}
	}
}

// handleToolbarMouse resolves clicks and hovers on the tool buttons, the
// palette grid and the stroke width strip.
func (s *Session) handleToolbarMouse(e mouse.Event, w screen.Window) {
	press := e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress
	pos := int(e.Y) - topBarHeight

	idx := pos / 24
	if idx < len(s.toolButtons) {
		s.hoverTool = idx
		if press {
			s.toolButtons[idx].Activate()
			w.Send(paint.Event{})
		}
		if e.Direction == mouse.DirNone {
			w.Send(paint.Event{})
		}
		return
	}
	s.hoverTool = -1

	pos -= len(s.toolButtons) * 24
	pos -= 4
	paletteCols := s.toolbarWidth / 18
	rows := (paletteLen() + paletteCols - 1) / paletteCols
	paletteHeight := rows * 18
	if pos >= 0 && pos < paletteHeight {
		colX := (int(e.X) - 4) / 18
		colY := pos / 18
		cidx := colY*paletteCols + colX
		if cidx >= 0 && cidx < paletteLen() {
			s.hoverPalette = cidx
			if press {
				s.applySettingsFromUI(cidx, s.widthIdx)
				w.Send(paint.Event{})
			}
			if e.Direction == mouse.DirNone {
				w.Send(paint.Event{})
			}
			return
		}
	}
	s.hoverPalette = -1

	pos -= paletteHeight
	pos -= 4
	if pos >= 0 {
		widx := pos / 16
		if widx >= 0 && widx < widthsLen() {
			s.hoverWidth = widx
			if press {
				s.applySettingsFromUI(s.colorIdx, widx)
				w.Send(paint.Event{})
			}
			if e.Direction == mouse.DirNone {
				w.Send(paint.Event{})
			}
			return
		}
	}
	s.hoverWidth = -1
	if e.Direction == mouse.DirNone {
		w.Send(paint.Event{})
	}
}

type paintState struct {
	width, height  int
	frame          *image.RGBA
	surfW, surfH   int
	zoom           float64
	tool           engine.Tool
	colorIdx       int
	widthIdx       int
	awaitingText   bool
	textInput      string
	anchorX        float64
	anchorY        float64
	message        string
	messageUntil   time.Time
	handleShortcut func(string)
}

func (s *Session) drawFrame(ctx context.Context, scr screen.Screen, w screen.Window, st paintState) {
	b, err := scr.NewBuffer(image.Point{st.width, st.height})
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()

	s.drawBackdrop(b.RGBA())
	if ctx.Err() != nil {
		return
	}

	dst := surfaceRect(st.surfW, st.surfH, st.zoom, s.toolbarWidth)
	scaleFrame(b.RGBA(), dst, st.frame)
	if ctx.Err() != nil {
		return
	}

	s.drawTitleBar(b.RGBA(), st.width)
	s.drawToolbar(b.RGBA(), st.tool, st.colorIdx, st.widthIdx)
	s.drawShortcuts(b.RGBA(), st.width, st.height, st.awaitingText, st.zoom, st.handleShortcut)
	if ctx.Err() != nil {
		return
	}

	if st.message != "" && time.Now().Before(st.messageUntil) {
		d := &font.Drawer{Dst: b.RGBA(), Src: &image.Uniform{s.th.Foreground}, Face: messageFace}
		wmsg := d.MeasureString(st.message).Ceil()
		ascent := messageFace.Metrics().Ascent.Ceil()
		descent := messageFace.Metrics().Descent.Ceil()
		px := (st.width - wmsg) / 2
		py := (st.height-ascent-descent)/2 + ascent
		rect := image.Rect(px-8, py-ascent-8, px+wmsg+8, py+descent+8)
		draw.Draw(b.RGBA(), rect, &image.Uniform{s.th.Background}, image.Point{}, draw.Over)
		drawBorder(b.RGBA(), rect, s.th.ButtonBorder)
		d.Dot = fixed.P(px, py)
		d.DrawString(st.message)
	}
	if ctx.Err() != nil {
		return
	}

	if st.awaitingText {
		size := int(float64(widthAt(st.widthIdx)*8) * st.zoom)
		d := &font.Drawer{Dst: b.RGBA(), Src: &image.Uniform{paletteColorAt(st.colorIdx)}, Face: overlayFace(size)}
		d.Dot = fixed.P(int(st.anchorX), int(st.anchorY))
		d.DrawString(st.textInput + "|")
	}
	if ctx.Err() != nil {
		return
	}

	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}

func (s *Session) drawTitleBar(dst *image.RGBA, width int) {
	draw.Draw(dst, image.Rect(0, 0, width, topBarHeight),
		&image.Uniform{s.th.ToolbarBackground}, image.Point{}, draw.Src)
	d := &font.Drawer{Dst: dst, Src: &image.Uniform{s.th.Foreground}, Face: basicfont.Face7x13,
		Dot: fixed.P(4, 16)}
	d.DrawString("Inkover")
}

func (s *Session) drawToolbar(dst *image.RGBA, tool engine.Tool, colIdx, widthIdx int) {
	draw.Draw(dst, image.Rect(0, topBarHeight, s.toolbarWidth, dst.Bounds().Dy()-bottomHeight),
		&image.Uniform{s.th.ToolbarBackground}, image.Point{}, draw.Src)

	y := topBarHeight
	for i, tb := range s.toolButtons {
		tb.SetRect(image.Rect(0, y, s.toolbarWidth, y+24))
		state := StateDefault
		if tb.tool == tool {
			state = StateOn
		} else if i == s.hoverTool {
			state = StateHover
		}
		tb.Draw(dst, state)
		y += 24
	}

	// Color palette below the tools.
	y += 4
	x := 4
	for i, c := range Palette() {
		rect := image.Rect(x, y, x+16, y+16)
		draw.Draw(dst, rect, &image.Uniform{c}, image.Point{}, draw.Src)
		if i == s.hoverPalette {
			draw.Draw(dst, rect, &image.Uniform{color.NRGBA{255, 255, 255, 80}}, image.Point{}, draw.Over)
		}
		if i == colIdx {
			drawBorder(dst, rect, s.th.ButtonBorder)
		}
		x += 18
		if x+16 > s.toolbarWidth {
			x = 4
			y += 18
		}
	}
	if x > 4 {
		y += 18
	}

	// Stroke widths. These also size the eraser and the text tool.
	y += 4
	col := paletteColorAt(colIdx)
	for i, wd := range WidthOptions() {
		rect := image.Rect(0, y, s.toolbarWidth, y+16)
		c := s.th.ButtonBackground
		if i == widthIdx {
			c = s.th.ButtonBackgroundOn
		} else if i == s.hoverWidth {
			c = s.th.ButtonBackgroundHover
		}
		draw.Draw(dst, rect, &image.Uniform{c}, image.Point{}, draw.Src)
		d := &font.Drawer{Dst: dst, Src: &image.Uniform{s.th.ButtonText}, Face: basicfont.Face7x13, Dot: fixed.P(4, y+12)}
		d.DrawString(fmt.Sprintf("%d", wd))
		lineY := y + 8 - wd/2
		sample := image.Rect(30, lineY, s.toolbarWidth-4, lineY+wd)
		draw.Draw(dst, sample, &image.Uniform{col}, image.Point{}, draw.Src)
		y += 16
	}
}

func (s *Session) drawShortcuts(dst *image.RGBA, width, height int, textMode bool, z float64, trigger func(string)) {
	rect := image.Rect(0, height-bottomHeight, width, height)
	draw.Draw(dst, rect, &image.Uniform{s.th.ToolbarBackground}, image.Point{}, draw.Src)
	s.shortcutRects = s.shortcutRects[:0]
	var shortcuts []Shortcut
	if textMode {
		shortcuts = []Shortcut{
			{label: "Enter:place", th: s.th, action: func() { trigger("textdone") }},
			{label: "Esc:cancel", th: s.th, action: func() { trigger("textcancel") }},
		}
	} else {
		zoomStr := fmt.Sprintf("+/-:zoom (%.0f%%)", z*100)
		shortcuts = []Shortcut{
			{label: "^Z:undo", th: s.th, action: func() { trigger("undo") }},
			{label: "^Y:redo", th: s.th, action: func() { trigger("redo") }},
			{label: "^D:clear", th: s.th, action: func() { trigger("clear") }},
			{label: "^V:paste", th: s.th, action: func() { trigger("paste") }},
			{label: "^C:copy image", th: s.th, action: func() { trigger("copy") }},
			{label: "^S:save", th: s.th, action: func() { trigger("save") }},
			{label: "^P:pdf", th: s.th, action: func() { trigger("pdf") }},
			{label: zoomStr, th: s.th, action: nil},
			{label: "Q:quit", th: s.th, action: func() { trigger("quit") }},
		}
	}
	x := s.toolbarWidth + 4
	y := height - bottomHeight + 16
	meas := &font.Drawer{Face: basicfont.Face7x13}
	for i := range shortcuts {
		sc := &shortcuts[i]
		lw := meas.MeasureString(sc.label).Ceil()
		sc.SetRect(image.Rect(x-2, y-14, x+lw+2, y+4))
		state := StateDefault
		if i == s.hoverShortcut {
			state = StateHover
		}
		sc.Draw(dst, state)
		s.shortcutRects = append(s.shortcutRects, *sc)
		x = sc.Rect().Max.X + 8
	}
}
