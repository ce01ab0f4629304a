package ui

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/mobile/event/key"

	"github.com/example/inkover/internal/engine"
	"github.com/example/inkover/internal/theme"
)

// KeyShortcut describes a keyboard combination that triggers an action.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// KeyboardShortcuts is implemented by anything that exposes key bindings.
type KeyboardShortcuts interface {
	KeyboardShortcuts() []KeyShortcut
}

type shortcutList []KeyShortcut

func (s shortcutList) KeyboardShortcuts() []KeyShortcut { return []KeyShortcut(s) }

// ButtonState is the visual state of a toolbar widget.
type ButtonState int

const (
	StateDefault ButtonState = iota
	StateHover
	StatePressed
	StateOn
)

// Button is a clickable toolbar widget.
type Button interface {
	Draw(dst *image.RGBA, state ButtonState)
	Rect() image.Rectangle
	SetRect(r image.Rectangle)
	Activate()
}

// ToolButton selects a drawing tool when activated.
type ToolButton struct {
	label    string
	tool     engine.Tool
	th       *theme.Theme
	rect     image.Rectangle
	onSelect func()
}

var _ Button = (*ToolButton)(nil)

func (tb *ToolButton) Draw(dst *image.RGBA, state ButtonState) {
	c := tb.th.ButtonBackground
	switch state {
	case StateHover:
		c = tb.th.ButtonBackgroundHover
	case StatePressed:
		c = tb.th.ButtonBackgroundPress
	case StateOn:
		c = tb.th.ButtonBackgroundOn
	}
	draw.Draw(dst, tb.rect, &image.Uniform{c}, image.Point{}, draw.Src)
	d := &font.Drawer{Dst: dst, Src: &image.Uniform{tb.th.ButtonText}, Face: basicfont.Face7x13,
		Dot: fixed.P(tb.rect.Min.X+4, tb.rect.Min.Y+16)}
	d.DrawString(tb.label)
}

func (tb *ToolButton) Rect() image.Rectangle { return tb.rect }

func (tb *ToolButton) SetRect(r image.Rectangle) {
	if r != tb.rect {
		tb.rect = r
	}
}

func (tb *ToolButton) Activate() {
	if tb.onSelect != nil {
		tb.onSelect()
	}
}

// Shortcut is a clickable hint in the bottom bar mirroring a key binding.
type Shortcut struct {
	label  string
	th     *theme.Theme
	rect   image.Rectangle
	action func()
}

var _ Button = (*Shortcut)(nil)

func (s *Shortcut) Draw(dst *image.RGBA, state ButtonState) {
	if state == StateHover {
		draw.Draw(dst, s.rect, &image.Uniform{s.th.ButtonBackgroundHover}, image.Point{}, draw.Src)
	}
	d := &font.Drawer{Dst: dst, Src: &image.Uniform{s.th.Foreground}, Face: basicfont.Face7x13,
		Dot: fixed.P(s.rect.Min.X+2, s.rect.Min.Y+14)}
	d.DrawString(s.label)
}

func (s *Shortcut) Rect() image.Rectangle { return s.rect }

func (s *Shortcut) SetRect(r image.Rectangle) {
	if r != s.rect {
		s.rect = r
	}
}

func (s *Shortcut) Activate() {
	if s.action != nil {
		s.action()
	}
}
