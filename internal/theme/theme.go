// Package theme defines the color palette for the annotation window.
package theme

import (
	"image/color"
)

// Theme defines the colors used by the toolbar, surface chrome and canvas.
type Theme struct {
	Name string

	// General
	Background color.RGBA // window background behind the canvas
	Foreground color.RGBA // main text color

	// Toolbar
	ToolbarBackground color.RGBA

	// Tool buttons
	ButtonBackground      color.RGBA
	ButtonBackgroundHover color.RGBA
	ButtonBackgroundPress color.RGBA
	ButtonBackgroundOn    color.RGBA // selected tool, color or width
	ButtonText            color.RGBA
	ButtonBorder          color.RGBA

	// Canvas
	CheckerLight color.RGBA // transparency checkerboard
	CheckerDark  color.RGBA
	TextCaret    color.RGBA // pending text entry caret and outline
}

// Default returns the hardcoded light theme.
func Default() *Theme {
	return &Theme{
		Name:                  "Default",
		Background:            color.RGBA{220, 220, 220, 255},
		Foreground:            color.RGBA{0, 0, 0, 255},
		ToolbarBackground:     color.RGBA{220, 220, 220, 255},
		ButtonBackground:      color.RGBA{200, 200, 200, 255},
		ButtonBackgroundHover: color.RGBA{180, 180, 180, 255},
		ButtonBackgroundPress: color.RGBA{150, 150, 150, 255},
		ButtonBackgroundOn:    color.RGBA{160, 190, 220, 255},
		ButtonText:            color.RGBA{0, 0, 0, 255},
		ButtonBorder:          color.RGBA{0, 0, 0, 255},
		CheckerLight:          color.RGBA{220, 220, 220, 255},
		CheckerDark:           color.RGBA{192, 192, 192, 255},
		TextCaret:             color.RGBA{40, 40, 40, 255},
	}
}

// Dark returns the hardcoded dark theme.
func Dark() *Theme {
	return &Theme{
		Name:                  "Dark",
		Background:            color.RGBA{32, 32, 32, 255},
		Foreground:            color.RGBA{230, 230, 230, 255},
		ToolbarBackground:     color.RGBA{40, 40, 40, 255},
		ButtonBackground:      color.RGBA{56, 56, 56, 255},
		ButtonBackgroundHover: color.RGBA{72, 72, 72, 255},
		ButtonBackgroundPress: color.RGBA{96, 96, 96, 255},
		ButtonBackgroundOn:    color.RGBA{52, 86, 120, 255},
		ButtonText:            color.RGBA{230, 230, 230, 255},
		ButtonBorder:          color.RGBA{160, 160, 160, 255},
		CheckerLight:          color.RGBA{48, 48, 48, 255},
		CheckerDark:           color.RGBA{36, 36, 36, 255},
		TextCaret:             color.RGBA{230, 230, 230, 255},
	}
}
