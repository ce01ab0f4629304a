// Package config reads and writes the inkover RC configuration file.
package config

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"github.com/example/inkover/internal/theme"
)

// Notify holds notification toggles per event.
type Notify struct {
	Export bool
	Save   bool
	Copy   bool
}

// PaletteEntry is a named stroke color. Order matters: the toolbar shows
// entries in file order.
type PaletteEntry struct {
	Name  string
	Color color.RGBA
}

// Config holds the application configuration.
type Config struct {
	Theme        string
	SaveDir      string
	Filename     string
	DefaultTool  string
	DefaultColor string
	StrokeWidth  int
	Widths       []int
	Shadow       bool
	Notify       Notify
	Palette      []PaletteEntry
	Themes       map[string]*theme.Theme
}

// New creates a Config with defaults. Zero values defer to the built-in
// palette, widths and theme.
func New() *Config {
	return &Config{
		Themes: make(map[string]*theme.Theme),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	if c.Filename != "" {
		fmt.Fprintf(&sb, "filename = %s\n", c.Filename)
	}
	if c.DefaultTool != "" {
		fmt.Fprintf(&sb, "default_tool = %s\n", c.DefaultTool)
	}
	if c.DefaultColor != "" {
		fmt.Fprintf(&sb, "default_color = %s\n", c.DefaultColor)
	}
	if c.StrokeWidth > 0 {
		fmt.Fprintf(&sb, "stroke_width = %d\n", c.StrokeWidth)
	}
	if len(c.Widths) > 0 {
		strs := make([]string, len(c.Widths))
		for i, w := range c.Widths {
			strs[i] = strconv.Itoa(w)
		}
		fmt.Fprintf(&sb, "widths = %s\n", strings.Join(strs, ","))
	}
	if c.Shadow {
		fmt.Fprintf(&sb, "shadow = %v\n", c.Shadow)
	}
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "export = %v\n", c.Notify.Export)
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	if len(c.Palette) > 0 {
		sb.WriteString("[palette]\n")
		for _, entry := range c.Palette {
			fmt.Fprintf(&sb, "%s = %s\n", entry.Name, toHex(entry.Color))
		}
		sb.WriteString("\n")
	}

	// Sort theme names for deterministic output.
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		fmt.Fprintf(&sb, "Background: %s\n", toHex(t.Background))
		fmt.Fprintf(&sb, "Foreground: %s\n", toHex(t.Foreground))
		fmt.Fprintf(&sb, "ToolbarBackground: %s\n", toHex(t.ToolbarBackground))
		fmt.Fprintf(&sb, "ButtonBackground: %s\n", toHex(t.ButtonBackground))
		fmt.Fprintf(&sb, "ButtonBackgroundHover: %s\n", toHex(t.ButtonBackgroundHover))
		fmt.Fprintf(&sb, "ButtonBackgroundPress: %s\n", toHex(t.ButtonBackgroundPress))
		fmt.Fprintf(&sb, "ButtonBackgroundOn: %s\n", toHex(t.ButtonBackgroundOn))
		fmt.Fprintf(&sb, "ButtonText: %s\n", toHex(t.ButtonText))
		fmt.Fprintf(&sb, "ButtonBorder: %s\n", toHex(t.ButtonBorder))
		fmt.Fprintf(&sb, "CheckerLight: %s\n", toHex(t.CheckerLight))
		fmt.Fprintf(&sb, "CheckerDark: %s\n", toHex(t.CheckerDark))
		fmt.Fprintf(&sb, "TextCaret: %s\n", toHex(t.TextCaret))
		sb.WriteString("\n")
	}

	return sb.String()
}

func toHex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
