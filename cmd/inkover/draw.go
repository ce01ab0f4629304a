package main

import (
	"flag"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/example/inkover/internal/background"
	"github.com/example/inkover/internal/engine"
	"github.com/example/inkover/internal/export"
	"github.com/example/inkover/internal/ui"
)

// drawCmd applies a single annotation to an image without opening a window.
type drawCmd struct {
	file          string
	output        string
	fromClipboard bool
	toClipboard   bool
	pdf           bool
	colorSpec     string
	color         color.RGBA
	width         int
	canvasW       int
	canvasH       int
	shape         string
	coords        []int
	text          string
	*root
	fs *flag.FlagSet
}

func (d *drawCmd) FlagSet() *flag.FlagSet {
	return d.fs
}

func parseColor(s string) (color.RGBA, error) {
	spec := strings.ToLower(strings.TrimSpace(s))
	if spec == "" {
		return color.RGBA{}, fmt.Errorf("color cannot be empty")
	}
	if c, ok := colornames.Map[spec]; ok {
		return c, nil
	}
	for _, entry := range ui.PaletteColors() {
		if strings.EqualFold(entry.Name, s) {
			return entry.Color, nil
		}
	}
	if strings.HasPrefix(spec, "#") && (len(spec) == 7 || len(spec) == 9) {
		r, err := strconv.ParseUint(spec[1:3], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q", s)
		}
		g, err := strconv.ParseUint(spec[3:5], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q", s)
		}
		b, err := strconv.ParseUint(spec[5:7], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q", s)
		}
		a := uint64(255)
		if len(spec) == 9 {
			val, err := strconv.ParseUint(spec[7:9], 16, 8)
			if err != nil {
				return color.RGBA{}, fmt.Errorf("invalid color %q", s)
			}
			a = val
		}
		return color.RGBA{uint8(r), uint8(g), uint8(b), uint8(a)}, nil
	}
	return color.RGBA{}, fmt.Errorf("invalid color %q", s)
}

func parseDrawCmd(args []string, r *root) (*drawCmd, error) {
	fs := flag.NewFlagSet("draw", flag.ExitOnError)
	d := &drawCmd{root: r, fs: fs}
	fs.Usage = usageFunc(d)
	fs.StringVar(&d.file, "file", "", "input image file")
	fs.StringVar(&d.output, "output", "", "output file path (defaults to input file)")
	fs.BoolVar(&d.fromClipboard, "from-clipboard", false, "read the input image from the clipboard")
	fs.BoolVar(&d.toClipboard, "to-clipboard", false, "copy the result to the clipboard")
	fs.BoolVar(&d.pdf, "pdf", false, "write the result as a single-page PDF")
	fs.StringVar(&d.colorSpec, "color", "red", "stroke color name or hex value")
	fs.IntVar(&d.width, "width", 2, "stroke width in pixels")
	fs.IntVar(&d.canvasW, "canvas-width", 800, "blank canvas width when no input is given")
	fs.IntVar(&d.canvasH, "canvas-height", 600, "blank canvas height when no input is given")

	flagArgs, positionals, err := splitDrawArgs(args)
	if err != nil {
		return nil, err
	}
	if err := fs.Parse(flagArgs); err != nil {
		return nil, err
	}
	if len(positionals) < 1 {
		return nil, &UsageError{of: d}
	}
	d.shape = strings.ToLower(positionals[0])
	remaining := positionals[1:]
	switch d.shape {
	case "rect", "circle", "arrow":
		d.coords, err = expectInts(remaining, 4, d.shape)
	case "pen", "erase":
		if len(remaining) < 4 || len(remaining)%2 != 0 {
			return nil, fmt.Errorf("%s requires an even number of at least 4 coordinates", d.shape)
		}
		d.coords, err = expectInts(remaining, len(remaining), d.shape)
	case "text":
		if len(remaining) < 3 {
			return nil, fmt.Errorf("text requires x y and content")
		}
		d.coords, err = expectInts(remaining[:2], 2, d.shape)
		if err != nil {
			return nil, err
		}
		d.text = strings.Join(remaining[2:], " ")
		if strings.TrimSpace(d.text) == "" {
			return nil, fmt.Errorf("text content cannot be empty")
		}
	default:
		return nil, fmt.Errorf("unsupported shape %q", d.shape)
	}
	if err != nil {
		return nil, err
	}
	colorVal, err := parseColor(d.colorSpec)
	if err != nil {
		return nil, err
	}
	d.color = colorVal
	if d.file == "" && !d.fromClipboard {
		if d.output == "" {
			return nil, fmt.Errorf("output file is required when drawing on a blank canvas")
		}
		if d.canvasW < 1 || d.canvasH < 1 {
			return nil, fmt.Errorf("canvas size must be positive")
		}
	}
	if d.output == "" {
		if d.file == "" {
			return nil, fmt.Errorf("output file is required when reading from the clipboard")
		}
		d.output = d.file
	}
	if d.width < 1 {
		d.width = 1
	}
	return d, nil
}

func (d *drawCmd) buildEngine() (*engine.Engine, error) {
	opts := []engine.Option{
		engine.WithColor(d.color),
		engine.WithStrokeWidth(d.width),
	}
	switch {
	case d.file != "":
		img, err := background.Load(d.file)
		if err != nil {
			return nil, err
		}
		opts = append(opts, engine.WithBackground(img))
	case d.fromClipboard:
		img, err := background.FromClipboard()
		if err != nil {
			return nil, fmt.Errorf("read clipboard image: %w", err)
		}
		opts = append(opts, engine.WithBackground(img))
	default:
		opts = append(opts, engine.WithBackground(blankCanvas(d.canvasW, d.canvasH)))
	}
	eng := engine.New(opts...)
	w, h := eng.Size()
	eng.SetViewport(engine.Viewport{Width: float64(w), Height: float64(h)})
	return eng, nil
}

func (d *drawCmd) apply(eng *engine.Engine) error {
	switch d.shape {
	case "rect":
		eng.SelectTool(engine.ToolRect)
	case "circle":
		eng.SelectTool(engine.ToolCircle)
	case "arrow":
		eng.SelectTool(engine.ToolArrow)
	case "pen":
		eng.SelectTool(engine.ToolPen)
	case "erase":
		eng.SelectTool(engine.ToolEraser)
	case "text":
		eng.SelectTool(engine.ToolText)
		eng.PointerDown(float64(d.coords[0]), float64(d.coords[1]))
		eng.CommitText(d.text)
		return nil
	default:
		return fmt.Errorf("unhandled shape %q", d.shape)
	}

	eng.PointerDown(float64(d.coords[0]), float64(d.coords[1]))
	start := 2
	if d.shape == "erase" {
		// The armed eraser only hit-tests on move, so revisit the first point.
		start = 0
	}
	for i := start; i < len(d.coords); i += 2 {
		eng.PointerMove(float64(d.coords[i]), float64(d.coords[i+1]))
	}
	last := len(d.coords) - 2
	eng.PointerUp(float64(d.coords[last]), float64(d.coords[last+1]))
	return nil
}

func (d *drawCmd) Run() error {
	eng, err := d.buildEngine()
	if err != nil {
		return err
	}
	if err := d.apply(eng); err != nil {
		return err
	}
	exporter := &export.Exporter{Filename: d.output}
	if d.root != nil {
		exporter.Notifier = d.notifier
		if d.config != nil && d.config.SaveDir != "" && !strings.ContainsAny(d.output, "/\\") {
			exporter.Dir = d.config.SaveDir
		}
	}
	img := eng.Flatten()
	var saved string
	if d.pdf {
		saved, err = exporter.SavePDF(img)
	} else {
		saved, err = exporter.Save(img)
	}
	if err != nil {
		return err
	}
	fmt.Println("saved", saved)
	if d.toClipboard {
		if err := exporter.CopyToClipboard(img); err != nil {
			return fmt.Errorf("copy PNG to clipboard: %w", err)
		}
		fmt.Println("copied result to clipboard")
	}
	return nil
}

func expectInts(args []string, n int, shape string) ([]int, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%s requires %d integer arguments", shape, n)
	}
	vals := make([]int, n)
	for i, raw := range args {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", raw)
		}
		vals[i] = v
	}
	return vals, nil
}

var drawFlagNames = map[string]struct{}{
	"file":           {},
	"output":         {},
	"from-clipboard": {},
	"to-clipboard":   {},
	"pdf":            {},
	"color":          {},
	"width":          {},
	"canvas-width":   {},
	"canvas-height":  {},
}

var drawBoolFlags = map[string]struct{}{
	"from-clipboard": {},
	"to-clipboard":   {},
	"pdf":            {},
}

// splitDrawArgs separates flag-style arguments from positionals so flags can
// appear after the shape name. Negative coordinates stay positional.
func splitDrawArgs(args []string) ([]string, []string, error) {
	var flags []string
	var positionals []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positionals = append(positionals, args[i+1:]...)
			break
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			positionals = append(positionals, arg)
			continue
		}
		name := strings.TrimLeft(arg, "-")
		if name == "" {
			positionals = append(positionals, arg)
			continue
		}
		parts := strings.SplitN(name, "=", 2)
		base := strings.ToLower(parts[0])
		if _, ok := drawFlagNames[base]; !ok {
			positionals = append(positionals, arg)
			continue
		}
		// Normalise to single dash form for the flag parser.
		norm := "-" + base
		if len(parts) == 2 {
			flags = append(flags, norm+"="+parts[1])
			continue
		}
		if _, ok := drawBoolFlags[base]; ok {
			flags = append(flags, norm)
			continue
		}
		if i+1 >= len(args) {
			return nil, nil, fmt.Errorf("flag %s requires a value", arg)
		}
		flags = append(flags, norm, args[i+1])
		i++
	}
	return flags, positionals, nil
}
