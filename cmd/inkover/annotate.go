package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"os"

	"github.com/example/inkover/internal/background"
	"github.com/example/inkover/internal/engine"
	"github.com/example/inkover/internal/export"
	"github.com/example/inkover/internal/render"
	"github.com/example/inkover/internal/ui"
)

// annotateCmd opens the annotation window over a background image.
type annotateCmd struct {
	file          string
	fromClipboard bool
	width         int
	height        int
	output        string
	shadow        bool
	*root
	fs *flag.FlagSet
}

func (a *annotateCmd) FlagSet() *flag.FlagSet {
	return a.fs
}

func parseAnnotateCmd(args []string, r *root) (*annotateCmd, error) {
	fs := flag.NewFlagSet("annotate", flag.ExitOnError)
	a := &annotateCmd{root: r, fs: fs}
	fs.Usage = usageFunc(a)
	fs.StringVar(&a.file, "file", "", "background image file to annotate")
	fs.BoolVar(&a.fromClipboard, "from-clipboard", false, "read the background image from the clipboard")
	fs.IntVar(&a.width, "width", 800, "blank canvas width when no background is given")
	fs.IntVar(&a.height, "height", 600, "blank canvas height when no background is given")
	fs.StringVar(&a.output, "output", "", "output file path")
	fs.BoolVar(&a.shadow, "shadow", r.config.Shadow, "apply a drop shadow when exporting")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: a}
	}
	if a.file != "" && a.fromClipboard {
		return nil, fmt.Errorf("-file and -from-clipboard are mutually exclusive")
	}
	if a.width < 1 || a.height < 1 {
		return nil, fmt.Errorf("canvas size must be positive")
	}
	return a, nil
}

func (a *annotateCmd) buildEngine() (*engine.Engine, error) {
	switch {
	case a.file != "":
		img, err := background.Load(a.file)
		if err != nil {
			return nil, err
		}
		return engine.New(engine.WithBackground(img), a.toolOption()), nil
	case a.fromClipboard:
		img, err := background.FromClipboard()
		if err != nil {
			return nil, err
		}
		return engine.New(engine.WithBackground(img), a.toolOption()), nil
	default:
		return engine.New(engine.WithBackground(blankCanvas(a.width, a.height)), a.toolOption()), nil
	}
}

// blankCanvas returns a white background for drawing without a source image.
func blankCanvas(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return img
}

func (a *annotateCmd) toolOption() engine.Option {
	tool, err := engine.ParseTool(a.config.DefaultTool)
	if err != nil {
		return engine.WithTool(engine.ToolPen)
	}
	return engine.WithTool(tool)
}

func (a *annotateCmd) buildExporter() *export.Exporter {
	e := &export.Exporter{
		Dir:      a.config.SaveDir,
		Notifier: a.notifier,
	}
	if a.output != "" {
		e.Filename = a.output
	} else if a.config.Filename != "" {
		e.Filename = a.config.Filename
	}
	if a.shadow {
		opts := render.DefaultShadowOptions()
		e.Shadow = &opts
	}
	return e
}

func (a *annotateCmd) Run() error {
	eng, err := a.buildEngine()
	if err != nil {
		return err
	}
	session := ui.New(
		ui.WithEngine(eng),
		ui.WithExporter(a.buildExporter()),
		ui.WithTheme(a.activeTheme),
		ui.WithColorIndex(configColorIndex(a.root)),
		ui.WithWidthIndex(configWidthIndex(a.root)),
	)
	session.Run()
	return nil
}

// configColorIndex resolves the configured default color to a palette index.
func configColorIndex(r *root) int {
	if r == nil || r.config == nil || r.config.DefaultColor == "" {
		return ui.DefaultColorIndex()
	}
	c, err := parseColor(r.config.DefaultColor)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: invalid default color in config: %v\n", err)
		return ui.DefaultColorIndex()
	}
	return ui.EnsurePaletteColor(c, r.config.DefaultColor)
}

// configWidthIndex resolves the configured stroke width to a width index.
func configWidthIndex(r *root) int {
	if r == nil || r.config == nil || r.config.StrokeWidth < 1 {
		return ui.DefaultWidthIndex()
	}
	return ui.EnsureWidth(r.config.StrokeWidth)
}
