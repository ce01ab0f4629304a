package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"github.com/example/inkover/internal/background"
)

// previewCmd writes a scaled, optionally rotated copy of an image. Useful
// for checking what a background will look like before annotating it.
type previewCmd struct {
	file   string
	output string
	scale  float64
	rotate int
	*root
	fs *flag.FlagSet
}

func (p *previewCmd) FlagSet() *flag.FlagSet {
	return p.fs
}

func parsePreviewCmd(args []string, r *root) (*previewCmd, error) {
	fs := flag.NewFlagSet("preview", flag.ExitOnError)
	p := &previewCmd{root: r, fs: fs}
	fs.Usage = usageFunc(p)
	fs.StringVar(&p.file, "file", "", "image file to open")
	fs.StringVar(&p.output, "output", "preview.png", "output file path")
	fs.Float64Var(&p.scale, "scale", 1, "scale factor applied to the image")
	fs.IntVar(&p.rotate, "rotate", 0, "clockwise rotation in degrees (0, 90, 180, 270)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if p.file == "" {
		return nil, &UsageError{of: p}
	}
	if p.scale <= 0 {
		return nil, fmt.Errorf("scale must be positive")
	}
	return p, nil
}

func rotationFor(degrees int) (background.Rotation, error) {
	switch ((degrees % 360) + 360) % 360 {
	case 0:
		return background.Rotate0, nil
	case 90:
		return background.Rotate90, nil
	case 180:
		return background.Rotate180, nil
	case 270:
		return background.Rotate270, nil
	default:
		return background.Rotate0, fmt.Errorf("rotation must be a multiple of 90 degrees")
	}
}

func (p *previewCmd) Run() error {
	rot, err := rotationFor(p.rotate)
	if err != nil {
		return err
	}
	img, err := background.Load(p.file)
	if err != nil {
		return err
	}
	out := background.Preview(img, p.scale, rot)
	f, err := os.Create(p.output)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, out); err != nil {
		return err
	}
	fmt.Println("saved", p.output)
	return nil
}
