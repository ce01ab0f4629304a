// Package export persists flattened annotation images: PNG to disk, a
// single-page PDF, or the system clipboard.
package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/example/inkover/internal/clipboard"
	"github.com/example/inkover/internal/render"
)

// DefaultFilename is used when no target filename is configured.
const DefaultFilename = "annotated-image.png"

// Notifier announces export outcomes. *notify.Notifier implements it.
type Notifier interface {
	Export(detail string, img image.Image)
	Save(path string)
	Copy(detail string)
}

// Exporter writes flattened images out. The zero value saves into the
// working directory under DefaultFilename.
type Exporter struct {
	// Dir is the target directory. Empty means the working directory.
	Dir string
	// Filename is the target name for Save. Empty means DefaultFilename.
	Filename string
	// Shadow, when non-nil, composites a drop shadow behind the image
	// before it is written.
	Shadow *render.ShadowOptions
	// Notifier, when non-nil, announces completed exports.
	Notifier Notifier
	// OnExport, when non-nil, observes every exported image. Hosts use it
	// to refresh previews.
	OnExport func(image.Image)
}

func (e *Exporter) styled(img image.Image) image.Image {
	if e.Shadow == nil {
		return img
	}
	rgba, ok := img.(*image.RGBA)
	if !ok {
		b := img.Bounds()
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				rgba.Set(x-b.Min.X, y-b.Min.Y, img.At(x, y))
			}
		}
	}
	return render.ApplyShadow(rgba, *e.Shadow)
}

func (e *Exporter) target(name string) string {
	if strings.TrimSpace(name) == "" {
		name = DefaultFilename
	}
	if e.Dir == "" {
		return name
	}
	return filepath.Join(e.Dir, name)
}

// Save writes img as PNG to the configured path and returns the path
// written. A nil image is a no-op: there is nothing to export yet.
func (e *Exporter) Save(img image.Image) (string, error) {
	if img == nil {
		return "", nil
	}
	img = e.styled(img)
	path := e.target(e.Filename)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("export: %w", err)
		}
	}
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	if err := png.Encode(out, img); err != nil {
		_ = out.Close()
		return "", fmt.Errorf("export: encode %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	if e.Notifier != nil {
		e.Notifier.Export(path, img)
		e.Notifier.Save(path)
	}
	if e.OnExport != nil {
		e.OnExport(img)
	}
	return path, nil
}

// SavePDF writes img as a single-page PDF sized to the image, at 1 point
// per pixel. A nil image is a no-op.
func (e *Exporter) SavePDF(img image.Image) (string, error) {
	if img == nil {
		return "", nil
	}
	img = e.styled(img)
	name := e.Filename
	if strings.TrimSpace(name) == "" {
		name = DefaultFilename
	}
	name = strings.TrimSuffix(name, filepath.Ext(name)) + ".pdf"
	path := e.target(name)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("export: %w", err)
		}
	}

	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.AddPage()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("export: encode pdf image: %w", err)
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("annotated", opts, &buf)
	pdf.ImageOptions("annotated", 0, 0, w, h, false, opts, 0, "")
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("export: write %s: %w", path, err)
	}
	if e.Notifier != nil {
		e.Notifier.Export(path, img)
		e.Notifier.Save(path)
	}
	if e.OnExport != nil {
		e.OnExport(img)
	}
	return path, nil
}

// CopyToClipboard publishes img to the system clipboard as PNG. A nil image
// is a no-op.
func (e *Exporter) CopyToClipboard(img image.Image) error {
	if img == nil {
		return nil
	}
	img = e.styled(img)
	if err := clipboard.WriteImage(img); err != nil {
		return fmt.Errorf("export: clipboard: %w", err)
	}
	if e.Notifier != nil {
		e.Notifier.Export("clipboard", img)
		e.Notifier.Copy("annotated image")
	}
	if e.OnExport != nil {
		e.OnExport(img)
	}
	return nil
}
