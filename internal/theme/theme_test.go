package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseOverridesDefaults(t *testing.T) {
	src := `
Name: Solar
Background: #112233
ButtonText: #FFEEDDCC
// comment line
Unknown: #000000
`
	th, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if th.Name != "Solar" {
		t.Errorf("name = %q, want Solar", th.Name)
	}
	if th.Background != (color.RGBA{0x11, 0x22, 0x33, 255}) {
		t.Errorf("background = %v", th.Background)
	}
	if th.ButtonText != (color.RGBA{0xFF, 0xEE, 0xDD, 0xCC}) {
		t.Errorf("button text = %v", th.ButtonText)
	}
	if th.Foreground != Default().Foreground {
		t.Error("unset keys must keep their defaults")
	}
}

func TestParseRejectsBadColor(t *testing.T) {
	if _, err := Parse(strings.NewReader("Background: red")); err == nil {
		t.Fatal("expected an error for a non-hex color")
	}
	if _, err := Parse(strings.NewReader("Background: #1234")); err == nil {
		t.Fatal("expected an error for a short hex color")
	}
}

func TestParseColor(t *testing.T) {
	got, err := ParseColor("#A0B0C0")
	if err != nil || got != (color.RGBA{0xA0, 0xB0, 0xC0, 255}) {
		t.Fatalf("ParseColor = %v, %v", got, err)
	}
}

func TestLoaderBuiltins(t *testing.T) {
	l := NewLoader()
	for name, want := range map[string]string{"": "Default", "default": "Default", "dark": "Dark", "DARK": "Dark"} {
		th, err := l.Load(name)
		if err != nil {
			t.Fatalf("Load(%q): %v", name, err)
		}
		if th.Name != want {
			t.Errorf("Load(%q).Name = %q, want %q", name, th.Name, want)
		}
	}
}

func TestLoaderSearchesConfigDir(t *testing.T) {
	dir := t.TempDir()
	content := "Name: Custom\nBackground: #010203\n"
	if err := os.WriteFile(filepath.Join(dir, "custom.theme"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	l := &Loader{ConfigDir: dir, SystemDir: filepath.Join(dir, "missing")}
	th, err := l.Load("custom")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if th.Name != "Custom" || th.Background != (color.RGBA{1, 2, 3, 255}) {
		t.Errorf("loaded theme = %+v", th)
	}

	if _, err := l.Load("absent"); err == nil {
		t.Error("expected an error for a missing theme")
	}
}
