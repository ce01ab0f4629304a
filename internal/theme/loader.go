package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Loader resolves theme names to theme files.
type Loader struct {
	ConfigDir string
	SystemDir string
}

// NewLoader creates a Loader with the standard search paths.
func NewLoader() *Loader {
	home, _ := os.UserHomeDir()
	return &Loader{
		ConfigDir: filepath.Join(home, ".config", "inkover", "themes"),
		SystemDir: "/usr/share/inkover/themes",
	}
}

// Load resolves a theme by name or path. Lookup order: the built-in names
// "default" and "dark", an existing file path, ConfigDir, then SystemDir.
// An empty name yields the default theme.
func (l *Loader) Load(name string) (*Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default", "light":
		return Default(), nil
	case "dark":
		return Dark(), nil
	}

	if _, err := os.Stat(name); err == nil {
		return parseFile(name)
	}

	filename := name
	if !strings.HasSuffix(filename, ".theme") {
		filename += ".theme"
	}
	for _, dir := range []string{l.ConfigDir, l.SystemDir} {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return parseFile(path)
		}
	}

	return nil, fmt.Errorf("theme %q not found", name)
}

func parseFile(path string) (*Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}
