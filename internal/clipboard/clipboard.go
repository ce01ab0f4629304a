// Package clipboard moves images and text between the annotation surface
// and the system clipboard. Initialization is lazy: nothing touches the
// display server until the first read or write.
package clipboard

import (
	"errors"
	"os"
	"sync"
)

var (
	initOnce     sync.Once
	initErr      error
	errNoDisplay = errors.New("clipboard initialization requires DISPLAY or WAYLAND_DISPLAY")
)

func hasDisplay() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}
