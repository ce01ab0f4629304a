//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && !cgo

package clipboard

import (
	"errors"
	"image"
)

var errCGODisabled = errors.New("clipboard operations require cgo support")

func ensureInit() error {
	initOnce.Do(func() {
		if !hasDisplay() {
			initErr = errNoDisplay
			return
		}
		initErr = errCGODisabled
	})
	return initErr
}

func WriteImage(image.Image) error {
	return ensureInit()
}

func ReadImage() (image.Image, error) {
	if err := ensureInit(); err != nil {
		return nil, err
	}
	return nil, errCGODisabled
}

func WriteText(string) error {
	return ensureInit()
}

func ReadText() (string, error) {
	if err := ensureInit(); err != nil {
		return "", err
	}
	return "", errCGODisabled
}
