//go:build !linux && !windows

package screen

import (
	"errors"
	"image"
)

func workArea() (image.Rectangle, error) {
	return image.Rectangle{}, errors.New("work area query not supported on this platform")
}
