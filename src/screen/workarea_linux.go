//go:build linux

package screen

import (
	"fmt"
	"image"

	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
)

// workArea reads _NET_WORKAREA for the current desktop.
func workArea() (image.Rectangle, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("connect to X server: %w", err)
	}
	defer xu.Conn().Close()

	areas, err := ewmh.WorkareaGet(xu)
	if err != nil {
		return image.Rectangle{}, err
	}
	if len(areas) == 0 {
		return image.Rectangle{}, fmt.Errorf("_NET_WORKAREA is empty")
	}

	idx := 0
	if desktop, err := ewmh.CurrentDesktopGet(xu); err == nil && int(desktop) < len(areas) {
		idx = int(desktop)
	}
	wa := areas[idx]
	x, y := int(wa.X), int(wa.Y)
	return image.Rect(x, y, x+int(wa.Width), y+int(wa.Height)), nil
}
