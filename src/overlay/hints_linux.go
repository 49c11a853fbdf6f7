//go:build linux

package overlay

import (
	"fmt"

	"github.com/BurntSushi/xgb/shape"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// A compositing manager applies _NET_WM_WINDOW_OPACITY to the whole window.
const nativeOpacity = true

var overlayStates = []string{
	"_NET_WM_STATE_ABOVE",
	"_NET_WM_STATE_SKIP_TASKBAR",
	"_NET_WM_STATE_SKIP_PAGER",
}

// ApplyHints asks an EWMH window manager to keep the overlay above other
// windows at h.Placement and out of the taskbar. It sets the window opacity,
// rounds the window shape and makes the overlay ignore pointer input.
func ApplyHints(h Hints) error {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return fmt.Errorf("connect to X server: %w", err)
	}
	defer xu.Conn().Close()

	win, err := findWindow(xu, h.Title)
	if err != nil {
		return err
	}

	for _, state := range overlayStates {
		if err := ewmh.WmStateReq(xu, win, ewmh.StateAdd, state); err != nil {
			return fmt.Errorf("request %s: %w", state, err)
		}
	}

	p := h.Placement
	if err := ewmh.MoveresizeWindow(xu, win, p.X, p.Y, p.Width, p.Height); err != nil {
		xwindow.New(xu, win).MoveResize(p.X, p.Y, p.Width, p.Height)
	}

	if err := ewmh.WmWindowOpacitySet(xu, win, float64(h.Opacity)/255); err != nil {
		return fmt.Errorf("set window opacity: %w", err)
	}

	if err := shape.Init(xu.Conn()); err == nil {
		var bounding []xproto.Rectangle
		for _, r := range roundedRows(p.Width, p.Height, h.Radius) {
			bounding = append(bounding, xproto.Rectangle{
				X:      int16(r.Min.X),
				Y:      int16(r.Min.Y),
				Width:  uint16(r.Dx()),
				Height: uint16(r.Dy()),
			})
		}
		shape.Rectangles(xu.Conn(), shape.SoSet, shape.SkBounding, xproto.ClipOrderingUnsorted, win, 0, 0, bounding)
		// An empty input shape lets clicks fall through to the window below.
		shape.Rectangles(xu.Conn(), shape.SoSet, shape.SkInput, xproto.ClipOrderingUnsorted, win, 0, 0, nil)
	}
	xu.Sync()
	return nil
}

func findWindow(xu *xgbutil.XUtil, title string) (xproto.Window, error) {
	clients, err := ewmh.ClientListGet(xu)
	if err != nil {
		return 0, fmt.Errorf("read client list: %w", err)
	}
	for _, win := range clients {
		if name, err := ewmh.WmNameGet(xu, win); err == nil && name == title {
			return win, nil
		}
		if name, err := icccm.WmNameGet(xu, win); err == nil && name == title {
			return win, nil
		}
	}
	return 0, ErrWindowNotFound
}
