//go:build windows

package overlay

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// The layered-window alpha carries the panel's translucency.
const nativeOpacity = true

var (
	user32                         = windows.NewLazySystemDLL("user32.dll")
	gdi32                          = windows.NewLazySystemDLL("gdi32.dll")
	procFindWindow                 = user32.NewProc("FindWindowW")
	procGetWindowLongPtr           = user32.NewProc("GetWindowLongPtrW")
	procSetWindowLongPtr           = user32.NewProc("SetWindowLongPtrW")
	procSetLayeredWindowAttributes = user32.NewProc("SetLayeredWindowAttributes")
	procSetWindowPos               = user32.NewProc("SetWindowPos")
	procSetWindowRgn               = user32.NewProc("SetWindowRgn")
	procCreateRoundRectRgn         = gdi32.NewProc("CreateRoundRectRgn")
	procDeleteObject               = gdi32.NewProc("DeleteObject")
)

const (
	gwlExStyle  = ^uintptr(19) // GWL_EXSTYLE (-20)
	hwndTopmost = ^uintptr(0)  // HWND_TOPMOST (-1)

	wsExTransparent = 0x00000020
	wsExToolWindow  = 0x00000080
	wsExAppWindow   = 0x00040000
	wsExLayered     = 0x00080000

	lwaAlpha = 0x00000002

	swpNoActivate = 0x0010
	swpShowWindow = 0x0040
)

// ApplyHints makes the overlay a topmost, click-through, translucent tool
// window with rounded corners at h.Placement.
func ApplyHints(h Hints) error {
	t, err := windows.UTF16PtrFromString(h.Title)
	if err != nil {
		return err
	}
	hwnd, _, _ := procFindWindow.Call(0, uintptr(unsafe.Pointer(t)))
	if hwnd == 0 {
		return ErrWindowNotFound
	}

	exStyle, _, _ := procGetWindowLongPtr.Call(hwnd, gwlExStyle)
	exStyle = (exStyle | wsExToolWindow | wsExLayered | wsExTransparent) &^ wsExAppWindow
	_, _, _ = procSetWindowLongPtr.Call(hwnd, gwlExStyle, exStyle)
	if ret, _, callErr := procSetLayeredWindowAttributes.Call(hwnd, 0, uintptr(h.Opacity), lwaAlpha); ret == 0 {
		return fmt.Errorf("SetLayeredWindowAttributes: %w", callErr)
	}

	p := h.Placement
	ret, _, callErr := procSetWindowPos.Call(hwnd, hwndTopmost,
		uintptr(p.X), uintptr(p.Y), uintptr(p.Width), uintptr(p.Height),
		swpNoActivate|swpShowWindow)
	if ret == 0 {
		return fmt.Errorf("SetWindowPos: %w", callErr)
	}

	if h.Radius > 0 {
		d := uintptr(2 * h.Radius)
		rgn, _, _ := procCreateRoundRectRgn.Call(0, 0, uintptr(p.Width+1), uintptr(p.Height+1), d, d)
		if rgn == 0 {
			return fmt.Errorf("CreateRoundRectRgn failed")
		}
		// The window owns the region once SetWindowRgn succeeds.
		if ret, _, _ := procSetWindowRgn.Call(hwnd, rgn, 1); ret == 0 {
			_, _, _ = procDeleteObject.Call(rgn)
			return fmt.Errorf("SetWindowRgn failed")
		}
	}
	return nil
}
