//go:build windows

package screen

import (
	"image"
	"unsafe"

	"golang.org/x/sys/windows"
)

const spiGetWorkArea = 0x0030

var procSystemParametersInfo = windows.NewLazySystemDLL("user32.dll").NewProc("SystemParametersInfoW")

// workArea asks Windows for the primary monitor's area outside the taskbar.
func workArea() (image.Rectangle, error) {
	var r windows.Rect
	ret, _, err := procSystemParametersInfo.Call(spiGetWorkArea, 0, uintptr(unsafe.Pointer(&r)), 0)
	if ret == 0 {
		return image.Rectangle{}, err
	}
	return image.Rect(int(r.Left), int(r.Top), int(r.Right), int(r.Bottom)), nil
}
