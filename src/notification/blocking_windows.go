//go:build windows

package notification

import (
	"log"

	"golang.org/x/sys/windows"
)

const (
	mbOK            = 0x00000000
	mbIconError     = 0x00000010
	mbSetForeground = 0x00010000
	mbTopMost       = 0x00040000
)

// ShowBlockingError shows a modal error box and returns when it is dismissed.
func ShowBlockingError(title, message string) {
	log.Printf("%s: %s", title, message)
	t, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return
	}
	m, err := windows.UTF16PtrFromString(message)
	if err != nil {
		return
	}
	_, _ = windows.MessageBox(0, m, t, mbOK|mbIconError|mbSetForeground|mbTopMost)
}
