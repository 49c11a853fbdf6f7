//go:build !windows

package main

import (
	"log"

	"github.com/kbinani/screenshot"
)

// Fyne scales by the monitor's content scale on its own.
func enableDPIAwareness() {}

func logMonitorConfiguration() {
	n := screenshot.NumActiveDisplays()
	log.Printf("MONITOR: Detected %d displays", n)
	for i := 0; i < n; i++ {
		log.Printf("MONITOR: Display %d bounds %v", i, screenshot.GetDisplayBounds(i))
	}
}
