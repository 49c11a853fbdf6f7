//go:build windows

package main

import (
	"log"

	"golang.org/x/sys/windows"
)

var (
	shcore = windows.NewLazySystemDLL("Shcore.dll")
	user32 = windows.NewLazySystemDLL("user32.dll")

	procSetProcessDpiAwareness = shcore.NewProc("SetProcessDpiAwareness")
	procSetProcessDPIAware     = user32.NewProc("SetProcessDPIAware")
	procGetSystemMetrics       = user32.NewProc("GetSystemMetrics")
)

const (
	processPerMonitorDPIAware = 2

	smCXScreen        = 0
	smCYScreen        = 1
	smXVirtualScreen  = 76
	smYVirtualScreen  = 77
	smCXVirtualScreen = 78
	smCYVirtualScreen = 79
	smCMonitors       = 80
)

// enableDPIAwareness attempts to set per-monitor DPI awareness so the overlay
// is placed in physical pixels.
func enableDPIAwareness() {
	if err := procSetProcessDpiAwareness.Find(); err == nil {
		ret, _, _ := procSetProcessDpiAwareness.Call(uintptr(processPerMonitorDPIAware))
		if ret == 0 {
			log.Printf("DPI: Successfully set per-monitor DPI awareness")
		} else {
			log.Printf("DPI: Failed to set per-monitor DPI awareness, error code: %d", ret)
		}
		return
	}

	log.Printf("DPI: Shcore.SetProcessDpiAwareness not available, trying fallback")
	if err := procSetProcessDPIAware.Find(); err != nil {
		log.Printf("DPI: SetProcessDPIAware not available, no DPI awareness set")
		return
	}
	if ret, _, _ := procSetProcessDPIAware.Call(); ret != 0 {
		log.Printf("DPI: Successfully set system DPI awareness (fallback)")
	} else {
		log.Printf("DPI: Failed to set system DPI awareness (fallback)")
	}
}

func systemMetric(index int) int {
	ret, _, _ := procGetSystemMetrics.Call(uintptr(index))
	return int(int32(ret))
}

func logMonitorConfiguration() {
	if err := procGetSystemMetrics.Find(); err != nil {
		return
	}
	log.Printf("MONITOR: Detected %d monitors", systemMetric(smCMonitors))
	log.Printf("MONITOR: Virtual screen - x:%d y:%d w:%d h:%d",
		systemMetric(smXVirtualScreen), systemMetric(smYVirtualScreen),
		systemMetric(smCXVirtualScreen), systemMetric(smCYVirtualScreen))
	log.Printf("MONITOR: Primary screen - w:%d h:%d", systemMetric(smCXScreen), systemMetric(smCYScreen))
}
