// Package tray installs the notification-area icon and its context menu.
package tray

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

const (
	LabelToggle = "Show/Hide window"
	LabelCopy   = "Copy progress"
	LabelQuit   = "Quit"
)

// Config wires menu actions. Actions run on the fyne UI thread and must
// not block; post into the event loop instead.
type Config struct {
	Title    string
	Icon     fyne.Resource
	OnToggle func()
	OnCopy   func()
	OnQuit   func()
}

// Install sets the tray menu and icon. It reports false when the driver has
// no system tray.
func Install(a fyne.App, cfg Config) bool {
	desk, ok := a.(desktop.App)
	if !ok {
		log.Printf("tray: driver has no system tray")
		return false
	}
	icon := cfg.Icon
	if icon == nil {
		icon = DefaultIcon
	}
	desk.SetSystemTrayMenu(Menu(cfg))
	desk.SetSystemTrayIcon(icon)
	return true
}

// Menu builds the tray menu. The quit item is flagged so fyne does not add
// its own.
func Menu(cfg Config) *fyne.Menu {
	toggle := fyne.NewMenuItem(LabelToggle, orNoop(cfg.OnToggle))
	copyItem := fyne.NewMenuItem(LabelCopy, orNoop(cfg.OnCopy))
	quit := fyne.NewMenuItem(LabelQuit, orNoop(cfg.OnQuit))
	quit.IsQuit = true

	return fyne.NewMenu(cfg.Title, toggle, copyItem, fyne.NewMenuItemSeparator(), quit)
}

func orNoop(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	return fn
}
