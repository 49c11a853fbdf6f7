package tray

import (
	_ "embed"
	"log"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
)

// Embedded fallback glyph: a small panel with a half-filled bar.
//
//go:embed icon.svg
var iconSVG []byte

// DefaultIcon is the embedded tray icon.
var DefaultIcon = fyne.NewStaticResource("oneday.svg", iconSVG)

// LoadIcon reads the icon at path. A missing or unreadable file is not fatal:
// the embedded glyph is used instead.
func LoadIcon(path string) fyne.Resource {
	if path == "" {
		return DefaultIcon
	}
	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		log.Printf("tray: icon %q unavailable, using built-in glyph: %v", path, err)
		return DefaultIcon
	}
	return fyne.NewStaticResource(filepath.Base(path), data)
}
