package overlay

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// backgroundTheme repaints the window background, which shows through the
// panel's antialiased corners, in the panel colour.
type backgroundTheme struct {
	fyne.Theme
	background color.Color
}

func (t backgroundTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if name == theme.ColorNameBackground {
		return t.background
	}
	return t.Theme.Color(name, variant)
}

func installBackground(a fyne.App, c color.NRGBA) {
	base := a.Settings().Theme()
	if base == nil {
		base = theme.DefaultTheme()
	}
	c.A = 255
	a.Settings().SetTheme(backgroundTheme{Theme: base, background: c})
}
