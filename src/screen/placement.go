package screen

import (
	"fmt"
	"image"

	"oneday-overlay/src/config"
)

// Placement is the overlay's fixed geometry in physical pixels, computed
// once at startup.
type Placement struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Place centres a window of WidthNum/WidthDen of the area's width
// horizontally, TopOffset below the area's top edge.
func Place(area image.Rectangle, style config.Style) (Placement, error) {
	if area.Empty() {
		return Placement{}, ErrEmptyArea
	}
	if style.WidthDen <= 0 {
		return Placement{}, fmt.Errorf("invalid width ratio %d/%d", style.WidthNum, style.WidthDen)
	}

	screenWidth := area.Dx()
	width := screenWidth * style.WidthNum / style.WidthDen
	return Placement{
		X:      area.Min.X + (screenWidth-width)/2,
		Y:      area.Min.Y + style.TopOffset,
		Width:  width,
		Height: style.WindowHeight,
	}, nil
}

func (p Placement) Rect() image.Rectangle {
	return image.Rect(p.X, p.Y, p.X+p.Width, p.Y+p.Height)
}
