package overlay

import (
	"errors"
	"image"
	"math"

	"oneday-overlay/src/screen"
)

var (
	ErrWindowNotFound   = errors.New("overlay window not found")
	ErrHintsUnsupported = errors.New("window hints not supported on this platform")
)

// Hints is what the platform window manager is asked to apply to the
// overlay. All geometry is in physical pixels.
type Hints struct {
	Title     string
	Placement screen.Placement
	// Radius rounds the window shape's corners.
	Radius int
	// Opacity is the whole-window alpha, 255 being opaque.
	Opacity uint8
}

// Hinter asks the platform window manager to place the titled window, keep
// it above others and apply its shape and opacity.
type Hinter func(h Hints) error

// roundedRows covers a w x h rectangle with corners of radius r using
// horizontal strips: one per corner row plus one for the straight middle.
func roundedRows(w, h, r int) []image.Rectangle {
	if w <= 0 || h <= 0 {
		return nil
	}
	r = min(r, w/2, h/2)
	if r <= 0 {
		return []image.Rectangle{image.Rect(0, 0, w, h)}
	}

	insets := make([]int, r)
	for y := range insets {
		dy := float64(r) - float64(y) - 0.5
		insets[y] = r - int(math.Round(math.Sqrt(float64(r*r)-dy*dy)))
	}

	rows := make([]image.Rectangle, 0, 2*r+1)
	for y, in := range insets {
		rows = append(rows, image.Rect(in, y, w-in, y+1))
	}
	if mid := image.Rect(0, r, w, h-r); !mid.Empty() {
		rows = append(rows, mid)
	}
	for y := r - 1; y >= 0; y-- {
		in := insets[y]
		rows = append(rows, image.Rect(in, h-1-y, w-in, h-y))
	}
	return rows
}
