package screen

import (
	"errors"
	"fmt"
	"image"
	"log"

	"github.com/kbinani/screenshot"
)

var (
	ErrNoDisplay = errors.New("no active displays found")
	ErrEmptyArea = errors.New("display area is empty")
)

// PrimaryBounds returns the bounds of the primary display (display 0).
func PrimaryBounds() (image.Rectangle, error) {
	n := screenshot.NumActiveDisplays()
	if n == 0 {
		return image.Rectangle{}, ErrNoDisplay
	}
	return screenshot.GetDisplayBounds(0), nil
}

// PrimaryAvailable returns the primary display bounds minus panels, docks and
// taskbars where the platform reports a work area.
func PrimaryAvailable() (image.Rectangle, error) {
	bounds, err := PrimaryBounds()
	if err != nil {
		return image.Rectangle{}, err
	}
	if bounds.Empty() {
		return image.Rectangle{}, fmt.Errorf("primary display %v: %w", bounds, ErrEmptyArea)
	}

	work, err := workArea()
	if err != nil {
		log.Printf("screen: work area unavailable, using full bounds: %v", err)
		return bounds, nil
	}
	return clipToWorkArea(bounds, work), nil
}

// clipToWorkArea keeps bounds when the work area does not overlap it.
func clipToWorkArea(bounds, work image.Rectangle) image.Rectangle {
	clipped := bounds.Intersect(work)
	if clipped.Empty() {
		return bounds
	}
	return clipped
}
