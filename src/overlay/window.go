package overlay

import (
	"oneday-overlay/src/screen"
)

// View is the toolkit side of the overlay. Calls come from the event-loop
// goroutine; implementations marshal them onto their UI thread.
type View interface {
	SetVisible(visible bool)
	SetProgress(value, min, max int)
	Close()
}

// Window is the overlay's presentation state: a fixed placement, a
// visibility flag and the mirrored progress. It is owned by one goroutine.
type Window struct {
	placement screen.Placement
	view      View
	visible   bool
}

// New creates the window model and shows the view.
func New(placement screen.Placement, view View) *Window {
	w := &Window{placement: placement, view: view}
	w.SetVisible(true)
	return w
}

func (w *Window) Placement() screen.Placement { return w.placement }

func (w *Window) Visible() bool { return w.visible }

func (w *Window) SetVisible(visible bool) {
	w.visible = visible
	w.view.SetVisible(visible)
}

// ToggleVisible flips visibility and returns the new value.
func (w *Window) ToggleVisible() bool {
	w.SetVisible(!w.visible)
	return w.visible
}

func (w *Window) SetProgress(value, min, max int) {
	w.view.SetProgress(value, min, max)
}

func (w *Window) Close() {
	w.view.Close()
}
