package overlay

import (
	"errors"
	"image"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"golang.org/x/image/font"

	"oneday-overlay/src/config"
	"oneday-overlay/src/render"
	"oneday-overlay/src/screen"
)

const (
	hintAttempts = 10
	hintBackoff  = 100 * time.Millisecond
)

type ViewOptions struct {
	Title string
	Label string
	// Style sizes are physical pixels, like Placement.
	Style     config.Style
	Placement screen.Placement
	// Dispatch runs fn on the UI thread. Defaults to fyne.Do.
	Dispatch func(fn func())
	// Hints defaults to the platform implementation.
	Hints Hinter
	// Scale reports physical pixels per fyne unit. Defaults to the window
	// canvas scale.
	Scale func() float32
}

// FyneView renders the overlay in a borderless fyne window. Fields below
// win are touched only on the fyne UI thread.
type FyneView struct {
	opts  ViewOptions
	hints Hints
	// opaquePanel is set when the window itself carries the panel's alpha.
	opaquePanel bool
	win         fyne.Window

	panel *canvas.Raster
	bar   *canvas.Raster

	value, min, max int
	faces           map[float32]font.Face
}

// NewFyneView builds the window. Call it from the goroutine that runs the
// fyne app, before Run.
func NewFyneView(a fyne.App, opts ViewOptions) *FyneView {
	if opts.Dispatch == nil {
		opts.Dispatch = fyne.Do
	}
	if opts.Hints == nil {
		opts.Hints = ApplyHints
	}

	v := &FyneView{
		opts: opts,
		hints: Hints{
			Title:     opts.Title,
			Placement: opts.Placement,
			Radius:    int(opts.Style.PanelRadius + 0.5),
			Opacity:   255,
		},
		faces: map[float32]font.Face{},
	}
	if nativeOpacity {
		v.hints.Opacity = opts.Style.PanelColor.A
		v.opaquePanel = true
	}
	installBackground(a, opts.Style.PanelColor)

	if drv, ok := a.Driver().(desktop.Driver); ok {
		v.win = drv.CreateSplashWindow()
		v.win.SetTitle(opts.Title)
	} else {
		v.win = a.NewWindow(opts.Title)
	}
	v.win.SetPadded(false)
	v.win.SetFixedSize(true)
	if v.opts.Scale == nil {
		v.opts.Scale = v.win.Canvas().Scale
	}

	v.panel = canvas.NewRaster(v.drawPanel)
	v.bar = canvas.NewRaster(v.drawBar)
	v.win.SetContent(container.NewWithoutLayout(v.panel, v.bar))
	v.layout()
	return v
}

// layout sizes the window and rasters in fyne units so that, at the current
// canvas scale, they cover the placement's physical pixels.
func (v *FyneView) layout() {
	s := v.opts.Scale()
	if s <= 0 {
		s = 1
	}
	p := v.opts.Placement
	size := fyne.NewSize(float32(p.Width)/s, float32(p.Height)/s)
	barHeight := float32(v.opts.Style.BarHeight) / s

	v.panel.Move(fyne.NewPos(0, 0))
	v.panel.Resize(size)
	v.bar.Move(fyne.NewPos(0, size.Height-barHeight))
	v.bar.Resize(fyne.NewSize(size.Width, barHeight))
	v.win.Resize(size)
}

func (v *FyneView) Window() fyne.Window { return v.win }

func (v *FyneView) SetVisible(visible bool) {
	v.opts.Dispatch(func() {
		if !visible {
			v.win.Hide()
			return
		}
		v.win.Show()
		// the canvas scale is known once the window is on a monitor
		v.layout()
		go v.applyHints()
	})
}

func (v *FyneView) SetProgress(value, min, max int) {
	v.opts.Dispatch(func() {
		v.value, v.min, v.max = value, min, max
		v.bar.Refresh()
	})
}

func (v *FyneView) Close() {
	v.opts.Dispatch(func() {
		v.win.Close()
		for _, f := range v.faces {
			_ = f.Close()
		}
		v.faces = map[float32]font.Face{}
	})
}

// applyHints retries while the native window is still being mapped.
func (v *FyneView) applyHints() {
	var err error
	for attempt := 0; attempt < hintAttempts; attempt++ {
		err = v.opts.Hints(v.hints)
		if err == nil || errors.Is(err, ErrHintsUnsupported) {
			break
		}
		time.Sleep(hintBackoff)
	}
	if err != nil {
		log.Printf("overlay: window hints not applied: %v", err)
	}
}

func (v *FyneView) scale(pixelWidth int) float32 {
	if v.opts.Placement.Width <= 0 {
		return 1
	}
	return float32(pixelWidth) / float32(v.opts.Placement.Width)
}

func (v *FyneView) drawPanel(w, h int) image.Image {
	s := v.scale(w)
	style := v.opts.Style
	if v.opaquePanel {
		style.PanelColor.A = 255
	}
	return render.Panel(w, h, s, style, v.opts.Label, v.face(s))
}

func (v *FyneView) drawBar(w, h int) image.Image {
	return render.Bar(w, h, v.scale(w), v.opts.Style, v.value, v.min, v.max)
}

// face caches one face per scale; a broken font file falls back to Go Regular.
func (v *FyneView) face(scale float32) font.Face {
	if f, ok := v.faces[scale]; ok {
		return f
	}
	f, err := render.NewFace(v.opts.Style, scale)
	if err != nil && v.opts.Style.FontFile != "" {
		log.Printf("overlay: %v; using default font", err)
		fallback := v.opts.Style
		fallback.FontFile = ""
		f, err = render.NewFace(fallback, scale)
	}
	if err != nil {
		log.Printf("overlay: no label font: %v", err)
		return nil
	}
	v.faces[scale] = f
	return f
}
