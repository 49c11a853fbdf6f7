// Package render paints the overlay's panel and progress bar into RGBA
// images. Sizes come from config.Style in logical units and are multiplied
// by the scale factor of the target surface.
package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"oneday-overlay/src/config"
)

// kappa places cubic control points for a quarter-circle approximation.
const kappa = 0.5522847

// Panel paints the translucent rounded background over the whole w x h
// surface and centres text inside the label rectangle. face may be nil.
func Panel(w, h int, scale float32, style config.Style, text string, face font.Face) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return dst
	}

	fillRoundedRect(dst, 0, 0, float32(w), float32(h), style.PanelRadius*scale, style.PanelColor)

	if face != nil && text != "" {
		right := w - int(float32(style.LabelInsetRight)*scale)
		bottom := min(h, int(float32(style.LabelHeight)*scale))
		if right > 0 && bottom > 0 {
			drawCentered(dst, image.Rect(0, 0, right, bottom), text, face, style.TextColor)
		}
	}
	return dst
}

// Bar paints the track across the full width and the fill proportional to
// value within [lo, hi].
func Bar(w, h int, scale float32, style config.Style, value, lo, hi int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return dst
	}

	radius := style.BarRadius * scale
	fillRoundedRect(dst, 0, 0, float32(w), float32(h), radius, style.BarTrack)

	if filled := FillWidth(w, value, lo, hi); filled > 0 {
		fillRoundedRect(dst, 0, 0, float32(filled), float32(h), radius, style.BarFill)
	}
	return dst
}

// FillWidth maps value in [lo, hi] onto [0, w]. An empty range is full.
func FillWidth(w, value, lo, hi int) int {
	if hi <= lo {
		return w
	}
	value = max(lo, min(hi, value))
	return int(int64(w) * int64(value-lo) / int64(hi-lo))
}

func fillRoundedRect(dst *image.RGBA, x0, y0, x1, y1, r float32, c color.NRGBA) {
	if x1 <= x0 || y1 <= y0 {
		return
	}
	r = min(r, (x1-x0)/2, (y1-y0)/2)
	if r < 0 {
		r = 0
	}
	k := r * kappa

	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	z.MoveTo(x0+r, y0)
	z.LineTo(x1-r, y0)
	z.CubeTo(x1-r+k, y0, x1, y0+r-k, x1, y0+r)
	z.LineTo(x1, y1-r)
	z.CubeTo(x1, y1-r+k, x1-r+k, y1, x1-r, y1)
	z.LineTo(x0+r, y1)
	z.CubeTo(x0+r-k, y1, x0, y1-r+k, x0, y1-r)
	z.LineTo(x0, y0+r)
	z.CubeTo(x0, y0+r-k, x0+r-k, y0, x0+r, y0)
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// drawCentered draws text centred in rect. Glyphs are clipped to rect, so a
// label wider than the rect loses both ends.
func drawCentered(dst *image.RGBA, rect image.Rectangle, text string, face font.Face, c color.NRGBA) {
	rect = rect.Intersect(dst.Bounds())
	if rect.Empty() {
		return
	}
	d := &font.Drawer{
		Dst:  dst.SubImage(rect).(*image.RGBA),
		Src:  image.NewUniform(c),
		Face: face,
	}
	metrics := face.Metrics()
	textWidth := d.MeasureString(text)

	x := fixed.I(rect.Min.X) + (fixed.I(rect.Dx())-textWidth)/2
	y := fixed.I(rect.Min.Y) + (fixed.I(rect.Dy())+metrics.Ascent-metrics.Descent)/2
	d.Dot = fixed.Point26_6{X: x, Y: y}
	d.DrawString(text)
}
