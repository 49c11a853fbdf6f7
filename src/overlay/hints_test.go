package overlay

import (
	"image"
	"testing"
)

func covered(rows []image.Rectangle, p image.Point) bool {
	for _, r := range rows {
		if p.In(r) {
			return true
		}
	}
	return false
}

func TestRoundedRowsShape(t *testing.T) {
	const w, h, r = 600, 65, 5
	rows := roundedRows(w, h, r)

	if len(rows) != 2*r+1 {
		t.Fatalf("got %d rows, want %d", len(rows), 2*r+1)
	}
	for _, p := range []image.Point{{0, 0}, {w - 1, 0}, {0, h - 1}, {w - 1, h - 1}} {
		if covered(rows, p) {
			t.Errorf("corner %v should be cut", p)
		}
	}
	for _, p := range []image.Point{{300, 0}, {0, 32}, {w - 1, 32}, {300, h - 1}, {r, 1}} {
		if !covered(rows, p) {
			t.Errorf("point %v should be inside the shape", p)
		}
	}

	// rows do not overlap and stay inside the window
	area := 0
	for _, row := range rows {
		if !row.In(image.Rect(0, 0, w, h)) {
			t.Errorf("row %v outside window", row)
		}
		area += row.Dx() * row.Dy()
	}
	if area >= w*h || area < w*h-4*r*r {
		t.Errorf("covered area = %d, window = %d", area, w*h)
	}

	// top and bottom mirror each other
	for i := 0; i < r; i++ {
		top, bottom := rows[i], rows[len(rows)-1-i]
		if top.Min.X != bottom.Min.X || top.Max.X != bottom.Max.X {
			t.Errorf("row %d: top %v, bottom %v", i, top, bottom)
		}
	}
}

func TestRoundedRowsDegenerate(t *testing.T) {
	if rows := roundedRows(0, 65, 5); rows != nil {
		t.Errorf("empty window gave %v", rows)
	}
	rows := roundedRows(100, 10, 0)
	if len(rows) != 1 || rows[0] != image.Rect(0, 0, 100, 10) {
		t.Errorf("square corners gave %v", rows)
	}
	// radius clamps to half the height; no empty middle strip
	rows = roundedRows(100, 10, 50)
	if len(rows) != 10 {
		t.Errorf("clamped radius gave %d rows, want 10", len(rows))
	}
}
