package render

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"oneday-overlay/src/config"
)

// NewFace builds the label face at style.FontSize points scaled for the
// target surface. An empty FontFile selects Go Regular.
func NewFace(style config.Style, scale float32) (font.Face, error) {
	data := goregular.TTF
	if style.FontFile != "" {
		b, err := os.ReadFile(style.FontFile)
		if err != nil {
			return nil, fmt.Errorf("read font %s: %w", style.FontFile, err)
		}
		data = b
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    style.FontSize * float64(scale),
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
