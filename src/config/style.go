package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Style holds every geometry and colour constant of the overlay. Lengths are
// in logical units; the painter scales them to device pixels.
type Style struct {
	WindowHeight int
	WidthNum     int
	WidthDen     int
	TopOffset    int

	PanelRadius float32
	PanelColor  color.NRGBA

	LabelInsetRight int
	LabelHeight     int
	FontSize        float64
	FontFile        string
	TextColor       color.NRGBA

	BarHeight int
	BarRadius float32
	BarTrack  color.NRGBA
	BarFill   color.NRGBA

	TickInterval time.Duration
}

func DefaultStyle() Style {
	return Style{
		WindowHeight:    65,
		WidthNum:        3,
		WidthDen:        5,
		TopOffset:       5,
		PanelRadius:     5,
		PanelColor:      color.NRGBA{R: 0, G: 0, B: 0, A: 80},
		LabelInsetRight: 30,
		LabelHeight:     35,
		FontSize:        18,
		TextColor:       color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		BarHeight:       5,
		BarRadius:       5,
		BarTrack:        color.NRGBA{R: 0x44, G: 0x44, B: 0x44, A: 255},
		BarFill:         color.NRGBA{R: 0x77, G: 0x77, B: 0x77, A: 255},
		TickInterval:    time.Second,
	}
}

// styleFile is the on-disk YAML shape. Pointers distinguish "absent" from zero.
type styleFile struct {
	Window struct {
		Height    *int `yaml:"height"`
		WidthNum  *int `yaml:"width_num"`
		WidthDen  *int `yaml:"width_den"`
		TopOffset *int `yaml:"top_offset"`
	} `yaml:"window"`
	Panel struct {
		Radius  *float32 `yaml:"radius"`
		Color   string   `yaml:"color"`
		Opacity *uint8   `yaml:"opacity"`
	} `yaml:"panel"`
	Label struct {
		InsetRight *int     `yaml:"inset_right"`
		Height     *int     `yaml:"height"`
		FontSize   *float64 `yaml:"font_size"`
		FontFile   string   `yaml:"font_file"`
		Color      string   `yaml:"color"`
	} `yaml:"label"`
	Bar struct {
		Height *int     `yaml:"height"`
		Radius *float32 `yaml:"radius"`
		Track  string   `yaml:"track"`
		Fill   string   `yaml:"fill"`
	} `yaml:"bar"`
	TickIntervalMS *int `yaml:"tick_interval_ms"`
}

// LoadStyle reads a YAML style file on top of DefaultStyle. A missing file
// yields the defaults.
func LoadStyle(path string) (Style, error) {
	style := DefaultStyle()
	if path == "" {
		return style, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return style, nil
	}
	if err != nil {
		return style, err
	}

	return ParseStyle(data)
}

// ParseStyle decodes YAML style data on top of DefaultStyle.
func ParseStyle(data []byte) (Style, error) {
	style := DefaultStyle()

	var raw styleFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return style, fmt.Errorf("parse style: %w", err)
	}

	setSize(&style.WindowHeight, raw.Window.Height)
	setSize(&style.WidthNum, raw.Window.WidthNum)
	setSize(&style.WidthDen, raw.Window.WidthDen)
	setSize(&style.LabelHeight, raw.Label.Height)
	setSize(&style.BarHeight, raw.Bar.Height)

	offsets := []struct {
		field string
		value *int
		dst   *int
	}{
		{"window.top_offset", raw.Window.TopOffset, &style.TopOffset},
		{"label.inset_right", raw.Label.InsetRight, &style.LabelInsetRight},
	}
	for _, o := range offsets {
		if o.value == nil {
			continue
		}
		if *o.value < 0 {
			return style, fmt.Errorf("%s must not be negative, got %d", o.field, *o.value)
		}
		*o.dst = *o.value
	}

	if raw.Panel.Radius != nil {
		style.PanelRadius = *raw.Panel.Radius
	}
	if raw.Bar.Radius != nil {
		style.BarRadius = *raw.Bar.Radius
	}
	if raw.Label.FontSize != nil && *raw.Label.FontSize > 0 {
		style.FontSize = *raw.Label.FontSize
	}
	style.FontFile = raw.Label.FontFile
	if raw.TickIntervalMS != nil && *raw.TickIntervalMS > 0 {
		style.TickInterval = time.Duration(*raw.TickIntervalMS) * time.Millisecond
	}

	colors := []struct {
		field string
		value string
		dst   *color.NRGBA
	}{
		{"panel.color", raw.Panel.Color, &style.PanelColor},
		{"label.color", raw.Label.Color, &style.TextColor},
		{"bar.track", raw.Bar.Track, &style.BarTrack},
		{"bar.fill", raw.Bar.Fill, &style.BarFill},
	}
	for _, c := range colors {
		if c.value == "" {
			continue
		}
		parsed, err := ParseColor(c.value, c.dst.A)
		if err != nil {
			return style, fmt.Errorf("%s: %w", c.field, err)
		}
		*c.dst = parsed
	}
	if raw.Panel.Opacity != nil {
		style.PanelColor.A = *raw.Panel.Opacity
	}

	if style.WidthNum <= 0 || style.WidthDen <= 0 || style.WidthNum > style.WidthDen {
		return style, fmt.Errorf("window width ratio %d/%d out of range", style.WidthNum, style.WidthDen)
	}
	if style.BarHeight > style.WindowHeight {
		return style, fmt.Errorf("bar height %d exceeds window height %d", style.BarHeight, style.WindowHeight)
	}

	return style, nil
}

// ParseColor accepts "#rgb" or "#rrggbb" and applies the given alpha.
func ParseColor(hex string, alpha uint8) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// setSize applies v when it is a positive dimension.
func setSize(dst *int, v *int) {
	if v != nil && *v > 0 {
		*dst = *v
	}
}
