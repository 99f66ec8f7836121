// Package theme holds the built-in chart palettes and the palette
// resolution rules. The registry is defined once at init and never
// mutated, so it is safe under concurrent access without locking.
package theme

import (
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// DefaultPalette is the fallback for every lookup that misses.
const DefaultPalette = "ocean"

// Color is a hex color like "#0066CC". The hex form is what travels in
// configuration and results; Drawing converts for the render backend.
type Color string

// Drawing converts the hex form into a go-chart drawing color.
func (c Color) Drawing() drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(string(c), "#"))
}

// WithAlpha returns the drawing color with the given alpha applied.
func (c Color) WithAlpha(a uint8) drawing.Color {
	return c.Drawing().WithAlpha(a)
}

// Palette is a named set of coordinated colors used to style one chart.
type Palette struct {
	Name      string
	Primary   Color
	Secondary Color
	Accent    Color
	Light     Color
	Gradient  []Color
}

// Neutral colors shared by every chart regardless of palette.
const (
	Dark      Color = "#2d3748"
	Gray      Color = "#718096"
	LightGray Color = "#e2e8f0"
	White     Color = "#ffffff"
)

var palettes = map[string]Palette{
	"ocean": {
		Name:      "ocean",
		Primary:   "#0066CC",
		Secondary: "#4A90E2",
		Accent:    "#7BB3FF",
		Light:     "#E6F2FF",
		Gradient:  []Color{"#0066CC", "#4A90E2", "#7BB3FF", "#A8CCFF", "#D4E6FF"},
	},
	"sunset": {
		Name:      "sunset",
		Primary:   "#FF6B6B",
		Secondary: "#FF8E53",
		Accent:    "#FFB347",
		Light:     "#FFF0E6",
		Gradient:  []Color{"#FF6B6B", "#FF8E53", "#FFB347", "#FFD166", "#FFE6A6"},
	},
	"forest": {
		Name:      "forest",
		Primary:   "#2D6A4F",
		Secondary: "#52B788",
		Accent:    "#95D5B2",
		Light:     "#E9F5EC",
		Gradient:  []Color{"#2D6A4F", "#52B788", "#95D5B2", "#B7E4C7", "#D8F3DC"},
	},
	"violet": {
		Name:      "violet",
		Primary:   "#5E60CE",
		Secondary: "#7B68EE",
		Accent:    "#B4A7D6",
		Light:     "#F0E6FF",
		Gradient:  []Color{"#5E60CE", "#7B68EE", "#9B7BD8", "#B4A7D6", "#D1C4E9"},
	},
	"coral": {
		Name:      "coral",
		Primary:   "#FF7F7F",
		Secondary: "#FF9999",
		Accent:    "#FFB3B3",
		Light:     "#FFE6E6",
		Gradient:  []Color{"#FF7F7F", "#FF9999", "#FFB3B3", "#FFCCCC", "#FFE6E6"},
	},
}

// chartTypeDefaults maps a chart type to its default palette. Chart types
// not listed here resolve to DefaultPalette.
var chartTypeDefaults = map[string]string{
	"line":      "ocean",
	"column":    "ocean",
	"bar":       "ocean",
	"area":      "sunset",
	"pie":       "coral",
	"scatter":   "violet",
	"radar":     "forest",
	"histogram": "ocean",
	"treemap":   "sunset",
	"dual_axes": "violet",
}

// Lookup returns the palette registered under name, falling back to the
// default palette when the name is unknown or empty. It never fails.
func Lookup(name string) Palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes[DefaultPalette]
}

// DefaultPaletteFor returns the default palette name for a chart type.
func DefaultPaletteFor(chartType string) string {
	if name, ok := chartTypeDefaults[chartType]; ok {
		return name
	}
	return DefaultPalette
}

// Names returns the registered palette names, for tool documentation.
func Names() []string {
	return []string{"ocean", "sunset", "forest", "violet", "coral"}
}
