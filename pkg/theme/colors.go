// Package theme provides the color schemes and slider styling used by the
// renderers.
package theme

import "github.com/go-drift/inputrange/pkg/graphics"

// Brightness indicates whether a theme is light or dark.
type Brightness int

const (
	BrightnessLight Brightness = iota
	BrightnessDark
)

func (b Brightness) String() string {
	if b == BrightnessDark {
		return "dark"
	}
	return "light"
}

// ColorScheme is the palette sliders derive their colors from.
type ColorScheme struct {
	Primary          graphics.Color
	OnPrimary        graphics.Color
	Secondary        graphics.Color
	Tertiary         graphics.Color
	Error            graphics.Color
	Background       graphics.Color
	OnBackground     graphics.Color
	Surface          graphics.Color
	OnSurface        graphics.Color
	SurfaceVariant   graphics.Color
	OnSurfaceVariant graphics.Color
	Outline          graphics.Color
}

// LightColorScheme returns the default light palette.
func LightColorScheme() ColorScheme {
	return ColorScheme{
		Primary:          graphics.RGB(0x67, 0x50, 0xA4),
		OnPrimary:        graphics.RGB(0xFF, 0xFF, 0xFF),
		Secondary:        graphics.RGB(0x62, 0x5B, 0x71),
		Tertiary:         graphics.RGB(0x7D, 0x52, 0x60),
		Error:            graphics.RGB(0xB3, 0x26, 0x1E),
		Background:       graphics.RGB(0xFE, 0xF7, 0xFF),
		OnBackground:     graphics.RGB(0x1D, 0x1B, 0x20),
		Surface:          graphics.RGB(0xFE, 0xF7, 0xFF),
		OnSurface:        graphics.RGB(0x1D, 0x1B, 0x20),
		SurfaceVariant:   graphics.RGB(0xE7, 0xE0, 0xEC),
		OnSurfaceVariant: graphics.RGB(0x49, 0x45, 0x4F),
		Outline:          graphics.RGB(0x79, 0x74, 0x7E),
	}
}

// DarkColorScheme returns the default dark palette.
func DarkColorScheme() ColorScheme {
	return ColorScheme{
		Primary:          graphics.RGB(0xD0, 0xBC, 0xFF),
		OnPrimary:        graphics.RGB(0x38, 0x1E, 0x72),
		Secondary:        graphics.RGB(0xCC, 0xC2, 0xDC),
		Tertiary:         graphics.RGB(0xEF, 0xB8, 0xC8),
		Error:            graphics.RGB(0xF2, 0xB8, 0xB5),
		Background:       graphics.RGB(0x14, 0x12, 0x18),
		OnBackground:     graphics.RGB(0xE6, 0xE0, 0xE9),
		Surface:          graphics.RGB(0x14, 0x12, 0x18),
		OnSurface:        graphics.RGB(0xE6, 0xE0, 0xE9),
		SurfaceVariant:   graphics.RGB(0x49, 0x45, 0x4F),
		OnSurfaceVariant: graphics.RGB(0xCA, 0xC4, 0xD0),
		Outline:          graphics.RGB(0x93, 0x8F, 0x99),
	}
}
