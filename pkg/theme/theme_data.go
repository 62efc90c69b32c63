package theme

import (
	"fmt"
	"strings"
)

// ThemeData contains all theme configuration for the range inputs of an
// application.
type ThemeData struct {
	// ColorScheme defines the color palette.
	ColorScheme ColorScheme

	// Brightness indicates if this is a light or dark theme.
	Brightness Brightness

	// SliderTheme is optional, derived from ColorScheme if nil.
	SliderTheme *SliderThemeData
}

// DefaultLightTheme returns the default light theme.
func DefaultLightTheme() *ThemeData {
	return &ThemeData{
		ColorScheme: LightColorScheme(),
		Brightness:  BrightnessLight,
	}
}

// DefaultDarkTheme returns the default dark theme.
func DefaultDarkTheme() *ThemeData {
	return &ThemeData{
		ColorScheme: DarkColorScheme(),
		Brightness:  BrightnessDark,
	}
}

// ByName returns the default theme called name ("light" or "dark").
func ByName(name string) (*ThemeData, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "light":
		return DefaultLightTheme(), nil
	case "dark":
		return DefaultDarkTheme(), nil
	default:
		return nil, fmt.Errorf("unknown theme %q", name)
	}
}

// CopyWith returns a new ThemeData with the specified fields overridden.
func (t *ThemeData) CopyWith(colorScheme *ColorScheme, brightness *Brightness) *ThemeData {
	result := &ThemeData{
		ColorScheme: t.ColorScheme,
		Brightness:  t.Brightness,
		SliderTheme: t.SliderTheme,
	}
	if colorScheme != nil {
		result.ColorScheme = *colorScheme
	}
	if brightness != nil {
		result.Brightness = *brightness
	}
	return result
}

// SliderThemeOf returns the slider theme, deriving from ColorScheme if not set.
func (t *ThemeData) SliderThemeOf() SliderThemeData {
	if t.SliderTheme != nil {
		return *t.SliderTheme
	}
	return DefaultSliderTheme(t.ColorScheme)
}
