package theme

import "github.com/go-drift/inputrange/pkg/graphics"

// SliderThemeData defines default styling for range sliders.
type SliderThemeData struct {
	// TrackColor is the color of the whole track.
	TrackColor graphics.Color
	// ActiveTrackColor is the color of the segment between the handles.
	ActiveTrackColor graphics.Color
	// SuggestedTrackColor is the color of the suggested segment.
	SuggestedTrackColor graphics.Color
	// ErrorTrackColor is the color of the error band around a single value.
	ErrorTrackColor graphics.Color
	// HandleColor is the handle fill color.
	HandleColor graphics.Color
	// HandleBorderColor is the handle outline color.
	HandleBorderColor graphics.Color
	// DraggingHandleColor is the handle fill color during a drag.
	DraggingHandleColor graphics.Color
	// LabelColor is the color of bound and value labels.
	LabelColor graphics.Color
	// DisabledActiveTrackColor is the active segment color when disabled.
	DisabledActiveTrackColor graphics.Color
	// DisabledHandleColor is the handle color when disabled.
	DisabledHandleColor graphics.Color
	// BackgroundColor fills the area behind the slider in rendered previews.
	BackgroundColor graphics.Color
	// TrackHeight is the thickness of the track.
	TrackHeight float64
	// HandleRadius is the radius of a handle.
	HandleRadius float64
	// HandleBorderWidth is the width of the handle outline.
	HandleBorderWidth float64
	// Height is the default height of a slider including its labels.
	Height float64
}

// DefaultSliderTheme returns SliderThemeData derived from a ColorScheme.
func DefaultSliderTheme(colors ColorScheme) SliderThemeData {
	return SliderThemeData{
		TrackColor:               colors.SurfaceVariant,
		ActiveTrackColor:         colors.Primary,
		SuggestedTrackColor:      colors.Tertiary.WithAlpha(0.5),
		ErrorTrackColor:          colors.Error.WithAlpha(0.6),
		HandleColor:              colors.Surface,
		HandleBorderColor:        colors.Primary,
		DraggingHandleColor:      colors.Primary,
		LabelColor:               colors.OnSurfaceVariant,
		DisabledActiveTrackColor: colors.Outline,
		DisabledHandleColor:      colors.SurfaceVariant,
		BackgroundColor:          colors.Background,
		TrackHeight:              4,
		HandleRadius:             9,
		HandleBorderWidth:        2,
		Height:                   56,
	}
}

// ActiveColor returns the active segment color for the given state.
func (s SliderThemeData) ActiveColor(disabled bool) graphics.Color {
	if disabled {
		return s.DisabledActiveTrackColor
	}
	return s.ActiveTrackColor
}

// HandleFill returns the handle fill color for the given state.
func (s SliderThemeData) HandleFill(disabled, dragging bool) graphics.Color {
	switch {
	case disabled:
		return s.DisabledHandleColor
	case dragging:
		return s.DraggingHandleColor
	default:
		return s.HandleColor
	}
}
