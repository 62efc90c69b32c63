package theme

import "testing"

func TestSliderThemeOf_DerivesFromColorScheme(t *testing.T) {
	data := DefaultDarkTheme()
	slider := data.SliderThemeOf()
	if slider.ActiveTrackColor != data.ColorScheme.Primary {
		t.Errorf("ActiveTrackColor = %v, want %v", slider.ActiveTrackColor, data.ColorScheme.Primary)
	}
	if slider.TrackHeight <= 0 || slider.HandleRadius <= 0 {
		t.Errorf("dimensions = %v, %v, want positive", slider.TrackHeight, slider.HandleRadius)
	}
}

func TestSliderThemeOf_Override(t *testing.T) {
	custom := DefaultSliderTheme(LightColorScheme())
	custom.TrackHeight = 10
	data := DefaultLightTheme()
	data.SliderTheme = &custom
	if got := data.SliderThemeOf().TrackHeight; got != 10 {
		t.Errorf("TrackHeight = %v, want 10", got)
	}
}

func TestByName(t *testing.T) {
	tests := []struct {
		name    string
		want    Brightness
		wantErr bool
	}{
		{"", BrightnessLight, false},
		{"light", BrightnessLight, false},
		{" Dark ", BrightnessDark, false},
		{"solarized", 0, true},
	}
	for _, tt := range tests {
		got, err := ByName(tt.name)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ByName(%q) error = nil, want error", tt.name)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ByName(%q) error = %v", tt.name, err)
		}
		if got.Brightness != tt.want {
			t.Errorf("ByName(%q).Brightness = %v, want %v", tt.name, got.Brightness, tt.want)
		}
	}
}

func TestSliderStateColors(t *testing.T) {
	s := DefaultSliderTheme(LightColorScheme())
	if s.ActiveColor(true) != s.DisabledActiveTrackColor {
		t.Error("ActiveColor(disabled) did not use the disabled color")
	}
	if s.HandleFill(false, true) != s.DraggingHandleColor {
		t.Error("HandleFill(dragging) did not use the dragging color")
	}
	if s.HandleFill(true, true) != s.DisabledHandleColor {
		t.Error("HandleFill(disabled, dragging) did not prefer the disabled color")
	}
	if got := s.SuggestedTrackColor.Alpha(); got == 1 {
		t.Errorf("SuggestedTrackColor alpha = %v, want translucent", got)
	}
}
