package graphics

import (
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DefaultFace is the bitmap face used for slider labels.
var DefaultFace font.Face = basicfont.Face7x13

// TextStyle describes how text should be rendered.
type TextStyle struct {
	Color Color
}

// WithColor returns a copy of the TextStyle with the specified color.
func (s TextStyle) WithColor(c Color) TextStyle {
	s.Color = c
	return s
}

// TextLayout contains measured text metrics and a resolved font face.
type TextLayout struct {
	Text    string
	Style   TextStyle
	Size    Size
	Ascent  float64
	Descent float64
	Face    font.Face
}

// LayoutText measures text in DefaultFace.
func LayoutText(text string, style TextStyle) *TextLayout {
	return LayoutTextWithFace(text, style, DefaultFace)
}

// LayoutTextWithFace measures text in face.
func LayoutTextWithFace(text string, style TextStyle, face font.Face) *TextLayout {
	metrics := face.Metrics()
	ascent := fixedToFloat(metrics.Ascent)
	descent := fixedToFloat(metrics.Descent)
	return &TextLayout{
		Text:    text,
		Style:   style,
		Size:    Size{Width: fixedToFloat(font.MeasureString(face, text)), Height: ascent + descent},
		Ascent:  ascent,
		Descent: descent,
		Face:    face,
	}
}

// Dot returns the baseline origin for drawing the layout with its top-left
// corner at position.
func (l *TextLayout) Dot(position Offset) fixed.Point26_6 {
	return fixed.Point26_6{
		X: floatToFixed(position.X),
		Y: floatToFixed(math.Round(position.Y + l.Ascent)),
	}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
