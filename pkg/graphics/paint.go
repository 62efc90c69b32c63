package graphics

// PaintStyle determines how shapes are filled.
type PaintStyle int

const (
	// PaintStyleFill fills the interior of shapes.
	PaintStyleFill PaintStyle = iota
	// PaintStyleStroke draws the outline of shapes.
	PaintStyleStroke
)

func (s PaintStyle) String() string {
	if s == PaintStyleStroke {
		return "stroke"
	}
	return "fill"
}

// Paint describes how to draw a shape on the canvas.
type Paint struct {
	Color       Color
	Style       PaintStyle
	StrokeWidth float64 // Width of stroke in pixels
}

// FillPaint returns a fill paint of color c.
func FillPaint(c Color) Paint {
	return Paint{Color: c, Style: PaintStyleFill}
}

// StrokePaint returns a stroke paint of color c and the given width.
func StrokePaint(c Color, width float64) Paint {
	return Paint{Color: c, Style: PaintStyleStroke, StrokeWidth: width}
}

// RRect is a rectangle with uniformly rounded corners.
type RRect struct {
	Rect   Rect
	Radius float64
}

// RRectFromRectAndRadius creates a rounded rectangle. The radius is limited
// to half of the shorter side.
func RRectFromRectAndRadius(rect Rect, radius float64) RRect {
	limit := min(rect.Width(), rect.Height()) / 2
	return RRect{Rect: rect, Radius: max(0, min(radius, limit))}
}
