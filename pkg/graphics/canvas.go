package graphics

// Canvas is the drawing surface sliders are painted on. PictureRecorder
// implements it to build display lists; rasterizers implement it to fill
// pixels.
type Canvas interface {
	// Clear paints every pixel with color.
	Clear(color Color)
	DrawRect(rect Rect, paint Paint)
	DrawRRect(rrect RRect, paint Paint)
	// DrawCircle paints a circle; handles are circles.
	DrawCircle(center Offset, radius float64, paint Paint)
	// DrawText paints layout with its top-left corner at position.
	DrawText(layout *TextLayout, position Offset)
	Size() Size
}
