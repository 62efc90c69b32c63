// Package rendering paints range sliders onto a graphics.Canvas and
// rasterizes them into images.
package rendering

import (
	"github.com/go-drift/inputrange/pkg/graphics"
	"github.com/go-drift/inputrange/pkg/rangeinput"
	"github.com/go-drift/inputrange/pkg/theme"
)

// labelGap separates labels from the track and handles.
const labelGap = 4

// SliderLayout positions a slider inside its bounds.
type SliderLayout struct {
	// Bounds is the area occupied by the slider, labels included.
	Bounds graphics.Rect
	// Track is the drag surface. Handles are centered on its left and right
	// edges at the bound ends.
	Track graphics.Rect
}

// LayoutSlider lays out a slider inside bounds.
func LayoutSlider(bounds graphics.Rect, st theme.SliderThemeData) SliderLayout {
	pad := st.HandleRadius + st.HandleBorderWidth
	textHeight := graphics.LayoutText("0", graphics.TextStyle{}).Size.Height
	centerY := bounds.Top + textHeight + labelGap + pad
	track := graphics.Rect{
		Left:   bounds.Left + pad,
		Top:    centerY - st.TrackHeight/2,
		Right:  bounds.Right - pad,
		Bottom: centerY + st.TrackHeight/2,
	}
	return SliderLayout{Bounds: bounds, Track: track}
}

// LayoutAroundTrack returns the layout whose track is the given rectangle,
// as when the track is laid out by the host.
func LayoutAroundTrack(track graphics.Rect, st theme.SliderThemeData) SliderLayout {
	pad := st.HandleRadius + st.HandleBorderWidth
	textHeight := graphics.LayoutText("0", graphics.TextStyle{}).Size.Height
	reach := textHeight + labelGap + pad
	centerY := track.Center().Y
	return SliderLayout{
		Bounds: graphics.Rect{
			Left:   track.Left - pad,
			Top:    centerY - reach,
			Right:  track.Right + pad,
			Bottom: centerY + reach,
		},
		Track: track,
	}
}

// SliderHeight returns the height LayoutSlider needs for the value labels,
// handles and bound labels.
func SliderHeight(st theme.SliderThemeData) float64 {
	pad := st.HandleRadius + st.HandleBorderWidth
	textHeight := graphics.LayoutText("0", graphics.TextStyle{}).Size.Height
	return max(st.Height, 2*(textHeight+labelGap+pad))
}

// PaintSlider paints snap into canvas.
func PaintSlider(canvas graphics.Canvas, layout SliderLayout, snap rangeinput.Snapshot, st theme.SliderThemeData) {
	track := layout.Track
	canvas.DrawRRect(graphics.RRectFromRectAndRadius(track, st.TrackHeight/2), graphics.FillPaint(st.TrackColor))

	if snap.HasSuggested {
		paintSegment(canvas, track, snap.Suggested, st.SuggestedTrackColor, st.TrackHeight)
	}
	switch {
	case snap.HasError:
		paintSegment(canvas, track, snap.Error, st.ErrorTrackColor, st.TrackHeight)
	case snap.HasActive:
		paintSegment(canvas, track, snap.Active, st.ActiveColor(snap.Disabled), st.TrackHeight)
	}

	for _, h := range snap.Handles {
		center := handleCenter(track, snap.Percentages, h)
		dragging := snap.Dragging && (snap.ActiveHandle == h || snap.ActiveHandle == rangeinput.HandleActiveTrack)
		canvas.DrawCircle(center, st.HandleRadius, graphics.FillPaint(st.HandleFill(snap.Disabled, dragging)))
		border := st.HandleBorderColor
		if snap.Disabled {
			border = st.DisabledActiveTrackColor
		}
		canvas.DrawCircle(center, st.HandleRadius, graphics.StrokePaint(border, st.HandleBorderWidth))
	}

	paintLabels(canvas, layout, snap, st)
}

// RecordSlider records PaintSlider into a display list the size of
// layout.Bounds.
func RecordSlider(layout SliderLayout, snap rangeinput.Snapshot, st theme.SliderThemeData) *graphics.DisplayList {
	var recorder graphics.PictureRecorder
	canvas := recorder.BeginRecording(layout.Bounds.Size())
	PaintSlider(canvas, layout, snap, st)
	return recorder.EndRecording()
}

func paintSegment(canvas graphics.Canvas, track graphics.Rect, seg rangeinput.Segment, color graphics.Color, height float64) {
	if seg.Width <= 0 {
		return
	}
	rect := graphics.Rect{
		Left:   track.Left + seg.Left*track.Width(),
		Top:    track.Top,
		Right:  track.Left + seg.Right()*track.Width(),
		Bottom: track.Bottom,
	}
	canvas.DrawRRect(graphics.RRectFromRectAndRadius(rect, height/2), graphics.FillPaint(color))
}

func handleCenter(track graphics.Rect, p rangeinput.Percentages, h rangeinput.Handle) graphics.Offset {
	pct := p.Max
	if h == rangeinput.HandleMin {
		pct = p.Min
	}
	return graphics.Offset{
		X: track.Left + rangeinput.Clamp(pct, 0, 1)*track.Width(),
		Y: track.Center().Y,
	}
}

// paintLabels draws the bound labels under the track ends and the value
// labels above the handles. Value labels that would overlap are joined.
func paintLabels(canvas graphics.Canvas, layout SliderLayout, snap rangeinput.Snapshot, st theme.SliderThemeData) {
	style := graphics.TextStyle{Color: st.LabelColor}
	track := layout.Track
	bounds := layout.Bounds
	below := track.Center().Y + st.HandleRadius + st.HandleBorderWidth + labelGap

	var values []rangeinput.Label
	for _, label := range snap.Labels {
		text := graphics.LayoutText(label.Text, style)
		switch label.Kind {
		case rangeinput.LabelMinBound:
			canvas.DrawText(text, graphics.Offset{X: bounds.Left, Y: below})
		case rangeinput.LabelMaxBound:
			canvas.DrawText(text, graphics.Offset{X: bounds.Right - text.Size.Width, Y: below})
		default:
			values = append(values, label)
		}
	}

	if len(values) == 2 {
		lo := graphics.LayoutText(values[0].Text, style)
		hi := graphics.LayoutText(values[1].Text, style)
		loRight := labelLeft(track, bounds, values[0].Percentage, lo.Size.Width) + lo.Size.Width
		hiLeft := labelLeft(track, bounds, values[1].Percentage, hi.Size.Width)
		if loRight+labelGap > hiLeft {
			joined := values[0]
			joined.Text = values[0].Text + " - " + values[1].Text
			joined.Percentage = (values[0].Percentage + values[1].Percentage) / 2
			values = []rangeinput.Label{joined}
		}
	}
	for _, label := range values {
		text := graphics.LayoutText(label.Text, style)
		left := labelLeft(track, bounds, label.Percentage, text.Size.Width)
		canvas.DrawText(text, graphics.Offset{X: left, Y: bounds.Top})
	}
}

// labelLeft centers a label of the given width over pct of the track,
// keeping it inside bounds.
func labelLeft(track, bounds graphics.Rect, pct, width float64) float64 {
	center := track.Left + rangeinput.Clamp(pct, 0, 1)*track.Width()
	return rangeinput.Clamp(center-width/2, bounds.Left, max(bounds.Left, bounds.Right-width))
}
