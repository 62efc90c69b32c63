package rendering

import (
	"image"
	"math"

	"github.com/go-drift/inputrange/pkg/graphics"
	"github.com/go-drift/inputrange/pkg/rangeinput"
	"github.com/go-drift/inputrange/pkg/theme"
	xdraw "golang.org/x/image/draw"
)

// DefaultSupersample is the shape oversampling factor used by Render.
const DefaultSupersample = 2

// Slider is one row of a rendered sheet.
type Slider struct {
	Title    string
	Snapshot rangeinput.Snapshot
}

// Options control Render.
type Options struct {
	// Width is the image width in pixels.
	Width int
	// Padding surrounds the sheet and separates rows.
	Padding float64
	// Supersample oversamples shapes before downscaling. Zero selects
	// DefaultSupersample.
	Supersample int
	Theme       theme.SliderThemeData
}

// Sheet is the layout of a rendered column of sliders.
type Sheet struct {
	Size    graphics.Size
	Titles  []graphics.Offset
	Sliders []SliderLayout
}

// LayoutSheet stacks count sliders, each under its title, in a column of
// the given width.
func LayoutSheet(count int, opts Options) Sheet {
	st := opts.Theme
	titleHeight := graphics.LayoutText("0", graphics.TextStyle{}).Size.Height
	rowHeight := SliderHeight(st)
	width := float64(opts.Width)

	sheet := Sheet{}
	y := opts.Padding
	for i := 0; i < count; i++ {
		sheet.Titles = append(sheet.Titles, graphics.Offset{X: opts.Padding, Y: y})
		y += titleHeight + labelGap
		bounds := graphics.Rect{Left: opts.Padding, Top: y, Right: width - opts.Padding, Bottom: y + rowHeight}
		sheet.Sliders = append(sheet.Sliders, LayoutSlider(bounds, st))
		y += rowHeight + opts.Padding
	}
	sheet.Size = graphics.Size{Width: width, Height: math.Max(y, opts.Padding*2)}
	return sheet
}

// Record paints the sheet of sliders into a display list.
func Record(sliders []Slider, opts Options) *graphics.DisplayList {
	sheet := LayoutSheet(len(sliders), opts)
	st := opts.Theme
	title := graphics.TextStyle{Color: st.LabelColor}

	var recorder graphics.PictureRecorder
	canvas := recorder.BeginRecording(sheet.Size)
	canvas.Clear(st.BackgroundColor)
	for i, s := range sliders {
		if s.Title != "" {
			canvas.DrawText(graphics.LayoutText(s.Title, title), sheet.Titles[i])
		}
		PaintSlider(canvas, sheet.Sliders[i], s.Snapshot, st)
	}
	return recorder.EndRecording()
}

// Render rasterizes a sheet of sliders. Shapes are drawn at Supersample
// times the resolution and scaled down with Catmull-Rom; text is drawn
// afterwards at the final resolution so the bitmap face stays crisp.
func Render(sliders []Slider, opts Options) *image.RGBA {
	dl := Record(sliders, opts)
	return Rasterize(dl, opts.Supersample)
}

// Rasterize replays a display list into an image.
func Rasterize(dl *graphics.DisplayList, supersample int) *image.RGBA {
	if supersample <= 0 {
		supersample = DefaultSupersample
	}
	size := dl.Size()
	w := int(math.Ceil(size.Width))
	h := int(math.Ceil(size.Height))

	hi := NewImageCanvas(w, h, float64(supersample))
	hi.pass = passShapes
	dl.Paint(hi)

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(out, out.Bounds(), hi.Image(), hi.Image().Bounds(), xdraw.Src, nil)

	dl.Paint(wrapImage(out, passText))
	return out
}
