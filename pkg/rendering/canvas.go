package rendering

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/go-drift/inputrange/pkg/graphics"
	"golang.org/x/image/font"
)

// paintPass selects which operations an ImageCanvas executes.
type paintPass int

const (
	passAll paintPass = iota
	// passShapes skips text so shapes can be supersampled.
	passShapes
	// passText draws text only, at the final resolution.
	passText
)

// ImageCanvas is a graphics.Canvas backed by an RGBA image. Shapes are
// antialiased by coverage; text is drawn with the layout's bitmap face.
type ImageCanvas struct {
	img   *image.RGBA
	scale float64
	pass  paintPass
}

// NewImageCanvas returns a canvas of the given logical size drawing at
// scale pixels per logical unit.
func NewImageCanvas(width, height int, scale float64) *ImageCanvas {
	if scale <= 0 {
		scale = 1
	}
	w := int(math.Ceil(float64(width) * scale))
	h := int(math.Ceil(float64(height) * scale))
	return &ImageCanvas{img: image.NewRGBA(image.Rect(0, 0, w, h)), scale: scale}
}

func wrapImage(img *image.RGBA, pass paintPass) *ImageCanvas {
	return &ImageCanvas{img: img, scale: 1, pass: pass}
}

// Image returns the backing image.
func (c *ImageCanvas) Image() *image.RGBA {
	return c.img
}

// Size returns the logical size of the canvas.
func (c *ImageCanvas) Size() graphics.Size {
	b := c.img.Bounds()
	return graphics.Size{Width: float64(b.Dx()) / c.scale, Height: float64(b.Dy()) / c.scale}
}

// Clear fills the entire canvas with the given color.
func (c *ImageCanvas) Clear(col graphics.Color) {
	if c.pass == passText {
		return
	}
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col.NRGBA()), image.Point{}, draw.Src)
}

// DrawRect draws a rectangle with the provided paint.
func (c *ImageCanvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	c.DrawRRect(graphics.RRect{Rect: rect}, paint)
}

// DrawRRect draws a rounded rectangle with the provided paint.
func (c *ImageCanvas) DrawRRect(rrect graphics.RRect, paint graphics.Paint) {
	if c.pass == passText {
		return
	}
	r := c.scaleRect(rrect.Rect)
	radius := rrect.Radius * c.scale
	half := r.Width() / 2
	halfH := r.Height() / 2
	center := r.Center()
	sdf := func(x, y float64) float64 {
		qx := math.Abs(x-center.X) - half + radius
		qy := math.Abs(y-center.Y) - halfH + radius
		outside := math.Hypot(math.Max(qx, 0), math.Max(qy, 0))
		return outside + math.Min(math.Max(qx, qy), 0) - radius
	}
	c.fill(r, paint, sdf)
}

// DrawCircle draws a circle with the provided paint.
func (c *ImageCanvas) DrawCircle(center graphics.Offset, radius float64, paint graphics.Paint) {
	if c.pass == passText {
		return
	}
	cx, cy, r := center.X*c.scale, center.Y*c.scale, radius*c.scale
	bounds := graphics.Rect{Left: cx - r, Top: cy - r, Right: cx + r, Bottom: cy + r}
	c.fill(bounds, paint, func(x, y float64) float64 {
		return math.Hypot(x-cx, y-cy) - r
	})
}

// DrawText draws a text layout with its top-left corner at position.
func (c *ImageCanvas) DrawText(layout *graphics.TextLayout, position graphics.Offset) {
	if c.pass == passShapes || layout == nil || layout.Face == nil {
		return
	}
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(layout.Style.Color.NRGBA()),
		Face: layout.Face,
		Dot:  layout.Dot(graphics.Offset{X: position.X * c.scale, Y: position.Y * c.scale}),
	}
	d.DrawString(layout.Text)
}

func (c *ImageCanvas) scaleRect(r graphics.Rect) graphics.Rect {
	return graphics.Rect{
		Left:   r.Left * c.scale,
		Top:    r.Top * c.scale,
		Right:  r.Right * c.scale,
		Bottom: r.Bottom * c.scale,
	}
}

// fill blends paint over every pixel near bounds, using the signed distance
// sdf (negative inside) of the shape to compute coverage.
func (c *ImageCanvas) fill(bounds graphics.Rect, paint graphics.Paint, sdf func(x, y float64) float64) {
	grow := 1.0
	if paint.Style == graphics.PaintStyleStroke {
		grow += paint.StrokeWidth * c.scale
	}
	area := image.Rect(
		int(math.Floor(bounds.Left-grow)),
		int(math.Floor(bounds.Top-grow)),
		int(math.Ceil(bounds.Right+grow)),
		int(math.Ceil(bounds.Bottom+grow)),
	).Intersect(c.img.Bounds())

	halfStroke := paint.StrokeWidth * c.scale / 2
	src := paint.Color.NRGBA()
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			d := sdf(float64(x)+0.5, float64(y)+0.5)
			if paint.Style == graphics.PaintStyleStroke {
				d = math.Abs(d+halfStroke) - halfStroke
			}
			coverage := clamp01(0.5 - d)
			if coverage > 0 {
				c.blend(x, y, src, coverage)
			}
		}
	}
}

// blend composites src over the pixel at x, y with the given coverage.
func (c *ImageCanvas) blend(x, y int, src color.NRGBA, coverage float64) {
	a := float64(src.A) / 255 * coverage
	if a <= 0 {
		return
	}
	dst := c.img.RGBAAt(x, y)
	inv := 1 - a
	c.img.SetRGBA(x, y, color.RGBA{
		R: uint8(math.Round(float64(src.R)*a + float64(dst.R)*inv)),
		G: uint8(math.Round(float64(src.G)*a + float64(dst.G)*inv)),
		B: uint8(math.Round(float64(src.B)*a + float64(dst.B)*inv)),
		A: uint8(math.Round(255*a + float64(dst.A)*inv)),
	})
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}
