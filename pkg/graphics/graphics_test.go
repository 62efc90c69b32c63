package graphics

import "testing"

func TestRectContains(t *testing.T) {
	r := RectFromLTWH(10, 20, 100, 10)
	tests := []struct {
		p    Offset
		want bool
	}{
		{Offset{X: 10, Y: 20}, true},
		{Offset{X: 109.9, Y: 29.9}, true},
		{Offset{X: 110, Y: 25}, false},
		{Offset{X: 9, Y: 25}, false},
		{Offset{X: 50, Y: 30}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRectInset(t *testing.T) {
	r := RectFromLTWH(0, 0, 100, 20).Inset(10, 5)
	if r.Left != 10 || r.Top != 5 || r.Width() != 80 || r.Height() != 10 {
		t.Errorf("Inset(10, 5) = %+v", r)
	}
	if grown := r.Inset(-1, 0); grown.Left != 9 || grown.Width() != 82 {
		t.Errorf("Inset(-1, 0) = %+v", grown)
	}
}

func TestColorConversions(t *testing.T) {
	c := RGB(0xBD, 0x93, 0xF9)
	if got := c.Hex(); got != "#BD93F9" {
		t.Errorf("Hex() = %q, want %q", got, "#BD93F9")
	}
	n := c.WithAlpha(0.5).NRGBA()
	if n.R != 0xBD || n.G != 0x93 || n.B != 0xF9 || n.A != 128 {
		t.Errorf("NRGBA() = %+v", n)
	}
	if a := ColorBlack.Alpha(); a != 1 {
		t.Errorf("Alpha() = %v, want 1", a)
	}
}

func TestLayoutText(t *testing.T) {
	layout := LayoutText("25000", TextStyle{Color: ColorBlack})
	if layout.Size.Width != 35 {
		t.Errorf("Width = %v, want 35", layout.Size.Width)
	}
	if layout.Size.Height != 13 || layout.Ascent != 11 {
		t.Errorf("Height = %v Ascent = %v, want 13 and 11", layout.Size.Height, layout.Ascent)
	}
	dot := layout.Dot(Offset{X: 2, Y: 4})
	if dot.X.Round() != 2 || dot.Y.Round() != 15 {
		t.Errorf("Dot() = %v, want (2, 15)", dot)
	}
}

func TestRRectRadiusLimit(t *testing.T) {
	rr := RRectFromRectAndRadius(RectFromLTWH(0, 0, 100, 4), 10)
	if rr.Radius != 2 {
		t.Errorf("Radius = %v, want 2", rr.Radius)
	}
}

type countingCanvas struct {
	rects, circles, texts int
}

func (c *countingCanvas) Clear(Color)                       {}
func (c *countingCanvas) DrawRect(Rect, Paint)              { c.rects++ }
func (c *countingCanvas) DrawRRect(RRect, Paint)            { c.rects++ }
func (c *countingCanvas) DrawCircle(Offset, float64, Paint) { c.circles++ }
func (c *countingCanvas) DrawText(*TextLayout, Offset)      { c.texts++ }
func (c *countingCanvas) Size() Size                        { return Size{} }

func TestPictureRecorderReplay(t *testing.T) {
	var recorder PictureRecorder
	canvas := recorder.BeginRecording(Size{Width: 10, Height: 10})
	canvas.Clear(ColorWhite)
	canvas.DrawRect(RectFromLTWH(0, 0, 5, 5), FillPaint(ColorBlack))
	canvas.DrawCircle(Offset{X: 5, Y: 5}, 2, StrokePaint(ColorBlack, 1))
	canvas.DrawText(LayoutText("x", TextStyle{}), Offset{})
	dl := recorder.EndRecording()

	canvas.DrawRect(RectFromLTWH(0, 0, 1, 1), FillPaint(ColorBlack))
	if dl.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", dl.Len())
	}
	var counter countingCanvas
	dl.Paint(&counter)
	if counter.rects != 1 || counter.circles != 1 || counter.texts != 1 {
		t.Errorf("replayed %+v", counter)
	}
}

func TestDisplayListOps(t *testing.T) {
	var recorder PictureRecorder
	first := recorder.BeginRecording(Size{Width: 4, Height: 4})
	first.Clear(ColorBlack)
	canvas := recorder.BeginRecording(Size{Width: 8, Height: 8})
	first.DrawRect(RectFromLTWH(0, 0, 1, 1), FillPaint(ColorWhite))
	canvas.DrawCircle(Offset{X: 4, Y: 4}, 3, FillPaint(ColorWhite))
	dl := recorder.EndRecording()

	ops := dl.Ops()
	if len(ops) != 1 || ops[0].Kind != OpCircle || ops[0].Radius != 3 {
		t.Fatalf("Ops() = %+v, want one circle of radius 3", ops)
	}
	if got := ops[0].Kind.String(); got != "circle" {
		t.Errorf("Kind.String() = %q, want %q", got, "circle")
	}
	if dl.Size() != (Size{Width: 8, Height: 8}) {
		t.Errorf("Size() = %v", dl.Size())
	}
	if empty := recorder.EndRecording(); empty.Len() != 0 {
		t.Errorf("EndRecording() without recording has %d ops", empty.Len())
	}
}
