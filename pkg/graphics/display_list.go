package graphics

// OpKind identifies a recorded drawing operation.
type OpKind int

const (
	OpClear OpKind = iota
	OpRect
	OpRRect
	OpCircle
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpRect:
		return "rect"
	case OpRRect:
		return "rrect"
	case OpCircle:
		return "circle"
	case OpText:
		return "text"
	default:
		return "unknown"
	}
}

// DrawOp is one recorded call. Only the fields of its Kind are set.
type DrawOp struct {
	Kind   OpKind
	Color  Color
	Rect   Rect
	RRect  RRect
	Center Offset
	Radius float64
	Paint  Paint
	Text   *TextLayout
	// Position is the top-left corner of a text layout.
	Position Offset
}

func (op DrawOp) replay(canvas Canvas) {
	switch op.Kind {
	case OpClear:
		canvas.Clear(op.Color)
	case OpRect:
		canvas.DrawRect(op.Rect, op.Paint)
	case OpRRect:
		canvas.DrawRRect(op.RRect, op.Paint)
	case OpCircle:
		canvas.DrawCircle(op.Center, op.Radius, op.Paint)
	case OpText:
		canvas.DrawText(op.Text, op.Position)
	}
}

// DisplayList is an immutable recording of a painted slider sheet. It is
// replayed once per rasterization pass.
type DisplayList struct {
	ops  []DrawOp
	size Size
}

// Paint replays the recorded operations onto canvas in order.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, op := range d.ops {
		op.replay(canvas)
	}
}

// Ops returns a copy of the recorded operations.
func (d *DisplayList) Ops() []DrawOp {
	return append([]DrawOp(nil), d.ops...)
}

// Size returns the size given to BeginRecording.
func (d *DisplayList) Size() Size {
	return d.size
}

// Len returns the number of recorded operations.
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// PictureRecorder records canvas calls into a DisplayList. The zero value
// is ready to use; calls made outside a recording are dropped.
type PictureRecorder struct {
	canvas *recordingCanvas
}

// BeginRecording starts a recording of the given size, discarding any
// unfinished one.
func (r *PictureRecorder) BeginRecording(size Size) Canvas {
	if r.canvas != nil {
		r.canvas.closed = true
	}
	r.canvas = &recordingCanvas{size: size}
	return r.canvas
}

// EndRecording finishes the recording. Without a recording in progress it
// returns an empty list.
func (r *PictureRecorder) EndRecording() *DisplayList {
	c := r.canvas
	if c == nil {
		return &DisplayList{}
	}
	r.canvas = nil
	c.closed = true
	return &DisplayList{ops: c.ops, size: c.size}
}

type recordingCanvas struct {
	ops    []DrawOp
	size   Size
	closed bool
}

func (c *recordingCanvas) record(op DrawOp) {
	if !c.closed {
		c.ops = append(c.ops, op)
	}
}

func (c *recordingCanvas) Clear(color Color) {
	c.record(DrawOp{Kind: OpClear, Color: color})
}

func (c *recordingCanvas) DrawRect(rect Rect, paint Paint) {
	c.record(DrawOp{Kind: OpRect, Rect: rect, Paint: paint})
}

func (c *recordingCanvas) DrawRRect(rrect RRect, paint Paint) {
	c.record(DrawOp{Kind: OpRRect, RRect: rrect, Paint: paint})
}

func (c *recordingCanvas) DrawCircle(center Offset, radius float64, paint Paint) {
	c.record(DrawOp{Kind: OpCircle, Center: center, Radius: radius, Paint: paint})
}

func (c *recordingCanvas) DrawText(layout *TextLayout, position Offset) {
	c.record(DrawOp{Kind: OpText, Text: layout, Position: position})
}

func (c *recordingCanvas) Size() Size {
	return c.size
}
