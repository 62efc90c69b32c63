package testing

import (
	"github.com/go-drift/inputrange/pkg/gestures"
	"github.com/go-drift/inputrange/pkg/graphics"
)

// pointerState tracks the simulated pointer between events.
type pointerState struct {
	id       int64
	kind     gestures.PointerKind
	position graphics.Offset
}

// nextPointerID is incremented for each new pointer to avoid collisions.
var nextPointerID int64

func allocPointerID() int64 {
	nextPointerID++
	return nextPointerID
}

// client converts a track-local x into a client position at the vertical
// center of the track.
func (t *Tester) client(x float64) graphics.Offset {
	rect := t.Surface.Rect
	return graphics.Offset{X: rect.Left + x, Y: rect.Center().Y}
}

// PressAt sends a mouse press at local x to the track.
func (t *Tester) PressAt(x float64) *gestures.PointerEvent {
	pos := t.client(x)
	t.pointers = pointerState{id: allocPointerID(), kind: gestures.PointerKindMouse, position: pos}
	event := t.event(gestures.PointerPhaseDown, pos)
	t.Range.Track().HandlePointerDown(event)
	return event
}

// PressAtFraction presses at a fraction of the track width.
func (t *Tester) PressAtFraction(f float64) *gestures.PointerEvent {
	return t.PressAt(f * t.Surface.Rect.Width())
}

// TouchAt sends a touch start at local x to the track. The returned event
// reports whether the track prevented the default handling.
func (t *Tester) TouchAt(x float64) *gestures.PointerEvent {
	pos := t.client(x)
	t.pointers = pointerState{id: allocPointerID(), kind: gestures.PointerKindTouch, position: pos}
	event := t.event(gestures.PointerPhaseDown, pos)
	t.Range.Track().HandleTouchStart(event)
	return event
}

// MoveTo sends a move at local x to the document, as a host does for every
// pointer motion whether or not it is over the track.
func (t *Tester) MoveTo(x float64) {
	pos := t.client(x)
	event := t.event(gestures.PointerPhaseMove, pos)
	event.Delta = pos.Sub(t.pointers.position)
	t.pointers.position = pos
	t.Document.Dispatch(event)
}

// MoveBy moves the pointer by dx pixels.
func (t *Tester) MoveBy(dx float64) {
	t.MoveTo(t.pointers.position.X - t.Surface.Rect.Left + dx)
}

// Release sends a pointer-up at the last position to the document.
func (t *Tester) Release() {
	event := t.event(gestures.PointerPhaseUp, t.pointers.position)
	t.Document.Dispatch(event)
}

// TapAt presses and releases at local x.
func (t *Tester) TapAt(x float64) {
	t.PressAt(x)
	t.Release()
}

// DragFrom presses at start, moves by delta and releases. A zero-length move
// at start precedes the real one so whole-range drags have a reference event
// before the delta.
func (t *Tester) DragFrom(start, delta float64) {
	t.PressAt(start)
	t.MoveTo(start)
	t.MoveTo(start + delta)
	t.Release()
}

func (t *Tester) event(phase gestures.PointerPhase, pos graphics.Offset) *gestures.PointerEvent {
	if t.pointers.kind == gestures.PointerKindTouch {
		event := gestures.TouchEvent(phase, t.pointers.id, pos.X, pos.Y)
		if phase == gestures.PointerPhaseUp {
			event.Touches = nil
			event.Position = pos
		}
		return event
	}
	event := gestures.MouseEvent(phase, pos.X, pos.Y)
	event.PointerID = t.pointers.id
	return event
}
