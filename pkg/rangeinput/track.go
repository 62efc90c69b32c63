package rangeinput

import (
	"github.com/go-drift/inputrange/pkg/errors"
	"github.com/go-drift/inputrange/pkg/gestures"
	"github.com/go-drift/inputrange/pkg/graphics"
)

// Element is the host surface a Track is mounted on.
type Element interface {
	// BoundingClientRect returns the element rectangle in client coordinates.
	BoundingClientRect() graphics.Rect
	// OwnerDocument returns the document that receives move and up events.
	OwnerDocument() *gestures.Document
}

// CaptureMode is a delegate's answer to a press on the track.
type CaptureMode int

const (
	// CaptureNone ignores the press; no document listeners are attached.
	CaptureNone CaptureMode = iota
	// CapturePosition reports every move as a local track position.
	CapturePosition
	// CaptureDelta reports consecutive move events so the delegate can shift
	// the whole active range. Moves are ignored while the track is not
	// draggable; the release is still reported.
	CaptureDelta
)

func (m CaptureMode) String() string {
	switch m {
	case CapturePosition:
		return "position"
	case CaptureDelta:
		return "delta"
	default:
		return "none"
	}
}

// TrackDelegate receives the geometry reported by a Track. It speaks in
// pixels only; the Track has no notion of bounds, steps or values.
type TrackDelegate interface {
	// TrackPressed is called on pointer-down with the local position and
	// decides whether and how the drag is captured.
	TrackPressed(event *gestures.PointerEvent, position graphics.Offset) CaptureMode
	// TrackMoved is called for every move while capturing positions.
	TrackMoved(event *gestures.PointerEvent, position graphics.Offset)
	// TrackDragged is called with the current and previous move events while
	// capturing deltas. The first move after a press only sets the reference.
	TrackDragged(event, previous *gestures.PointerEvent)
	// TrackReleased is called on pointer-up after the listeners are removed.
	TrackReleased(event *gestures.PointerEvent)
}

// Track is the drag surface of a slider.
type Track struct {
	delegate  TrackDelegate
	draggable bool
	element   Element

	mode      CaptureMode
	dragEvent *gestures.PointerEvent
	moveSub   *gestures.Subscription
	upSub     *gestures.Subscription

	handleMove gestures.Handler
	handleUp   gestures.Handler
}

// NewTrack creates a track reporting to delegate. Draggable enables
// whole-range dragging.
func NewTrack(delegate TrackDelegate, draggable bool) *Track {
	t := &Track{delegate: delegate, draggable: draggable}
	t.handleMove = t.onDocumentMove
	t.handleUp = t.onDocumentUp
	return t
}

// Draggable reports whether whole-range dragging is enabled.
func (t *Track) Draggable() bool {
	return t.draggable
}

// SetDraggable toggles whole-range dragging for subsequent presses.
func (t *Track) SetDraggable(draggable bool) {
	t.draggable = draggable
}

// Mount attaches the track to an element. Mounting again replaces the element
// and drops any drag in progress.
func (t *Track) Mount(el Element) {
	if t.element != nil {
		t.Unmount()
	}
	t.element = el
}

// Unmount detaches every document listener and forgets the element.
func (t *Track) Unmount() {
	t.removeDocumentListeners()
	t.mode = CaptureNone
	t.dragEvent = nil
	t.element = nil
}

// Mounted reports whether the track has an element.
func (t *Track) Mounted() bool {
	return t.element != nil
}

// Capturing reports the capture mode of the drag in progress.
func (t *Track) Capturing() CaptureMode {
	return t.mode
}

// ClientRect reads the element's bounding rectangle. The rectangle is read
// on every call and never cached. Calling it on an unmounted track is a
// programming error and panics with a geometry error.
func (t *Track) ClientRect() graphics.Rect {
	if t.element == nil {
		panic(&errors.InputRangeError{
			Op:         "rangeinput.Track.ClientRect",
			Kind:       errors.KindGeometry,
			Err:        errors.ErrNotMounted,
			StackTrace: errors.CaptureStack(),
		})
	}
	return t.element.BoundingClientRect()
}

// LocalPosition converts an event's client position into an offset from the
// left edge of the track. The vertical component is always 0.
func (t *Track) LocalPosition(event *gestures.PointerEvent) graphics.Offset {
	rect := t.ClientRect()
	return graphics.Offset{X: event.ClientPosition().X - rect.Left, Y: 0}
}

// HandlePointerDown reports a press to the delegate and, when the delegate
// captures it, listens for move and up events on the owning document.
func (t *Track) HandlePointerDown(event *gestures.PointerEvent) graphics.Offset {
	position := t.LocalPosition(event)
	mode := t.delegate.TrackPressed(event, position)
	t.mode = mode
	t.dragEvent = nil
	if mode != CaptureNone {
		t.addDocumentMoveListener()
		t.addDocumentUpListener()
	}
	return position
}

// HandleTouchStart suppresses the host's default touch handling and treats
// the touch as a press.
func (t *Track) HandleTouchStart(event *gestures.PointerEvent) graphics.Offset {
	event.PreventDefault()
	return t.HandlePointerDown(event)
}

// HandlePointerUp ends the drag in progress. Document up events call it; hosts
// may also call it directly.
func (t *Track) HandlePointerUp(event *gestures.PointerEvent) {
	if t.mode == CaptureNone {
		return
	}
	t.removeDocumentListeners()
	t.mode = CaptureNone
	t.dragEvent = nil
	t.delegate.TrackReleased(event)
}

// Cancel drops the drag in progress without notifying the delegate.
func (t *Track) Cancel() {
	t.removeDocumentListeners()
	t.mode = CaptureNone
	t.dragEvent = nil
}

func (t *Track) onDocumentMove(event *gestures.PointerEvent) {
	switch t.mode {
	case CapturePosition:
		t.delegate.TrackMoved(event, t.LocalPosition(event))
	case CaptureDelta:
		if !t.draggable {
			return
		}
		if t.dragEvent != nil {
			t.delegate.TrackDragged(event, t.dragEvent)
		}
		ref := *event
		t.dragEvent = &ref
	}
}

func (t *Track) onDocumentUp(event *gestures.PointerEvent) {
	t.HandlePointerUp(event)
}

func (t *Track) document() *gestures.Document {
	if t.element == nil {
		return nil
	}
	return t.element.OwnerDocument()
}

func (t *Track) addDocumentMoveListener() {
	t.removeDocumentMoveListener()
	if doc := t.document(); doc != nil {
		t.moveSub = doc.Listen(gestures.PointerPhaseMove, t.handleMove)
	}
}

func (t *Track) addDocumentUpListener() {
	t.removeDocumentUpListener()
	if doc := t.document(); doc != nil {
		t.upSub = doc.Listen(gestures.PointerPhaseUp, t.handleUp)
	}
}

func (t *Track) removeDocumentMoveListener() {
	t.moveSub.Cancel()
	t.moveSub = nil
}

func (t *Track) removeDocumentUpListener() {
	t.upSub.Cancel()
	t.upSub = nil
}

func (t *Track) removeDocumentListeners() {
	t.removeDocumentMoveListener()
	t.removeDocumentUpListener()
}
