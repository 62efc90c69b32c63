// Package gestures defines the pointer events consumed by the range input and
// the document-level listener registry that keeps a drag alive after the
// pointer leaves the track.
package gestures

import "github.com/go-drift/inputrange/pkg/graphics"

// PointerPhase is the lifecycle stage of a pointer event.
type PointerPhase int

const (
	PointerPhaseDown PointerPhase = iota
	PointerPhaseMove
	PointerPhaseUp
	PointerPhaseCancel
)

func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// PointerKind distinguishes mouse input from touch input.
type PointerKind int

const (
	PointerKindMouse PointerKind = iota
	PointerKindTouch
)

// TouchPoint is a single contact of a touch event.
type TouchPoint struct {
	ID       int64
	Position graphics.Offset
}

// PointerEvent is a pointer or touch event in client (document) coordinates.
type PointerEvent struct {
	PointerID int64
	Kind      PointerKind
	Phase     PointerPhase
	// Position is the client position for mouse events.
	Position graphics.Offset
	// Delta is the movement since the previous event of the same pointer,
	// when the host knows it.
	Delta graphics.Offset
	// Touches lists the active contacts of a touch event, first contact first.
	Touches []TouchPoint

	defaultPrevented bool
}

// ClientPosition returns the position the event should be interpreted at:
// the first touch point for touch events that carry one, Position otherwise.
func (e *PointerEvent) ClientPosition() graphics.Offset {
	if e.Kind == PointerKindTouch && len(e.Touches) > 0 {
		return e.Touches[0].Position
	}
	return e.Position
}

// PreventDefault marks the event so hosts skip their default handling, such
// as synthesizing mouse events from touches or scrolling.
func (e *PointerEvent) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *PointerEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// MouseEvent builds a mouse event at the given client position.
func MouseEvent(phase PointerPhase, x, y float64) *PointerEvent {
	return &PointerEvent{
		Kind:     PointerKindMouse,
		Phase:    phase,
		Position: graphics.Offset{X: x, Y: y},
	}
}

// TouchEvent builds a single-contact touch event at the given client position.
func TouchEvent(phase PointerPhase, id int64, x, y float64) *PointerEvent {
	pos := graphics.Offset{X: x, Y: y}
	return &PointerEvent{
		PointerID: id,
		Kind:      PointerKindTouch,
		Phase:     phase,
		Position:  pos,
		Touches:   []TouchPoint{{ID: id, Position: pos}},
	}
}
