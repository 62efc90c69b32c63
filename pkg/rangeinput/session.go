package rangeinput

import "github.com/go-drift/inputrange/pkg/graphics"

// SessionState is the stage of a drag session.
type SessionState int

const (
	SessionIdle SessionState = iota
	SessionPressed
	SessionDragging
)

func (s SessionState) String() string {
	switch s {
	case SessionPressed:
		return "pressed"
	case SessionDragging:
		return "dragging"
	default:
		return "idle"
	}
}

// dragSession is the state of the pointer interaction in progress. The last
// move event used for delta computation lives on the Track.
type dragSession struct {
	state  SessionState
	handle Handle
	origin graphics.Offset
	// stacked is set while a press on two handles sharing one value waits for
	// the first move to pick a direction.
	stacked bool
}

func (s *dragSession) active() bool {
	return s.state != SessionIdle
}

// press moves Idle to Pressed.
func (s *dragSession) press(handle Handle, origin graphics.Offset) {
	s.state = SessionPressed
	s.handle = handle
	s.origin = origin
	s.stacked = false
}

// resolve settles the handle of a stacked press.
func (s *dragSession) resolve(handle Handle) {
	s.handle = handle
	s.stacked = false
}

// move moves Pressed to Dragging. It reports false when no session is open.
func (s *dragSession) move() bool {
	switch s.state {
	case SessionPressed:
		s.state = SessionDragging
		return true
	case SessionDragging:
		return true
	default:
		return false
	}
}

// release returns to Idle and reports whether a session was open.
func (s *dragSession) release() bool {
	wasActive := s.active()
	*s = dragSession{}
	return wasActive
}
