package gestures

import "github.com/go-drift/inputrange/pkg/graphics"

// Surface is an in-memory element: a fixed client rectangle owned by a
// document. Hosts that lay out the track themselves (terminal, tests) mount
// tracks on a Surface and move it by updating Rect.
type Surface struct {
	Rect     graphics.Rect
	Document *Document
}

// BoundingClientRect returns the surface rectangle in client coordinates.
func (s *Surface) BoundingClientRect() graphics.Rect {
	return s.Rect
}

// OwnerDocument returns the document the surface belongs to.
func (s *Surface) OwnerDocument() *Document {
	return s.Document
}
