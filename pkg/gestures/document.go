package gestures

// Handler receives pointer events dispatched by a Document.
type Handler func(event *PointerEvent)

// Document is the owner of document-scoped pointer listeners. Listeners
// registered here keep receiving events after the pointer leaves the element
// that registered them.
//
// Document is not safe for concurrent use; all calls are expected on the UI
// thread.
type Document struct {
	listeners map[PointerPhase][]*Subscription
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{listeners: make(map[PointerPhase][]*Subscription)}
}

// Subscription is a registered listener. Cancel removes it.
type Subscription struct {
	doc     *Document
	phase   PointerPhase
	handler Handler
}

// Listen registers handler for events of the given phase and returns the
// subscription that removes it.
func (d *Document) Listen(phase PointerPhase, handler Handler) *Subscription {
	sub := &Subscription{doc: d, phase: phase, handler: handler}
	d.listeners[phase] = append(d.listeners[phase], sub)
	return sub
}

// Cancel removes the listener. It is safe to call more than once and on a
// nil subscription.
func (s *Subscription) Cancel() {
	if s == nil || s.doc == nil {
		return
	}
	s.doc.remove(s)
	s.doc = nil
}

// Active reports whether the subscription is still registered.
func (s *Subscription) Active() bool {
	return s != nil && s.doc != nil
}

func (d *Document) remove(sub *Subscription) {
	subs := d.listeners[sub.phase]
	for i, s := range subs {
		if s == sub {
			d.listeners[sub.phase] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Dispatch delivers event to every listener registered for its phase, in
// registration order. Listeners added or removed during dispatch take effect
// for the next event.
func (d *Document) Dispatch(event *PointerEvent) {
	subs := d.listeners[event.Phase]
	if len(subs) == 0 {
		return
	}
	snapshot := make([]*Subscription, len(subs))
	copy(snapshot, subs)
	for _, sub := range snapshot {
		if sub.Active() {
			sub.handler(event)
		}
	}
}

// ListenerCount returns the number of listeners registered for phase.
func (d *Document) ListenerCount(phase PointerPhase) int {
	return len(d.listeners[phase])
}
