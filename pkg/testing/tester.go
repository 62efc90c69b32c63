package testing

import (
	"fmt"
	"testing"

	"github.com/go-drift/inputrange/pkg/gestures"
	"github.com/go-drift/inputrange/pkg/graphics"
	"github.com/go-drift/inputrange/pkg/rangeinput"
)

// DefaultTrackRect is the client rectangle of the test track: 1000 pixels wide
// and offset from the document origin so local and client coordinates differ.
var DefaultTrackRect = graphics.RectFromLTWH(100, 40, 1000, 10)

// CallKind identifies a recorded callback.
type CallKind int

const (
	CallStart CallKind = iota
	CallChange
	CallComplete
)

func (k CallKind) String() string {
	switch k {
	case CallStart:
		return "start"
	case CallChange:
		return "change"
	case CallComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Call is a recorded callback invocation.
type Call struct {
	Kind  CallKind
	Value rangeinput.Value
}

func (c Call) String() string {
	return fmt.Sprintf("%s(%s)", c.Kind, c.Value)
}

// Option customizes a Tester.
type Option func(*Tester)

// WithRect mounts the track at rect instead of DefaultTrackRect.
func WithRect(rect graphics.Rect) Option {
	return func(t *Tester) { t.Surface.Rect = rect }
}

// Tester drives an InputRange mounted on an in-memory surface and records
// every callback it fires. Callbacks already present in the configuration
// are still called, after recording.
type Tester struct {
	Document *gestures.Document
	Surface  *gestures.Surface
	Range    *rangeinput.InputRange

	calls    []Call
	pointers pointerState
}

// NewTester creates a tester. Configuration errors from rangeinput.New are
// returned unchanged.
func NewTester(cfg rangeinput.Config, opts ...Option) (*Tester, error) {
	doc := gestures.NewDocument()
	t := &Tester{
		Document: doc,
		Surface:  &gestures.Surface{Rect: DefaultTrackRect, Document: doc},
	}
	for _, opt := range opts {
		opt(t)
	}

	cfg.OnChangeStart = t.record(CallStart, cfg.OnChangeStart)
	cfg.OnChange = t.record(CallChange, cfg.OnChange)
	cfg.OnChangeComplete = t.record(CallComplete, cfg.OnChangeComplete)

	ir, err := rangeinput.New(cfg)
	if err != nil {
		return nil, err
	}
	ir.Mount(t.Surface)
	t.Range = ir
	return t, nil
}

// NewTesterWithT creates a tester that fails the test on configuration
// errors and disposes the range input via t.Cleanup().
func NewTesterWithT(tb testing.TB, cfg rangeinput.Config, opts ...Option) *Tester {
	tb.Helper()
	tester, err := NewTester(cfg, opts...)
	if err != nil {
		tb.Fatalf("rangeinput.New: %v", err)
	}
	tb.Cleanup(tester.Range.Dispose)
	return tester
}

func (t *Tester) record(kind CallKind, next func(rangeinput.Value)) func(rangeinput.Value) {
	return func(v rangeinput.Value) {
		t.calls = append(t.calls, Call{Kind: kind, Value: v})
		if next != nil {
			next(v)
		}
	}
}

// Value returns the committed value.
func (t *Tester) Value() rangeinput.Value {
	return t.Range.Value()
}

// Calls returns every recorded callback in order.
func (t *Tester) Calls() []Call {
	return t.calls
}

// CallsOf returns the recorded callbacks of one kind.
func (t *Tester) CallsOf(kind CallKind) []Call {
	var out []Call
	for _, c := range t.calls {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// ResetCalls forgets the recorded callbacks.
func (t *Tester) ResetCalls() {
	t.calls = nil
}

// ListenerCount returns the number of document move and up listeners.
func (t *Tester) ListenerCount() int {
	return t.Document.ListenerCount(gestures.PointerPhaseMove) +
		t.Document.ListenerCount(gestures.PointerPhaseUp)
}

// Key presses key on handle.
func (t *Tester) Key(key rangeinput.Key, handle rangeinput.Handle) bool {
	return t.Range.HandleKeyDown(key, handle)
}
