package rangeinput

import (
	"math"

	"github.com/go-drift/inputrange/pkg/errors"
	"github.com/go-drift/inputrange/pkg/gestures"
	"github.com/go-drift/inputrange/pkg/graphics"
)

// InputRange coordinates a slider: it owns the value, bound and step, maps
// track geometry to values and runs the drag session.
type InputRange struct {
	cfg     Config
	bound   Bound
	step    float64
	value   Value
	track   *Track
	session dragSession
}

// New validates cfg and returns a coordinator with an unmounted Track.
// Invalid configurations are rejected with a config-kind error.
func New(cfg Config) (*InputRange, error) {
	s, err := validate("rangeinput.New", cfg)
	if err != nil {
		return nil, err
	}
	r := &InputRange{
		cfg:   cfg,
		bound: s.bound,
		step:  s.step,
		value: s.value,
	}
	r.track = NewTrack(trackDelegate{r}, cfg.DraggableTrack)
	return r, nil
}

// Update replaces the configuration, the way new properties replace old
// ones. The value is re-stepped from the new bound minimum. Disabling or
// switching between single and dual mode drops a drag in progress without
// callbacks. On error the previous configuration stays in effect.
func (r *InputRange) Update(cfg Config) error {
	s, err := validate("rangeinput.Update", cfg)
	if err != nil {
		return err
	}
	r.cfg = cfg
	r.bound = s.bound
	r.step = s.step
	modeChanged := s.value.Multi != r.value.Multi
	r.value = s.value
	r.track.SetDraggable(cfg.DraggableTrack)
	if cfg.Disabled || modeChanged {
		r.abortSession()
	}
	return nil
}

// SetValue replaces the value without firing callbacks. Out-of-range ends are
// clamped and a reversed pair is swapped. Switching between single and dual
// mode is rejected.
func (r *InputRange) SetValue(v Value) error {
	if !v.finite() {
		return errors.NewConfigError("rangeinput.SetValue", "Value", v, "must hold finite numbers")
	}
	if v.Multi != r.value.Multi {
		return errors.NewConfigError("rangeinput.SetValue", "Value", v, "cannot switch between single and dual mode")
	}
	r.value = normalize(v, r.bound, r.step)
	return nil
}

// SetDisabled toggles interaction. Disabling drops a drag in progress without
// firing callbacks.
func (r *InputRange) SetDisabled(disabled bool) {
	r.cfg.Disabled = disabled
	if disabled {
		r.abortSession()
	}
}

// Value returns the committed value.
func (r *InputRange) Value() Value { return r.value }

// Bound returns the domain range.
func (r *InputRange) Bound() Bound { return r.bound }

// Step returns the effective step.
func (r *InputRange) Step() float64 { return r.step }

// Disabled reports whether interaction is disabled.
func (r *InputRange) Disabled() bool { return r.cfg.Disabled }

// IsMultiValue reports whether the slider has two handles.
func (r *InputRange) IsMultiValue() bool { return r.value.Multi }

// Track returns the drag surface.
func (r *InputRange) Track() *Track { return r.track }

// Percentages returns the value as fractions of the track width.
func (r *InputRange) Percentages() Percentages {
	return ValuesToPercentages(r.value, r.bound)
}

// SessionState returns the state of the drag session.
func (r *InputRange) SessionState() SessionState { return r.session.state }

// ActiveHandle returns the handle targeted by the drag in progress.
func (r *InputRange) ActiveHandle() Handle { return r.session.handle }

// Handles lists the handles of the slider, lower first.
func (r *InputRange) Handles() []Handle {
	if r.value.Multi {
		return []Handle{HandleMin, HandleMax}
	}
	return []Handle{HandleMax}
}

// Mount attaches the track to el.
func (r *InputRange) Mount(el Element) {
	r.track.Mount(el)
}

// Dispose tears the slider down: document listeners are removed and a drag
// in progress is dropped without callbacks.
func (r *InputRange) Dispose() {
	r.track.Unmount()
	r.session.release()
}

// pressed starts a session for a press at position.
func (r *InputRange) pressed(position graphics.Offset) CaptureMode {
	if r.cfg.Disabled {
		return CaptureNone
	}
	if r.session.active() {
		r.completeSession()
	}

	width := r.track.ClientRect().Width()
	pct := PositionToPercentage(position.X, width)
	handle := r.selectHandle(pct, width)

	target := PercentageToValue(pct, r.bound, r.step)
	r.session.press(handle, position)
	r.session.stacked = r.onStackedHandles(target)
	r.notify(r.cfg.OnChangeStart)

	if handle == HandleActiveTrack {
		return CaptureDelta
	}
	r.moveHandle(handle, target)
	return CapturePosition
}

// onStackedHandles reports whether v lands on both handles of a pair that
// share one value. Either handle could be meant, so the first move decides.
func (r *InputRange) onStackedHandles(v float64) bool {
	return r.value.Multi && r.value.Min == r.value.Max && v == r.value.Min
}

// selectHandle picks the target of a press at percentage pct of a track
// width pixels wide.
func (r *InputRange) selectHandle(pct, width float64) Handle {
	raw := r.bound.Min + pct*r.bound.Span()
	if r.value.Multi && r.track.Draggable() && r.insideActiveBlock(pct, width) {
		return HandleActiveTrack
	}
	return NearestHandle(r.value, raw)
}

// insideActiveBlock reports whether pct falls strictly between the handles
// and farther than HandleSlop pixels from both.
func (r *InputRange) insideActiveBlock(pct, width float64) bool {
	p := r.Percentages()
	if pct <= p.Min || pct >= p.Max {
		return false
	}
	if width <= 0 {
		return true
	}
	slop := r.cfg.HandleSlop / width
	return pct-p.Min > slop && p.Max-pct > slop
}

func (r *InputRange) moved(position graphics.Offset) {
	if r.cfg.Disabled || !r.session.move() {
		return
	}
	if r.session.handle == HandleActiveTrack {
		return
	}
	pct := PositionToPercentage(position.X, r.track.ClientRect().Width())
	v := PercentageToValue(pct, r.bound, r.step)
	if r.session.stacked {
		switch {
		case v < r.value.Min:
			r.session.resolve(HandleMin)
		case v > r.value.Max:
			r.session.resolve(HandleMax)
		default:
			return
		}
	}
	r.moveHandle(r.session.handle, v)
}

func (r *InputRange) dragged(event, previous *gestures.PointerEvent) {
	if r.cfg.Disabled || !r.session.move() {
		return
	}
	rect := r.track.ClientRect()
	current := r.valueAt(event.ClientPosition().X-rect.Left, rect.Width())
	before := r.valueAt(previous.ClientPosition().X-rect.Left, rect.Width())
	r.shift(current - before)
}

func (r *InputRange) released() {
	if r.session.active() {
		r.completeSession()
	}
}

func (r *InputRange) valueAt(x, width float64) float64 {
	return PercentageToValue(PositionToPercentage(x, width), r.bound, r.step)
}

// moveHandle commits v for handle h. A handle never crosses the other one.
func (r *InputRange) moveHandle(h Handle, v float64) bool {
	next := r.value
	switch h {
	case HandleMin:
		next.Min = math.Min(v, r.value.Max)
	case HandleMax:
		if r.value.Multi {
			next.Max = math.Max(v, r.value.Min)
		} else {
			next.Max = v
		}
	default:
		return false
	}
	return r.commit(next)
}

// shift moves both handles by offset, limited so the block stays within the
// bound and keeps its width.
func (r *InputRange) shift(offset float64) bool {
	if offset == 0 || !r.value.Multi {
		return false
	}
	if r.value.Min+offset < r.bound.Min {
		offset = r.bound.Min - r.value.Min
	}
	if r.value.Max+offset > r.bound.Max {
		offset = r.bound.Max - r.value.Max
	}
	places := precision(r.step, r.bound.Min)
	return r.commit(Value{
		Min:   roundTo(r.value.Min+offset, places),
		Max:   roundTo(r.value.Max+offset, places),
		Multi: true,
	})
}

func (r *InputRange) commit(next Value) bool {
	if next == r.value {
		return false
	}
	r.value = next
	r.notify(r.cfg.OnChange)
	return true
}

func (r *InputRange) completeSession() {
	r.session.release()
	r.notify(r.cfg.OnChangeComplete)
}

func (r *InputRange) abortSession() {
	r.track.Cancel()
	r.session.release()
}

func (r *InputRange) notify(fn func(Value)) {
	if fn != nil {
		fn(r.value)
	}
}

// trackDelegate adapts the coordinator to TrackDelegate without exporting
// the callbacks on InputRange itself.
type trackDelegate struct {
	r *InputRange
}

func (d trackDelegate) TrackPressed(_ *gestures.PointerEvent, position graphics.Offset) CaptureMode {
	return d.r.pressed(position)
}

func (d trackDelegate) TrackMoved(_ *gestures.PointerEvent, position graphics.Offset) {
	d.r.moved(position)
}

func (d trackDelegate) TrackDragged(event, previous *gestures.PointerEvent) {
	d.r.dragged(event, previous)
}

func (d trackDelegate) TrackReleased(*gestures.PointerEvent) {
	d.r.released()
}
