package rangeinput

// Segment is a highlighted stretch of the track, in fractions of its width.
type Segment struct {
	Left  float64
	Width float64
}

// Right returns the right edge of the segment.
func (s Segment) Right() float64 {
	return s.Left + s.Width
}

func segmentOf(p Percentages) Segment {
	lo := Clamp(p.Min, 0, 1)
	hi := Clamp(p.Max, 0, 1)
	return Segment{Left: lo, Width: hi - lo}
}

// ErrorSegment returns the band of SingleValueError around a single value.
func (r *InputRange) ErrorSegment() (Segment, bool) {
	if r.value.Multi || r.cfg.SingleValueError <= 0 {
		return Segment{}, false
	}
	v := r.value.Max
	lo := r.bound.Clamp(v - r.cfg.SingleValueError)
	hi := r.bound.Clamp(v + r.cfg.SingleValueError)
	return segmentOf(Percentages{
		Min: ValueToPercentage(lo, r.bound),
		Max: ValueToPercentage(hi, r.bound),
	}), true
}

// ActiveSegment returns the stretch between the handles when WithActive is
// set. A single value with an error band highlights the band instead.
func (r *InputRange) ActiveSegment() (Segment, bool) {
	if !r.cfg.WithActive {
		return Segment{}, false
	}
	if seg, ok := r.ErrorSegment(); ok {
		return seg, true
	}
	return segmentOf(r.Percentages()), true
}

// SuggestedSegment returns the suggested range. A suggestion whose upper end
// sits at the start of the track is hidden.
func (r *InputRange) SuggestedSegment() (Segment, bool) {
	s := r.cfg.SuggestedValue
	if s == nil {
		return Segment{}, false
	}
	lo := r.bound.Min
	if s.Multi {
		lo = s.Min
	}
	p := Percentages{
		Min: ValueToPercentage(r.bound.Clamp(lo), r.bound),
		Max: ValueToPercentage(r.bound.Clamp(s.Max), r.bound),
	}
	if p.Max == 0 {
		return Segment{}, false
	}
	return segmentOf(p), true
}

// Snapshot is everything a renderer needs to draw the slider.
type Snapshot struct {
	Value       Value
	Bound       Bound
	Percentages Percentages
	Disabled    bool
	Dragging    bool
	// ActiveHandle is the target of the drag in progress.
	ActiveHandle Handle
	Handles      []Handle

	Active       Segment
	HasActive    bool
	Suggested    Segment
	HasSuggested bool
	Error        Segment
	HasError     bool

	Labels []Label
}

// Snapshot captures the current render state.
func (r *InputRange) Snapshot() Snapshot {
	s := Snapshot{
		Value:        r.value,
		Bound:        r.bound,
		Percentages:  r.Percentages(),
		Disabled:     r.cfg.Disabled,
		Dragging:     r.session.active(),
		ActiveHandle: r.session.handle,
		Handles:      r.Handles(),
		Labels:       r.Labels(),
	}
	s.Active, s.HasActive = r.ActiveSegment()
	s.Suggested, s.HasSuggested = r.SuggestedSegment()
	s.Error, s.HasError = r.ErrorSegment()
	return s
}
