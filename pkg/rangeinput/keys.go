package rangeinput

// Key is a keyboard key understood by HandleKeyDown.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	default:
		return "unknown"
	}
}

// HandleKeyDown moves handle by one step (arrows) or to the bound edge
// (Home, End). Keyboard updates bypass the drag session: a change fires
// OnChange and then OnChangeComplete before HandleKeyDown returns. Single-value
// sliders ignore the handle argument. It reports whether the value changed.
func (r *InputRange) HandleKeyDown(key Key, handle Handle) bool {
	if r.cfg.Disabled {
		return false
	}
	if !r.value.Multi {
		handle = HandleMax
	}
	if handle != HandleMin && handle != HandleMax {
		return false
	}

	current := r.value.Get(handle)
	var target float64
	switch key {
	case KeyLeft, KeyDown:
		target = current - r.step
	case KeyRight, KeyUp:
		target = current + r.step
	case KeyHome:
		target = r.bound.Min
	case KeyEnd:
		target = r.bound.Max
	default:
		return false
	}

	if !r.moveHandle(handle, StepValue(target, r.bound, r.step)) {
		return false
	}
	r.notify(r.cfg.OnChangeComplete)
	return true
}
