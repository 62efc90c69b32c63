package rangeinput

import (
	"math"

	"github.com/go-drift/inputrange/pkg/errors"
)

// DefaultStep is used when Config.Step is zero.
const DefaultStep = 1.0

// Config configures an InputRange. Zero values select the defaults.
type Config struct {
	// MinValue and MaxValue form the bound. MinValue must not exceed MaxValue.
	MinValue float64
	MaxValue float64
	// Value is the initial value. Its Multi flag selects single or dual mode.
	Value Value
	// Step is the quantization granularity. Zero means DefaultStep; only
	// negative and non-finite steps are rejected.
	Step float64
	// Disabled turns every handler into a no-op.
	Disabled bool
	// DraggableTrack lets a press inside the active block drag both handles.
	DraggableTrack bool
	// WithActive enables the active segment.
	WithActive bool
	// SuggestedValue is a read-only hint. In single mode it spans from the
	// bound minimum to its Max.
	SuggestedValue *Value
	// SingleValueError is the half-width of the error band drawn around a
	// single value. Zero disables the band.
	SingleValueError float64
	// HandleSlop is the distance in pixels around a handle within which a
	// press grabs the handle instead of the active block.
	HandleSlop float64
	// FormatLabel formats label values. Nil formats with the shortest
	// decimal representation.
	FormatLabel LabelFormatter
	// LabelSuffix is appended to every label.
	LabelSuffix string

	// OnChangeStart is called once when a drag session starts.
	OnChangeStart func(Value)
	// OnChange is called for every committed change.
	OnChange func(Value)
	// OnChangeComplete is called once when an interaction ends.
	OnChangeComplete func(Value)
}

// settings is a validated Config.
type settings struct {
	bound Bound
	step  float64
	value Value
}

func validate(op string, cfg Config) (settings, error) {
	if !isFinite(cfg.MinValue) {
		return settings{}, errors.NewConfigError(op, "MinValue", cfg.MinValue, "must be a finite number")
	}
	if !isFinite(cfg.MaxValue) {
		return settings{}, errors.NewConfigError(op, "MaxValue", cfg.MaxValue, "must be a finite number")
	}
	if cfg.MinValue > cfg.MaxValue {
		return settings{}, errors.NewConfigError(op, "MinValue", cfg.MinValue, "must not exceed MaxValue")
	}
	step := cfg.Step
	if step == 0 {
		step = DefaultStep
	}
	if !isFinite(step) || step < 0 {
		return settings{}, errors.NewConfigError(op, "Step", cfg.Step, "must be a positive number")
	}
	if !cfg.Value.finite() {
		return settings{}, errors.NewConfigError(op, "Value", cfg.Value, "must hold finite numbers")
	}
	if cfg.Value.Multi && cfg.Value.Min > cfg.Value.Max {
		return settings{}, errors.NewConfigError(op, "Value", cfg.Value, "min must not exceed max")
	}
	if s := cfg.SuggestedValue; s != nil {
		if !s.finite() {
			return settings{}, errors.NewConfigError(op, "SuggestedValue", *s, "must hold finite numbers")
		}
		if s.Multi && s.Min > s.Max {
			return settings{}, errors.NewConfigError(op, "SuggestedValue", *s, "min must not exceed max")
		}
	}
	if !isFinite(cfg.SingleValueError) || cfg.SingleValueError < 0 {
		return settings{}, errors.NewConfigError(op, "SingleValueError", cfg.SingleValueError, "must not be negative")
	}
	if !isFinite(cfg.HandleSlop) || cfg.HandleSlop < 0 {
		return settings{}, errors.NewConfigError(op, "HandleSlop", cfg.HandleSlop, "must not be negative")
	}

	bound := Bound{Min: cfg.MinValue, Max: cfg.MaxValue}
	return settings{
		bound: bound,
		step:  step,
		value: normalize(cfg.Value, bound, step),
	}, nil
}

// normalize steps and clamps v into bound, reorders pairs, and pins the lower
// end of a single value to the bound minimum.
func normalize(v Value, bound Bound, step float64) Value {
	if !v.Multi {
		return Value{Min: bound.Min, Max: StepValue(v.Max, bound, step)}
	}
	lo := StepValue(math.Min(v.Min, v.Max), bound, step)
	hi := StepValue(math.Max(v.Min, v.Max), bound, step)
	return Value{Min: lo, Max: hi, Multi: true}
}
