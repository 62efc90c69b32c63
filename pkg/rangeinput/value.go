package rangeinput

import (
	"fmt"
	"math"
	"strconv"
)

// Bound is the domain range of a slider.
type Bound struct {
	Min float64
	Max float64
}

// Span returns Max - Min.
func (b Bound) Span() float64 {
	return b.Max - b.Min
}

// Clamp limits v to [Min, Max].
func (b Bound) Clamp(v float64) float64 {
	return Clamp(v, b.Min, b.Max)
}

// Contains reports whether v lies within the bound, edges included.
func (b Bound) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// Value is the value of a slider. Single-valued sliders keep the value in Max
// and pin Min to the bound minimum; dual-valued sliders set Multi.
type Value struct {
	Min   float64
	Max   float64
	Multi bool
}

// Single returns a single-handle value.
func Single(v float64) Value {
	return Value{Max: v}
}

// Pair returns a dual-handle value.
func Pair(min, max float64) Value {
	return Value{Min: min, Max: max, Multi: true}
}

// Scalar returns the value of a single-handle slider.
func (v Value) Scalar() float64 {
	return v.Max
}

// Get returns the value of the given handle. HandleActiveTrack and HandleNone
// report the lower end.
func (v Value) Get(h Handle) float64 {
	if h == HandleMax {
		return v.Max
	}
	return v.Min
}

// Width returns the distance between the handles.
func (v Value) Width() float64 {
	return v.Max - v.Min
}

func (v Value) finite() bool {
	return isFinite(v.Min) && isFinite(v.Max)
}

func (v Value) String() string {
	if !v.Multi {
		return formatNumber(v.Max)
	}
	return fmt.Sprintf("{%s %s}", formatNumber(v.Min), formatNumber(v.Max))
}

// Percentages is a value expressed as fractions of the track width.
type Percentages struct {
	Min float64
	Max float64
}

// Handle identifies the target of an interaction.
type Handle int

const (
	HandleNone Handle = iota
	HandleMin
	HandleMax
	// HandleActiveTrack moves both handles together.
	HandleActiveTrack
)

func (h Handle) String() string {
	switch h {
	case HandleMin:
		return "min"
	case HandleMax:
		return "max"
	case HandleActiveTrack:
		return "activeTrack"
	default:
		return "none"
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
