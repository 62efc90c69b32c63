package rangeinput

import (
	"math"
	"strconv"
	"strings"
)

// maxDecimals caps the precision used to clean up stepped values.
const maxDecimals = 12

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// PositionToPercentage converts a pixel offset from the left edge of the
// track into a fraction of its width, clamped to [0, 1]. A track without
// width maps every position to 0.
func PositionToPercentage(x, width float64) float64 {
	if width <= 0 || math.IsNaN(x) {
		return 0
	}
	return Clamp(x/width, 0, 1)
}

// PercentageToValue converts a fraction of the track width into a stepped
// value within bound.
func PercentageToValue(p float64, bound Bound, step float64) float64 {
	return StepValue(bound.Min+p*bound.Span(), bound, step)
}

// ValueToPercentage converts a value into a fraction of the bound. A bound
// without span maps every value to 0.
func ValueToPercentage(v float64, bound Bound) float64 {
	span := bound.Span()
	if span == 0 {
		return 0
	}
	return (v - bound.Min) / span
}

// ValuesToPercentages converts both ends of v into fractions of the bound.
func ValuesToPercentages(v Value, bound Bound) Percentages {
	return Percentages{
		Min: ValueToPercentage(v.Min, bound),
		Max: ValueToPercentage(v.Max, bound),
	}
}

// StepValue rounds v to the nearest multiple of step counted from bound.Min
// and clamps the result into bound. Alignment is always measured from
// bound.Min, never from a previous value, so repeated updates cannot drift.
func StepValue(v float64, bound Bound, step float64) float64 {
	if step <= 0 || !isFinite(step) {
		return bound.Clamp(v)
	}
	steps := math.Round((v - bound.Min) / step)
	stepped := bound.Min + steps*step
	return bound.Clamp(roundTo(stepped, precision(step, bound.Min)))
}

// NearestHandle picks the handle a press at v should move. Single-handle
// values always move the max handle. For pairs the strictly closer handle
// wins; on a tie the min handle wins, unless v lies beyond Max, which only
// happens when both handles sit on the same value.
func NearestHandle(value Value, v float64) Handle {
	if !value.Multi {
		return HandleMax
	}
	toMin := math.Abs(v - value.Min)
	toMax := math.Abs(v - value.Max)
	switch {
	case toMin < toMax:
		return HandleMin
	case toMax < toMin:
		return HandleMax
	case v > value.Max:
		return HandleMax
	default:
		return HandleMin
	}
}

// precision returns the number of decimals needed to represent multiples of
// step offset by origin.
func precision(step, origin float64) int {
	return max(decimals(step), decimals(origin))
}

func decimals(v float64) int {
	s := strconv.FormatFloat(math.Abs(v), 'f', -1, 64)
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 0
	}
	return min(len(s)-i-1, maxDecimals)
}

func roundTo(v float64, places int) float64 {
	if places <= 0 {
		return math.Round(v)
	}
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
