package rangeinput

import (
	"math"
	"testing"
)

func TestPositionToPercentage(t *testing.T) {
	tests := []struct {
		name     string
		x, width float64
		want     float64
	}{
		{"middle", 500, 1000, 0.5},
		{"left of track", -20, 1000, 0},
		{"right of track", 1200, 1000, 1},
		{"zero width", 300, 0, 0},
		{"negative width", 300, -10, 0},
		{"nan", math.NaN(), 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PositionToPercentage(tt.x, tt.width); got != tt.want {
				t.Errorf("PositionToPercentage(%v, %v) = %v, want %v", tt.x, tt.width, got, tt.want)
			}
		})
	}
}

func TestPercentageToValue(t *testing.T) {
	tests := []struct {
		name  string
		p     float64
		bound Bound
		step  float64
		want  float64
	}{
		{"aligned", 0.5, Bound{0, 50000}, 500, 25000},
		{"rounds up", 0.506, Bound{0, 50000}, 500, 25500},
		{"rounds down", 0.504, Bound{0, 50000}, 500, 25000},
		{"negative bound", 0.5, Bound{-50, 50}, 0.5, 0},
		{"offset origin", 0.5, Bound{3, 13}, 2, 9},
		{"clamped to max", 1, Bound{0, 11}, 3, 11},
		{"decimal step", 0.3, Bound{0, 1}, 0.1, 0.3},
		{"degenerate bound", 0.7, Bound{5, 5}, 1, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PercentageToValue(tt.p, tt.bound, tt.step); got != tt.want {
				t.Errorf("PercentageToValue(%v, %v, %v) = %v, want %v", tt.p, tt.bound, tt.step, got, tt.want)
			}
		})
	}
}

func TestValueToPercentage(t *testing.T) {
	if got := ValueToPercentage(7, Bound{0, 20}); got != 0.35 {
		t.Errorf("ValueToPercentage(7) = %v, want 0.35", got)
	}
	if got := ValueToPercentage(5, Bound{5, 5}); got != 0 {
		t.Errorf("ValueToPercentage on empty bound = %v, want 0", got)
	}
	p := ValuesToPercentages(Pair(5, 10), Bound{0, 20})
	if p.Min != 0.25 || p.Max != 0.5 {
		t.Errorf("ValuesToPercentages = %+v, want {0.25 0.5}", p)
	}
}

func TestStepValueMeasuresFromBoundMin(t *testing.T) {
	// 10 is 3.5 steps of 2 above 3, which rounds to 4 steps.
	if got := StepValue(10, Bound{3, 20}, 2); got != 11 {
		t.Errorf("StepValue = %v, want 11", got)
	}
	v := 11.0
	for i := 0; i < 100; i++ {
		v = StepValue(v, Bound{3, 20}, 2)
	}
	if v != 11 {
		t.Errorf("repeated StepValue drifted to %v", v)
	}
}

func TestStepValueNoFloatingResidue(t *testing.T) {
	bound := Bound{Min: 0, Max: 1}
	for i := 0; i <= 10; i++ {
		got := PercentageToValue(float64(i)/10, bound, 0.1)
		want := float64(i) / 10
		if got != want {
			t.Errorf("PercentageToValue(%d/10) = %v, want %v", i, got, want)
		}
	}
}

func TestPositionRoundTripStaysInBound(t *testing.T) {
	bounds := []Bound{{0, 50000}, {-50, 50}, {0, 20}, {3, 17}, {5, 5}}
	steps := []float64{500, 0.5, 1, 3, 1}
	const width = 1000.0
	for i, bound := range bounds {
		for x := 0.0; x <= width; x += 7 {
			v := PercentageToValue(PositionToPercentage(x, width), bound, steps[i])
			if !bound.Contains(v) {
				t.Fatalf("bound %v step %v: x=%v produced %v", bound, steps[i], x, v)
			}
		}
	}
}

func TestValueRoundTripWithinHalfStep(t *testing.T) {
	bound := Bound{Min: -50, Max: 50}
	step := 0.5
	for v := -50.0; v <= 50; v += 0.37 {
		got := PercentageToValue(ValueToPercentage(v, bound), bound, step)
		if math.Abs(got-v) > step/2+1e-9 {
			t.Fatalf("round trip of %v gave %v, more than half a step away", v, got)
		}
		again := PercentageToValue(ValueToPercentage(got, bound), bound, step)
		if again != got {
			t.Fatalf("re-quantizing %v gave %v", got, again)
		}
	}
}

func TestNearestHandle(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		v     float64
		want  Handle
	}{
		{"single always max", Single(3), -100, HandleMax},
		{"closer to min", Pair(5, 10), 7, HandleMin},
		{"closer to max", Pair(5, 10), 8, HandleMax},
		{"below both", Pair(5, 10), 1, HandleMin},
		{"above both", Pair(5, 10), 15, HandleMax},
		{"tie prefers min", Pair(4, 8), 6, HandleMin},
		{"stacked press right", Pair(5, 5), 7, HandleMax},
		{"stacked press left", Pair(5, 5), 3, HandleMin},
		{"stacked press on", Pair(5, 5), 5, HandleMin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NearestHandle(tt.value, tt.v); got != tt.want {
				t.Errorf("NearestHandle(%v, %v) = %v, want %v", tt.value, tt.v, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	bound := Bound{0, 20}
	if got := normalize(Pair(12, 4), bound, 1); got != Pair(4, 12) {
		t.Errorf("normalize reversed pair = %v, want {4 12}", got)
	}
	if got := normalize(Pair(-5, 30), bound, 1); got != Pair(0, 20) {
		t.Errorf("normalize out of range = %v, want {0 20}", got)
	}
	got := normalize(Single(7.4), Bound{2, 20}, 1)
	if got.Min != 2 || got.Max != 7 || got.Multi {
		t.Errorf("normalize single = %+v, want Min 2 Max 7", got)
	}
}
