// Package testing provides a test harness for range inputs.
//
// # Quick Start
//
// Create a tester around a configuration, simulate gestures and assert on the
// value and the recorded callbacks:
//
//	func TestBudgetSlider(t *testing.T) {
//	    tester := rangetest.NewTesterWithT(t, rangeinput.Config{
//	        MaxValue: 50000,
//	        Step:     500,
//	        Value:    rangeinput.Single(0),
//	    })
//
//	    tester.TapAt(500)
//
//	    if got := tester.Value().Scalar(); got != 25000 {
//	        t.Errorf("value = %v, want 25000", got)
//	    }
//	    if n := len(tester.CallsOf(rangetest.CallChange)); n != 1 {
//	        t.Errorf("OnChange fired %d times, want 1", n)
//	    }
//	}
//
// The track is mounted on an in-memory surface, DefaultTrackRect unless a
// rectangle is given with WithRect. Positions passed to the gesture helpers are
// local to the track; the tester converts them to client coordinates.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import rangetest "github.com/go-drift/inputrange/pkg/testing"
package testing
