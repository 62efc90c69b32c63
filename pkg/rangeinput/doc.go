// Package rangeinput implements the interaction core of a range slider: the
// Track that turns pointer events into local pixel positions, the mapping
// between pixels, percentages and stepped domain values, and the InputRange
// coordinator that owns the value and runs the drag session.
//
// # Modes
//
// A slider is single-valued or dual-valued depending on the Value it is
// configured with:
//
//	single := rangeinput.Single(25000)
//	dual := rangeinput.Pair(5, 10)
//
// In single mode the sole value lives in Value.Max and Value.Min is pinned to
// the bound minimum, so the active segment always starts at the left edge.
//
// # Interaction
//
// Mount the coordinator on an element, then forward pointer-down and
// touch-start events from the element to the Track. Move and up events are
// picked up from the element's document for as long as a drag lasts:
//
//	ir, err := rangeinput.New(rangeinput.Config{MaxValue: 100, Value: rangeinput.Single(10)})
//	if err != nil {
//	    return err
//	}
//	ir.Mount(surface)
//	defer ir.Dispose()
//	ir.Track().HandlePointerDown(event)
//
// Every handler runs synchronously on the caller's goroutine; the package
// holds no locks and starts no goroutines.
package rangeinput
