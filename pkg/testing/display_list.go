package testing

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/go-drift/inputrange/pkg/graphics"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

func (op DisplayOp) String() string {
	keys := sortedKeys(op.Params)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, op.Params[k])
	}
	return op.Op + "(" + strings.Join(parts, " ") + ")"
}

// SerializeDisplayList converts every recorded operation of dl into a
// DisplayOp with rounded, JSON-friendly parameters.
func SerializeDisplayList(dl *graphics.DisplayList) []DisplayOp {
	recorded := dl.Ops()
	ops := make([]DisplayOp, 0, len(recorded))
	for _, op := range recorded {
		ops = append(ops, serializeOp(op))
	}
	return ops
}

func serializeOp(op graphics.DrawOp) DisplayOp {
	switch op.Kind {
	case graphics.OpClear:
		return DisplayOp{Op: "clear", Params: sortedMap("color", serializeColor(op.Color))}
	case graphics.OpRect:
		return DisplayOp{Op: "drawRect", Params: serializePaint(op.Paint, "rect", serializeRect(op.Rect))}
	case graphics.OpRRect:
		return DisplayOp{Op: "drawRRect", Params: serializePaint(op.Paint,
			"rect", serializeRect(op.RRect.Rect),
			"radius", round2(op.RRect.Radius),
		)}
	case graphics.OpCircle:
		return DisplayOp{Op: "drawCircle", Params: serializePaint(op.Paint,
			"cx", round2(op.Center.X),
			"cy", round2(op.Center.Y),
			"radius", round2(op.Radius),
		)}
	case graphics.OpText:
		params := sortedMap("x", round2(op.Position.X), "y", round2(op.Position.Y))
		if op.Text != nil {
			params["text"] = op.Text.Text
			params["color"] = serializeColor(op.Text.Style.Color)
		}
		return DisplayOp{Op: "drawText", Params: params}
	default:
		return DisplayOp{Op: op.Kind.String()}
	}
}

// OpsNamed filters ops by name.
func OpsNamed(ops []DisplayOp, name string) []DisplayOp {
	var out []DisplayOp
	for _, op := range ops {
		if op.Op == name {
			out = append(out, op)
		}
	}
	return out
}

func serializePaint(paint graphics.Paint, kvs ...any) map[string]any {
	m := sortedMap(kvs...)
	m["color"] = serializeColor(paint.Color)
	if paint.Style == graphics.PaintStyleStroke {
		m["style"] = paint.Style.String()
		m["strokeWidth"] = round2(paint.StrokeWidth)
	}
	return m
}

func serializeRect(r graphics.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// sortedMap creates a map from alternating key-value pairs. encoding/json
// writes map keys in sorted order.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}

// sortedKeys returns the keys of a map in sorted order.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
