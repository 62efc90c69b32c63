package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/inputrange/pkg/rangeinput"
	"github.com/go-drift/inputrange/pkg/rendering"
	"github.com/go-drift/inputrange/pkg/theme"
)

// updateSnapshotsEnv names the environment variable that rewrites golden
// files instead of comparing against them.
const updateSnapshotsEnv = "INPUTRANGE_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the slider state and the display operations that paint it.
type Snapshot struct {
	State      *StateNode  `json:"state"`
	DisplayOps []DisplayOp `json:"displayOps,omitempty"`
}

// StateNode is the serialized render state of a slider.
type StateNode struct {
	Value        string                `json:"value"`
	Percentages  [2]float64            `json:"percentages"`
	Disabled     bool                  `json:"disabled,omitempty"`
	Dragging     bool                  `json:"dragging,omitempty"`
	ActiveHandle string                `json:"activeHandle,omitempty"`
	Segments     map[string][2]float64 `json:"segments,omitempty"`
	Labels       []string              `json:"labels,omitempty"`
}

// CaptureSnapshot captures the current state and paints it around the
// mounted track with the default light slider theme.
func (t *Tester) CaptureSnapshot() *Snapshot {
	return t.CaptureSnapshotWithTheme(theme.DefaultLightTheme().SliderThemeOf())
}

// CaptureSnapshotWithTheme is CaptureSnapshot with an explicit theme.
func (t *Tester) CaptureSnapshotWithTheme(st theme.SliderThemeData) *Snapshot {
	snap := t.Range.Snapshot()
	layout := rendering.LayoutAroundTrack(t.Surface.Rect, st)
	dl := rendering.RecordSlider(layout, snap, st)
	return &Snapshot{
		State:      captureState(snap),
		DisplayOps: SerializeDisplayList(dl),
	}
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When
// INPUTRANGE_UPDATE_SNAPSHOTS=1 is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(updateSnapshotsEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, updateSnapshotsEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s", path, diff, updateSnapshotsEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a unified diff between this snapshot and other. Returns
// empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return unifiedDiff(string(b), string(a))
}

// --- Internal ---

func captureState(snap rangeinput.Snapshot) *StateNode {
	node := &StateNode{
		Value:       snap.Value.String(),
		Percentages: [2]float64{round2(snap.Percentages.Min), round2(snap.Percentages.Max)},
		Disabled:    snap.Disabled,
		Dragging:    snap.Dragging,
	}
	if snap.Dragging {
		node.ActiveHandle = snap.ActiveHandle.String()
	}
	segments := map[string][2]float64{}
	addSegment := func(name string, seg rangeinput.Segment, ok bool) {
		if ok {
			segments[name] = [2]float64{round2(seg.Left), round2(seg.Right())}
		}
	}
	addSegment("active", snap.Active, snap.HasActive)
	addSegment("suggested", snap.Suggested, snap.HasSuggested)
	addSegment("error", snap.Error, snap.HasError)
	if len(segments) > 0 {
		node.Segments = segments
	}
	for _, label := range snap.Labels {
		node.Labels = append(node.Labels, fmt.Sprintf("%s:%s", label.Kind, label.Text))
	}
	return node
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unifiedDiff produces a simple line-oriented diff.
func unifiedDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	maxLen := max(len(expectedLines), len(actualLines))
	for i := 0; i < maxLen; i++ {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e != a {
			if i < len(expectedLines) {
				fmt.Fprintf(&buf, "-%s\n", e)
			}
			if i < len(actualLines) {
				fmt.Fprintf(&buf, "+%s\n", a)
			}
		}
	}

	return buf.String()
}
