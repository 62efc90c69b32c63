package testing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/inputrange/pkg/rangeinput"
)

func newSnapshotTester(t *testing.T) *Tester {
	return NewTesterWithT(t, rangeinput.Config{
		MaxValue:    20,
		Value:       rangeinput.Pair(5, 10),
		WithActive:  true,
		LabelSuffix: " kg",
	})
}

func TestCaptureSnapshot_State(t *testing.T) {
	tester := newSnapshotTester(t)
	snap := tester.CaptureSnapshot()
	if snap == nil || snap.State == nil {
		t.Fatal("expected non-nil snapshot state")
	}
	if snap.State.Value != "{5 10}" {
		t.Errorf("state value = %q, want {5 10}", snap.State.Value)
	}
	if got := snap.State.Segments["active"]; got != [2]float64{0.25, 0.5} {
		t.Errorf("active segment = %v, want [0.25 0.5]", got)
	}
	want := []string{"min:0 kg", "max:20 kg", "value:5 kg", "value:10 kg"}
	if strings.Join(snap.State.Labels, ",") != strings.Join(want, ",") {
		t.Errorf("labels = %v, want %v", snap.State.Labels, want)
	}
}

func TestCaptureSnapshot_DisplayOps(t *testing.T) {
	tester := newSnapshotTester(t)
	snap := tester.CaptureSnapshot()

	circles := OpsNamed(snap.DisplayOps, "drawCircle")
	if len(circles) != 4 {
		t.Fatalf("drawCircle ops = %v, want fill and border for two handles", circles)
	}
	// The min handle sits at 25% of the 1000px track starting at x=100.
	if cx := circles[0].Params["cx"]; cx != 350.0 {
		t.Errorf("first handle cx = %v, want 350", cx)
	}
	texts := OpsNamed(snap.DisplayOps, "drawText")
	if len(texts) != 4 {
		t.Errorf("drawText ops = %v, want 4", texts)
	}
}

func TestCaptureSnapshot_Dragging(t *testing.T) {
	tester := newSnapshotTester(t)
	tester.PressAt(900)
	snap := tester.CaptureSnapshot()
	if !snap.State.Dragging || snap.State.ActiveHandle != "max" {
		t.Errorf("state = %+v, want dragging max", snap.State)
	}
}

func TestSnapshot_Diff_Equal(t *testing.T) {
	tester := newSnapshotTester(t)
	a := tester.CaptureSnapshot()
	b := tester.CaptureSnapshot()

	if diff := a.Diff(b); diff != "" {
		t.Errorf("expected no diff for identical snapshots, got:\n%s", diff)
	}
}

func TestSnapshot_Diff_Different(t *testing.T) {
	tester := newSnapshotTester(t)
	a := tester.CaptureSnapshot()

	tester.TapAt(100)
	b := tester.CaptureSnapshot()

	if diff := a.Diff(b); diff == "" {
		t.Error("expected diff for different snapshots")
	}
}

func TestSnapshot_UpdateAndMatch(t *testing.T) {
	snap := newSnapshotTester(t).CaptureSnapshot()

	dir := t.TempDir()
	path := filepath.Join(dir, "testdata", "pair.snapshot.json")

	if err := snap.UpdateFile(path); err != nil {
		t.Fatalf("UpdateFile failed: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("snapshot file should exist after UpdateFile")
	}

	// MatchesFile should pass now
	snap.MatchesFile(t, path)
}

func TestSnapshot_MatchesFile_MissingFile(t *testing.T) {
	t.Setenv(updateSnapshotsEnv, "")
	snap := newSnapshotTester(t).CaptureSnapshot()

	failed := false
	sub := &fatalRecorder{name: t.Name(), onFatal: func() { failed = true }}
	snap.MatchesFile(sub, "/nonexistent/path/snap.json")

	if !failed {
		t.Error("expected MatchesFile to fail for missing file")
	}
}

func TestSnapshot_MatchesFile_Mismatch(t *testing.T) {
	t.Setenv(updateSnapshotsEnv, "")
	tester := newSnapshotTester(t)
	first := tester.CaptureSnapshot()

	dir := t.TempDir()
	path := filepath.Join(dir, "snap.json")
	if err := first.UpdateFile(path); err != nil {
		t.Fatal(err)
	}

	tester.Key(rangeinput.KeyEnd, rangeinput.HandleMax)
	second := tester.CaptureSnapshot()

	errored := false
	sub := &errorRecorder{name: t.Name(), onError: func() { errored = true }}
	second.MatchesFile(sub, path)

	if !errored {
		t.Error("expected MatchesFile to report error for mismatch")
	}
}

func TestSnapshot_UpdateMode(t *testing.T) {
	snap := newSnapshotTester(t).CaptureSnapshot()

	dir := t.TempDir()
	path := filepath.Join(dir, "update.snapshot.json")

	t.Setenv(updateSnapshotsEnv, "1")
	snap.MatchesFile(t, path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("snapshot file should be created in update mode")
	}
}

// fatalRecorder intercepts Fatalf calls for testing MatchesFile failures.
type fatalRecorder struct {
	name    string
	onFatal func()
}

func (r *fatalRecorder) Fatalf(format string, args ...any) { r.onFatal() }
func (r *fatalRecorder) Errorf(format string, args ...any) {}
func (r *fatalRecorder) Helper()                           {}
func (r *fatalRecorder) Name() string                      { return r.name }

// errorRecorder intercepts Errorf calls for testing MatchesFile mismatches.
type errorRecorder struct {
	name    string
	onError func()
}

func (r *errorRecorder) Fatalf(format string, args ...any) {}
func (r *errorRecorder) Errorf(format string, args ...any) { r.onError() }
func (r *errorRecorder) Helper()                           {}
func (r *errorRecorder) Name() string                      { return r.name }
