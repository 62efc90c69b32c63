package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/inputrange/pkg/errors"
	"github.com/go-drift/inputrange/pkg/gestures"
	"github.com/go-drift/inputrange/pkg/rangeinput"
	"github.com/go-drift/inputrange/pkg/theme"
)

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func mouseMsg(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

// newModel lays sliders out on a 44 column terminal: 40 track cells starting
// at column 2, so cell x maps to local position x-2 on a 39 wide track.
func newModel(t *testing.T, sliders ...Slider) *Model {
	t.Helper()
	m, err := New(sliders, nil, io.Discard)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m.Update(tea.WindowSizeMsg{Width: 44, Height: 40})
	return m
}

func singleSlider(title string) Slider {
	return Slider{Title: title, Config: rangeinput.Config{MaxValue: 39, WithActive: true}}
}

func send(m *Model, keys ...string) {
	for _, k := range keys {
		m.Update(keyMsg(k))
	}
}

func logContains(m *Model, want string) bool {
	for _, line := range m.Log() {
		if line == want {
			return true
		}
	}
	return false
}

func TestMouseDrag(t *testing.T) {
	m := newModel(t, singleSlider("a"), singleSlider("b"))
	y := m.trackLine(1)
	if y != 9 {
		t.Fatalf("trackLine(1) = %d, want 9", y)
	}

	m.Update(mouseMsg(tea.MouseActionPress, 22, y))
	if m.Focus() != 1 {
		t.Errorf("Focus() = %d, want 1", m.Focus())
	}
	if got := m.Value(1).Scalar(); got != 20 {
		t.Errorf("value after press = %v, want 20", got)
	}

	m.Update(mouseMsg(tea.MouseActionMotion, 12, y))
	if got := m.Value(1).Scalar(); got != 10 {
		t.Errorf("value after move = %v, want 10", got)
	}

	// Leaving the track keeps the drag alive and clamps to the bound.
	m.Update(mouseMsg(tea.MouseActionMotion, 100, y+3))
	if got := m.Value(1).Scalar(); got != 39 {
		t.Errorf("value outside the track = %v, want 39", got)
	}

	m.Update(mouseMsg(tea.MouseActionRelease, 100, y+3))
	if n := m.doc.ListenerCount(gestures.PointerPhaseMove); n != 0 {
		t.Errorf("move listeners after release = %d, want 0", n)
	}
	for _, want := range []string{"b: start 0", "b: change 20", "b: change 10", "b: change 39", "b: complete 39"} {
		if !logContains(m, want) {
			t.Errorf("log missing %q, got %q", want, m.Log())
		}
	}
	if got := m.Value(0).Scalar(); got != 0 {
		t.Errorf("untouched slider = %v, want 0", got)
	}
}

func TestMouseIgnoredOffTrack(t *testing.T) {
	m := newModel(t, singleSlider("a"))
	tests := []tea.MouseMsg{
		mouseMsg(tea.MouseActionPress, 22, m.trackLine(0)-1),
		mouseMsg(tea.MouseActionPress, 43, m.trackLine(0)),
		{X: 22, Y: m.trackLine(0), Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
	}
	for _, msg := range tests {
		m.Update(msg)
		if got := m.Value(0).Scalar(); got != 0 {
			t.Errorf("press %+v changed value to %v", msg, got)
		}
		if n := m.doc.ListenerCount(gestures.PointerPhaseUp); n != 0 {
			t.Errorf("press %+v left %d up listeners", msg, n)
		}
	}
}

func TestResizeMovesTrack(t *testing.T) {
	m := newModel(t, singleSlider("a"))
	m.Update(tea.WindowSizeMsg{Width: 84, Height: 40})
	m.Update(mouseMsg(tea.MouseActionPress, 2+79, m.trackLine(0)))
	if got := m.Value(0).Scalar(); got != 39 {
		t.Errorf("value at right edge = %v, want 39", got)
	}
	m.Update(mouseMsg(tea.MouseActionRelease, 2+79, m.trackLine(0)))

	m.Update(tea.WindowSizeMsg{Width: 4, Height: 40})
	if m.cells != minCells {
		t.Errorf("cells = %d, want %d", m.cells, minCells)
	}
}

func TestKeys(t *testing.T) {
	m := newModel(t, singleSlider("a"), singleSlider("b"))
	tests := []struct {
		key       string
		wantFocus int
		wantValue float64
	}{
		{"right", 0, 1},
		{"l", 0, 2},
		{"h", 0, 1},
		{"end", 0, 39},
		{"home", 0, 0},
		{"G", 0, 39},
		{"g", 0, 0},
		{"j", 1, 0},
		{"right", 1, 1},
		{"down", 0, 0},
		{"k", 1, 1},
		{"up", 0, 0},
	}
	for _, tt := range tests {
		m.Update(keyMsg(tt.key))
		if m.Focus() != tt.wantFocus {
			t.Errorf("after %q: Focus() = %d, want %d", tt.key, m.Focus(), tt.wantFocus)
		}
		if got := m.Value(m.Focus()).Scalar(); got != tt.wantValue {
			t.Errorf("after %q: value = %v, want %v", tt.key, got, tt.wantValue)
		}
	}
	if !logContains(m, "a: complete 39") {
		t.Errorf("log missing key completion, got %q", m.Log())
	}
}

func TestSwitchHandle(t *testing.T) {
	m := newModel(t, Slider{Title: "pair", Config: rangeinput.Config{
		MaxValue: 39,
		Value:    rangeinput.Pair(10, 20),
	}})
	send(m, "right")
	if got, want := m.Value(0), rangeinput.Pair(10, 21); got != want {
		t.Errorf("after right = %v, want %v", got, want)
	}
	send(m, "tab", "left")
	if got, want := m.Value(0), rangeinput.Pair(9, 21); got != want {
		t.Errorf("after tab left = %v, want %v", got, want)
	}
	if !strings.Contains(m.View(), "pair [min]") {
		t.Errorf("View() does not show the selected handle")
	}
}

func TestEdit(t *testing.T) {
	m := newModel(t, singleSlider("a"))

	send(m, "e", "7", "enter")
	if got := m.Value(0).Scalar(); got != 7 {
		t.Errorf("value after edit = %v, want 7", got)
	}
	if !logContains(m, "a: set 7") {
		t.Errorf("log missing set line, got %q", m.Log())
	}

	send(m, "e", "x", "enter")
	if got := m.Value(0).Scalar(); got != 7 {
		t.Errorf("value after invalid edit = %v, want 7", got)
	}
	if last := m.Log()[len(m.Log())-1]; !strings.Contains(last, "not a number") {
		t.Errorf("last log line = %q, want a parse error", last)
	}

	send(m, "e", "5", "esc")
	if m.editing {
		t.Error("editing after esc")
	}
	if got := m.Value(0).Scalar(); got != 7 {
		t.Errorf("value after cancelled edit = %v, want 7", got)
	}

	// Keys typed while editing do not reach the slider.
	send(m, "e", "l")
	if got := m.Value(0).Scalar(); got != 7 {
		t.Errorf("value while editing = %v, want 7", got)
	}
}

func TestToggleDisabled(t *testing.T) {
	m := newModel(t, singleSlider("a"))
	send(m, "right", "d", "right")
	if got := m.Value(0).Scalar(); got != 1 {
		t.Errorf("value while disabled = %v, want 1", got)
	}
	if !strings.Contains(m.View(), "a (disabled)") {
		t.Error("View() does not mark the slider disabled")
	}
	m.Update(mouseMsg(tea.MouseActionPress, 30, m.trackLine(0)))
	if got := m.Value(0).Scalar(); got != 1 {
		t.Errorf("value after press while disabled = %v, want 1", got)
	}

	send(m, "d", "right")
	if got := m.Value(0).Scalar(); got != 2 {
		t.Errorf("value after enabling = %v, want 2", got)
	}
}

func TestToggleDraggableKeepsValue(t *testing.T) {
	m := newModel(t, Slider{Title: "pair", Config: rangeinput.Config{
		MaxValue:   39,
		Value:      rangeinput.Pair(10, 20),
		WithActive: true,
	}})
	send(m, "right", "t")
	if got, want := m.Value(0), rangeinput.Pair(10, 21); got != want {
		t.Errorf("value after toggle = %v, want %v", got, want)
	}
	if !m.rows[0].input.Track().Draggable() {
		t.Fatal("track not draggable after toggle")
	}

	// Drag the block from its middle by five cells.
	y := m.trackLine(0)
	m.Update(mouseMsg(tea.MouseActionPress, 2+15, y))
	m.Update(mouseMsg(tea.MouseActionMotion, 2+15, y))
	m.Update(mouseMsg(tea.MouseActionMotion, 2+20, y))
	m.Update(mouseMsg(tea.MouseActionRelease, 2+20, y))
	if got, want := m.Value(0), rangeinput.Pair(15, 26); got != want {
		t.Errorf("value after block drag = %v, want %v", got, want)
	}
}

func TestQuit(t *testing.T) {
	m := newModel(t, singleSlider("a"))
	for _, k := range []tea.KeyMsg{keyMsg("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(k)
		if cmd == nil {
			t.Fatalf("%q returned no command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%q did not quit", k)
		}
	}
}

func TestView(t *testing.T) {
	m := newModel(t, Slider{Title: "weight", Config: rangeinput.Config{
		MaxValue:    100,
		Value:       rangeinput.Single(50),
		WithActive:  true,
		LabelSuffix: " kg",
	}})
	lines := strings.Split(m.View(), "\n")
	if !strings.Contains(lines[0], "Input range") {
		t.Errorf("header = %q", lines[0])
	}
	if got := lines[2]; got != "▸ weight" {
		t.Errorf("title line = %q, want %q", got, "▸ weight")
	}
	if !strings.Contains(lines[3], "50 kg") {
		t.Errorf("value label line = %q", lines[3])
	}
	if got := strings.Count(lines[4], string(glyphHandle)); got != 1 {
		t.Errorf("track line %q has %d handles, want 1", lines[4], got)
	}
	if !strings.HasPrefix(lines[5], "  0 kg") || !strings.HasSuffix(lines[5], "100 kg") {
		t.Errorf("bound label line = %q", lines[5])
	}

	send(m, "?")
	if !m.help.ShowAll {
		t.Error("help not expanded after ?")
	}
	send(m, "e")
	if !strings.Contains(m.View(), "value: ") {
		t.Error("View() does not show the editor")
	}
}

func TestRenderTrack(t *testing.T) {
	styles := NewStyles(io.Discard, theme.DefaultLightTheme().SliderThemeOf())
	tests := []struct {
		name string
		cfg  rangeinput.Config
		want string
	}{
		{
			name: "single active",
			cfg:  rangeinput.Config{MaxValue: 10, Value: rangeinput.Single(5), WithActive: true},
			want: "━━━━━●─────",
		},
		{
			name: "single inactive",
			cfg:  rangeinput.Config{MaxValue: 10, Value: rangeinput.Single(5)},
			want: "─────●─────",
		},
		{
			name: "pair",
			cfg:  rangeinput.Config{MaxValue: 10, Value: rangeinput.Pair(2, 7), WithActive: true},
			want: "──●━━━━●───",
		},
		{
			name: "error band",
			cfg:  rangeinput.Config{MaxValue: 10, Value: rangeinput.Single(5), WithActive: true, SingleValueError: 2},
			want: "───━━●━━───",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := rangeinput.New(tt.cfg)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if got := renderTrack(styles, r.Snapshot(), 11); got != tt.want {
				t.Errorf("renderTrack() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValueLabelsJoin(t *testing.T) {
	r, err := rangeinput.New(rangeinput.Config{MaxValue: 100, Value: rangeinput.Pair(5, 6)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := valueLabels(r.Snapshot(), 20)
	if len(got) != 1 || got[0].text != "5 - 6" {
		t.Fatalf("valueLabels() = %+v, want one joined label", got)
	}
	if got[0].start != 0 {
		t.Errorf("joined label start = %d, want 0", got[0].start)
	}

	if err := r.SetValue(rangeinput.Pair(5, 95)); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	if got := valueLabels(r.Snapshot(), 20); len(got) != 2 {
		t.Errorf("valueLabels() = %+v, want two labels", got)
	}
}

func TestBoundLabelsTruncate(t *testing.T) {
	r, err := rangeinput.New(rangeinput.Config{MinValue: 1000000, MaxValue: 2000000})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := renderLabels(NewStyles(io.Discard, theme.DefaultLightTheme().SliderThemeOf()).Label, boundLabels(r.Snapshot(), 12), 12)
	if got != "100… 2000000" {
		t.Errorf("bound labels = %q, want %q", got, "100… 2000000")
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input   string
		multi   bool
		want    rangeinput.Value
		wantErr bool
	}{
		{"5", false, rangeinput.Single(5), false},
		{" 2.5 ", false, rangeinput.Single(2.5), false},
		{"5 10", true, rangeinput.Pair(5, 10), false},
		{"5,10", true, rangeinput.Pair(5, 10), false},
		{"5", true, rangeinput.Value{}, true},
		{"5 10", false, rangeinput.Value{}, true},
		{"five", false, rangeinput.Value{}, true},
		{"", false, rangeinput.Value{}, true},
	}
	for _, tt := range tests {
		got, err := parseValue(tt.input, tt.multi)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseValue(%q, %v) error = %v, wantErr %v", tt.input, tt.multi, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseValue(%q, %v) = %v, want %v", tt.input, tt.multi, got, tt.want)
		}
	}
}

func TestErrorHandler(t *testing.T) {
	m := newModel(t, singleSlider("a"))
	h := m.ErrorHandler()
	h.HandleError(errors.NewConfigError("rangeinput.Update", "Step", -1, "must be a positive number"))
	h.HandlePanic(&errors.PanicError{Op: "tui.Update", Value: "boom"})
	log := m.Log()
	if len(log) != 2 {
		t.Fatalf("log = %q, want 2 lines", log)
	}
	if !strings.HasPrefix(log[0], "error: rangeinput.Update: ") {
		t.Errorf("error line = %q", log[0])
	}
	if log[1] != "panic: tui.Update: boom" {
		t.Errorf("panic line = %q", log[1])
	}
}

func TestNewRejectsInvalidSlider(t *testing.T) {
	_, err := New([]Slider{{Title: "bad", Config: rangeinput.Config{MinValue: 5, MaxValue: 1}}}, nil, io.Discard)
	if !errors.IsKind(err, errors.KindConfig) {
		t.Errorf("New() error = %v, want a config error", err)
	}
}
