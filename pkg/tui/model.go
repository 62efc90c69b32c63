// Package tui hosts range inputs in a terminal. Mouse presses on a track are
// fed to the slider's Track and later moves and releases to the shared
// document, so drags keep working after the pointer leaves the track.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/inputrange/pkg/errors"
	"github.com/go-drift/inputrange/pkg/gestures"
	"github.com/go-drift/inputrange/pkg/graphics"
	"github.com/go-drift/inputrange/pkg/rangeinput"
	"github.com/go-drift/inputrange/pkg/theme"
)

const (
	headerLines = 2
	rowLines    = 5
	// trackRow is the offset of the track line inside a row block.
	trackRow  = 2
	trackLeft = 2
	minCells  = 10
	logLines  = 6

	defaultWidth = 64
	defaultTitle = "Input range"
)

// Slider is a titled slider configuration.
type Slider struct {
	Title  string
	Config rangeinput.Config
}

type row struct {
	title   string
	cfg     rangeinput.Config
	input   *rangeinput.InputRange
	surface *gestures.Surface
	handle  rangeinput.Handle
}

// Model is the bubbletea model of the demo.
type Model struct {
	title string
	rows  []*row
	doc   *gestures.Document
	focus int

	width  int
	height int
	cells  int

	keys    KeyMap
	help    help.Model
	log     *eventLog
	logView viewport.Model
	editor  textinput.Model
	editing bool
	styles  Styles
}

// New creates a model for sliders, styled for output w with theme th.
func New(sliders []Slider, th *theme.ThemeData, w io.Writer) (*Model, error) {
	if th == nil {
		th = theme.DefaultLightTheme()
	}
	if w == nil {
		w = io.Discard
	}
	m := &Model{
		title:   defaultTitle,
		doc:     gestures.NewDocument(),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		log:     &eventLog{},
		logView: viewport.New(defaultWidth, logLines),
		editor:  textinput.New(),
		styles:  NewStyles(w, th.SliderThemeOf()),
	}
	m.editor.Prompt = "value: "
	m.editor.CharLimit = 48

	for _, s := range sliders {
		r := &row{title: s.Title, cfg: s.Config, handle: rangeinput.HandleMax}
		r.cfg.OnChangeStart = m.logged(r, "start", s.Config.OnChangeStart)
		r.cfg.OnChange = m.logged(r, "change", s.Config.OnChange)
		r.cfg.OnChangeComplete = m.logged(r, "complete", s.Config.OnChangeComplete)
		input, err := rangeinput.New(r.cfg)
		if err != nil {
			return nil, fmt.Errorf("slider %q: %w", s.Title, err)
		}
		r.input = input
		r.surface = &gestures.Surface{Document: m.doc}
		input.Mount(r.surface)
		m.rows = append(m.rows, r)
	}
	m.resize(defaultWidth, 0)
	return m, nil
}

func (m *Model) logged(r *row, event string, next func(rangeinput.Value)) func(rangeinput.Value) {
	return func(v rangeinput.Value) {
		m.log.addf("%s: %s %s", r.title, event, v)
		if next != nil {
			next(v)
		}
	}
}

// SetTitle replaces the header line.
func (m *Model) SetTitle(title string) {
	m.title = title
}

// ErrorHandler returns a handler that reports errors into the event log.
func (m *Model) ErrorHandler() errors.ErrorHandler {
	return logHandler{log: m.log}
}

// Value returns the value of slider i.
func (m *Model) Value(i int) rangeinput.Value {
	return m.rows[i].input.Value()
}

// Focus returns the index of the focused slider.
func (m *Model) Focus() int {
	return m.focus
}

// Log returns the event log lines.
func (m *Model) Log() []string {
	return append([]string(nil), m.log.lines...)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (model tea.Model, cmd tea.Cmd) {
	model = m
	defer errors.RecoverWithCallback("tui.Update", func(any) {
		m.cancelDrags()
		cmd = nil
	})

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.MouseMsg:
		if !m.editing {
			m.handleMouse(msg)
		}
	case tea.KeyMsg:
		if m.editing {
			cmd = m.updateEditor(msg)
		} else {
			cmd = m.handleKey(msg)
		}
	}
	m.syncLog()
	return model, cmd
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.cells = width - 2*trackLeft
	if m.cells < minCells {
		m.cells = minCells
	}
	for i, r := range m.rows {
		r.surface.Rect = graphics.RectFromLTWH(trackLeft, float64(m.trackLine(i)), float64(m.cells-1), 1)
	}
	m.logView.Width = width
	m.help.Width = width
	m.editor.Width = m.cells
}

// trackLine returns the screen line of slider i's track.
func (m *Model) trackLine(i int) int {
	return headerLines + i*rowLines + trackRow
}

// hitTrack returns the slider whose track contains the cell, or -1. The
// cell left of each track also counts so the minimum is easy to grab.
func (m *Model) hitTrack(x, y int) int {
	cell := graphics.Offset{X: float64(x), Y: float64(y)}
	for i, r := range m.rows {
		if r.surface.Rect.Inset(-1, 0).Contains(cell) {
			return i
		}
	}
	return -1
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	x, y := float64(msg.X), float64(msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		i := m.hitTrack(msg.X, msg.Y)
		if i < 0 {
			return
		}
		m.focus = i
		m.rows[i].input.Track().HandlePointerDown(gestures.MouseEvent(gestures.PointerPhaseDown, x, y))
	case tea.MouseActionMotion:
		m.doc.Dispatch(gestures.MouseEvent(gestures.PointerPhaseMove, x, y))
	case tea.MouseActionRelease:
		m.doc.Dispatch(gestures.MouseEvent(gestures.PointerPhaseUp, x, y))
	}
}

// cancelDrags releases every track so no listener outlives a failed update.
func (m *Model) cancelDrags() {
	for _, r := range m.rows {
		r.input.Track().Cancel()
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	}
	if len(m.rows) == 0 {
		return nil
	}
	r := m.rows[m.focus]
	switch {
	case key.Matches(msg, m.keys.Prev):
		m.focus = (m.focus + len(m.rows) - 1) % len(m.rows)
	case key.Matches(msg, m.keys.Next):
		m.focus = (m.focus + 1) % len(m.rows)
	case key.Matches(msg, m.keys.Decrease):
		r.input.HandleKeyDown(rangeinput.KeyLeft, r.handle)
	case key.Matches(msg, m.keys.Increase):
		r.input.HandleKeyDown(rangeinput.KeyRight, r.handle)
	case key.Matches(msg, m.keys.Home):
		r.input.HandleKeyDown(rangeinput.KeyHome, r.handle)
	case key.Matches(msg, m.keys.End):
		r.input.HandleKeyDown(rangeinput.KeyEnd, r.handle)
	case key.Matches(msg, m.keys.SwitchHand):
		if r.input.IsMultiValue() {
			if r.handle == rangeinput.HandleMin {
				r.handle = rangeinput.HandleMax
			} else {
				r.handle = rangeinput.HandleMin
			}
		}
	case key.Matches(msg, m.keys.Disable):
		r.cfg.Disabled = !r.cfg.Disabled
		m.reconfigure(r)
	case key.Matches(msg, m.keys.Draggable):
		r.cfg.DraggableTrack = !r.cfg.DraggableTrack
		m.reconfigure(r)
	case key.Matches(msg, m.keys.Edit):
		if r.cfg.Disabled {
			return nil
		}
		m.editing = true
		m.editor.SetValue("")
		if r.input.IsMultiValue() {
			m.editor.Placeholder = "min max"
		} else {
			m.editor.Placeholder = "value"
		}
		return m.editor.Focus()
	}
	return nil
}

// reconfigure applies r.cfg, keeping the current value.
func (m *Model) reconfigure(r *row) {
	r.cfg.Value = r.input.Value()
	if err := r.input.Update(r.cfg); err != nil {
		m.log.addf("%s: %v", r.title, err)
	}
}

func (m *Model) updateEditor(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.stopEditing()
		return nil
	case key.Matches(msg, m.keys.Submit):
		r := m.rows[m.focus]
		text := m.editor.Value()
		m.stopEditing()
		v, err := parseValue(text, r.input.IsMultiValue())
		if err == nil {
			err = r.input.SetValue(v)
		}
		if err != nil {
			m.log.addf("%s: %v", r.title, err)
			return nil
		}
		m.log.addf("%s: set %s", r.title, r.input.Value())
		return nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return cmd
}

func (m *Model) stopEditing() {
	m.editing = false
	m.editor.Blur()
}

func (m *Model) syncLog() {
	m.logView.SetContent(m.log.String())
	m.logView.GotoBottom()
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render(m.title))
	b.WriteString("\n\n")
	for i, r := range m.rows {
		m.viewRow(&b, i, r)
	}
	if m.editing {
		b.WriteString(m.editor.View())
	} else {
		b.WriteString(m.styles.Log.Render(m.logView.View()))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) viewRow(b *strings.Builder, i int, r *row) {
	snap := r.input.Snapshot()
	indent := strings.Repeat(" ", trackLeft)

	title := r.title
	switch {
	case snap.Disabled:
		title += " (disabled)"
	case snap.Dragging:
		title += " (dragging " + snap.ActiveHandle.String() + ")"
	case i == m.focus && r.input.IsMultiValue():
		title += " [" + r.handle.String() + "]"
	}
	if i == m.focus {
		b.WriteString(m.styles.Focused.Render("▸ " + title))
	} else {
		b.WriteString(indent + m.styles.Title.Render(title))
	}
	b.WriteString("\n")

	b.WriteString(indent + renderLabels(m.styles.Label, valueLabels(snap, m.cells), m.cells) + "\n")
	b.WriteString(indent + renderTrack(m.styles, snap, m.cells) + "\n")
	b.WriteString(indent + renderLabels(m.styles.Label, boundLabels(snap, m.cells), m.cells) + "\n")
	b.WriteString("\n")
}
