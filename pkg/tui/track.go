package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/go-drift/inputrange/pkg/rangeinput"
)

const (
	glyphTrack  = '─'
	glyphActive = '━'
	glyphHandle = '●'
)

type cellKind int

const (
	cellTrack cellKind = iota
	cellSuggested
	cellActive
	cellError
	cellDisabled
	cellHandle
	cellDragging
)

func (s Styles) cell(k cellKind) lipgloss.Style {
	switch k {
	case cellSuggested:
		return s.Suggested
	case cellActive:
		return s.Active
	case cellError:
		return s.Error
	case cellDisabled:
		return s.Disabled
	case cellHandle:
		return s.Handle
	case cellDragging:
		return s.Dragging
	default:
		return s.Track
	}
}

// column maps a percentage onto one of n cells.
func column(p float64, n int) int {
	if n <= 1 {
		return 0
	}
	return int(math.Round(rangeinput.Clamp(p, 0, 1) * float64(n-1)))
}

func inSegment(i, n int, seg rangeinput.Segment) bool {
	return i >= column(seg.Left, n) && i <= column(seg.Right(), n)
}

func handlePercentage(p rangeinput.Percentages, h rangeinput.Handle) float64 {
	if h == rangeinput.HandleMin {
		return p.Min
	}
	return p.Max
}

// renderTrack draws the track of snap over n cells.
func renderTrack(s Styles, snap rangeinput.Snapshot, n int) string {
	glyphs := make([]rune, n)
	kinds := make([]cellKind, n)
	for i := range glyphs {
		glyphs[i], kinds[i] = glyphTrack, cellTrack
		if snap.HasSuggested && inSegment(i, n, snap.Suggested) {
			kinds[i] = cellSuggested
		}
		switch {
		case snap.HasError && inSegment(i, n, snap.Error):
			glyphs[i], kinds[i] = glyphActive, cellError
		case snap.HasActive && inSegment(i, n, snap.Active):
			glyphs[i], kinds[i] = glyphActive, cellActive
			if snap.Disabled {
				kinds[i] = cellDisabled
			}
		}
	}
	for _, h := range snap.Handles {
		i := column(handlePercentage(snap.Percentages, h), n)
		glyphs[i], kinds[i] = glyphHandle, cellHandle
		if snap.Dragging && (snap.ActiveHandle == h || snap.ActiveHandle == rangeinput.HandleActiveTrack) {
			kinds[i] = cellDragging
		}
	}

	var b strings.Builder
	start := 0
	for i := 1; i <= n; i++ {
		if i < n && kinds[i] == kinds[start] {
			continue
		}
		b.WriteString(s.cell(kinds[start]).Render(string(glyphs[start:i])))
		start = i
	}
	return b.String()
}

// placed is a label positioned on a line of cells.
type placed struct {
	text  string
	start int
}

// center positions text around cell col, kept inside width cells.
func center(text string, col, width int) placed {
	w := runewidth.StringWidth(text)
	start := col - w/2
	if start+w > width {
		start = width - w
	}
	if start < 0 {
		start = 0
	}
	return placed{text: text, start: start}
}

// valueLabels places the value labels above their handles. Labels that
// would collide are joined into one.
func valueLabels(snap rangeinput.Snapshot, n int) []placed {
	var vals []rangeinput.Label
	for _, l := range snap.Labels {
		if l.Kind == rangeinput.LabelValue {
			vals = append(vals, l)
		}
	}
	switch len(vals) {
	case 0:
		return nil
	case 1:
		return []placed{center(vals[0].Text, column(vals[0].Percentage, n), n)}
	}
	lo := center(vals[0].Text, column(vals[0].Percentage, n), n)
	hi := center(vals[1].Text, column(vals[1].Percentage, n), n)
	if lo.start+runewidth.StringWidth(lo.text) >= hi.start {
		mid := (column(vals[0].Percentage, n) + column(vals[1].Percentage, n)) / 2
		return []placed{center(vals[0].Text+" - "+vals[1].Text, mid, n)}
	}
	return []placed{lo, hi}
}

// boundLabels places the minimum label at the left edge and the maximum
// label at the right edge, truncating the minimum label when both do not fit.
func boundLabels(snap rangeinput.Snapshot, n int) []placed {
	var lo, hi string
	for _, l := range snap.Labels {
		switch l.Kind {
		case rangeinput.LabelMinBound:
			lo = l.Text
		case rangeinput.LabelMaxBound:
			hi = l.Text
		}
	}
	hiWidth := runewidth.StringWidth(hi)
	if hiWidth > n {
		hi = runewidth.Truncate(hi, n, "…")
		hiWidth = runewidth.StringWidth(hi)
	}
	room := n - hiWidth - 1
	if room < 0 {
		room = 0
	}
	lo = runewidth.Truncate(lo, room, "…")
	return []placed{{text: lo, start: 0}, {text: hi, start: n - hiWidth}}
}

// renderLabels writes labels onto a line of n cells.
func renderLabels(style lipgloss.Style, labels []placed, n int) string {
	var b strings.Builder
	col := 0
	for _, l := range labels {
		if l.text == "" || l.start < col {
			continue
		}
		b.WriteString(strings.Repeat(" ", l.start-col))
		b.WriteString(style.Render(l.text))
		col = l.start + runewidth.StringWidth(l.text)
	}
	if col < n {
		b.WriteString(strings.Repeat(" ", n-col))
	}
	return b.String()
}
