package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/inputrange/pkg/graphics"
	"github.com/go-drift/inputrange/pkg/theme"
)

// Styles holds the lipgloss styles of the demo, derived from a slider theme.
type Styles struct {
	Renderer *lipgloss.Renderer

	Header    lipgloss.Style
	Title     lipgloss.Style
	Focused   lipgloss.Style
	Track     lipgloss.Style
	Active    lipgloss.Style
	Disabled  lipgloss.Style
	Suggested lipgloss.Style
	Error     lipgloss.Style
	Handle    lipgloss.Style
	Dragging  lipgloss.Style
	Label     lipgloss.Style
	Log       lipgloss.Style
	Problem   lipgloss.Style
}

// NewStyles builds styles for output w from a slider theme.
func NewStyles(w io.Writer, st theme.SliderThemeData) Styles {
	r := lipgloss.NewRenderer(w)
	color := func(c graphics.Color) lipgloss.Color {
		return lipgloss.Color(c.Hex())
	}
	return Styles{
		Renderer:  r,
		Header:    r.NewStyle().Bold(true).Foreground(color(st.ActiveTrackColor)),
		Title:     r.NewStyle().Foreground(color(st.LabelColor)),
		Focused:   r.NewStyle().Bold(true).Foreground(color(st.ActiveTrackColor)),
		Track:     r.NewStyle().Foreground(color(st.TrackColor)),
		Active:    r.NewStyle().Foreground(color(st.ActiveTrackColor)),
		Disabled:  r.NewStyle().Foreground(color(st.DisabledActiveTrackColor)),
		Suggested: r.NewStyle().Foreground(color(st.SuggestedTrackColor)),
		Error:     r.NewStyle().Foreground(color(st.ErrorTrackColor)),
		Handle:    r.NewStyle().Foreground(color(st.HandleBorderColor)),
		Dragging:  r.NewStyle().Bold(true).Foreground(color(st.DraggingHandleColor)),
		Label:     r.NewStyle().Foreground(color(st.LabelColor)),
		Log:       r.NewStyle().Faint(true),
		Problem:   r.NewStyle().Foreground(color(st.ErrorTrackColor)).Bold(true),
	}
}
