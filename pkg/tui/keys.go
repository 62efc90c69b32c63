package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the demo.
type KeyMap struct {
	Prev       key.Binding
	Next       key.Binding
	Decrease   key.Binding
	Increase   key.Binding
	Home       key.Binding
	End        key.Binding
	SwitchHand key.Binding
	Edit       key.Binding
	Disable    key.Binding
	Draggable  key.Binding
	Help       key.Binding
	Quit       key.Binding
	Submit     key.Binding
	Cancel     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous slider"),
		),
		Next: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next slider"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "step down"),
		),
		Increase: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "step up"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "to minimum"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "to maximum"),
		),
		SwitchHand: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch handle"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "type a value"),
		),
		Disable: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "toggle disabled"),
		),
		Draggable: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle track drag"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Decrease, k.Increase, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.SwitchHand},
		{k.Decrease, k.Increase, k.Home, k.End},
		{k.Edit, k.Disable, k.Draggable},
		{k.Help, k.Quit},
	}
}
