package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/go-drift/inputrange/cmd/inputrange/internal/config"
	"github.com/go-drift/inputrange/pkg/errors"
	"github.com/go-drift/inputrange/pkg/tui"
)

func init() {
	RegisterCommand(&Command{
		Name:  "demo",
		Short: "Drag sliders in the terminal",
		Long: `Show the configured sliders in the terminal.

Press a track with the mouse and drag to move the nearest handle; the drag
continues when the pointer leaves the track. Sliders with draggable_track
move both handles when the press lands between them.

Keys:
  up/down, j/k     Select a slider
  left/right, h/l  Move the selected handle by one step
  home/end, g/G    Jump to the bound edges
  tab              Switch between the two handles of a dual slider
  e                Type a value ("5" or "5 10")
  d                Toggle disabled
  t                Toggle whole-range dragging
  ?                Show all keys
  q                Quit

Flags:
  --config DIR     Directory holding inputrange.yaml (default: current directory)`,
		Usage: "inputrange demo [--config DIR]",
		Run:   runDemo,
	})
}

type demoOptions struct {
	dir string
}

func parseDemoArgs(args []string) (demoOptions, error) {
	opts := demoOptions{dir: "."}
	for i := 0; i < len(args); i++ {
		if v, ok, err := flagValue(args, &i, "--config"); ok {
			if err != nil {
				return opts, err
			}
			opts.dir = v
			continue
		}
		return opts, fmt.Errorf("unknown argument %q", args[i])
	}
	return opts, nil
}

func runDemo(args []string) error {
	opts, err := parseDemoArgs(args)
	if err != nil {
		return err
	}

	res, err := config.Resolve(opts.dir)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("demo needs an interactive terminal; use \"inputrange preview\" to render an image")
	}

	m, err := tui.New(res.Sliders, res.Theme, os.Stdout)
	if err != nil {
		return err
	}
	m.SetTitle(res.Title)

	// Errors raised while the alternate screen is active go to the event log.
	defer errors.SetHandler(m.ErrorHandler())()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
