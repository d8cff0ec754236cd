package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/highorder/scriptgui/pkg/scriptgui/input"
)

// Options configures Run and New.
type Options struct {
	StartScreen string        // navigation key opened first; empty opens Home
	Keymap      *input.Keymap // nil uses input.DefaultKeymap
	Device      *input.Device // optional game pad; Run closes it
	ConfigPath  string        // reload the theme when this file changes

	AltScreen bool      // use the terminal's alternate screen buffer
	Mouse     bool      // enable mouse cell motion events
	Input     io.Reader // defaults to stdin
	Output    io.Writer // defaults to stdout
}

func (o Options) keymap() *input.Keymap {
	if o.Keymap == nil {
		return input.DefaultKeymap()
	}
	return o.Keymap
}

func (o Options) programOptions() []tea.ProgramOption {
	var opts []tea.ProgramOption

	if o.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if o.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if o.Input != nil {
		opts = append(opts, tea.WithInput(o.Input))
	}
	if o.Output != nil {
		opts = append(opts, tea.WithOutput(o.Output))
	}
	return opts
}
