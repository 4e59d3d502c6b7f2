package browse

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/helpsheet/helpsheet/internal/clipboard"
	"github.com/helpsheet/helpsheet/internal/domain/registry"
)

// Run starts the browser and blocks until the user quits.
func Run(reg *registry.Registry, clip clipboard.Writer, opts Options, progOpts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(New(reg, clip, opts), progOpts...).Run()
	return err
}
