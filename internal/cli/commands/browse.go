package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/helpsheet/helpsheet/internal/cli/errors"
	"github.com/helpsheet/helpsheet/internal/ui/browse"
	"github.com/helpsheet/helpsheet/internal/ui/styles"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse tools interactively and copy commands",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse(cmd)
	},
}

func runBrowse(cmd *cobra.Command) error {
	s := current
	if s.reg.LoadAll().Len() == 0 {
		return errors.ErrNoCatalogs
	}

	opts := browse.Options{
		Theme:  styles.New(styles.NewRenderer(cmd.OutOrStdout(), s.color)),
		Logger: s.log.Logger,
	}
	return env.browse(s.reg, env.clipboard, opts,
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
