package commands

import (
	"github.com/spf13/cobra"

	"github.com/helpsheet/helpsheet/internal/cli/errors"
	"github.com/helpsheet/helpsheet/internal/cli/output"
)

var listExpand bool

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List available tools",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(listExpand)
	},
}

func runList(expand bool) error {
	s := current
	tools := s.reg.ListTools()
	if len(tools) == 0 {
		return errors.ErrNoCatalogs
	}

	if !expand {
		return s.out.FormatTools(tools)
	}

	details := make([]output.ToolDetails, 0, len(tools))
	for _, t := range tools {
		d := output.ToolDetails{ToolSummary: t}
		if c, ok := s.reg.Catalog(t.Key); ok {
			d.Categories = c.Categories()
		}
		details = append(details, d)
	}
	return s.out.FormatToolDetails(details)
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVarP(&listExpand, "expand", "e", false, "include category names")
}
