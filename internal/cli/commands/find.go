package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/helpsheet/helpsheet/internal/cli/errors"
	"github.com/helpsheet/helpsheet/internal/domain/catalog"
)

var findTool string

var findCmd = &cobra.Command{
	Use:     "find <query...>",
	Aliases: []string{"search"},
	Short:   "Search commands and descriptions across all tools",
	Example: `  helpsheet find commit
  helpsheet find --tool docker logs`,
	RunE: func(cmd *cobra.Command, args []string) error {
		query, ok := catalog.CleanQuery(strings.Join(args, " "))
		if !ok {
			return errors.ErrInvalidQuery
		}

		if findTool == "" {
			return current.out.FormatResults(query, current.reg.SearchAll(query), "")
		}

		c, err := lookupTool(findTool)
		if err != nil {
			return err
		}
		return current.out.FormatResults(query, c.Search(query), c.Name())
	},
}

func init() {
	rootCmd.AddCommand(findCmd)
	findCmd.Flags().StringVarP(&findTool, "tool", "t", "", "search within one tool")
}
