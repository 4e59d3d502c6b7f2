package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/helpsheet/helpsheet/internal/cli/errors"
	"github.com/helpsheet/helpsheet/internal/domain/catalog"
)

var showCmd = &cobra.Command{
	Use:   "show <tool> [category]",
	Short: "Show the categories of a tool, or the commands of one category",
	Long: `Show the categories of a tool, or the commands of one category.

The category is its name or its number in the category listing.`,
	Example: `  helpsheet show git
  helpsheet show docker Networking
  helpsheet show docker 3`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := lookupTool(args[0])
		if err != nil {
			return err
		}
		if len(args) == 1 {
			return current.out.FormatCategories(c)
		}

		category, err := resolveCategory(c, args[1])
		if err != nil {
			return err
		}
		return current.out.FormatCommands(c, category, c.Commands(category))
	},
}

func lookupTool(key string) (*catalog.Catalog, error) {
	c, ok := current.reg.Catalog(strings.ToLower(strings.TrimSpace(key)))
	if !ok {
		return nil, fmt.Errorf("%w: unknown tool %q", errors.ErrNotFound, key)
	}
	return c, nil
}

// resolveCategory accepts an exact name, a 1-based position or a name
// differing only in case.
func resolveCategory(c *catalog.Catalog, arg string) (string, error) {
	if c.HasCategory(arg) {
		return arg, nil
	}

	names := c.Categories()
	if n, err := strconv.Atoi(strings.TrimSpace(arg)); err == nil && n >= 1 && n <= len(names) {
		return names[n-1], nil
	}
	for _, name := range names {
		if strings.EqualFold(name, strings.TrimSpace(arg)) {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: unknown category %q in %s", errors.ErrNotFound, arg, c.Name())
}

func init() {
	rootCmd.AddCommand(showCmd)
}
