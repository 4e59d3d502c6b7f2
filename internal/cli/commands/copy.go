package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/helpsheet/helpsheet/internal/cli/errors"
)

var copyCmd = &cobra.Command{
	Use:   "copy <tool> <category> <n>",
	Short: "Copy the n-th command of a category to the clipboard",
	Example: `  helpsheet copy git "Stashing" 1
  helpsheet copy docker 1 5`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := lookupTool(args[0])
		if err != nil {
			return err
		}
		category, err := resolveCategory(c, args[1])
		if err != nil {
			return err
		}

		commands := c.Commands(category)
		n, err := strconv.Atoi(args[2])
		if err != nil || n < 1 || n > len(commands) {
			return fmt.Errorf("%w: command %q in %s - %s (1-%d)", errors.ErrNotFound, args[2], c.Name(), category, len(commands))
		}

		entry := commands[n-1]
		if err := env.clipboard.WriteAll(entry.Command); err != nil {
			if ferr := current.out.FormatCopyFailed(entry, err); ferr != nil {
				return ferr
			}
			return fmt.Errorf("%w: %v", errors.ErrClipboard, err)
		}
		return current.out.FormatCopied(entry)
	},
}

func init() {
	rootCmd.AddCommand(copyCmd)
}
