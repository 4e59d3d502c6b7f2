package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/helpsheet/helpsheet/internal/domain/source"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export <tool>",
	Short: "Write a catalog out as a YAML, TOML or JSON definition",
	Long: `Write a catalog out as a definition file. The output loads back as a
user catalog, so it is a starting point for your own cheatsheets.`,
	Example: `  helpsheet export docker > ~/.config/helpsheet/docker-mine.yaml
  helpsheet export git --format toml -o git.toml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := lookupTool(args[0])
		if err != nil {
			return err
		}

		data, err := source.Encode(exportFormat, c.Definition())
		if err != nil {
			return err
		}

		if exportOutput == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(exportOutput, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Exported %s to %s\n", c.Name(), exportOutput)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "yaml", "output format (yaml, toml, json)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to a file instead of stdout")
}
