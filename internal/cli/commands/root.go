package commands

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/helpsheet/helpsheet/internal/cli/errors"
	"github.com/helpsheet/helpsheet/internal/cli/inference"
	"github.com/helpsheet/helpsheet/internal/cli/output"
	"github.com/helpsheet/helpsheet/internal/clipboard"
	"github.com/helpsheet/helpsheet/internal/domain/registry"
	"github.com/helpsheet/helpsheet/internal/ui/browse"
)

var (
	cfgFile    string
	logLevel   string
	jsonOutput bool
	noColor    bool
)

// environment is the process-level wiring that tests replace.
type environment struct {
	clipboard  clipboard.Writer
	isTerminal func() bool
	browse     func(*registry.Registry, clipboard.Writer, browse.Options, ...tea.ProgramOption) error
}

var env = environment{
	clipboard: clipboard.System{},
	isTerminal: func() bool {
		return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	},
	browse: browse.Run,
}

var rootCmd = &cobra.Command{
	Use:   "helpsheet [tool] [category]",
	Short: "Offline terminal cheatsheets for developer tools",
	Long: `Helpsheet is an offline help system for the terminal. Pick a tool, a
category and a command, and the command is copied to your clipboard.

Run without arguments for the interactive browser, or use the subcommands
to list, show and search catalogs from scripts.`,
	Args:              cobra.NoArgs,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: openSession,
	RunE: func(cmd *cobra.Command, args []string) error {
		if env.isTerminal() && !jsonOutput {
			return runBrowse(cmd)
		}
		return runList(false)
	},
}

func Execute() error {
	return run(os.Args[1:])
}

func run(args []string) error {
	// Simple command inference - prepend inferred command to args
	if inferred, _ := inference.InferCommand(args, commandNames()); inferred != "" {
		args = append([]string{inferred}, args...)
	}

	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if err != nil {
		fmtMode := output.FormatText
		if jsonOutput {
			fmtMode = output.FormatJSON
		}
		formatter := output.NewFormatter(rootCmd.ErrOrStderr(), fmtMode, !noColor && env.isTerminal())
		fmt.Fprintln(rootCmd.ErrOrStderr(), formatter.FormatError(errors.Classify(err)))
	}
	closeSession()
	return err
}

// commandNames lists every name the root command dispatches on, including
// the ones cobra adds at execution time.
func commandNames() []string {
	names := []string{"help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd}
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
		names = append(names, c.Aliases...)
	}
	return names
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HELPSHEET_CONFIG_DIR or the user config dir + /helpsheet/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); overrides the config")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}
