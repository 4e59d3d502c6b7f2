package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/helpsheet/helpsheet/internal/config"
)

var configCmd = &cobra.Command{
	Use:               "config",
	Short:             "Manage the helpsheet configuration",
	PersistentPreRunE: openLenientSession,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := current.store.Path()
		return current.out.FormatValue(map[string]string{"path": p}, p+"\n")
	},
}

type configView struct {
	Path     string        `json:"path"`
	Exists   bool          `json:"exists"`
	Config   config.Config `json:"config"`
	Catalogs []string      `json:"catalogFiles"`
	Skipped  []skipView    `json:"skipped"`
}

type skipView struct {
	Key    string `json:"key"`
	Origin string `json:"origin"`
	Error  string `json:"error"`
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration and any catalogs that failed to load",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := current
		if s.cfgErr != nil {
			return s.cfgErr
		}

		view := configView{
			Path:     s.store.Path(),
			Exists:   s.store.Exists(),
			Config:   s.cfg,
			Catalogs: s.store.CatalogPaths(s.cfg),
			Skipped:  []skipView{},
		}
		loadErrs := s.reg.LoadErrors()
		for _, e := range loadErrs {
			view.Skipped = append(view.Skipped, skipView{Key: e.Key, Origin: e.Origin, Error: e.Err.Error()})
		}
		if s.out.JSON() {
			return s.out.FormatValue(view, "")
		}

		data, err := yaml.Marshal(s.cfg)
		if err != nil {
			return err
		}
		text := fmt.Sprintf("# %s", view.Path)
		if !view.Exists {
			text += " (not created yet, showing defaults)"
		}
		if err := s.out.FormatValue(nil, text+"\n"+string(data)); err != nil {
			return err
		}
		s.out.FormatLoadErrors(loadErrs)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := current.store.Init(); err != nil {
			return err
		}
		p := current.store.Path()
		return current.out.FormatValue(map[string]string{"path": p}, fmt.Sprintf("Wrote default config to %s\n", p))
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configShowCmd, configInitCmd)
}
