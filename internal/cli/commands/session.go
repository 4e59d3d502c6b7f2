package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/helpsheet/helpsheet/internal/catalogs"
	"github.com/helpsheet/helpsheet/internal/cli/errors"
	"github.com/helpsheet/helpsheet/internal/cli/output"
	"github.com/helpsheet/helpsheet/internal/config"
	"github.com/helpsheet/helpsheet/internal/domain/registry"
	"github.com/helpsheet/helpsheet/internal/domain/source"
	"github.com/helpsheet/helpsheet/internal/logger"
)

// session is everything a command needs, built once per invocation.
type session struct {
	store  *config.Store
	cfg    config.Config
	cfgErr error
	log    *logger.Logger
	reg    *registry.Registry
	out    *output.Formatter
	color  bool
}

var current *session

func openSession(cmd *cobra.Command, args []string) error {
	return startSession(cmd, true)
}

// openLenientSession falls back to defaults when the config file is
// broken, so the config commands can still locate and report it.
func openLenientSession(cmd *cobra.Command, args []string) error {
	return startSession(cmd, false)
}

func startSession(cmd *cobra.Command, strict bool) error {
	store, err := configStore()
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrConfig, err)
	}

	cfg, cfgErr := store.Load()
	if cfgErr != nil {
		cfgErr = fmt.Errorf("%w: %v", errors.ErrConfig, cfgErr)
		if strict {
			return cfgErr
		}
		cfg = config.Default()
	}

	level := cfg.LogLevel
	if cmd.Flags().Changed("log-level") {
		level = logLevel
	}
	logDir := ""
	if cfg.LogFile {
		logDir = store.Dir()
	}
	log, err := logger.New(logger.Options{Level: level, Console: cmd.ErrOrStderr(), Dir: logDir})
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrConfig, err)
	}

	fmtMode := output.FormatText
	if jsonOutput {
		fmtMode = output.FormatJSON
	}
	useColor := cfg.Color && !noColor

	current = &session{
		store:  store,
		cfg:    cfg,
		cfgErr: cfgErr,
		log:    log,
		reg:    registry.New(log.Logger, catalogSources(store, cfg, log.Logger)...),
		out:    output.NewFormatter(cmd.OutOrStdout(), fmtMode, useColor && env.isTerminal()),
		color:  useColor,
	}
	return nil
}

func closeSession() {
	if current == nil {
		return
	}
	_ = current.log.Close()
	current = nil
}

func configStore() (*config.Store, error) {
	if cfgFile != "" {
		return config.NewStore(cfgFile), nil
	}
	return config.DefaultStore()
}

// catalogSources registers the built-in catalogs followed by the files
// listed in the config, minus the disabled keys.
func catalogSources(store *config.Store, cfg config.Config, log *zap.Logger) []source.Source {
	all := catalogs.Builtin()
	for _, path := range store.CatalogPaths(cfg) {
		all = append(all, source.File(path))
	}

	sources := make([]source.Source, 0, len(all))
	for _, src := range all {
		if cfg.IsDisabled(src.Key()) {
			log.Debug("catalog disabled", zap.String("key", src.Key()), zap.String("origin", src.Origin()))
			continue
		}
		sources = append(sources, src)
	}
	return sources
}
