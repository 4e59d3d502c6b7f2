// Package config loads and saves the helpsheet configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides, e.g. HELPSHEET_LOG_LEVEL.
const EnvPrefix = "HELPSHEET"

// DirEnv overrides the config directory.
const DirEnv = "HELPSHEET_CONFIG_DIR"

// FileName is the config file name inside the config directory.
const FileName = "config.yaml"

// ErrExists is returned by Init when the config file is already present.
var ErrExists = errors.New("config file already exists")

// Config is the top-level structure for the YAML file.
type Config struct {
	Catalogs []string `mapstructure:"catalogs" yaml:"catalogs" json:"catalogs"`
	Disabled []string `mapstructure:"disabled" yaml:"disabled" json:"disabled"`
	LogLevel string   `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Color    bool     `mapstructure:"color" yaml:"color" json:"color"`
	LogFile  bool     `mapstructure:"log_file" yaml:"log_file" json:"log_file"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Catalogs: []string{},
		Disabled: []string{},
		LogLevel: "warn",
		Color:    true,
	}
}

// IsDisabled reports whether the catalog key is hidden by the config.
func (c Config) IsDisabled(key string) bool {
	return slices.ContainsFunc(c.Disabled, func(d string) bool {
		return strings.EqualFold(strings.TrimSpace(d), key)
	})
}

// DefaultDir returns $HELPSHEET_CONFIG_DIR or the user config dir.
func DefaultDir() (string, error) {
	if dir := os.Getenv(DirEnv); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(base, "helpsheet"), nil
}

// Store handles persistence of the config to a YAML file.
type Store struct {
	path string
}

// NewStore creates a store for the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultStore creates a store for config.yaml in DefaultDir.
func DefaultStore() (*Store, error) {
	dir, err := DefaultDir()
	if err != nil {
		return nil, err
	}
	return NewStore(filepath.Join(dir, FileName)), nil
}

// Path returns the config file path.
func (s *Store) Path() string {
	return s.path
}

// Dir returns the directory holding the config file.
func (s *Store) Dir() string {
	return filepath.Dir(s.path)
}

// Exists reports whether the config file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("catalogs", def.Catalogs)
	v.SetDefault("disabled", def.Disabled)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("color", def.Color)
	v.SetDefault("log_file", def.LogFile)
	return v
}

// Load reads the config file. A missing file yields defaults, still
// subject to environment overrides.
func (s *Store) Load() (Config, error) {
	data, err := os.ReadFile(s.path)
	if err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to read config %s: %w", s.path, err)
	}

	v := newViper()
	if len(data) > 0 {
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", s.path, err)
		}
	}

	var cfg Config
	if err := v.UnmarshalExact(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", s.path, err)
	}
	if cfg.Catalogs == nil {
		cfg.Catalogs = []string{}
	}
	if cfg.Disabled == nil {
		cfg.Disabled = []string{}
	}
	return cfg, nil
}

// Save writes cfg to the file, creating its directory if needed.
func (s *Store) Save(cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.Dir(), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(s.path, data, 0644)
}

// Init writes the default config unless a file already exists.
func (s *Store) Init() error {
	if s.Exists() {
		return fmt.Errorf("%w: %s", ErrExists, s.path)
	}
	return s.Save(Default())
}

// CatalogPaths returns the configured catalog files. Relative paths are
// resolved against the config directory and ~ expands to the home dir.
func (s *Store) CatalogPaths(cfg Config) []string {
	paths := make([]string, 0, len(cfg.Catalogs))
	for _, p := range cfg.Catalogs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if p == "~" || strings.HasPrefix(p, "~/") {
			if home, err := os.UserHomeDir(); err == nil {
				p = filepath.Join(home, strings.TrimPrefix(p, "~"))
			}
		}
		if !filepath.IsAbs(p) {
			p = filepath.Join(s.Dir(), p)
		}
		paths = append(paths, filepath.Clean(p))
	}
	return paths
}
