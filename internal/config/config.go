// Package config loads msbee settings from defaults, a config file, the
// environment and command-line flags, in that order.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/msbee/msbee/internal/logging"
	"github.com/msbee/msbee/internal/vault"
)

// Environment variables read by Load.
const (
	EnvVault     = "MSBEE_VAULT_PATH"
	EnvDailyPath = "MSBEE_DAILY_PATH"
	EnvLogLevel  = "MSBEE_LOG_LEVEL"
	EnvTheme     = "MSBEE_THEME"
)

// Themes accepted by the theme setting.
var Themes = []string{"auto", "dark", "light"}

// ErrInvalid is wrapped by validation failures.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the effective settings.
type Config struct {
	// Vault is the root directory to scan. Empty means discover it.
	Vault string `toml:"vault" yaml:"vault"`

	// Extension selects note files, including the leading dot.
	Extension string `toml:"extension" yaml:"extension"`

	// Exclude lists path fragments; notes whose vault-relative path
	// contains one are skipped.
	Exclude []string `toml:"exclude" yaml:"exclude"`

	// DailyPath is the daily notes directory, relative to the vault.
	DailyPath string `toml:"daily_path" yaml:"daily_path"`

	LogLevel string `toml:"log_level" yaml:"log_level"`
	Theme    string `toml:"theme" yaml:"theme"`
}

// Overrides carries values set on the command line. Empty fields are unset.
type Overrides struct {
	Vault    string
	LogLevel string
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Extension: vault.DefaultExtension,
		Exclude:   []string{},
		DailyPath: vault.DefaultDailyDir,
		LogLevel:  logging.DefaultLevel,
		Theme:     "auto",
	}
}

// DefaultPath returns the user config file location:
// $XDG_CONFIG_HOME/msbee/config.toml, else ~/.config/msbee/config.toml.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "msbee", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "msbee", "config.toml")
}

// Load builds the effective configuration. path names the config file; when
// empty, DefaultPath is used and a missing file is not an error. An explicit
// path must exist.
func Load(path string, flags Overrides) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if err := loadFile(cfg, path); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return nil, err
			}
		}
	}

	loadFromEnv(cfg)
	applyOverrides(cfg, flags)

	if err := cfg.finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile merges the file at path into cfg. Files ending in .yaml or .yml
// are YAML, everything else is TOML.
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is the user's own config
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config file %s: %w", path, err)
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parsing config file %s: %w", path, err)
		}
	default:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	return nil
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv(EnvVault); v != "" {
		cfg.Vault = v
	}
	if v := os.Getenv(EnvDailyPath); v != "" {
		cfg.DailyPath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvTheme); v != "" {
		cfg.Theme = v
	}
}

func applyOverrides(cfg *Config, flags Overrides) {
	if flags.Vault != "" {
		cfg.Vault = flags.Vault
	}
	if flags.LogLevel != "" {
		cfg.LogLevel = flags.LogLevel
	}
}

// finalize normalizes and validates cfg.
func (c *Config) finalize() error {
	c.Vault = ExpandPath(c.Vault)
	c.DailyPath = ExpandPath(c.DailyPath)

	if c.Extension == "" {
		c.Extension = vault.DefaultExtension
	}
	if !strings.HasPrefix(c.Extension, ".") {
		c.Extension = "." + c.Extension
	}
	if c.DailyPath == "" {
		c.DailyPath = vault.DefaultDailyDir
	}
	if c.Exclude == nil {
		c.Exclude = []string{}
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = logging.DefaultLevel
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q (want debug, info, warn or error)", ErrInvalid, c.LogLevel)
	}

	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	if c.Theme == "" {
		c.Theme = "auto"
	}
	valid := false
	for _, t := range Themes {
		if c.Theme == t {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("%w: theme %q (want %s)", ErrInvalid, c.Theme, strings.Join(Themes, ", "))
	}
	return nil
}

// ResolveVault returns the vault root: the configured one made absolute, or
// the nearest enclosing Obsidian vault of workDir, or workDir itself.
func (c *Config) ResolveVault(workDir string) (string, error) {
	if c.Vault != "" {
		root, err := filepath.Abs(c.Vault)
		if err != nil {
			return "", fmt.Errorf("resolving vault %s: %w", c.Vault, err)
		}
		return root, nil
	}
	return vault.FindOrDefault(workDir)
}

// Write encodes cfg as TOML.
func (c *Config) Write(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}

// ExpandPath expands a leading ~ and environment variables in p.
func ExpandPath(p string) string {
	if p == "" {
		return p
	}
	p = os.ExpandEnv(p)
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
