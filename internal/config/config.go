package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/joshuapare/iniregfmt/pkg/kvfmt"
	"github.com/joshuapare/iniregfmt/pkg/types"
)

const (
	// ConfigFileName is the project config file looked up from the working directory.
	ConfigFileName = ".iniregfmt.toml"
	// EnvPrefix prefixes environment overrides, e.g. INIREGFMT_JOBS.
	EnvPrefix = "INIREGFMT"
)

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"jobs":        "jobs",
	"line-ending": "line_ending",
	"encoding":    "encoding",
	"dialect":     "dialect",
}

// Config is the resolved configuration.
type Config struct {
	Jobs       int           `mapstructure:"jobs"`
	LineEnding string        `mapstructure:"line_ending"`
	Encoding   string        `mapstructure:"encoding"`
	Dialect    string        `mapstructure:"dialect"`
	INI        DialectConfig `mapstructure:"ini"`
	REG        DialectConfig `mapstructure:"reg"`
}

// DialectConfig holds per-dialect settings.
type DialectConfig struct {
	Extensions []string `mapstructure:"extensions"`
}

// LoadOptions controls where configuration is read from.
type LoadOptions struct {
	// ConfigFilePath, when set, is used instead of searching for ConfigFileName.
	ConfigFilePath string
	// StartDir is where the search for ConfigFileName starts. Default: ".".
	StartDir string
	// Flags are bound over file and environment values when changed.
	Flags *pflag.FlagSet
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Jobs:       0,
		LineEnding: string(types.LineEndingAuto),
		INI:        DialectConfig{Extensions: []string{".ini", ".inf", ".cfg"}},
		REG:        DialectConfig{Extensions: []string{".reg"}},
	}
}

// Load resolves the configuration. It returns the path of the config file
// that was read, or "" when none was found.
func Load(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("jobs", defaults.Jobs)
	v.SetDefault("line_ending", defaults.LineEnding)
	v.SetDefault("encoding", defaults.Encoding)
	v.SetDefault("dialect", defaults.Dialect)
	v.SetDefault("ini.extensions", defaults.INI.Extensions)
	v.SetDefault("reg.extensions", defaults.REG.Extensions)

	resolvedPath := opts.ConfigFilePath
	if resolvedPath != "" {
		if _, err := os.Stat(resolvedPath); err != nil {
			return nil, "", fmt.Errorf("config file not found: %s", resolvedPath)
		}
	} else {
		found, ok, err := FindConfigFile(opts.StartDir)
		if err != nil {
			return nil, "", err
		}
		if ok {
			resolvedPath = found
		}
	}

	if resolvedPath != "" {
		v.SetConfigFile(resolvedPath)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, "", fmt.Errorf("failed to read config %s: %w", resolvedPath, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, "", fmt.Errorf("failed to bind flag --%s: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, "", fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, resolvedPath, nil
}

// FindConfigFile walks up from startDir looking for ConfigFileName.
func FindConfigFile(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Validate checks value ranges and names.
func (c *Config) Validate() error {
	if c.Jobs < 0 {
		return fmt.Errorf("config: jobs must not be negative, got %d", c.Jobs)
	}
	switch types.LineEnding(strings.ToLower(c.LineEnding)) {
	case "", types.LineEndingAuto, types.LineEndingLF, types.LineEndingCRLF:
	default:
		return fmt.Errorf("config: unknown line_ending %q (must be auto, lf or crlf)", c.LineEnding)
	}
	if err := kvfmt.CheckEncoding(c.Encoding); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Dialect != "" {
		if _, err := types.ParseDialect(c.Dialect); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}

// ForcedDialect returns the dialect set with --dialect, if any.
func (c *Config) ForcedDialect() (types.Dialect, bool) {
	if c.Dialect == "" {
		return types.DialectUnknown, false
	}
	d, err := types.ParseDialect(c.Dialect)
	return d, err == nil
}

// Extensions builds the extension table. REG entries win over INI entries
// registered for the same extension.
func (c *Config) Extensions() types.Extensions {
	exts := make(types.Extensions)
	add := func(list []string, d types.Dialect) {
		for _, e := range list {
			e = strings.ToLower(strings.TrimSpace(e))
			if e == "" {
				continue
			}
			if !strings.HasPrefix(e, ".") {
				e = "." + e
			}
			exts[e] = d
		}
	}
	add(c.INI.Extensions, types.DialectINI)
	add(c.REG.Extensions, types.DialectREG)
	return exts
}

// FormatOptions returns codec options for a document of dialect d.
func (c *Config) FormatOptions(d types.Dialect) types.FormatOptions {
	return types.FormatOptions{
		Dialect:       d,
		InputEncoding: c.Encoding,
		LineEnding:    types.LineEnding(strings.ToLower(c.LineEnding)),
	}
}
