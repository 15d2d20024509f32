// Package config loads appalias configuration.
//
// Configuration is layered: built-in defaults, then an optional user config
// file at $XDG_CONFIG_HOME/appalias/config.toml, then APPALIAS_* environment
// variables. Only the external tool locations and output preferences are
// configurable; the bundle layout is fixed (see pkg/paths).
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/appalias/pkg/errors"
)

// EnvPrefix is the prefix for environment variable overrides
const EnvPrefix = "APPALIAS_"

// UserConfigFile is the name of the optional user configuration file
const UserConfigFile = "config.toml"

// Tools holds the locations of the external macOS tools appalias shells out to
type Tools struct {
	Osacompile string `koanf:"osacompile"`
	Osascript  string `koanf:"osascript"`
	PlistBuddy string `koanf:"plistbuddy"`
}

// Output holds user-facing output preferences
type Output struct {
	// Color is one of "auto", "always" or "never"
	Color string `koanf:"color"`
}

// Config is the resolved appalias configuration
type Config struct {
	Tools  Tools  `koanf:"tools"`
	Output Output `koanf:"output"`
}

// Load resolves the configuration from defaults, the user config file
// (when present) and APPALIAS_* environment variables, in that order.
func Load() (*Config, error) {
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load built-in defaults")
	}

	// 2. User config file, if it exists
	userPath := userConfigPath()
	if _, err := os.Stat(userPath); err == nil {
		if err := k.Load(file.Provider(userPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", userPath)
		}
	}

	// 3. Environment overrides: APPALIAS_TOOLS_OSASCRIPT -> tools.osascript
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	return &cfg, nil
}

// Default returns the built-in default configuration, ignoring the user
// config file and environment. Useful for tests and as a library fallback.
func Default() *Config {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		// The embedded defaults are compiled in; a parse failure is a bug.
		panic(err)
	}
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		panic(err)
	}
	return &cfg
}

// userConfigPath returns the path of the optional user configuration file
func userConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "appalias", UserConfigFile)
}
