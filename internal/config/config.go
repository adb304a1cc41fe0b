// Package config handles loading and defaulting configuration for the
// anvil CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level configuration for anvil.
type Config struct {
	// ThemesDir is the destination root for generated themes.
	ThemesDir string `yaml:"themesDir" mapstructure:"themesDir"`
	// SearchPaths are the directories scanned for installed themes,
	// relative to the project root.
	SearchPaths []string `yaml:"searchPaths" mapstructure:"searchPaths"`
	// BaseTheme is the default base theme whose starterkit is used when
	// no explicit source is given.
	BaseTheme string `yaml:"baseTheme" mapstructure:"baseTheme"`
	// Source is the default starter template location: a URL or a local
	// path. Overrides BaseTheme's starterkit when set.
	Source string `yaml:"source" mapstructure:"source"`
}

// Default returns a Config populated with sensible default values.
func Default() *Config {
	return &Config{
		ThemesDir: filepath.Join("themes", "custom"),
		SearchPaths: []string{
			filepath.Join("core", "themes"),
			"themes",
			filepath.Join("themes", "contrib"),
			filepath.Join("themes", "custom"),
		},
	}
}

// Load reads a configuration file from configPath (YAML or TOML) and
// returns a Config with defaults applied first and file values overlaid
// on top. A missing file is not an error: anvil is usable without one.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	v := viper.New()

	// Determine format from extension.
	ext := strings.TrimPrefix(filepath.Ext(configPath), ".")
	switch ext {
	case "yaml", "yml":
		v.SetConfigType("yaml")
	case "toml":
		v.SetConfigType("toml")
	default:
		// Default to yaml if unrecognised.
		v.SetConfigType("yaml")
	}

	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}
