// Package config loads an optional .polyloc.toml settings file and
// merges it under CLI flag values, grounded on the pack's own use of
// BurntSushi/toml for declarative settings tables.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the merged run configuration. Zero value is the fully
// default configuration (no exclusions, no overrides).
type Config struct {
	Exclusions       []string          `toml:"exclusions"`
	ExtensionOverride map[string]string `toml:"extension_override"`
	GestaltRulesFile string            `toml:"gestalt_rules"`
	LicenseBankFile  string            `toml:"license_bank"`
	NoColor          bool              `toml:"no_color"`
}

// Load reads path (typically ".polyloc.toml") if it exists. A missing
// file is not an error — it yields the zero Config, so callers can
// unconditionally call Load followed by Merge.
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config: decoding %s: %w", path, err)
	}
	return cfg, nil
}

// Flags mirrors the CLI-bindable subset of Config, kept separate so
// cobra/pflag own their own defaulting and Merge has one clear
// direction: flags set explicitly on the command line win.
type Flags struct {
	Exclusions []string
	NoColor    bool
}

// Merge overlays non-zero flag values onto the file-loaded config,
// returning the effective settings for a run. File-provided exclusions
// are kept in addition to flag-provided ones rather than replaced,
// since both express "never scan this path".
func Merge(file Config, flags Flags) Config {
	out := file
	out.Exclusions = append(append([]string{}, file.Exclusions...), flags.Exclusions...)
	if flags.NoColor {
		out.NoColor = true
	}
	return out
}
