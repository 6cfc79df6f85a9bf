// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Analysis AnalysisConfig `toml:"analysis"`
	Output   OutputConfig   `toml:"output"`
	History  HistoryConfig  `toml:"history"`
}

// AnalysisConfig maps analysis-related settings.
type AnalysisConfig struct {
	Top        *int     `toml:"top"`
	Longest    *int     `toml:"longest"`
	WPM        *float64 `toml:"wpm"`
	IgnoreFile *string  `toml:"ignore-file"`
}

// OutputConfig maps output settings.
type OutputConfig struct {
	Format *string `toml:"format"`
	Color  *bool   `toml:"color"`
}

// HistoryConfig maps history recording settings.
type HistoryConfig struct {
	Save *bool `toml:"save"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
