package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
)

// config holds defaults that command line flags may override.
type config struct {
	UnicodeVersion string `toml:"unicode_version"`
	UCDDir         string `toml:"ucd_dir"`
	EastAsian      bool   `toml:"east_asian"`
}

func loadConfig(fsys afero.Fs, path string) (config, error) {
	var cfg config
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
