package main

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/rfcdoc"
	"github.com/fwojciec/rfcdoc/pager"
	"github.com/fwojciec/rfcdoc/yaml"
)

// LoadConfig resolves the configuration in precedence order: built-in
// defaults, the YAML file at path, the environment, then command-line flags.
func LoadConfig(path string, getenv func(string) string, cli *CLI) (rfcdoc.Config, error) {
	cfg := rfcdoc.DefaultConfig(defaultStorageDir(getenv))
	cfg.Pager = ""

	if path != "" {
		if err := yaml.LoadConfig(path, &cfg); err != nil {
			return rfcdoc.Config{}, err
		}
	}

	if dir := getenv("RFCDOC_DIR"); dir != "" {
		cfg.StorageDir = dir
	}
	if cli.Dir != "" {
		cfg.StorageDir = cli.Dir
	}
	cfg.Pager = pager.Resolve(cli.Pager, getenv("PAGER"), cfg.Pager)

	if abs, err := filepath.Abs(cfg.StorageDir); err == nil {
		cfg.StorageDir = abs
	}
	if err := cfg.Validate(); err != nil {
		return rfcdoc.Config{}, err
	}
	return cfg, nil
}

// defaultStorageDir returns $XDG_DATA_HOME/rfc, falling back to
// ~/.local/share/rfc.
func defaultStorageDir(getenv func(string) string) string {
	if dir := getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "rfc")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "rfc"
	}
	return filepath.Join(home, ".local", "share", "rfc")
}

func defaultConfigPath() string {
	if path := os.Getenv("RFCDOC_CONFIG"); path != "" {
		return path
	}
	return yaml.DefaultPath()
}
