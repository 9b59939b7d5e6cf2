// Package yaml reads the optional configuration file.
package yaml

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/rfcdoc"
	"gopkg.in/yaml.v3"
)

// LoadConfig overlays the settings found in the YAML file at path onto cfg.
// Keys absent from the file keep their current value. A missing file is not
// an error.
func LoadConfig(path string, cfg *rfcdoc.Config) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return rfcdoc.WrapError(rfcdoc.EIO, err, "failed to read config file %s", path)
	}

	// Decode into a copy so a parse error leaves cfg untouched.
	parsed := *cfg
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return rfcdoc.WrapError(rfcdoc.EINVALID, err, "failed to parse config file %s", path)
	}
	*cfg = parsed
	return nil
}

// DefaultPath returns ~/.config/rfcdoc/config.yaml, or "" when the home
// directory is unknown.
func DefaultPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "rfcdoc", "config.yaml")
	}
	return ""
}
