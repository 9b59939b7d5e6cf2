package yaml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/rfcdoc"
	"github.com/fwojciec/rfcdoc/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("overlays keys present in file", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "storage_dir: /srv/rfc\npager: most\nindex_url: https://mirror.example/rfc-index.txt\n")
		cfg := rfcdoc.DefaultConfig("/home/user/.local/share/rfc")

		err := yaml.LoadConfig(path, &cfg)

		require.NoError(t, err)
		assert.Equal(t, "/srv/rfc", cfg.StorageDir)
		assert.Equal(t, "most", cfg.Pager)
		assert.Equal(t, "https://mirror.example/rfc-index.txt", cfg.IndexURL)
		assert.Equal(t, rfcdoc.DefaultIndexName, cfg.IndexName, "absent keys keep defaults")
		assert.Equal(t, rfcdoc.DefaultBulkURL, cfg.BulkURL)
	})

	t.Run("missing file leaves config unchanged", func(t *testing.T) {
		t.Parallel()

		cfg := rfcdoc.DefaultConfig("/data")
		want := cfg

		err := yaml.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"), &cfg)

		require.NoError(t, err)
		assert.Equal(t, want, cfg)
	})

	t.Run("malformed file is invalid and leaves config unchanged", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "storage_dir: [unterminated\n")
		cfg := rfcdoc.DefaultConfig("/data")
		want := cfg

		err := yaml.LoadConfig(path, &cfg)

		assert.Equal(t, rfcdoc.EINVALID, rfcdoc.ErrorCode(err))
		assert.Equal(t, want, cfg)
	})

	t.Run("directory in place of file is an io error", func(t *testing.T) {
		t.Parallel()

		cfg := rfcdoc.DefaultConfig("/data")

		err := yaml.LoadConfig(t.TempDir(), &cfg)

		assert.Equal(t, rfcdoc.EIO, rfcdoc.ErrorCode(err))
	})
}
