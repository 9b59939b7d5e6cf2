package fs_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/fwojciec/rfcdoc"
	"github.com/fwojciec/rfcdoc/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
}

// Story: Document Discovery
// The scanner reconciles the storage directory into a set of numbers

func TestScanner_RegistersMatchingFiles(t *testing.T) {
	t.Parallel()

	// Given a storage directory with documents and unrelated files
	dir := t.TempDir()
	touch(t, dir, "rfc42.txt", "rfc666.txt", "rfc-index.txt", "notes.txt", "RFC7.txt", "rfc8.pdf")
	scanner := fs.NewScanner(rfcdoc.DefaultConfig(dir))

	// When I scan
	set, err := scanner.Scan(context.Background())

	// Then only names following the convention are registered
	require.NoError(t, err)
	assert.Equal(t, []int{42, 666}, set.IDs())
	assert.Equal(t, filepath.Join(dir, "rfc42.txt"), set.Path(42))
}

func TestScanner_RegistersEveryDigitRunInName(t *testing.T) {
	t.Parallel()

	// Given a file whose name carries a second number after the suffix
	dir := t.TempDir()
	touch(t, dir, "rfc1.txt.2")
	scanner := fs.NewScanner(rfcdoc.DefaultConfig(dir))

	// When I scan
	set, err := scanner.Scan(context.Background())

	// Then both numbers are registered as available, pointing at that file
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, set.IDs())
	assert.Equal(t, filepath.Join(dir, "rfc1.txt.2"), set.Path(2))
}

func TestScanner_LeadingZerosCollapse(t *testing.T) {
	t.Parallel()

	// Given a zero-padded document and its canonical twin
	dir := t.TempDir()
	touch(t, dir, "rfc0042.txt", "rfc42.txt")
	scanner := fs.NewScanner(rfcdoc.DefaultConfig(dir))

	// When I scan
	set, err := scanner.Scan(context.Background())

	// Then one number is registered, resolved to the canonical file
	require.NoError(t, err)
	assert.Equal(t, 1, set.Len())
	assert.Equal(t, filepath.Join(dir, "rfc42.txt"), set.Path(42))
}

func TestScanner_MissingDirectoryIsEmpty(t *testing.T) {
	t.Parallel()

	// Given a storage directory that does not exist
	scanner := fs.NewScanner(rfcdoc.DefaultConfig(filepath.Join(t.TempDir(), "missing")))

	// When I scan
	set, err := scanner.Scan(context.Background())

	// Then the set is empty and no error occurs
	require.NoError(t, err)
	assert.Zero(t, set.Len())
}

func TestScanner_EmptyDirectory(t *testing.T) {
	t.Parallel()

	scanner := fs.NewScanner(rfcdoc.DefaultConfig(t.TempDir()))

	set, err := scanner.Scan(context.Background())

	require.NoError(t, err)
	assert.Zero(t, set.Len())
}

func TestScanner_UnreadableDirectory(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced")
	}

	// Given a storage directory that cannot be listed
	dir := filepath.Join(t.TempDir(), "locked")
	require.NoError(t, os.Mkdir(dir, 0000))
	t.Cleanup(func() { _ = os.Chmod(dir, 0755) })
	scanner := fs.NewScanner(rfcdoc.DefaultConfig(dir))

	// When I scan
	_, err := scanner.Scan(context.Background())

	// Then an I/O error is returned
	require.Error(t, err)
	assert.Equal(t, rfcdoc.EIO, rfcdoc.ErrorCode(err))
}

func TestScanner_CustomNamingConvention(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	touch(t, dir, "bcp14.html", "rfc14.txt")
	cfg := rfcdoc.DefaultConfig(dir)
	cfg.DocumentPrefix = "bcp"
	cfg.DocumentSuffix = ".html"

	set, err := fs.NewScanner(cfg).Scan(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []int{14}, set.IDs())
	assert.Equal(t, filepath.Join(dir, "bcp14.html"), set.Path(14))
}

func TestScanner_OpenIndex(t *testing.T) {
	t.Parallel()

	t.Run("reads the index file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "rfc-index.txt"), []byte("42 answer\n"), 0644))
		scanner := fs.NewScanner(rfcdoc.DefaultConfig(dir))

		rc, err := scanner.OpenIndex(context.Background())
		require.NoError(t, err)
		defer rc.Close()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "42 answer\n", string(data))
	})

	t.Run("returns not found when missing", func(t *testing.T) {
		t.Parallel()

		scanner := fs.NewScanner(rfcdoc.DefaultConfig(t.TempDir()))

		_, err := scanner.OpenIndex(context.Background())

		require.Error(t, err)
		assert.Equal(t, rfcdoc.ENOTFOUND, rfcdoc.ErrorCode(err))
	})
}
