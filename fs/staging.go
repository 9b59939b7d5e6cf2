package fs

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/rfcdoc"
)

// Ensure StagingArea implements rfcdoc.StagingArea at compile time.
var _ rfcdoc.StagingArea = (*StagingArea)(nil)

// StagingArea assembles a replacement for a directory next to it.
// Files are written to <dir>.tmp and moved into place on Commit.
type StagingArea struct {
	dir string
}

// NewStagingArea creates a StagingArea replacing dir.
func NewStagingArea(dir string) *StagingArea {
	return &StagingArea{dir: filepath.Clean(dir)}
}

func (s *StagingArea) tempDir() string {
	return s.dir + ".tmp"
}

// Begin clears any leftover staging directory and creates an empty one.
func (s *StagingArea) Begin() (string, error) {
	if err := os.RemoveAll(s.tempDir()); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return "", err
	}
	return s.tempDir(), nil
}

// Commit removes the live directory and renames the staging directory
// into its place.
func (s *StagingArea) Commit() error {
	// Not atomic: a crash between the two calls leaves only <dir>.tmp,
	// which the next Begin clears.
	if err := os.RemoveAll(s.dir); err != nil {
		return err
	}
	if err := os.Rename(s.tempDir(), s.dir); err != nil {
		return err
	}

	return nil
}

// Abort discards the staging directory.
func (s *StagingArea) Abort() error {
	return os.RemoveAll(s.tempDir())
}
