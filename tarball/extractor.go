// Package tarball unpacks gzip-compressed tar archives such as the RFC bulk
// download.
package tarball

import (
	"archive/tar"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/fwojciec/rfcdoc"
	"github.com/klauspost/compress/gzip"
)

// Ensure Extractor implements rfcdoc.ArchiveExtractor at compile time.
var _ rfcdoc.ArchiveExtractor = (*Extractor)(nil)

// Extractor unpacks .tar.gz streams.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract writes the regular members of the archive whose base name passes
// keep into dir. Directory structure inside the archive is discarded. The
// count returned is the number of distinct files written.
func (e *Extractor) Extract(ctx context.Context, r io.Reader, dir string, keep func(name string) bool) (int, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return 0, fmt.Errorf("failed to open gzip stream: %w", err)
	}
	defer zr.Close()

	tr := tar.NewReader(zr)
	written := make(map[string]struct{})
	for {
		if err := ctx.Err(); err != nil {
			return len(written), err
		}

		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return len(written), nil
		}
		if err != nil {
			return len(written), fmt.Errorf("failed to read archive: %w", err)
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}

		name := path.Base(hdr.Name)
		if name == "." || name == "/" || name == ".." || !keep(name) {
			continue
		}

		// A later member with the same base name replaces the earlier file.
		if err := writeFile(filepath.Join(dir, name), tr); err != nil {
			return len(written), err
		}
		written[name] = struct{}{}
	}
}

func writeFile(dst string, r io.Reader) error {
	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}
	return f.Close()
}
