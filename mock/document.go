package mock

import (
	"context"
	"io"

	"github.com/fwojciec/rfcdoc"
)

// Compile-time interface verification.
var (
	_ rfcdoc.DocumentScanner = (*DocumentScanner)(nil)
	_ rfcdoc.IndexSource     = (*IndexSource)(nil)
	_ rfcdoc.Viewer          = (*Viewer)(nil)
)

// DocumentScanner is a mock implementation of rfcdoc.DocumentScanner.
type DocumentScanner struct {
	ScanFn func(ctx context.Context) (*rfcdoc.DocumentSet, error)
}

func (s *DocumentScanner) Scan(ctx context.Context) (*rfcdoc.DocumentSet, error) {
	return s.ScanFn(ctx)
}

// IndexSource is a mock implementation of rfcdoc.IndexSource.
type IndexSource struct {
	OpenIndexFn func(ctx context.Context) (io.ReadCloser, error)
}

func (s *IndexSource) OpenIndex(ctx context.Context) (io.ReadCloser, error) {
	return s.OpenIndexFn(ctx)
}

// Viewer is a mock implementation of rfcdoc.Viewer.
type Viewer struct {
	ViewFn func(ctx context.Context, path string) error
}

func (v *Viewer) View(ctx context.Context, path string) error {
	return v.ViewFn(ctx, path)
}
