package mock

import (
	"context"
	"io"

	"github.com/fwojciec/rfcdoc"
)

// Compile-time interface verification.
var (
	_ rfcdoc.SyncProvider     = (*SyncProvider)(nil)
	_ rfcdoc.Downloader       = (*Downloader)(nil)
	_ rfcdoc.ArchiveExtractor = (*ArchiveExtractor)(nil)
	_ rfcdoc.StagingArea      = (*StagingArea)(nil)
	_ rfcdoc.Locker           = (*Locker)(nil)
)

// SyncProvider is a mock implementation of rfcdoc.SyncProvider.
type SyncProvider struct {
	IsReachableFn func(ctx context.Context) bool
	RefreshFn     func(ctx context.Context) (*rfcdoc.SyncResult, error)
}

func (p *SyncProvider) IsReachable(ctx context.Context) bool {
	return p.IsReachableFn(ctx)
}

func (p *SyncProvider) Refresh(ctx context.Context) (*rfcdoc.SyncResult, error) {
	return p.RefreshFn(ctx)
}

// Downloader is a mock implementation of rfcdoc.Downloader.
type Downloader struct {
	PingFn     func(ctx context.Context, url string) error
	DownloadFn func(ctx context.Context, url string, w io.Writer, progress rfcdoc.ProgressFunc) (int64, error)
}

func (d *Downloader) Ping(ctx context.Context, url string) error {
	return d.PingFn(ctx, url)
}

func (d *Downloader) Download(ctx context.Context, url string, w io.Writer, progress rfcdoc.ProgressFunc) (int64, error) {
	return d.DownloadFn(ctx, url, w, progress)
}

// ArchiveExtractor is a mock implementation of rfcdoc.ArchiveExtractor.
type ArchiveExtractor struct {
	ExtractFn func(ctx context.Context, r io.Reader, dir string, keep func(name string) bool) (int, error)
}

func (e *ArchiveExtractor) Extract(ctx context.Context, r io.Reader, dir string, keep func(name string) bool) (int, error) {
	return e.ExtractFn(ctx, r, dir, keep)
}

// StagingArea is a mock implementation of rfcdoc.StagingArea.
type StagingArea struct {
	BeginFn  func() (string, error)
	CommitFn func() error
	AbortFn  func() error
}

func (s *StagingArea) Begin() (string, error) {
	return s.BeginFn()
}

func (s *StagingArea) Commit() error {
	return s.CommitFn()
}

func (s *StagingArea) Abort() error {
	return s.AbortFn()
}

// Locker is a mock implementation of rfcdoc.Locker.
type Locker struct {
	LockFn   func(ctx context.Context) error
	UnlockFn func() error
}

func (l *Locker) Lock(ctx context.Context) error {
	return l.LockFn(ctx)
}

func (l *Locker) Unlock() error {
	return l.UnlockFn()
}
