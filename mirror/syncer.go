// Package mirror keeps the local RFC storage directory in sync with the
// RFC Editor's bulk archive and index.
package mirror

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/rfcdoc"
	"golang.org/x/sync/errgroup"
)

// Ensure Syncer implements rfcdoc.SyncProvider at compile time.
var _ rfcdoc.SyncProvider = (*Syncer)(nil)

// Syncer refreshes the storage directory by downloading the bulk archive
// and the index side by side into a staging area, then swapping it in.
type Syncer struct {
	Config     rfcdoc.Config
	Downloader rfcdoc.Downloader
	Extractor  rfcdoc.ArchiveExtractor
	Staging    rfcdoc.StagingArea

	// Lock is optional. When set it is held for the whole refresh.
	Lock rfcdoc.Locker

	// Progress is optional and may be called from several goroutines.
	Progress rfcdoc.ProgressFunc

	// RetryDelays defaults to DefaultRetryDelays.
	RetryDelays []time.Duration

	// Logf is optional and receives retry messages.
	Logf LogFunc
}

// IsReachable reports whether the RFC Editor home page answers.
func (s *Syncer) IsReachable(ctx context.Context) bool {
	return s.Downloader.Ping(ctx, s.Config.HomeURL) == nil
}

// Refresh replaces the storage directory with a fresh copy of the archive
// and index. On failure the staging directory is discarded and the live
// directory is left as it was.
func (s *Syncer) Refresh(ctx context.Context) (_ *rfcdoc.SyncResult, err error) {
	if s.Lock != nil {
		if err := s.Lock.Lock(ctx); err != nil {
			return nil, err
		}
		defer s.Lock.Unlock()
	}

	dir, err := s.Staging.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to prepare staging directory: %w", err)
	}
	defer func() {
		if err != nil {
			_ = s.Staging.Abort()
		}
	}()

	result := &rfcdoc.SyncResult{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.fetchArchive(gctx, dir)
		result.Documents = n
		return err
	})
	g.Go(func() error {
		n, hash, err := s.fetchIndex(gctx, dir)
		result.IndexBytes = n
		result.IndexHash = hash
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := s.Staging.Commit(); err != nil {
		return nil, fmt.Errorf("failed to replace storage directory: %w", err)
	}
	return result, nil
}

// fetchArchive downloads the bulk archive to a temporary file in dir and
// extracts the documents next to it.
func (s *Syncer) fetchArchive(ctx context.Context, dir string) (int, error) {
	f, err := os.CreateTemp(dir, "bulk-*.tar.gz")
	if err != nil {
		return 0, err
	}
	defer func() {
		f.Close()
		os.Remove(f.Name())
	}()

	err = Retry(ctx, s.Config.BulkURL, s.retryDelays(), s.Logf, func(ctx context.Context) error {
		if err := rewind(f); err != nil {
			return err
		}
		_, err := s.Downloader.Download(ctx, s.Config.BulkURL, f, s.Progress)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to download archive: %w", err)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	n, err := s.Extractor.Extract(ctx, f, dir, s.keep)
	if err != nil {
		return n, fmt.Errorf("failed to extract archive: %w", err)
	}
	return n, nil
}

// fetchIndex downloads the index into dir, hashing it on the way.
func (s *Syncer) fetchIndex(ctx context.Context, dir string) (int64, string, error) {
	f, err := os.Create(filepath.Join(dir, s.Config.IndexName))
	if err != nil {
		return 0, "", err
	}
	defer f.Close()

	var n int64
	digest := xxhash.New()
	err = Retry(ctx, s.Config.IndexURL, s.retryDelays(), s.Logf, func(ctx context.Context) error {
		if err := rewind(f); err != nil {
			return err
		}
		digest.Reset()
		var err error
		n, err = s.Downloader.Download(ctx, s.Config.IndexURL, io.MultiWriter(f, digest), s.Progress)
		return err
	})
	if err != nil {
		return 0, "", fmt.Errorf("failed to download index: %w", err)
	}
	if err := f.Close(); err != nil {
		return 0, "", err
	}
	return n, fmt.Sprintf("%016x", digest.Sum64()), nil
}

// keep selects archive members: documents only, never the index, which is
// downloaded separately.
func (s *Syncer) keep(name string) bool {
	return name != s.Config.IndexName && s.Config.IsDocumentName(name)
}

func (s *Syncer) retryDelays() []time.Duration {
	if s.RetryDelays != nil {
		return s.RetryDelays
	}
	return DefaultRetryDelays()
}

func rewind(f *os.File) error {
	if err := f.Truncate(0); err != nil {
		return err
	}
	_, err := f.Seek(0, io.SeekStart)
	return err
}
