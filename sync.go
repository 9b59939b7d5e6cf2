package rfcdoc

import (
	"context"
	"io"
)

// SyncResult summarises a successful refresh of the storage directory.
type SyncResult struct {
	Documents  int    `json:"documents"`
	IndexBytes int64  `json:"indexBytes"`
	IndexHash  string `json:"indexHash"`
}

// SyncProvider populates the storage directory from a remote source.
// A refresh replaces the directory wholesale; callers must rescan afterwards.
type SyncProvider interface {
	// IsReachable reports whether the remote source can be contacted.
	IsReachable(ctx context.Context) bool

	// Refresh downloads the archive and index into storage.
	// On failure the previous contents are left in place but callers
	// should not rely on their state.
	Refresh(ctx context.Context) (*SyncResult, error)
}

// Progress reports download progress for a single file.
type Progress struct {
	Name  string
	Done  int64
	Total int64 // -1 if unknown
}

// ProgressFunc is called as bytes are received.
type ProgressFunc func(Progress)

// Downloader retrieves remote files.
type Downloader interface {
	// Ping returns nil if url answers.
	Ping(ctx context.Context, url string) error

	// Download streams the body at url into w and returns the byte count.
	Download(ctx context.Context, url string, w io.Writer, progress ProgressFunc) (int64, error)
}

// ArchiveExtractor unpacks a compressed archive.
type ArchiveExtractor interface {
	// Extract writes every regular member whose base name satisfies keep
	// into dir, flattened to its base name. Returns the number written.
	Extract(ctx context.Context, r io.Reader, dir string, keep func(name string) bool) (int, error)
}

// StagingArea assembles a replacement storage directory and swaps it in.
// Begin prepares an empty directory; Commit replaces the live directory with
// it; Abort discards it.
type StagingArea interface {
	Begin() (dir string, err error)
	Commit() error
	Abort() error
}

// Locker guards the storage directory against concurrent refreshes.
type Locker interface {
	Lock(ctx context.Context) error
	Unlock() error
}
