// Package fs provides file-based storage for the local RFC mirror.
package fs

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"regexp"
	"strconv"

	"github.com/fwojciec/rfcdoc"
)

// Ensure Scanner implements the storage interfaces at compile time.
var (
	_ rfcdoc.DocumentScanner = (*Scanner)(nil)
	_ rfcdoc.IndexSource     = (*Scanner)(nil)
)

var digitRun = regexp.MustCompile(`[0-9]+`)

// Scanner reads the storage directory described by a config.
type Scanner struct {
	config rfcdoc.Config
	name   *regexp.Regexp
}

// NewScanner creates a Scanner for the config's storage directory.
//
// A file is a document if its name starts with <prefix><digits><suffix>.
// The match is anchored at the start only, so "rfc1.txt.2" qualifies, and
// every digit run in a qualifying name is registered as a document number.
func NewScanner(config rfcdoc.Config) *Scanner {
	pattern := "^" + regexp.QuoteMeta(config.DocumentPrefix) + "[0-9]+" + regexp.QuoteMeta(config.DocumentSuffix)
	return &Scanner{
		config: config,
		name:   regexp.MustCompile(pattern),
	}
}

// Scan lists the storage directory, non-recursively.
func (s *Scanner) Scan(ctx context.Context) (*rfcdoc.DocumentSet, error) {
	set := rfcdoc.NewDocumentSet(s.config.StorageDir, s.config.DocumentPrefix, s.config.DocumentSuffix)

	entries, err := os.ReadDir(s.config.StorageDir)
	if errors.Is(err, fs.ErrNotExist) {
		return set, nil
	}
	if err != nil {
		return nil, rfcdoc.WrapError(rfcdoc.EIO, err, "failed to list %s", s.config.StorageDir)
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := entry.Name()
		if !s.name.MatchString(name) {
			continue
		}
		for _, run := range digitRun.FindAllString(name, -1) {
			id, err := strconv.Atoi(run)
			if err != nil {
				continue
			}
			set.Add(id, name)
		}
	}

	return set, nil
}

// OpenIndex opens the index file in the storage directory.
func (s *Scanner) OpenIndex(ctx context.Context) (io.ReadCloser, error) {
	f, err := os.Open(s.config.IndexPath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, rfcdoc.Errorf(rfcdoc.ENOTFOUND, "index file %s not found", s.config.IndexPath())
	}
	if err != nil {
		return nil, rfcdoc.WrapError(rfcdoc.EIO, err, "failed to open %s", s.config.IndexPath())
	}
	return f, nil
}
