package slog

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/rfcdoc"
)

var (
	_ rfcdoc.DocumentScanner = (*LoggingScanner)(nil)
	_ rfcdoc.IndexSource     = (*LoggingIndexSource)(nil)
)

// LoggingScanner wraps a DocumentScanner with logging.
type LoggingScanner struct {
	next   rfcdoc.DocumentScanner
	logger *slog.Logger
}

// NewLoggingScanner creates a new LoggingScanner.
func NewLoggingScanner(next rfcdoc.DocumentScanner, logger *slog.Logger) *LoggingScanner {
	return &LoggingScanner{next: next, logger: logger}
}

// Scan delegates to the wrapped scanner and logs the number of documents found.
func (s *LoggingScanner) Scan(ctx context.Context) (set *rfcdoc.DocumentSet, err error) {
	defer func(begin time.Time) {
		count := 0
		if set != nil {
			count = set.Len()
		}
		s.logger.Info("scan",
			"count", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Scan(ctx)
}

// LoggingIndexSource wraps an IndexSource with logging.
type LoggingIndexSource struct {
	next   rfcdoc.IndexSource
	logger *slog.Logger
}

// NewLoggingIndexSource creates a new LoggingIndexSource.
func NewLoggingIndexSource(next rfcdoc.IndexSource, logger *slog.Logger) *LoggingIndexSource {
	return &LoggingIndexSource{next: next, logger: logger}
}

// OpenIndex delegates to the wrapped source.
func (s *LoggingIndexSource) OpenIndex(ctx context.Context) (rc io.ReadCloser, err error) {
	defer func() {
		s.logger.Info("open index", "err", err)
	}()
	return s.next.OpenIndex(ctx)
}
