package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/rfcdoc"
)

// Ensure LoggingSyncProvider implements rfcdoc.SyncProvider.
var _ rfcdoc.SyncProvider = (*LoggingSyncProvider)(nil)

// LoggingSyncProvider wraps a SyncProvider with logging.
type LoggingSyncProvider struct {
	next   rfcdoc.SyncProvider
	logger *slog.Logger
}

// NewLoggingSyncProvider creates a new LoggingSyncProvider.
func NewLoggingSyncProvider(next rfcdoc.SyncProvider, logger *slog.Logger) *LoggingSyncProvider {
	return &LoggingSyncProvider{next: next, logger: logger}
}

// IsReachable delegates to the wrapped provider and logs the check result.
func (p *LoggingSyncProvider) IsReachable(ctx context.Context) (ok bool) {
	defer func(begin time.Time) {
		p.logger.Info("connectivity check",
			"reachable", ok,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return p.next.IsReachable(ctx)
}

// Refresh delegates to the wrapped provider and logs the outcome.
func (p *LoggingSyncProvider) Refresh(ctx context.Context) (result *rfcdoc.SyncResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{"duration", time.Since(begin), "err", err}
		if result != nil {
			attrs = append(attrs,
				"documents", result.Documents,
				"index_bytes", result.IndexBytes,
				"index_hash", result.IndexHash,
			)
		}
		p.logger.Info("refresh", attrs...)
	}(time.Now())
	return p.next.Refresh(ctx)
}
