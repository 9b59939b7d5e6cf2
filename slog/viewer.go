package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/rfcdoc"
)

// Ensure LoggingViewer implements rfcdoc.Viewer.
var _ rfcdoc.Viewer = (*LoggingViewer)(nil)

// LoggingViewer wraps a Viewer with logging.
type LoggingViewer struct {
	next   rfcdoc.Viewer
	logger *slog.Logger
}

// NewLoggingViewer creates a new LoggingViewer.
func NewLoggingViewer(next rfcdoc.Viewer, logger *slog.Logger) *LoggingViewer {
	return &LoggingViewer{next: next, logger: logger}
}

// View delegates to the wrapped viewer and logs how long the pager stayed open.
func (v *LoggingViewer) View(ctx context.Context, path string) (err error) {
	defer func(begin time.Time) {
		v.logger.Info("view",
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return v.next.View(ctx, path)
}
