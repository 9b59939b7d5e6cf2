package main

import (
	"fmt"
	"io"
	"os"
	"path"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/rfcdoc"
	"github.com/mattn/go-isatty"
	"golang.org/x/time/rate"
)

// progressInterval throttles redraws of the progress line.
const progressInterval = 200 * time.Millisecond

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ProgressReporter draws a single status line for concurrent downloads.
// It is safe for concurrent use. A nil or disabled reporter draws nothing.
type ProgressReporter struct {
	w       io.Writer
	enabled bool
	redraw  rate.Sometimes

	mu     sync.Mutex
	latest map[string]rfcdoc.Progress
	drawn  bool
}

// NewProgressReporter creates a reporter writing to w when enabled.
func NewProgressReporter(w io.Writer, enabled bool) *ProgressReporter {
	return &ProgressReporter{
		w:       w,
		enabled: enabled,
		redraw:  rate.Sometimes{First: 1, Interval: progressInterval},
		latest:  make(map[string]rfcdoc.Progress),
	}
}

// Report records p and redraws the line at most once per interval.
func (r *ProgressReporter) Report(p rfcdoc.Progress) {
	if r == nil || !r.enabled {
		return
	}
	r.mu.Lock()
	r.latest[p.Name] = p
	r.mu.Unlock()

	r.redraw.Do(r.draw)
}

// Done finishes the line if one was drawn.
func (r *ProgressReporter) Done() {
	if r == nil || !r.enabled {
		return
	}
	r.draw()

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.drawn {
		fmt.Fprintln(r.w)
		r.drawn = false
	}
	clear(r.latest)
}

func (r *ProgressReporter) draw() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.latest) == 0 {
		return
	}
	fmt.Fprintf(r.w, "\r%s", FormatProgress(r.latest))
	r.drawn = true
}

// FormatProgress renders one entry per download, ordered by name.
func FormatProgress(latest map[string]rfcdoc.Progress) string {
	names := make([]string, 0, len(latest))
	for name := range latest {
		names = append(names, name)
	}
	slices.Sort(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		p := latest[name]
		if p.Total > 0 {
			parts = append(parts, fmt.Sprintf("%s %3d%%", path.Base(name), p.Done*100/p.Total))
		} else {
			parts = append(parts, fmt.Sprintf("%s %s", path.Base(name), formatBytes(p.Done)))
		}
	}
	return strings.Join(parts, "  ")
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
