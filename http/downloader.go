// Package http provides an HTTP implementation of rfcdoc.Downloader for
// fetching the RFC archive and index.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/rfcdoc"
)

// DefaultPingTimeout bounds connectivity checks.
const DefaultPingTimeout = 10 * time.Second

// DefaultHeaderTimeout bounds the wait for response headers on downloads.
// The body itself is not time-limited since the bulk archive is large.
const DefaultHeaderTimeout = 30 * time.Second

// Ensure Downloader implements rfcdoc.Downloader at compile time.
var _ rfcdoc.Downloader = (*Downloader)(nil)

// Downloader retrieves files over HTTP.
type Downloader struct {
	client        *http.Client
	pingTimeout   time.Duration
	headerTimeout time.Duration
	userAgent     string
}

// Option configures a Downloader.
type Option func(*Downloader)

// WithPingTimeout sets the timeout for connectivity checks.
// Defaults to DefaultPingTimeout (10s) if not specified.
func WithPingTimeout(d time.Duration) Option {
	return func(dl *Downloader) {
		dl.pingTimeout = d
	}
}

// WithHeaderTimeout sets how long a download waits for response headers.
func WithHeaderTimeout(d time.Duration) Option {
	return func(dl *Downloader) {
		dl.headerTimeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(dl *Downloader) {
		dl.userAgent = ua
	}
}

// NewDownloader creates a new HTTP Downloader.
func NewDownloader(opts ...Option) *Downloader {
	dl := &Downloader{
		pingTimeout:   DefaultPingTimeout,
		headerTimeout: DefaultHeaderTimeout,
		userAgent:     "rfcdoc/" + rfcdoc.Version,
	}
	for _, opt := range opts {
		opt(dl)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.ResponseHeaderTimeout = dl.headerTimeout
	dl.client = &http.Client{Transport: transport}

	return dl
}

// Ping issues a GET to url and reports whether it answered with a
// non-error status.
func (dl *Downloader) Ping(ctx context.Context, url string) error {
	ctx, cancel := context.WithTimeout(ctx, dl.pingTimeout)
	defer cancel()

	resp, err := dl.do(ctx, url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	return nil
}

// Download streams the body at url into w, reporting progress as it goes.
func (dl *Downloader) Download(ctx context.Context, url string, w io.Writer, progress rfcdoc.ProgressFunc) (int64, error) {
	resp, err := dl.do(ctx, url)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	var body io.Reader = resp.Body
	if progress != nil {
		body = &progressReader{
			r:        resp.Body,
			progress: progress,
			p:        rfcdoc.Progress{Name: url, Total: resp.ContentLength},
		}
	}

	n, err := io.Copy(w, body)
	if err != nil {
		return n, fmt.Errorf("failed to read %s: %w", url, err)
	}
	if resp.ContentLength >= 0 && n != resp.ContentLength {
		return n, fmt.Errorf("short body for %s: got %d of %d bytes", url, n, resp.ContentLength)
	}
	return n, nil
}

func (dl *Downloader) do(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", dl.userAgent)

	resp, err := dl.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}
	return resp, nil
}

// progressReader reports cumulative bytes read.
type progressReader struct {
	r        io.Reader
	progress rfcdoc.ProgressFunc
	p        rfcdoc.Progress
}

func (pr *progressReader) Read(b []byte) (int, error) {
	n, err := pr.r.Read(b)
	if n > 0 {
		pr.p.Done += int64(n)
		pr.progress(pr.p)
	}
	return n, err
}
