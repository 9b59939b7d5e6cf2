package slog_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/fwojciec/rfcdoc"
	"github.com/fwojciec/rfcdoc/mock"
	rfcslog "github.com/fwojciec/rfcdoc/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestLoggingSyncProvider_Refresh(t *testing.T) {
	t.Parallel()

	t.Run("logs result counts and duration", func(t *testing.T) {
		t.Parallel()

		logger, buf := newLogger()
		inner := &mock.SyncProvider{
			RefreshFn: func(ctx context.Context) (*rfcdoc.SyncResult, error) {
				return &rfcdoc.SyncResult{Documents: 9000, IndexBytes: 1234, IndexHash: "00ff00ff00ff00ff"}, nil
			},
		}

		result, err := rfcslog.NewLoggingSyncProvider(inner, logger).Refresh(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 9000, result.Documents)
		output := buf.String()
		assert.Contains(t, output, "msg=refresh")
		assert.Contains(t, output, "documents=9000")
		assert.Contains(t, output, "index_bytes=1234")
		assert.Contains(t, output, "index_hash=00ff00ff00ff00ff")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		logger, buf := newLogger()
		inner := &mock.SyncProvider{
			RefreshFn: func(ctx context.Context) (*rfcdoc.SyncResult, error) {
				return nil, errors.New("archive truncated")
			},
		}

		_, err := rfcslog.NewLoggingSyncProvider(inner, logger).Refresh(context.Background())

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, `err="archive truncated"`)
		assert.NotContains(t, output, "documents=")
	})
}

func TestLoggingSyncProvider_IsReachable(t *testing.T) {
	t.Parallel()

	logger, buf := newLogger()
	inner := &mock.SyncProvider{
		IsReachableFn: func(ctx context.Context) bool { return false },
	}

	ok := rfcslog.NewLoggingSyncProvider(inner, logger).IsReachable(context.Background())

	assert.False(t, ok)
	assert.Contains(t, buf.String(), "reachable=false")
}

func TestLoggingScanner_Scan(t *testing.T) {
	t.Parallel()

	t.Run("logs document count", func(t *testing.T) {
		t.Parallel()

		logger, buf := newLogger()
		inner := &mock.DocumentScanner{
			ScanFn: func(ctx context.Context) (*rfcdoc.DocumentSet, error) {
				set := rfcdoc.NewDocumentSet("/data", "rfc", ".txt")
				set.Add(1, "rfc1.txt")
				set.Add(2, "rfc2.txt")
				return set, nil
			},
		}

		set, err := rfcslog.NewLoggingScanner(inner, logger).Scan(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 2, set.Len())
		assert.Contains(t, buf.String(), "count=2")
	})

	t.Run("logs zero count on error", func(t *testing.T) {
		t.Parallel()

		logger, buf := newLogger()
		inner := &mock.DocumentScanner{
			ScanFn: func(ctx context.Context) (*rfcdoc.DocumentSet, error) {
				return nil, rfcdoc.Errorf(rfcdoc.EIO, "permission denied")
			},
		}

		_, err := rfcslog.NewLoggingScanner(inner, logger).Scan(context.Background())

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "count=0")
		assert.Contains(t, output, "permission denied")
	})
}

func TestLoggingIndexSource_OpenIndex(t *testing.T) {
	t.Parallel()

	logger, buf := newLogger()
	inner := &mock.IndexSource{
		OpenIndexFn: func(ctx context.Context) (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("1 one\n")), nil
		},
	}

	rc, err := rfcslog.NewLoggingIndexSource(inner, logger).OpenIndex(context.Background())

	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "1 one\n", string(data))
	assert.Contains(t, buf.String(), "open index")
}

func TestLoggingViewer_View(t *testing.T) {
	t.Parallel()

	logger, buf := newLogger()
	var viewed string
	inner := &mock.Viewer{
		ViewFn: func(ctx context.Context, path string) error {
			viewed = path
			return nil
		},
	}

	err := rfcslog.NewLoggingViewer(inner, logger).View(context.Background(), "/data/rfc42.txt")

	require.NoError(t, err)
	assert.Equal(t, "/data/rfc42.txt", viewed)
	output := buf.String()
	assert.Contains(t, output, "path=/data/rfc42.txt")
	assert.Contains(t, output, "duration=")
}
