package main_test

import (
	"bytes"
	"sync"
	"testing"

	"github.com/fwojciec/rfcdoc"
	main "github.com/fwojciec/rfcdoc/cmd/rfc"
	"github.com/stretchr/testify/assert"
)

func TestFormatProgress(t *testing.T) {
	t.Parallel()

	got := main.FormatProgress(map[string]rfcdoc.Progress{
		"https://www.rfc-editor.org/rfc-index.txt":                {Done: 3 << 20},
		"https://www.rfc-editor.org/in-notes/tar/RFC-all.tar.gz": {Done: 50, Total: 200},
	})

	assert.Equal(t, "RFC-all.tar.gz  25%  rfc-index.txt 3.0 MiB", got)
}

func TestProgressReporter(t *testing.T) {
	t.Parallel()

	t.Run("draws first report and finishes line", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		r := main.NewProgressReporter(&buf, true)

		r.Report(rfcdoc.Progress{Name: "a/rfc-index.txt", Done: 512})
		r.Done()

		assert.Contains(t, buf.String(), "\rrfc-index.txt 512 B")
		assert.Equal(t, byte('\n'), buf.Bytes()[buf.Len()-1])
	})

	t.Run("disabled reporter writes nothing", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		r := main.NewProgressReporter(&buf, false)

		r.Report(rfcdoc.Progress{Name: "x", Done: 1})
		r.Done()

		assert.Empty(t, buf.String())
	})

	t.Run("done without reports writes nothing", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		main.NewProgressReporter(&buf, true).Done()

		assert.Empty(t, buf.String())
	})

	t.Run("nil reporter is a no-op", func(t *testing.T) {
		t.Parallel()

		var r *main.ProgressReporter
		r.Report(rfcdoc.Progress{Name: "x"})
		r.Done()
	})

	t.Run("safe for concurrent reports", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		r := main.NewProgressReporter(&buf, true)

		var wg sync.WaitGroup
		for _, name := range []string{"archive", "index"} {
			wg.Go(func() {
				for i := range 100 {
					r.Report(rfcdoc.Progress{Name: name, Done: int64(i), Total: 100})
				}
			})
		}
		wg.Wait()
		r.Done()

		assert.Contains(t, buf.String(), "archive  99%  index  99%")
	})
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()

	assert.False(t, main.IsTerminal(&bytes.Buffer{}))
}
