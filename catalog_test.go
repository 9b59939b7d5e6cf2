package rfcdoc_test

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/fwojciec/rfcdoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCatalog(t *testing.T) {
	t.Parallel()

	t.Run("collects all records in index order", func(t *testing.T) {
		t.Parallel()

		catalog, err := rfcdoc.BuildCatalog(strings.NewReader("3 c\n\n1 a\n2 b\n"))

		require.NoError(t, err)
		require.Equal(t, 3, catalog.Len())
		ids := []int{}
		for _, rec := range catalog.Records() {
			ids = append(ids, rec.ID)
		}
		assert.Equal(t, []int{3, 1, 2}, ids)
		assert.Zero(t, catalog.Skipped())
	})

	t.Run("keeps duplicate numbers", func(t *testing.T) {
		t.Parallel()

		catalog, err := rfcdoc.BuildCatalog(strings.NewReader("5 first\n5 second\n"))

		require.NoError(t, err)
		assert.Equal(t, 2, catalog.Len())
	})

	t.Run("skips and counts malformed records", func(t *testing.T) {
		t.Parallel()

		input := "1 ok\n\n123456789012345678901234567890 too big\n\n2 ok\n"

		catalog, err := rfcdoc.BuildCatalog(strings.NewReader(input))

		require.NoError(t, err)
		assert.Equal(t, 2, catalog.Len())
		assert.Equal(t, 1, catalog.Skipped())
	})

	t.Run("returns no catalog on read error", func(t *testing.T) {
		t.Parallel()

		r := iotest.TimeoutReader(strings.NewReader("1 a\n2 b\n"))
		catalog, err := rfcdoc.BuildCatalog(r)

		require.Error(t, err)
		assert.Nil(t, catalog)
		assert.Equal(t, rfcdoc.EIO, rfcdoc.ErrorCode(err))
	})

	t.Run("propagates underlying error", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		_, err := rfcdoc.BuildCatalog(iotest.ErrReader(boom))

		assert.ErrorIs(t, err, boom)
	})
}

func TestCatalog_Records_ReturnsCopy(t *testing.T) {
	t.Parallel()

	catalog := rfcdoc.NewCatalog(&rfcdoc.Record{ID: 1, Description: "1 a\n"})

	recs := catalog.Records()
	recs[0] = nil

	assert.NotNil(t, catalog.Records()[0])
}

func TestCatalog_FindByKeyword(t *testing.T) {
	t.Parallel()

	catalog := rfcdoc.NewCatalog(
		&rfcdoc.Record{ID: 2616, Description: "2616 Hypertext Transfer Protocol -- HTTP/1.1.\n"},
		&rfcdoc.Record{ID: 791, Description: "0791 Internet Protocol.\n"},
		&rfcdoc.Record{ID: 1149, Description: "1149 Standard for the transmission of IP datagrams on avian carriers.\n"},
	)

	t.Run("matches case-insensitively in catalog order", func(t *testing.T) {
		t.Parallel()

		recs := catalog.FindByKeyword("PROTOCOL")

		require.Len(t, recs, 2)
		assert.Equal(t, 2616, recs[0].ID)
		assert.Equal(t, 791, recs[1].ID)
	})

	t.Run("matches anywhere in the description", func(t *testing.T) {
		t.Parallel()

		recs := catalog.FindByKeyword("avian")

		require.Len(t, recs, 1)
		assert.Equal(t, 1149, recs[0].ID)
	})

	t.Run("matches the number prefix too", func(t *testing.T) {
		t.Parallel()

		recs := catalog.FindByKeyword("0791")

		require.Len(t, recs, 1)
		assert.Equal(t, 791, recs[0].ID)
	})

	t.Run("returns nothing when no record matches", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, catalog.FindByKeyword("there is no rfc with that string in the index"))
	})
}

func stringsReader(s string) *strings.Reader {
	return strings.NewReader(s)
}
