package rfcdoc

import (
	"context"
	"io"
)

// IndexSource opens the RFC index for reading.
type IndexSource interface {
	// OpenIndex returns a reader over the index file.
	// Returns ENOTFOUND if no index is present.
	OpenIndex(ctx context.Context) (io.ReadCloser, error)
}

// Catalog is the immutable set of records parsed from one index stream.
// Records are kept in index order and duplicate numbers are not merged.
type Catalog struct {
	records []*Record
	skipped int
}

// BuildCatalog parses r to completion. Malformed records are skipped and
// counted; any other error aborts the build and no catalog is returned.
func BuildCatalog(r io.Reader) (*Catalog, error) {
	c := &Catalog{}
	for rec, err := range ParseIndex(r) {
		if err != nil {
			if ErrorCode(err) == EMALFORMED {
				c.skipped++
				continue
			}
			return nil, err
		}
		c.records = append(c.records, rec)
	}
	return c, nil
}

// NewCatalog returns a catalog holding the given records.
func NewCatalog(records ...*Record) *Catalog {
	return &Catalog{records: records}
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Skipped returns the number of malformed records dropped while building.
func (c *Catalog) Skipped() int {
	return c.skipped
}

// Records returns all records in index order.
func (c *Catalog) Records() []*Record {
	out := make([]*Record, len(c.records))
	copy(out, c.records)
	return out
}

// FindByKeyword returns the records whose description contains keyword,
// ignoring case, in index order.
func (c *Catalog) FindByKeyword(keyword string) []*Record {
	var out []*Record
	for _, rec := range c.records {
		if rec.Contains(keyword) {
			out = append(out, rec)
		}
	}
	return out
}
