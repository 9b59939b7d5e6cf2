package rfcdoc

import (
	"cmp"
	"slices"
)

// Lookup is the outcome of resolving a document number.
type Lookup struct {
	ID    int
	Found bool

	// Path is the document file, set only when Found.
	Path string
}

// QueryEngine answers lookups and searches against the documents present in
// storage. Both fields are read-only for the lifetime of the engine.
type QueryEngine struct {
	Documents *DocumentSet

	// Catalog is required by Search only.
	Catalog *Catalog
}

// LookupByNumber reports whether document id is available and where.
func (e *QueryEngine) LookupByNumber(id int) Lookup {
	if !e.Documents.Contains(id) {
		return Lookup{ID: id}
	}
	return Lookup{ID: id, Found: true, Path: e.Documents.Path(id)}
}

// Search returns the catalog records matching keyword whose document is
// available, sorted by number. Records sharing a number keep index order.
func (e *QueryEngine) Search(keyword string) ([]*Record, error) {
	if keyword == "" {
		return nil, Errorf(EINVALID, "search keyword required")
	}
	if e.Catalog == nil {
		return nil, Errorf(EINTERNAL, "search requires a catalog")
	}

	var out []*Record
	for _, rec := range e.Catalog.FindByKeyword(keyword) {
		if e.Documents.Contains(rec.ID) {
			out = append(out, rec)
		}
	}
	slices.SortStableFunc(out, func(a, b *Record) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}
