package rfcdoc

import (
	"context"
	"path/filepath"
	"slices"
	"strconv"
)

// DocumentScanner lists the documents physically present in storage.
type DocumentScanner interface {
	// Scan returns the set of available document numbers.
	// A missing storage directory yields an empty set, not an error.
	Scan(ctx context.Context) (*DocumentSet, error)
}

// DocumentSet is the set of document numbers present in a storage directory,
// each mapped to the file it was found in.
type DocumentSet struct {
	dir    string
	prefix string
	suffix string
	files  map[int]string
}

// NewDocumentSet returns an empty set for documents stored in dir under the
// <prefix><number><suffix> naming convention.
func NewDocumentSet(dir, prefix, suffix string) *DocumentSet {
	return &DocumentSet{
		dir:    dir,
		prefix: prefix,
		suffix: suffix,
		files:  make(map[int]string),
	}
}

// Add registers id as available in the named file. Adding an id twice keeps
// the first file unless the new one carries the canonical name for id.
func (s *DocumentSet) Add(id int, name string) {
	if _, ok := s.files[id]; ok && name != s.FileName(id) {
		return
	}
	s.files[id] = name
}

// Contains reports whether id is available.
func (s *DocumentSet) Contains(id int) bool {
	_, ok := s.files[id]
	return ok
}

// Len returns the number of available ids.
func (s *DocumentSet) Len() int {
	return len(s.files)
}

// IDs returns the available ids in ascending order.
func (s *DocumentSet) IDs() []int {
	ids := make([]int, 0, len(s.files))
	for id := range s.files {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// FileName returns the canonical file name for id.
func (s *DocumentSet) FileName(id int) string {
	return s.prefix + strconv.Itoa(id) + s.suffix
}

// Path returns the path of the file holding id, or "" if id is unavailable.
func (s *DocumentSet) Path(id int) string {
	name, ok := s.files[id]
	if !ok {
		return ""
	}
	return filepath.Join(s.dir, name)
}

// Dir returns the storage directory.
func (s *DocumentSet) Dir() string {
	return s.dir
}
