package rfcdoc

import (
	"path/filepath"
	"strings"
)

// Default configuration values.
const (
	DefaultIndexName      = "rfc-index.txt"
	DefaultDocumentPrefix = "rfc"
	DefaultDocumentSuffix = ".txt"
	DefaultPager          = "less -r -s"
	DefaultHomeURL        = "https://www.rfc-editor.org"
	DefaultBulkURL        = "https://www.rfc-editor.org/in-notes/tar/RFC-all.tar.gz"
	DefaultIndexURL       = "https://www.rfc-editor.org/rfc-index.txt"
)

// Config holds the storage layout and sync endpoints of one session.
// It is passed explicitly to every component that needs it.
type Config struct {
	StorageDir     string `yaml:"storage_dir" json:"storageDir"`
	IndexName      string `yaml:"index_name" json:"indexName"`
	DocumentPrefix string `yaml:"document_prefix" json:"documentPrefix"`
	DocumentSuffix string `yaml:"document_suffix" json:"documentSuffix"`
	Pager          string `yaml:"pager" json:"pager"`
	HomeURL        string `yaml:"home_url" json:"homeUrl"`
	BulkURL        string `yaml:"bulk_url" json:"bulkUrl"`
	IndexURL       string `yaml:"index_url" json:"indexUrl"`
}

// DefaultConfig returns a config rooted at storageDir with every other field
// set to its default.
func DefaultConfig(storageDir string) Config {
	return Config{
		StorageDir:     storageDir,
		IndexName:      DefaultIndexName,
		DocumentPrefix: DefaultDocumentPrefix,
		DocumentSuffix: DefaultDocumentSuffix,
		Pager:          DefaultPager,
		HomeURL:        DefaultHomeURL,
		BulkURL:        DefaultBulkURL,
		IndexURL:       DefaultIndexURL,
	}
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	if c.StorageDir == "" {
		return Errorf(EINVALID, "storage directory required")
	}
	if c.IndexName == "" || strings.ContainsRune(c.IndexName, filepath.Separator) {
		return Errorf(EINVALID, "index name must be a plain file name")
	}
	if c.DocumentPrefix == "" {
		return Errorf(EINVALID, "document prefix required")
	}
	if strings.ContainsAny(c.DocumentPrefix+c.DocumentSuffix, "0123456789") {
		return Errorf(EINVALID, "document prefix and suffix must not contain digits")
	}
	return nil
}

// IndexPath returns the path of the index file.
func (c *Config) IndexPath() string {
	return filepath.Join(c.StorageDir, c.IndexName)
}

// IsDocumentName reports whether a file name looks like a document by its
// suffix. Used to select archive members worth keeping.
func (c *Config) IsDocumentName(name string) bool {
	return strings.HasSuffix(name, c.DocumentSuffix)
}
