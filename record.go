package zealdoc

import (
	"context"
	"iter"
	"strings"
)

// Record is a single row of a docset search index: one documented symbol
// or page. Records are immutable and copied verbatim from the index.
type Record struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
	Path string `json:"path"`
}

// RecordFilter selects which records an Index yields.
type RecordFilter struct {
	// Contains restricts the scan to records whose name contains the value
	// as a case-insensitive substring. Empty means a full scan.
	Contains string
}

// Index is an open, read-only docset search index.
type Index interface {
	// Records returns a lazy sequence over the records matching filter.
	// Records are yielded in storage order. Iteration stops at the first
	// error, which is yielded with a nil record.
	Records(ctx context.Context, filter RecordFilter) iter.Seq2[*Record, error]

	// Close releases the underlying store handle.
	Close() error
}

// IndexOpener opens the search index of a docset.
type IndexOpener interface {
	// OpenIndex opens the index read-only.
	// Returns EUNAVAILABLE if the index is missing, corrupt or unreadable.
	OpenIndex(ctx context.Context, docset *Docset) (Index, error)
}

// dashEntryPrefix starts the metadata tags Dash prepends to some index paths,
// e.g. "<dash_entry_name=Foo><dash_entry_originalName=foo>foo.html#bar".
const dashEntryPrefix = "<dash_entry_"

// SplitPath splits a record path into the document file path and the
// fragment anchor, discarding any Dash entry metadata tags.
func SplitPath(path string) (file, fragment string) {
	for strings.HasPrefix(path, dashEntryPrefix) {
		end := strings.IndexByte(path, '>')
		if end < 0 {
			break
		}
		path = path[end+1:]
	}
	file, fragment, _ = strings.Cut(path, "#")
	return file, fragment
}

// IsRemotePath reports whether a record path points at an online resource
// rather than a file inside the docset.
func IsRemotePath(path string) bool {
	file, _ := SplitPath(path)
	return strings.HasPrefix(file, "http://") || strings.HasPrefix(file, "https://")
}
