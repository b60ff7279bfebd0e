package zealdoc

import (
	"context"
	"path/filepath"
)

// DocsetExt is the directory extension of an installed docset.
const DocsetExt = ".docset"

// Docset represents an installed documentation set.
type Docset struct {
	// Name is the directory stem, e.g. "Go" for "Go.docset".
	Name string `json:"name"`
	// Path is the absolute path of the .docset directory.
	Path string `json:"path"`
	// Info holds metadata from Contents/Info.plist, if readable.
	Info *DocsetInfo `json:"info,omitempty"`
}

// IndexPath returns the location of the docset's search index.
func (d *Docset) IndexPath() string {
	return filepath.Join(d.Path, "Contents", "Resources", "docSet.dsidx")
}

// DocumentsPath returns the content root that index paths resolve against.
func (d *Docset) DocumentsPath() string {
	return filepath.Join(d.Path, "Contents", "Resources", "Documents")
}

// InfoPath returns the location of the docset's Info.plist.
func (d *Docset) InfoPath() string {
	return filepath.Join(d.Path, "Contents", "Info.plist")
}

// Title returns the display name of the docset, falling back to its name.
func (d *Docset) Title() string {
	if d.Info != nil && d.Info.DisplayName != "" {
		return d.Info.DisplayName
	}
	return d.Name
}

// DocsetInfo is the subset of a docset's Info.plist the tool uses.
type DocsetInfo struct {
	Identifier  string `json:"identifier"`
	DisplayName string `json:"displayName"`
	Platform    string `json:"platform"`
	IndexFile   string `json:"indexFile"`
}

// InfoReader reads docset metadata.
type InfoReader interface {
	// ReadInfo parses the Info.plist at path.
	ReadInfo(path string) (*DocsetInfo, error)
}

// DocsetService represents a service for finding installed docsets.
type DocsetService interface {
	// FindDocsets returns every installed docset ordered by name.
	FindDocsets(ctx context.Context) ([]*Docset, error)

	// FindDocsetByName retrieves a docset by its name, with or without
	// the .docset extension.
	// Returns ENOTFOUND if the docset does not exist.
	FindDocsetByName(ctx context.Context, name string) (*Docset, error)
}
