// Package fs provides file-system backed docset discovery.
package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/zealdoc"
)

// Ensure DocsetService implements zealdoc.DocsetService at compile time.
var _ zealdoc.DocsetService = (*DocsetService)(nil)

// DocsetService finds docsets installed as *.docset directories.
type DocsetService struct {
	dir  string
	info zealdoc.InfoReader
}

// NewDocsetService creates a DocsetService for the docsets directory dir.
// info may be nil, in which case docset metadata is not read.
func NewDocsetService(dir string, info zealdoc.InfoReader) *DocsetService {
	return &DocsetService{dir: dir, info: info}
}

// FindDocsets returns every installed docset ordered by name.
func (s *DocsetService) FindDocsets(ctx context.Context) ([]*zealdoc.Docset, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, zealdoc.Errorf(zealdoc.ENOTFOUND, "docsets directory %s does not exist", s.dir)
	}
	if err != nil {
		return nil, err
	}

	var docsets []*zealdoc.Docset
	for _, e := range entries {
		name, ok := strings.CutSuffix(e.Name(), zealdoc.DocsetExt)
		if !ok || name == "" {
			continue
		}
		path := filepath.Join(s.dir, e.Name())
		if !isDir(path) {
			continue
		}
		docsets = append(docsets, s.newDocset(name, path))
	}
	return docsets, nil
}

// FindDocsetByName retrieves a docset by name. An exact directory match wins;
// otherwise a single case-insensitive match is accepted.
func (s *DocsetService) FindDocsetByName(ctx context.Context, name string) (*zealdoc.Docset, error) {
	name = strings.TrimSuffix(name, zealdoc.DocsetExt)
	if name == "" {
		return nil, zealdoc.Errorf(zealdoc.EINVALID, "docset name required")
	}

	path := filepath.Join(s.dir, name+zealdoc.DocsetExt)
	if isDir(path) {
		return s.newDocset(name, path), nil
	}

	docsets, err := s.FindDocsets(ctx)
	if err != nil && zealdoc.ErrorCode(err) != zealdoc.ENOTFOUND {
		return nil, err
	}
	var found *zealdoc.Docset
	for _, d := range docsets {
		if strings.EqualFold(d.Name, name) {
			if found != nil {
				found = nil
				break
			}
			found = d
		}
	}
	if found == nil {
		return nil, zealdoc.Errorf(zealdoc.ENOTFOUND, "docset %q not found at %s", name, path)
	}
	return found, nil
}

func (s *DocsetService) newDocset(name, path string) *zealdoc.Docset {
	d := &zealdoc.Docset{Name: name, Path: path}
	if s.info != nil {
		// Metadata is optional; docsets without a readable Info.plist still work.
		if info, err := s.info.ReadInfo(d.InfoPath()); err == nil {
			d.Info = info
		}
	}
	return d
}

// isDir reports whether path is a directory, following symlinks.
func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
