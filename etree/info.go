// Package etree reads docset metadata from Info.plist property lists.
package etree

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/zealdoc"
)

// Ensure InfoReader implements zealdoc.InfoReader.
var _ zealdoc.InfoReader = (*InfoReader)(nil)

// Property list keys read from a docset's Info.plist.
const (
	keyIdentifier = "CFBundleIdentifier"
	keyName       = "CFBundleName"
	keyPlatform   = "DocSetPlatformFamily"
	keyIndexFile  = "dashIndexFilePath"
)

// InfoReader parses Info.plist files.
type InfoReader struct{}

// NewInfoReader creates a new InfoReader.
func NewInfoReader() *InfoReader {
	return &InfoReader{}
}

// ReadInfo parses the Info.plist at path.
// Returns ENOTFOUND if the file does not exist.
func (r *InfoReader) ReadInfo(path string) (*zealdoc.DocsetInfo, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, zealdoc.Errorf(zealdoc.ENOTFOUND, "info file %s does not exist", path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseInfo(f)
}

// ParseInfo parses a property list and extracts docset metadata.
// Missing keys leave the corresponding fields empty.
func ParseInfo(rd io.Reader) (*zealdoc.DocsetInfo, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(rd); err != nil {
		return nil, fmt.Errorf("parsing property list: %w", err)
	}

	root := doc.Root()
	if root == nil || root.Tag != "plist" {
		return nil, fmt.Errorf("not a property list")
	}
	dict := root.SelectElement("dict")
	if dict == nil {
		return nil, fmt.Errorf("property list has no top-level dict")
	}

	values := dictStrings(dict)
	return &zealdoc.DocsetInfo{
		Identifier:  values[keyIdentifier],
		DisplayName: values[keyName],
		Platform:    values[keyPlatform],
		IndexFile:   values[keyIndexFile],
	}, nil
}

// dictStrings collects the scalar entries of a plist dict. Each <key> is
// followed by its value element; nested containers are skipped.
func dictStrings(dict *etree.Element) map[string]string {
	values := make(map[string]string)
	children := dict.ChildElements()
	for i := 0; i+1 < len(children); i++ {
		key := children[i]
		if key.Tag != "key" {
			continue
		}
		value := children[i+1]
		i++
		switch value.Tag {
		case "string", "integer", "real", "date":
			values[strings.TrimSpace(key.Text())] = strings.TrimSpace(value.Text())
		case "true", "false":
			values[strings.TrimSpace(key.Text())] = value.Tag
		}
	}
	return values
}
