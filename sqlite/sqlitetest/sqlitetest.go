// Package sqlitetest builds docset fixtures for tests.
package sqlitetest

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/zealdoc"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/stretchr/testify/require"
)

// Row is a raw searchIndex row. Nil fields are stored as NULL.
type Row struct {
	Name, Kind, Path any
}

// NewDocset creates name.docset under dir with a search index holding
// records in the given order, and returns it.
func NewDocset(tb testing.TB, dir, name string, records ...*zealdoc.Record) *zealdoc.Docset {
	tb.Helper()

	rows := make([]Row, 0, len(records))
	for _, r := range records {
		rows = append(rows, Row{Name: r.Name, Kind: r.Kind, Path: r.Path})
	}
	return NewDocsetWithRows(tb, dir, name, rows...)
}

// NewDocsetWithRows is like NewDocset but inserts raw rows.
func NewDocsetWithRows(tb testing.TB, dir, name string, rows ...Row) *zealdoc.Docset {
	tb.Helper()

	docset := &zealdoc.Docset{Name: name, Path: filepath.Join(dir, name+zealdoc.DocsetExt)}
	require.NoError(tb, os.MkdirAll(docset.DocumentsPath(), 0755))

	db, err := sql.Open("sqlite3", docset.IndexPath())
	require.NoError(tb, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE searchIndex (id INTEGER PRIMARY KEY, name TEXT, type TEXT, path TEXT)`)
	require.NoError(tb, err)

	for _, r := range rows {
		_, err := db.Exec(`INSERT INTO searchIndex (name, type, path) VALUES (?, ?, ?)`, r.Name, r.Kind, r.Path)
		require.NoError(tb, err)
	}
	return docset
}

// WriteInfo writes a minimal Info.plist for docset.
func WriteInfo(tb testing.TB, docset *zealdoc.Docset, identifier, displayName, platform string) {
	tb.Helper()

	plist := `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>CFBundleIdentifier</key>
	<string>` + identifier + `</string>
	<key>CFBundleName</key>
	<string>` + displayName + `</string>
	<key>DocSetPlatformFamily</key>
	<string>` + platform + `</string>
	<key>dashIndexFilePath</key>
	<string>index.html</string>
	<key>isDashDocset</key>
	<true/>
</dict>
</plist>
`
	require.NoError(tb, os.MkdirAll(filepath.Dir(docset.InfoPath()), 0755))
	require.NoError(tb, os.WriteFile(docset.InfoPath(), []byte(plist), 0644))
}

// WriteDocument writes a document below the docset content root.
func WriteDocument(tb testing.TB, docset *zealdoc.Docset, path, content string) {
	tb.Helper()

	full := filepath.Join(docset.DocumentsPath(), path)
	require.NoError(tb, os.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(tb, os.WriteFile(full, []byte(content), 0644))
}
