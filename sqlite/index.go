package sqlite

import (
	"context"
	"database/sql"
	"iter"
	"strings"

	"github.com/fwojciec/zealdoc"
)

// Compile-time interface verification.
var (
	_ zealdoc.IndexOpener = (*IndexOpener)(nil)
	_ zealdoc.Index       = (*Index)(nil)
)

// IndexOpener opens docset indexes stored as SQLite databases.
type IndexOpener struct{}

// NewIndexOpener creates a new IndexOpener.
func NewIndexOpener() *IndexOpener {
	return &IndexOpener{}
}

// OpenIndex opens the docset's docSet.dsidx read-only.
func (o *IndexOpener) OpenIndex(ctx context.Context, docset *zealdoc.Docset) (zealdoc.Index, error) {
	path := docset.IndexPath()
	db := NewDB(path)
	if err := db.Open(ctx); err != nil {
		return nil, zealdoc.Errorf(zealdoc.EUNAVAILABLE, "docset %q: cannot open index %s: %v", docset.Name, path, err)
	}
	return &Index{db: db}, nil
}

// Index implements zealdoc.Index over the searchIndex table.
type Index struct {
	db *DB
}

// Records scans searchIndex in storage order. Rows with a NULL column are
// skipped.
func (idx *Index) Records(ctx context.Context, filter zealdoc.RecordFilter) iter.Seq2[*zealdoc.Record, error] {
	return func(yield func(*zealdoc.Record, error) bool) {
		var query strings.Builder
		var args []any

		query.WriteString("SELECT name, type, path FROM searchIndex")

		if filter.Contains != "" {
			query.WriteString(` WHERE name LIKE ? ESCAPE '\'`)
			args = append(args, "%"+escapeLike(filter.Contains)+"%")
		}

		rows, err := idx.db.QueryContext(ctx, query.String(), args...)
		if err != nil {
			yield(nil, err)
			return
		}
		defer rows.Close()

		for rows.Next() {
			var name, kind, path sql.NullString
			if err := rows.Scan(&name, &kind, &path); err != nil {
				yield(nil, err)
				return
			}
			if !name.Valid || !kind.Valid || !path.Valid {
				continue
			}
			rec := &zealdoc.Record{Name: name.String, Kind: kind.String, Path: path.String}
			if !yield(rec, nil) {
				return
			}
		}

		if err := rows.Err(); err != nil {
			yield(nil, err)
		}
	}
}

// Close closes the underlying database.
func (idx *Index) Close() error {
	return idx.db.Close()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern using '\' as the
// escape character.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
