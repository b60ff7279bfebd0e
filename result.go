package zealdoc

import (
	"cmp"
	"context"
	"path/filepath"
	"slices"
	"strings"
)

// Result is a record that matched a query, with its relevance score and the
// on-disk location of its documentation.
type Result struct {
	Record *Record `json:"record"`
	// Score is the fuzzy match score (higher is better), or 0 in list mode.
	Score int `json:"score"`
	// ResolvedPath is the record path joined onto the docset content root.
	ResolvedPath string `json:"resolvedPath"`
}

// NewResult resolves rec against the content root and returns a Result.
func NewResult(rec *Record, score int, root string) *Result {
	return &Result{
		Record:       rec,
		Score:        score,
		ResolvedPath: filepath.Join(root, rec.Path),
	}
}

// SearchOptions controls a single search.
type SearchOptions struct {
	// FullScan disables the substring pre-filter so that every record in the
	// index is fuzzy scored. Slower, but finds matches whose characters are
	// not contiguous in the name.
	FullScan bool

	// Unique collapses records with identical name, kind and path.
	Unique bool

	// Limit caps the number of results after ranking. Zero means no limit.
	Limit int
}

// Searcher searches a docset index.
type Searcher interface {
	// Search returns the ranked results for query. The whole pipeline runs
	// before anything is returned: either all results or an error.
	// An empty result is not an error.
	Search(ctx context.Context, docset *Docset, query string, opts SearchOptions) ([]*Result, error)
}

// Rank orders results in place.
//
// In list mode (empty query) results are sorted by name ignoring case, with
// the case-sensitive name, kind and path as successive tie-breakers. In fuzzy
// mode they are sorted by descending score. Both sorts are stable, so fully
// equal entries keep the order in which the index yielded them.
func Rank(query string, results []*Result) {
	if query != "" {
		slices.SortStableFunc(results, func(a, b *Result) int {
			return cmp.Compare(b.Score, a.Score)
		})
		return
	}

	keyed := make([]rankKey, len(results))
	for i, r := range results {
		keyed[i] = rankKey{result: r, folded: strings.ToLower(r.Record.Name)}
	}
	slices.SortStableFunc(keyed, func(a, b rankKey) int {
		return cmp.Or(
			strings.Compare(a.folded, b.folded),
			strings.Compare(a.result.Record.Name, b.result.Record.Name),
			strings.Compare(a.result.Record.Kind, b.result.Record.Kind),
			strings.Compare(a.result.Record.Path, b.result.Record.Path),
		)
	})
	for i, k := range keyed {
		results[i] = k.result
	}
}

// rankKey caches the case-folded name so it is computed once per result
// instead of once per comparison.
type rankKey struct {
	result *Result
	folded string
}
