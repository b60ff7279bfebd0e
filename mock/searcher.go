package mock

import (
	"context"

	"github.com/fwojciec/zealdoc"
)

var _ zealdoc.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of zealdoc.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, docset *zealdoc.Docset, query string, opts zealdoc.SearchOptions) ([]*zealdoc.Result, error)
}

func (s *Searcher) Search(ctx context.Context, docset *zealdoc.Docset, query string, opts zealdoc.SearchOptions) ([]*zealdoc.Result, error) {
	return s.SearchFn(ctx, docset, query, opts)
}
