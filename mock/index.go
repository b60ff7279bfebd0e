package mock

import (
	"context"
	"iter"

	"github.com/fwojciec/zealdoc"
)

var _ zealdoc.IndexOpener = (*IndexOpener)(nil)

// IndexOpener is a mock implementation of zealdoc.IndexOpener.
type IndexOpener struct {
	OpenIndexFn func(ctx context.Context, docset *zealdoc.Docset) (zealdoc.Index, error)
}

func (o *IndexOpener) OpenIndex(ctx context.Context, docset *zealdoc.Docset) (zealdoc.Index, error) {
	return o.OpenIndexFn(ctx, docset)
}

var _ zealdoc.Index = (*Index)(nil)

// Index is a mock implementation of zealdoc.Index.
type Index struct {
	RecordsFn func(ctx context.Context, filter zealdoc.RecordFilter) iter.Seq2[*zealdoc.Record, error]
	CloseFn   func() error
}

func (i *Index) Records(ctx context.Context, filter zealdoc.RecordFilter) iter.Seq2[*zealdoc.Record, error] {
	return i.RecordsFn(ctx, filter)
}

func (i *Index) Close() error {
	return i.CloseFn()
}
