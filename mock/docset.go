package mock

import (
	"context"

	"github.com/fwojciec/zealdoc"
)

var _ zealdoc.DocsetService = (*DocsetService)(nil)

// DocsetService is a mock implementation of zealdoc.DocsetService.
type DocsetService struct {
	FindDocsetsFn      func(ctx context.Context) ([]*zealdoc.Docset, error)
	FindDocsetByNameFn func(ctx context.Context, name string) (*zealdoc.Docset, error)
}

func (s *DocsetService) FindDocsets(ctx context.Context) ([]*zealdoc.Docset, error) {
	return s.FindDocsetsFn(ctx)
}

func (s *DocsetService) FindDocsetByName(ctx context.Context, name string) (*zealdoc.Docset, error) {
	return s.FindDocsetByNameFn(ctx, name)
}

var _ zealdoc.InfoReader = (*InfoReader)(nil)

// InfoReader is a mock implementation of zealdoc.InfoReader.
type InfoReader struct {
	ReadInfoFn func(path string) (*zealdoc.DocsetInfo, error)
}

func (r *InfoReader) ReadInfo(path string) (*zealdoc.DocsetInfo, error) {
	return r.ReadInfoFn(path)
}
