package mock

import "github.com/fwojciec/zealdoc"

var _ zealdoc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of zealdoc.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*zealdoc.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*zealdoc.ExtractResult, error) {
	return e.ExtractFn(html)
}
