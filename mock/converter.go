package mock

import "github.com/fwojciec/zealdoc"

var _ zealdoc.Converter = (*Converter)(nil)

// Converter is a mock implementation of zealdoc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
