package mock

import "github.com/fwojciec/zealdoc"

var _ zealdoc.Sectioner = (*Sectioner)(nil)

// Sectioner is a mock implementation of zealdoc.Sectioner.
type Sectioner struct {
	SectionFn func(html, fragment string) (string, error)
}

func (s *Sectioner) Section(html, fragment string) (string, error) {
	return s.SectionFn(html, fragment)
}
