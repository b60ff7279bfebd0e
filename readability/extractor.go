// Package readability extracts the main content of documentation pages with
// go-readability. It serves as the fallback for pages trafilatura cannot
// handle.
package readability

import (
	"strings"

	"github.com/fwojciec/zealdoc"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements zealdoc.Extractor at compile time.
var _ zealdoc.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
// Returns ENOTFOUND if the page has no readable content.
func (e *Extractor) Extract(rawHTML string) (*zealdoc.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, zealdoc.Errorf(zealdoc.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, zealdoc.Errorf(zealdoc.ENOTFOUND, "no readable content: %v", err)
	}
	if strings.TrimSpace(article.TextContent) == "" {
		return nil, zealdoc.Errorf(zealdoc.ENOTFOUND, "no readable content")
	}

	return &zealdoc.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
