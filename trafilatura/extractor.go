// Package trafilatura extracts the main content of documentation pages with
// go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/zealdoc"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements zealdoc.Extractor at compile time.
var _ zealdoc.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct {
	// Fallback is consulted when trafilatura finds no content. May be nil.
	Fallback zealdoc.Extractor
}

// NewExtractor creates a new Extractor that defers to fallback for pages
// trafilatura cannot handle.
func NewExtractor(fallback zealdoc.Extractor) *Extractor {
	return &Extractor{Fallback: fallback}
}

// Extract processes raw HTML and returns the main content.
// Returns ENOTFOUND if neither trafilatura nor the fallback find any content.
func (e *Extractor) Extract(rawHTML string) (*zealdoc.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, zealdoc.Errorf(zealdoc.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		IncludeLinks:    true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil || result.ContentNode == nil || !hasText(result.ContentNode) {
		return e.fallback(rawHTML, err)
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return nil, err
	}

	return &zealdoc.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

func (e *Extractor) fallback(rawHTML string, cause error) (*zealdoc.ExtractResult, error) {
	if e.Fallback != nil {
		return e.Fallback.Extract(rawHTML)
	}
	if cause != nil {
		return nil, zealdoc.Errorf(zealdoc.ENOTFOUND, "no content found: %v", cause)
	}
	return nil, zealdoc.Errorf(zealdoc.ENOTFOUND, "no content found")
}

// hasText reports whether n or any of its descendants holds non-blank text.
func hasText(n *html.Node) bool {
	if n.Type == html.TextNode && strings.TrimSpace(n.Data) != "" {
		return true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if hasText(c) {
			return true
		}
	}
	return false
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
