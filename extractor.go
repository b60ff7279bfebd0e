package zealdoc

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar) has been removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// The content HTML has boilerplate removed but preserves structure.
	Extract(html string) (*ExtractResult, error)
}

// Sectioner narrows a documentation page down to the part describing a
// single symbol.
type Sectioner interface {
	// Section returns the HTML of the element anchored at fragment together
	// with the content that follows it up to the next heading of the same
	// or a higher level.
	// Returns ENOTFOUND if the page has no such anchor.
	Section(html, fragment string) (string, error)
}
