// Package goquery narrows documentation pages to the section describing a
// single symbol.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/zealdoc"
)

// Ensure Sectioner implements zealdoc.Sectioner at compile time.
var _ zealdoc.Sectioner = (*Sectioner)(nil)

// noise is removed from sections before rendering. Dash anchors are empty
// links docset generators insert in front of every indexed symbol.
const noise = "script, style, noscript, a.dashAnchor"

// Sectioner selects the part of a page anchored at a fragment.
type Sectioner struct{}

// NewSectioner creates a new Sectioner.
func NewSectioner() *Sectioner {
	return &Sectioner{}
}

// Section returns the HTML of the element anchored at fragment and the
// content belonging to it.
//
// An anchor on or inside a heading starts a section that runs until the next
// heading of the same or a higher level. An empty anchor stands for the
// element that follows it. An anchor inside a summary selects the whole
// details element, and a definition term brings its definitions along. Any
// other element is returned on its own.
func (s *Sectioner) Section(html, fragment string) (string, error) {
	if fragment == "" {
		return "", zealdoc.Errorf(zealdoc.EINVALID, "empty fragment")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", zealdoc.Errorf(zealdoc.EINVALID, "failed to parse HTML: %v", err)
	}

	anchor := findAnchor(doc, fragment)
	if anchor.Length() == 0 {
		return "", zealdoc.Errorf(zealdoc.ENOTFOUND, "anchor %q not found", fragment)
	}

	nodes := collect(sectionStart(anchor))
	nodes.Find(noise).Remove()

	var b strings.Builder
	nodes.Each(func(_ int, sel *goquery.Selection) {
		if !sel.Is(noise) {
			h, err := goquery.OuterHtml(sel)
			if err == nil {
				b.WriteString(h)
				b.WriteString("\n")
			}
		}
	})
	return strings.TrimSpace(b.String()), nil
}

// findAnchor returns the first element whose id or name equals fragment,
// trying the percent-decoded fragment as well.
func findAnchor(doc *goquery.Document, fragment string) *goquery.Selection {
	candidates := []string{fragment}
	if decoded, err := url.PathUnescape(fragment); err == nil && decoded != fragment {
		candidates = append(candidates, decoded)
	}

	var match *goquery.Selection
	for _, want := range candidates {
		match = doc.Find("[id], a[name]").FilterFunction(func(_ int, sel *goquery.Selection) bool {
			if id, ok := sel.Attr("id"); ok && id == want {
				return true
			}
			name, ok := sel.Attr("name")
			return ok && name == want
		}).First()
		if match.Length() > 0 {
			break
		}
	}
	return match
}

// sectionStart resolves the element a section begins with.
func sectionStart(anchor *goquery.Selection) *goquery.Selection {
	// Collapsible items keep their description next to the summary.
	if summary := anchor.Closest("summary"); summary.Length() > 0 {
		if details := summary.Parent(); goquery.NodeName(details) == "details" {
			return details
		}
	}
	if heading := anchor.Closest("h1, h2, h3, h4, h5, h6"); heading.Length() > 0 {
		return heading
	}
	if goquery.NodeName(anchor) == "a" && strings.TrimSpace(anchor.Text()) == "" {
		if next := anchor.Next(); next.Length() > 0 {
			return next
		}
		return anchor.Parent()
	}
	return anchor
}

// collect gathers start and the siblings that belong to it.
func collect(start *goquery.Selection) *goquery.Selection {
	switch level := headingLevel(start); {
	case level > 0:
		nodes := start
		for next := start.Next(); next.Length() > 0; next = next.Next() {
			if l := headingLevel(next); l > 0 && l <= level {
				break
			}
			nodes = nodes.AddSelection(next)
		}
		return nodes
	case goquery.NodeName(start) == "dt":
		nodes := start
		for next := start.Next(); goquery.NodeName(next) == "dd"; next = next.Next() {
			nodes = nodes.AddSelection(next)
		}
		return nodes
	default:
		return start
	}
}

// headingLevel returns 1-6 for h1-h6 elements and 0 otherwise.
func headingLevel(sel *goquery.Selection) int {
	name := goquery.NodeName(sel)
	if len(name) == 2 && name[0] == 'h' && name[1] >= '1' && name[1] <= '6' {
		return int(name[1] - '0')
	}
	return 0
}
