package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/zealdoc"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	if c.Nth < 1 {
		fmt.Fprintln(deps.Stderr, "error: --nth must be at least 1")
		return zealdoc.Errorf(zealdoc.EINVALID, "invalid result position %d", c.Nth)
	}

	docset, err := findDocset(deps, c.Docset)
	if err != nil {
		return err
	}

	query := zealdoc.NormalizeQuery(c.Query)
	results, err := deps.Searcher.Search(deps.Ctx, docset, query, zealdoc.SearchOptions{
		FullScan: c.NoPrefilter,
		Limit:    c.Nth,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", zealdoc.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintf(deps.Stdout, "No results found for '%s' in docset '%s'\n", query, c.Docset)
		return nil
	}
	if len(results) < c.Nth {
		fmt.Fprintf(deps.Stderr, "error: only %d results found for '%s'\n", len(results), query)
		return zealdoc.Errorf(zealdoc.ENOTFOUND, "result %d not found", c.Nth)
	}

	rec := results[c.Nth-1].Record
	if zealdoc.IsRemotePath(rec.Path) {
		fmt.Fprintf(deps.Stderr, "error: %s is documented online: %s\n", rec.Name, rec.Path)
		return zealdoc.Errorf(zealdoc.EINVALID, "remote document %s", rec.Path)
	}

	file, fragment := zealdoc.SplitPath(rec.Path)
	page, err := deps.ReadDocument(filepath.Join(docset.DocumentsPath(), file))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", zealdoc.ErrorMessage(err))
		return err
	}

	content, err := c.narrow(deps, page, fragment)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", zealdoc.ErrorMessage(err))
		return err
	}

	md, err := deps.Converter.Convert(content)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", zealdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, md)
	return nil
}

// narrow reduces a page to the part worth printing: the anchored section if
// the fragment resolves, otherwise the extracted main content, otherwise
// the whole page.
func (c *ShowCmd) narrow(deps *Dependencies, page, fragment string) (string, error) {
	if fragment != "" {
		section, err := deps.Sectioner.Section(page, fragment)
		if err == nil {
			return section, nil
		}
		if zealdoc.ErrorCode(err) != zealdoc.ENOTFOUND {
			return "", err
		}
	}

	extracted, err := deps.Extractor.Extract(page)
	if err != nil {
		if zealdoc.ErrorCode(err) == zealdoc.ENOTFOUND {
			return page, nil
		}
		return "", err
	}
	if extracted.ContentHTML == "" {
		return page, nil
	}
	return extracted.ContentHTML, nil
}
