package main

import (
	"fmt"

	"github.com/fwojciec/zealdoc"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	if c.Limit < 0 {
		fmt.Fprintln(deps.Stderr, "error: --limit must not be negative")
		return zealdoc.Errorf(zealdoc.EINVALID, "negative limit %d", c.Limit)
	}

	docset, err := findDocset(deps, c.Docset)
	if err != nil {
		return err
	}

	query := zealdoc.NormalizeQuery(c.Query)
	results, err := deps.Searcher.Search(deps.Ctx, docset, query, zealdoc.SearchOptions{
		FullScan: c.NoPrefilter,
		Unique:   c.Unique,
		Limit:    c.Limit,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", zealdoc.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintf(deps.Stdout, "No results found for '%s' in docset '%s'\n", query, c.Docset)
		return nil
	}

	fmt.Fprintln(deps.Stdout, deps.Formatter.FormatResults(results))
	return nil
}
