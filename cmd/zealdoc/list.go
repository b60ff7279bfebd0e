package main

import (
	"fmt"

	"github.com/fwojciec/zealdoc"
)

// Run executes the list-docsets command.
func (c *ListCmd) Run(deps *Dependencies) error {
	docsets, err := deps.Docsets.FindDocsets(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", zealdoc.ErrorMessage(err))
		return err
	}

	if len(docsets) == 0 {
		fmt.Fprintln(deps.Stdout, "No docsets found.")
		return nil
	}

	for _, d := range docsets {
		var platform string
		if d.Info != nil {
			platform = d.Info.Platform
		}
		fmt.Fprintf(deps.Stdout, "%s\t%s\t%s\n", d.Name, d.Title(), platform)
	}

	return nil
}
