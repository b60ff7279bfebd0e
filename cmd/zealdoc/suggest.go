package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/zealdoc"
	"github.com/sahilm/fuzzy"
)

// maxSuggestions bounds the "did you mean" list.
const maxSuggestions = 3

// findDocset looks a docset up by name, reporting failures on stderr. Unknown
// names are answered with the closest installed docsets.
func findDocset(deps *Dependencies, name string) (*zealdoc.Docset, error) {
	docset, err := deps.Docsets.FindDocsetByName(deps.Ctx, name)
	if err == nil {
		return docset, nil
	}
	if zealdoc.ErrorCode(err) != zealdoc.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: %s\n", zealdoc.ErrorMessage(err))
		return nil, err
	}

	msg := fmt.Sprintf("error: docset %q not found.", name)
	if suggestions := suggest(deps, name); len(suggestions) > 0 {
		msg += " Did you mean: " + strings.Join(suggestions, ", ") + "?"
	}
	fmt.Fprintln(deps.Stderr, msg)
	fmt.Fprintln(deps.Stderr, "Run 'zealdoc list-docsets' to see installed docsets.")
	return nil, err
}

// suggest returns installed docset names that fuzzy match name, best first.
func suggest(deps *Dependencies, name string) []string {
	docsets, err := deps.Docsets.FindDocsets(deps.Ctx)
	if err != nil || len(docsets) == 0 {
		return nil
	}

	names := make([]string, len(docsets))
	for i, d := range docsets {
		names[i] = d.Name
	}

	pattern := strings.TrimSuffix(name, zealdoc.DocsetExt)
	var out []string
	for _, m := range fuzzy.Find(pattern, names) {
		out = append(out, m.Str)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}
