package zealdoc

import "strings"

// NormalizeQuery joins query tokens into a single search string separated by
// single spaces. An empty token list yields the empty string, which selects
// list mode. Tokens are otherwise left untouched: case handling belongs to
// Match.
func NormalizeQuery(tokens []string) string {
	return strings.Join(tokens, " ")
}
