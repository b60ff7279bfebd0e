package zealdoc

import (
	"math"
	"unicode"
)

// Scoring weights for Match.
const (
	scoreMatch       = 16
	bonusBoundary    = 8
	bonusCamelCase   = 7
	bonusConsecutive = 4
	bonusExactCase   = 1
	penaltyGapStart  = 3
	penaltyGapExtend = 1
	penaltyUnmatched = 1
)

// noMatch marks impossible alignments in the scoring tables.
const noMatch = math.MinInt32

// Match reports whether name matches query and how well.
//
// An empty query matches every name with score 0. Otherwise every rune of
// query must appear in name in order; names where that is impossible do not
// match at all. Among matching names the score rewards contiguous runs,
// matches at the start of words and camel-case humps, runes matching with
// the exact case, and short names. A name equal to the query always scores
// higher than any other name the query matches.
//
// Matching uses smart case: a query without upper-case letters ignores case,
// a query with any upper-case letter is case-sensitive.
//
// Match is pure and safe for concurrent use.
func Match(query, name string) (int, bool) {
	if query == "" {
		return 0, true
	}

	q := []rune(query)
	n := []rune(name)
	if len(q) > len(n) {
		return 0, false
	}

	caseSensitive := hasUpper(q)
	if !isSubsequence(q, n, caseSensitive) {
		return 0, false
	}

	score := align(q, n, caseSensitive) - penaltyUnmatched*(len(n)-len(q))
	if query == name {
		// Bounds the boundary bonuses any other alignment of q can collect.
		score += len(q)*bonusBoundary + 1
	}
	return score, true
}

// align returns the best alignment score of q as a subsequence of n.
//
// matched[j] holds the best score for the current query rune matched at
// n[j]; gapped[j] holds the best score for the current query rune matched
// somewhere before j with every rune up to and including j skipped.
func align(q, n []rune, caseSensitive bool) int {
	cols := len(n)
	prevMatched := make([]int, cols)
	prevGapped := make([]int, cols)
	matched := make([]int, cols)
	gapped := make([]int, cols)

	for i := range q {
		for j := range cols {
			if j == 0 {
				gapped[j] = noMatch
			} else {
				gapped[j] = max(
					step(matched[j-1], -penaltyGapStart),
					step(gapped[j-1], -penaltyGapExtend),
				)
			}

			matched[j] = noMatch
			if j < i || !runesMatch(q[i], n[j], caseSensitive) {
				continue
			}

			s := scoreMatch + boundaryBonus(n, j)
			if q[i] == n[j] {
				s += bonusExactCase
			}

			if i == 0 {
				matched[j] = s
				continue
			}
			if j == 0 {
				continue
			}
			matched[j] = step(max(step(prevMatched[j-1], bonusConsecutive), prevGapped[j-1]), s)
		}
		prevMatched, matched = matched, prevMatched
		prevGapped, gapped = gapped, prevGapped
	}

	best := noMatch
	for _, s := range prevMatched {
		best = max(best, s)
	}
	return best
}

// step adds delta to a table score, keeping impossible alignments impossible.
func step(score, delta int) int {
	if score == noMatch {
		return noMatch
	}
	return score + delta
}

// boundaryBonus scores how likely n[j] is the start of a word.
func boundaryBonus(n []rune, j int) int {
	if j == 0 {
		return bonusBoundary
	}
	prev, cur := n[j-1], n[j]
	switch {
	case !isWordRune(prev) && isWordRune(cur):
		return bonusBoundary
	case unicode.IsLower(prev) && unicode.IsUpper(cur):
		return bonusCamelCase
	case unicode.IsLetter(prev) && unicode.IsDigit(cur):
		return bonusCamelCase
	}
	return 0
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isSubsequence(q, n []rune, caseSensitive bool) bool {
	i := 0
	for _, r := range n {
		if i < len(q) && runesMatch(q[i], r, caseSensitive) {
			i++
		}
	}
	return i == len(q)
}

func runesMatch(a, b rune, caseSensitive bool) bool {
	if a == b {
		return true
	}
	if caseSensitive {
		return false
	}
	return unicode.ToLower(a) == unicode.ToLower(b)
}

func hasUpper(q []rune) bool {
	for _, r := range q {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
