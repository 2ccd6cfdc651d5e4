// Package search ranks application entries against a typed query.
package search

import (
	"sort"
	"strings"

	"bragi/internal/models"
)

// Scoring weights for the subsequence matcher
const (
	matchScore       = 10 // every matched query character
	consecutiveBonus = 5  // match directly follows the previous match
	wordStartBonus   = 15 // match at the start of the name or of a word
)

// Match runs a greedy ordered subsequence match of query against name,
// case-insensitively. It returns the score and whether every query
// character was consumed. A partial match is a non-match, not a zero score.
func Match(name, query string) (int, bool) {
	if query == "" {
		return 0, true
	}

	lowerName := strings.ToLower(name)
	lowerQuery := strings.ToLower(query)

	score := 0
	qi := 0
	prevMatch := -1

	for ni := 0; ni < len(lowerName) && qi < len(lowerQuery); ni++ {
		if lowerName[ni] != lowerQuery[qi] {
			continue
		}

		score += matchScore
		if ni == prevMatch+1 && prevMatch >= 0 {
			score += consecutiveBonus
		}
		if ni == 0 || lowerName[ni-1] == ' ' {
			score += wordStartBonus
		}
		prevMatch = ni
		qi++
	}

	if qi < len(lowerQuery) {
		return 0, false
	}
	return score, true
}

// Rank returns indices into entries, filtered and ordered for the query.
// An empty query yields every entry in discovery order. Otherwise entries
// that fully match are sorted by descending score; ties keep their input
// order, so equal-scoring entries never swap across re-ranks of the same
// set. The result holds indices rather than entry pointers so it stays
// valid however the caller stores the underlying collection.
func Rank(entries []*models.Entry, query string) []int {
	if query == "" {
		all := make([]int, len(entries))
		for i := range entries {
			all[i] = i
		}
		return all
	}

	var matched []int
	scores := make(map[int]int)
	for i, entry := range entries {
		if score, ok := Match(entry.Name, query); ok {
			matched = append(matched, i)
			scores[i] = score
		}
	}

	sort.SliceStable(matched, func(a, b int) bool {
		return scores[matched[a]] > scores[matched[b]]
	})
	return matched
}
