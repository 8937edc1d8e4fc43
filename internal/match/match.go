package match

import "strings"

// Candidate is one qualifying search-result link, detached from the live
// DOM handle it was read from. Title holds the normalized-and-flattened
// anchor text, Href the absolute product URL.
type Candidate struct {
	Title string
	Href  string
}

// SelectBest picks the candidate whose title best matches the flattened
// query. Candidates where one string contains the other are preferred as a
// pool over the rest; within the pool the highest similarity ratio wins,
// first-encountered order breaking ties. Returns nil for an empty input.
func SelectBest(flatQuery string, candidates []Candidate) *Candidate {
	if len(candidates) == 0 {
		return nil
	}

	var subset []Candidate
	for _, c := range candidates {
		if strings.Contains(c.Title, flatQuery) || strings.Contains(flatQuery, c.Title) {
			subset = append(subset, c)
		}
	}

	pool := candidates
	if len(subset) > 0 {
		pool = subset
	}

	best := pool[0]
	bestScore := Ratio(flatQuery, pool[0].Title)
	for _, c := range pool[1:] {
		if score := Ratio(flatQuery, c.Title); score > bestScore {
			best = c
			bestScore = score
		}
	}

	return &best
}

// Ratio is a similarity measure in [0,1] between two strings, defined as
// 2*LCS(a,b)/(len(a)+len(b)) over the longest common subsequence. Two empty
// strings are fully similar.
func Ratio(a, b string) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 1
	}
	return 2 * float64(lcs(a, b)) / float64(total)
}

func lcs(a, b string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
