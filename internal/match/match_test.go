package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectBest(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		candidates []Candidate
		expected   string // expected Href, "" means nil result
	}{
		{
			name:  "Exact substring match beats similarity distractor",
			query: "bilypsa4mg",
			candidates: []Candidate{
				{Title: "bilypsa4mg", Href: "/medicine/bilypsa-4"},
				{Title: "bilypsa10mg", Href: "/medicine/bilypsa-10"},
				{Title: "paracetamol500mg", Href: "/medicine/paracetamol-500"},
			},
			expected: "/medicine/bilypsa-4",
		},
		{
			name:  "Query contained in candidate",
			query: "dolo650",
			candidates: []Candidate{
				{Title: "crocin650", Href: "/otc/crocin"},
				{Title: "dolo650strip15", Href: "/otc/dolo"},
			},
			expected: "/otc/dolo",
		},
		{
			name:  "Candidate contained in query",
			query: "augmentin625duo",
			candidates: []Candidate{
				{Title: "augmentin625", Href: "/medicine/augmentin"},
				{Title: "azithral500", Href: "/medicine/azithral"},
			},
			expected: "/medicine/augmentin",
		},
		{
			name:  "No substring subset falls back to best similarity",
			query: "bilypsa4mg",
			candidates: []Candidate{
				{Title: "bilypsa10mgpack", Href: "/medicine/close"},
				{Title: "metformin500mg", Href: "/medicine/far"},
			},
			expected: "/medicine/close",
		},
		{
			name:  "Tie broken by first encountered",
			query: "abcd",
			candidates: []Candidate{
				{Title: "wxyz", Href: "/medicine/first"},
				{Title: "wxyz", Href: "/medicine/second"},
			},
			expected: "/medicine/first",
		},
		{
			name:       "Empty candidate collection",
			query:      "bilypsa4mg",
			candidates: nil,
			expected:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SelectBest(tt.query, tt.candidates)
			if tt.expected == "" {
				assert.Nil(t, result)
				return
			}
			require.NotNil(t, result)
			assert.Equal(t, tt.expected, result.Href)
		})
	}
}

func TestRatio(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected float64
	}{
		{"Identical strings", "bilypsa4mg", "bilypsa4mg", 1},
		{"Both empty", "", "", 1},
		{"One empty", "bilypsa", "", 0},
		{"Disjoint alphabets", "abc", "xyz", 0},
		{"Half overlap", "ab", "ac", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Ratio(tt.a, tt.b), 1e-9)
		})
	}
}

func TestRatioOrdersCloserMatchesHigher(t *testing.T) {
	query := "bilypsa4mg"
	closer := Ratio(query, "bilypsa10mg")
	farther := Ratio(query, "paracetamol500mg")
	assert.Greater(t, closer, farther)
}
