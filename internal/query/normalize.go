package query

import (
	"regexp"
	"strings"
)

var (
	nonAlnum = regexp.MustCompile(`[^a-z0-9\s]`)

	// Dosage-form words that carry no signal for matching a product name.
	formWords = regexp.MustCompile(`\b(?:tablets?|tabs?|capsules?|cap|strip|syrup|injection|ointment|cream|solution|drops?)\b`)

	whitespace = regexp.MustCompile(`\s+`)
	mgSuffix   = regexp.MustCompile(`(\d+)\s*mg`)
)

// Normalize turns raw free-text input into the canonical search token:
// lowercase, punctuation stripped, dosage-form words removed, whitespace
// collapsed and "<N> mg" tightened to "<N>mg". Idempotent.
func Normalize(raw string) string {
	s := strings.ToLower(raw)
	s = nonAlnum.ReplaceAllString(s, " ")
	s = formWords.ReplaceAllString(s, " ")
	s = strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
	s = mgSuffix.ReplaceAllString(s, "${1}mg")
	return s
}

// Flatten removes all spaces from an already-normalized string. Flattened
// forms are what substring and similarity comparisons run on.
func Flatten(normalized string) string {
	return strings.ReplaceAll(normalized, " ", "")
}
