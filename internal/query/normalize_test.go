package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Dosage form and spaced mg",
			input:    "Bilypsa 4 mg Tablet",
			expected: "bilypsa 4mg",
		},
		{
			name:     "Already tight mg",
			input:    "Bilypsa 4mg Tablet",
			expected: "bilypsa 4mg",
		},
		{
			name:     "Plural form word",
			input:    "Paracetamol 500mg Tablets",
			expected: "paracetamol 500mg",
		},
		{
			name:     "Punctuation stripped",
			input:    "Dolo-650 (Tablet)",
			expected: "dolo 650",
		},
		{
			name:     "Multiple form words",
			input:    "Eye Drops Solution 10ml",
			expected: "eye 10ml",
		},
		{
			name:     "Capsule variants",
			input:    "Omez 20mg Capsules strip",
			expected: "omez 20mg",
		},
		{
			name:     "Form word inside another word is kept",
			input:    "Capstone Syrup",
			expected: "capstone",
		},
		{
			name:     "Whitespace collapsed and trimmed",
			input:    "  Augmentin   625  ",
			expected: "augmentin 625",
		},
		{
			name:     "Empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "Only form words",
			input:    "Tablet Syrup Cream",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.input)
			assert.Equal(t, tt.expected, result)

			// Normalizing an already-normalized string changes nothing
			assert.Equal(t, result, Normalize(result))
		})
	}
}

func TestFlatten(t *testing.T) {
	assert.Equal(t, "bilypsa4mg", Flatten("bilypsa 4mg"))
	assert.Equal(t, "", Flatten(""))
	assert.Equal(t, "abc", Flatten("a b c"))
}
