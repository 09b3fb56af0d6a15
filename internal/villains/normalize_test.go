package villains

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "parenthesized real name is removed",
			raw:      "Green Goblin (Norman Osborn)",
			expected: "Green Goblin",
		},
		{
			name:     "comma exposed by removed parenthetical is stripped",
			raw:      "Doctor Octopus, (Otto Octavius)",
			expected: "Doctor Octopus",
		},
		{
			name:     "trailing punctuation run",
			raw:      "Mysterio;:,.",
			expected: "Mysterio",
		},
		{
			name:     "internal whitespace collapses to single spaces",
			raw:      "  Kraven   the  Hunter  ",
			expected: "Kraven the Hunter",
		},
		{
			name:     "multiple parentheticals",
			raw:      "Vulture (Adrian Toomes) (cameo)",
			expected: "Vulture",
		},
		{
			name:     "only a parenthetical normalizes to empty",
			raw:      "(unnamed)",
			expected: "",
		},
		{
			name:     "whitespace only",
			raw:      "   ",
			expected: "",
		},
		{
			name:     "already clean",
			raw:      "Chameleon",
			expected: "Chameleon",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Normalize(tc.raw))
		})
	}
}

func TestSlugify(t *testing.T) {
	testCases := []struct {
		name     string
		in       string
		expected string
	}{
		{"simple", "Green Goblin", "green-goblin"},
		{"punctuation runs collapse", "Dr. Octopus!!", "dr-octopus"},
		{"leading and trailing separators trimmed", " The Lizard ", "the-lizard"},
		{"digits preserved", "Sinister 6", "sinister-6"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Slugify(tc.in))

			// Slugify must be pure and stable.
			assert.Equal(t, Slugify(tc.in), Slugify(tc.in))
		})
	}
}
