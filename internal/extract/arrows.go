package extract

import (
	"strings"
	"unicode"
)

// arrowGlyphs is the fixed set of directional pointer symbols the wiki uses
// for prev/next navigation links inside character list items. None of them
// is ever a legitimate name token.
var arrowGlyphs = map[rune]bool{
	'←': true, '→': true, '↑': true, '↓': true,
	'⇐': true, '⇒': true, '⇑': true, '⇓': true,
	'⇦': true, '⇨': true, '⬅': true, '➡': true,
	'◀': true, '▶': true, '◁': true, '▷': true,
	'◄': true, '►': true, '⯇': true, '⯈': true,
	'▲': true, '▼': true, '△': true, '▽': true,
	'⏴': true, '⏵': true, '⏶': true, '⏷': true,
	'‹': true, '›': true, '«': true, '»': true,
	'❮': true, '❯': true, '➔': true, '➜': true,
}

// isUsableName reports whether a trimmed candidate string can stand as a
// character name: longer than one rune and not made of arrows/whitespace.
// The length check also rejects lone arrow glyphs; a genuine one-character
// villain name would be misclassified here, a known limitation of the
// source wiki's markup.
func isUsableName(s string) bool {
	if len([]rune(s)) <= 1 {
		return false
	}

	return !isArrowOnly(s)
}

func isArrowOnly(s string) bool {
	seen := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		if !arrowGlyphs[r] {
			return false
		}
		seen = true
	}

	return seen
}

// trimArrows strips leading and trailing arrow glyphs left over when a
// navigation link sits next to plain item text.
func trimArrows(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return arrowGlyphs[r] || unicode.IsSpace(r)
	})
}

// isSeeLink matches "See ..." helper links pointing at footnotes or other
// pages rather than naming a character.
func isSeeLink(s string) bool {
	return strings.HasPrefix(strings.ToLower(s), "see")
}
