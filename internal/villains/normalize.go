package villains

import (
	"regexp"
	"strings"
)

var (
	parenRe = regexp.MustCompile(`\([^()]*\)`)
	spaceRe = regexp.MustCompile(`\s+`)
	slugRe  = regexp.MustCompile(`[^a-z0-9]+`)
)

// Normalize collapses raw name variants to one identity key: parenthesized
// spans (real-name annotations like "(Norman Osborn)") are deleted, then
// trailing punctuation, then whitespace runs. Parenthetical removal must
// happen before punctuation stripping so a comma exposed by a removed
// trailing "(...)" is still stripped.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)

	for parenRe.MatchString(s) {
		s = parenRe.ReplaceAllString(s, "")
	}

	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, ",;:.")
	s = strings.TrimSpace(s)

	return spaceRe.ReplaceAllString(s, " ")
}

// Slugify derives the display/lookup id from a normalized name. Pure and
// stable; distinct names may in theory collide on slug, which is why the
// slug is never the identity key.
func Slugify(name string) string {
	s := slugRe.ReplaceAllString(strings.ToLower(name), "-")

	return strings.Trim(s, "-")
}
