// Package slug derives URL slugs from display names. Derivation is lossy
// ASCII folding; it happens once at creation time and is never re-run when
// the name changes.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransform = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// Make lowercases, strips accents and non-ASCII, deletes everything that is
// not alphanumeric, underscore, hyphen or whitespace, then collapses
// whitespace and hyphen runs into single hyphens.
// "AI & Robotics 💡" becomes "ai-robotics".
func Make(name string) string {
	folded, _, err := transform.String(foldTransform, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
		case r == '-' || unicode.IsSpace(r):
			pendingSep = true
		}
		// anything else is dropped without acting as a separator
	}
	return b.String()
}
