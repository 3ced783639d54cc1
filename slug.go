package daybook

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Slugify normalizes text into a URL- and filesystem-safe token: the
// text is decomposed to NFKD, runes that are not word runes (letter,
// digit, underscore), whitespace, or hyphens are dropped, the result is
// lowercased and trimmed, and every run of hyphens and whitespace
// collapses to a single hyphen. Accents fall away with their combining
// marks: "Héllo, World!" becomes "hello-world".
//
// Slugify is idempotent; its output contains only lowercase word runes
// and single hyphens.
func Slugify(text string) string {
	var kept strings.Builder
	for _, r := range norm.NFKD.String(text) {
		if isWordRune(r) || unicode.IsSpace(r) || r == '-' {
			kept.WriteRune(r)
		}
	}
	trimmed := strings.ToLower(strings.TrimSpace(kept.String()))

	var slug strings.Builder
	slug.Grow(len(trimmed))
	pending := false
	for _, r := range trimmed {
		if r == '-' || unicode.IsSpace(r) {
			pending = true
			continue
		}
		if pending {
			slug.WriteRune('-')
			pending = false
		}
		slug.WriteRune(r)
	}
	if pending {
		slug.WriteRune('-')
	}
	return slug.String()
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
