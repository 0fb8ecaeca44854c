package render

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// latinFold decomposes accented characters and strips the combining
// marks, so "José" measures and draws as "Jose" would when the base
// letter itself is outside the embedded fonts' repertoire.
var latinFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldLatin maps arbitrary input onto the Latin repertoire covered by
// the embedded font metrics. Runes that survive folding but still
// fall outside Latin-1 are replaced so measured widths stay truthful.
func foldLatin(s string) string {
	folded, _, err := transform.String(latinFold, s)
	if err != nil {
		folded = s
	}
	return strings.Map(func(r rune) rune {
		if r > 0xFF {
			return '?'
		}
		return r
	}, folded)
}
