// Package whitespace collapses all whitespace, including the ideographic
// space, down to single ASCII spaces.
package whitespace

import (
	"strings"
	"unicode"
)

const ideographicSpace = 0x3000

// Normalize maps every whitespace rune to an ASCII space, then collapses
// runs and trims the ends, leaving single-space-separated tokens.
// unicode.IsSpace already covers U+3000; the explicit check keeps the
// contract visible.
func Normalize(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if unicode.IsSpace(r) || r == ideographicSpace {
			sb.WriteRune(' ')
		} else {
			sb.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}
