package japanesetext

import "github.com/baditaflorin/go_japanese_text/internal/core/whitespace"

// NormalizeWhitespace maps every whitespace rune, including the ideographic
// space, to an ASCII space, then collapses runs and trims the ends.
func NormalizeWhitespace(text string) string {
	return whitespace.Normalize(text)
}
