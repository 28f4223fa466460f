package japanesetext

import "github.com/baditaflorin/go_japanese_text/internal/core/width"

// ToHalfWidth converts full-width ASCII variants (U+FF01..U+FF5E) and the
// ideographic space U+3000 to their half-width equivalents.
func ToHalfWidth(text string) string {
	return width.ToHalfWidth(text)
}

// ToFullWidth converts printable ASCII (U+0021..U+007E) and the ASCII space
// to their full-width equivalents.
func ToFullWidth(text string) string {
	return width.ToFullWidth(text)
}
