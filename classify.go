package japanesetext

import (
	"github.com/baditaflorin/go_japanese_text/internal/core/classify"
	"github.com/baditaflorin/go_japanese_text/internal/core/domain"
)

// CharacterTypes holds per-category rune counts for one input string.
type CharacterTypes = domain.CharacterTypes

// IsHiragana reports whether r is hiragana (U+3041..U+3096).
func IsHiragana(r rune) bool { return classify.IsHiragana(r) }

// IsKatakana reports whether r is katakana (U+30A1..U+30F6).
func IsKatakana(r rune) bool { return classify.IsKatakana(r) }

// IsHalfWidthKatakana reports whether r is half-width katakana (U+FF61..U+FF9F).
func IsHalfWidthKatakana(r rune) bool { return classify.IsHalfWidthKatakana(r) }

// IsKanji reports whether r is a CJK unified ideograph (U+4E00..U+9FFF).
func IsKanji(r rune) bool { return classify.IsKanji(r) }

// IsFullWidth reports whether r is a full-width ASCII variant
// (U+FF01..U+FF5E) or the ideographic space.
func IsFullWidth(r rune) bool { return classify.IsFullWidth(r) }

// CountCharacterTypes scans text once and tallies each rune into exactly
// one category. The bucket sum equals the rune count of text.
func CountCharacterTypes(text string) CharacterTypes {
	return classify.Count(text)
}
