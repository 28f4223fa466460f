// Package classify decides which script category a rune belongs to and
// tallies categories over a whole string.
//
// Categories are closed inclusive Unicode ranges that never overlap, except
// that the full-width check covers the full-width ASCII block and is
// evaluated after the narrower script checks during counting.
package classify

import "github.com/baditaflorin/go_japanese_text/internal/core/domain"

// IsHiragana reports whether r is in the hiragana block U+3041..U+3096.
func IsHiragana(r rune) bool {
	return r >= 0x3041 && r <= 0x3096
}

// IsKatakana reports whether r is in the katakana block U+30A1..U+30F6.
func IsKatakana(r rune) bool {
	return r >= 0x30A1 && r <= 0x30F6
}

// IsHalfWidthKatakana reports whether r is in the half-width katakana block
// U+FF61..U+FF9F.
func IsHalfWidthKatakana(r rune) bool {
	return r >= 0xFF61 && r <= 0xFF9F
}

// IsKanji reports whether r is a CJK unified ideograph in the basic plane,
// U+4E00..U+9FFF.
func IsKanji(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FFF
}

// IsFullWidth reports whether r is a full-width ASCII variant
// (U+FF01..U+FF5E) or the ideographic space U+3000.
func IsFullWidth(r rune) bool {
	return (r >= 0xFF01 && r <= 0xFF5E) || r == 0x3000
}

// Count scans text once and tallies each rune into exactly one bucket.
// The checks run in priority order: the script ranges first, then the broad
// ASCII test (any rune below 0x80), then full-width, then the fallback
// bucket. The bucket sum always equals the rune count of text.
func Count(text string) domain.CharacterTypes {
	var counts domain.CharacterTypes
	for _, r := range text {
		switch {
		case IsHiragana(r):
			counts.Hiragana++
		case IsKatakana(r):
			counts.Katakana++
		case IsHalfWidthKatakana(r):
			counts.HalfWidthKatakana++
		case IsKanji(r):
			counts.Kanji++
		case r < 0x80:
			counts.ASCII++
		case IsFullWidth(r):
			counts.FullWidth++
		default:
			counts.Other++
		}
	}
	return counts
}
