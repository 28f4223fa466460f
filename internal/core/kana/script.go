// Package kana implements conversions between the Japanese kana scripts:
// katakana/hiragana transliteration, half-width katakana folding with
// dakuten and handakuten combination, prolonged-sound normalization, and
// iteration-mark expansion.
package kana

import (
	"strings"
	"unicode/utf8"
)

const (
	hiraganaFirst = 0x3041 // ぁ
	hiraganaLast  = 0x3096 // ゖ
	katakanaFirst = 0x30A1 // ァ
	katakanaLast  = 0x30F6 // ヶ

	// offset between a katakana rune and its hiragana counterpart.
	scriptOffset = katakanaFirst - hiraganaFirst
)

// shift moves r by delta, falling back to r if the result would not be a
// valid Unicode scalar value.
func shift(r, delta rune) rune {
	s := r + delta
	if !utf8.ValidRune(s) {
		return r
	}
	return s
}

// ToHiragana transliterates katakana to hiragana. Runes outside
// U+30A1..U+30F6 pass through unchanged.
func ToHiragana(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if r >= katakanaFirst && r <= katakanaLast {
			sb.WriteRune(shift(r, -scriptOffset))
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// ToKatakana transliterates hiragana to katakana. Runes outside
// U+3041..U+3096 pass through unchanged.
func ToKatakana(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if r >= hiraganaFirst && r <= hiraganaLast {
			sb.WriteRune(shift(r, scriptOffset))
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
