package japanesetext

import "github.com/baditaflorin/go_japanese_text/internal/core/kana"

// ToHiragana transliterates katakana (U+30A1..U+30F6) to hiragana.
func ToHiragana(text string) string {
	return kana.ToHiragana(text)
}

// ToKatakana transliterates hiragana (U+3041..U+3096) to katakana.
func ToKatakana(text string) string {
	return kana.ToKatakana(text)
}

// HalfWidthKatakanaToFullWidth converts half-width katakana to full-width
// katakana, combining dakuten and handakuten marks into precomposed glyphs
// (ｶ+ﾞ → ガ, ﾊ+ﾟ → パ, ｳ+ﾞ → ヴ).
func HalfWidthKatakanaToFullWidth(text string) string {
	return kana.HalfWidthToFullWidth(text)
}

// NormalizeProlongedSound unifies the wave dash (U+301C) and the full-width
// tilde (U+FF5E) to the prolonged sound mark ー.
func NormalizeProlongedSound(text string) string {
	return kana.NormalizeProlongedSound(text)
}

// ExpandIterationMarks replaces the kana iteration marks ゝゞヽヾ with the
// character they repeat, applying a dakuten for the voiced marks. A mark at
// the start of the text passes through unchanged.
func ExpandIterationMarks(text string) string {
	return kana.ExpandIterationMarks(text)
}
