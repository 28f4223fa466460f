package kana

import "strings"

const (
	waveDash          = 0x301C // 〜
	fullWidthTilde    = 0xFF5E // ～
	prolongedSoundBar = 0x30FC // ー
)

// NormalizeProlongedSound maps the wave dash and the full-width tilde to the
// katakana-hiragana prolonged sound mark. All other runes pass through.
func NormalizeProlongedSound(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if r == waveDash || r == fullWidthTilde {
			sb.WriteRune(prolongedSoundBar)
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
