package kana

import "strings"

// Kana iteration marks. The plain marks repeat the preceding rune verbatim,
// the voiced marks repeat it with a dakuten applied.
const (
	hiraganaIterationMark       = 'ゝ' // U+309D
	hiraganaVoicedIterationMark = 'ゞ' // U+309E
	katakanaIterationMark       = 'ヽ' // U+30FD
	katakanaVoicedIterationMark = 'ヾ' // U+30FE
)

// dakuten maps the ka/sa/ta/ha-row bases, hiragana and katakana, to their
// voiced forms.
var dakuten = map[rune]rune{
	// hiragana
	'か': 'が', 'き': 'ぎ', 'く': 'ぐ', 'け': 'げ', 'こ': 'ご',
	'さ': 'ざ', 'し': 'じ', 'す': 'ず', 'せ': 'ぜ', 'そ': 'ぞ',
	'た': 'だ', 'ち': 'ぢ', 'つ': 'づ', 'て': 'で', 'と': 'ど',
	'は': 'ば', 'ひ': 'び', 'ふ': 'ぶ', 'へ': 'べ', 'ほ': 'ぼ',
	// katakana
	'カ': 'ガ', 'キ': 'ギ', 'ク': 'グ', 'ケ': 'ゲ', 'コ': 'ゴ',
	'サ': 'ザ', 'シ': 'ジ', 'ス': 'ズ', 'セ': 'ゼ', 'ソ': 'ゾ',
	'タ': 'ダ', 'チ': 'ヂ', 'ツ': 'ヅ', 'テ': 'デ', 'ト': 'ド',
	'ハ': 'バ', 'ヒ': 'ビ', 'フ': 'ブ', 'ヘ': 'ベ', 'ホ': 'ボ',
}

// AddDakuten returns the voiced form of r, or r itself when no voiced form
// exists.
func AddDakuten(r rune) rune {
	if v, ok := dakuten[r]; ok {
		return v
	}
	return r
}

// ExpandIterationMarks replaces kana iteration marks with the rune they
// repeat. The voiced marks apply AddDakuten to the preceding rune; a mark at
// position 0 has nothing to look back on and passes through unchanged. The
// lookbehind reads the original input, not the expanded output, so the scan
// is over a materialized rune slice.
func ExpandIterationMarks(text string) string {
	runes := []rune(text)
	var sb strings.Builder
	sb.Grow(len(text))

	for i, r := range runes {
		switch r {
		case hiraganaIterationMark, katakanaIterationMark:
			if i > 0 {
				sb.WriteRune(runes[i-1])
			} else {
				sb.WriteRune(r)
			}
		case hiraganaVoicedIterationMark, katakanaVoicedIterationMark:
			if i > 0 {
				sb.WriteRune(AddDakuten(runes[i-1]))
			} else {
				sb.WriteRune(r)
			}
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
