package kana

import "strings"

// Half-width voicing marks from the half-width katakana block.
const (
	halfVoicedMark     = 'ﾞ' // U+FF9E
	halfSemiVoicedMark = 'ﾟ' // U+FF9F
)

// voiced maps a half-width base followed by ﾞ to its precomposed voiced
// glyph: the ka/sa/ta/ha rows plus ウ → ヴ.
var voiced = map[rune]rune{
	'ｶ': 'ガ', 'ｷ': 'ギ', 'ｸ': 'グ', 'ｹ': 'ゲ', 'ｺ': 'ゴ',
	'ｻ': 'ザ', 'ｼ': 'ジ', 'ｽ': 'ズ', 'ｾ': 'ゼ', 'ｿ': 'ゾ',
	'ﾀ': 'ダ', 'ﾁ': 'ヂ', 'ﾂ': 'ヅ', 'ﾃ': 'デ', 'ﾄ': 'ド',
	'ﾊ': 'バ', 'ﾋ': 'ビ', 'ﾌ': 'ブ', 'ﾍ': 'ベ', 'ﾎ': 'ボ',
	'ｳ': 'ヴ',
}

// semiVoiced maps a half-width ha-row base followed by ﾟ to its precomposed
// half-voiced glyph.
var semiVoiced = map[rune]rune{
	'ﾊ': 'パ', 'ﾋ': 'ピ', 'ﾌ': 'プ', 'ﾍ': 'ペ', 'ﾎ': 'ポ',
}

// fullWidth is the one-to-one map for the rest of the half-width katakana
// block, including the four half-width punctuation marks and the middle dot.
var fullWidth = map[rune]rune{
	'ｦ': 'ヲ', 'ｧ': 'ァ', 'ｨ': 'ィ', 'ｩ': 'ゥ', 'ｪ': 'ェ', 'ｫ': 'ォ',
	'ｬ': 'ャ', 'ｭ': 'ュ', 'ｮ': 'ョ', 'ｯ': 'ッ', 'ｰ': 'ー',
	'ｱ': 'ア', 'ｲ': 'イ', 'ｳ': 'ウ', 'ｴ': 'エ', 'ｵ': 'オ',
	'ｶ': 'カ', 'ｷ': 'キ', 'ｸ': 'ク', 'ｹ': 'ケ', 'ｺ': 'コ',
	'ｻ': 'サ', 'ｼ': 'シ', 'ｽ': 'ス', 'ｾ': 'セ', 'ｿ': 'ソ',
	'ﾀ': 'タ', 'ﾁ': 'チ', 'ﾂ': 'ツ', 'ﾃ': 'テ', 'ﾄ': 'ト',
	'ﾅ': 'ナ', 'ﾆ': 'ニ', 'ﾇ': 'ヌ', 'ﾈ': 'ネ', 'ﾉ': 'ノ',
	'ﾊ': 'ハ', 'ﾋ': 'ヒ', 'ﾌ': 'フ', 'ﾍ': 'ヘ', 'ﾎ': 'ホ',
	'ﾏ': 'マ', 'ﾐ': 'ミ', 'ﾑ': 'ム', 'ﾒ': 'メ', 'ﾓ': 'モ',
	'ﾔ': 'ヤ', 'ﾕ': 'ユ', 'ﾖ': 'ヨ',
	'ﾗ': 'ラ', 'ﾘ': 'リ', 'ﾙ': 'ル', 'ﾚ': 'レ', 'ﾛ': 'ロ',
	'ﾜ': 'ワ', 'ﾝ': 'ン',
	'｡': '。', '｢': '「', '｣': '」', '､': '、', '･': '・',
}

// VoicedForm returns the precomposed glyph for a half-width base followed
// by the voiced-sound mark ﾞ.
func VoicedForm(r rune) (rune, bool) {
	v, ok := voiced[r]
	return v, ok
}

// SemiVoicedForm returns the precomposed glyph for a half-width base
// followed by the semi-voiced-sound mark ﾟ.
func SemiVoicedForm(r rune) (rune, bool) {
	v, ok := semiVoiced[r]
	return v, ok
}

// FullWidthForm returns the one-to-one full-width equivalent of a
// half-width katakana rune, or r itself when the table has no entry.
func FullWidthForm(r rune) rune {
	if f, ok := fullWidth[r]; ok {
		return f
	}
	return r
}

// HalfWidthToFullWidth converts half-width katakana to full-width katakana.
// A base rune followed by a half-width voicing mark is emitted as the single
// precomposed glyph, consuming both runes. Runes with no table entry pass
// through unchanged. The scan needs one rune of lookahead, so the input is
// materialized as a rune slice.
func HalfWidthToFullWidth(text string) string {
	runes := []rune(text)
	var sb strings.Builder
	sb.Grow(len(text))

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if i+1 < len(runes) {
			switch runes[i+1] {
			case halfVoicedMark:
				if v, ok := voiced[r]; ok {
					sb.WriteRune(v)
					i++
					continue
				}
			case halfSemiVoicedMark:
				if v, ok := semiVoiced[r]; ok {
					sb.WriteRune(v)
					i++
					continue
				}
			}
		}
		sb.WriteRune(FullWidthForm(r))
	}
	return sb.String()
}
