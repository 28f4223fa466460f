package classify

import "testing"

func TestPredicates(t *testing.T) {
	tests := []struct {
		name string
		fn   func(rune) bool
		yes  []rune
		no   []rune
	}{
		{"IsHiragana", IsHiragana, []rune{'あ', 'ん', 'ぁ', 'ゖ'}, []rune{'ア', 'A', '漢', 'ゝ'}},
		{"IsKatakana", IsKatakana, []rune{'ア', 'ン', 'ァ', 'ヶ'}, []rune{'あ', 'A', 'ｱ', 'ー'}},
		{"IsHalfWidthKatakana", IsHalfWidthKatakana, []rune{'ｱ', 'ﾝ', '｡', 'ﾟ'}, []rune{'ア', 'A', 'あ'}},
		{"IsKanji", IsKanji, []rune{'漢', '字', '一'}, []rune{'あ', 'ア', 'A'}},
		{"IsFullWidth", IsFullWidth, []rune{'Ａ', '１', '　'}, []rune{'A', '1', ' ', 'あ'}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, r := range tc.yes {
				if !tc.fn(r) {
					t.Errorf("%s(%q) = false, want true", tc.name, r)
				}
			}
			for _, r := range tc.no {
				if tc.fn(r) {
					t.Errorf("%s(%q) = true, want false", tc.name, r)
				}
			}
		})
	}
}

// The four script predicates are pairwise exclusive over the whole BMP.
func TestPredicatesExclusive(t *testing.T) {
	for r := rune(0); r <= 0xFFFF; r++ {
		n := 0
		if IsHiragana(r) {
			n++
		}
		if IsKatakana(r) {
			n++
		}
		if IsHalfWidthKatakana(r) {
			n++
		}
		if IsKanji(r) {
			n++
		}
		if n > 1 {
			t.Fatalf("rune %U matches %d script predicates", r, n)
		}
	}
}

func TestCount(t *testing.T) {
	counts := Count("あア漢ABC123ｱｲｳ")
	if counts.Hiragana != 1 {
		t.Errorf("hiragana = %d, want 1", counts.Hiragana)
	}
	if counts.Katakana != 1 {
		t.Errorf("katakana = %d, want 1", counts.Katakana)
	}
	if counts.Kanji != 1 {
		t.Errorf("kanji = %d, want 1", counts.Kanji)
	}
	if counts.ASCII != 6 {
		t.Errorf("ascii = %d, want 6", counts.ASCII)
	}
	if counts.HalfWidthKatakana != 3 {
		t.Errorf("half-width katakana = %d, want 3", counts.HalfWidthKatakana)
	}
}

func TestCountBuckets(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty", ""},
		{"Mixed scripts", "あいうアイウ漢字ABC123ｱｲｳ"},
		{"Full-width and other", "Ａ１　、。😀"},
		{"Whitespace", " \t\n　"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			counts := Count(tc.input)
			if got, want := counts.Total(), len([]rune(tc.input)); got != want {
				t.Errorf("bucket sum = %d, want rune count %d", got, want)
			}
		})
	}
}

// CJK punctuation sits outside every named range and must land in Other.
func TestCountFallbackBucket(t *testing.T) {
	counts := Count("、。ゝ")
	if counts.Other != 3 {
		t.Errorf("other = %d, want 3 (counts: %+v)", counts.Other, counts)
	}
}
