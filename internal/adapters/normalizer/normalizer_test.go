package normalizer

import (
	"testing"

	"github.com/baditaflorin/go_japanese_text/internal/core/kana"
)

var samples = []string{
	"",
	"Hello　　World\t\tTest",
	"  Multiple   Spaces  ",
	"ｷﾞｮｳｻﾞとﾊﾟﾝ",
	"ｶﾞｷﾞｸﾞｹﾞｺﾞ ﾊﾟﾋﾟﾌﾟﾍﾟﾎﾟ",
	"漢字 と かな\nと ASCII",
	"　　",
}

// The optimized whitespace normalizer must agree with the default one on
// every input.
func TestOptimizedWhitespaceEquivalence(t *testing.T) {
	def := NewDefaultWhitespace()
	opt := NewOptimizedWhitespace()

	for _, s := range samples {
		want := def.Normalize(s)
		if got := opt.Normalize(s); got != want {
			t.Errorf("optimized Normalize(%q) = %q, default gives %q", s, got, want)
		}
	}
}

// The pooled kana folder must agree with the core transform on every input.
func TestPooledKanaFolderEquivalence(t *testing.T) {
	folder := NewPooledKanaFolder()

	for _, s := range samples {
		want := kana.HalfWidthToFullWidth(s)
		if got := folder.Normalize(s); got != want {
			t.Errorf("pooled Normalize(%q) = %q, core gives %q", s, got, want)
		}
	}
}

func TestStepFactoryNames(t *testing.T) {
	factory := NewStepFactory()

	tests := []struct {
		stepType StepType
		name     string
	}{
		{HalfWidthStep, "half_width"},
		{FullWidthStep, "full_width"},
		{HiraganaStep, "hiragana"},
		{KatakanaStep, "katakana"},
		{KanaFoldStep, "kana_fold"},
		{ProlongedSoundStep, "prolonged_sound"},
		{IterationMarkStep, "iteration_marks"},
		{WhitespaceStep, "whitespace"},
		{NFKCFoldStep, "nfkc_fold"},
		{NarrowFoldStep, "narrow_fold"},
		{WidenFoldStep, "widen_fold"},
	}

	for _, tc := range tests {
		step := factory.Create(tc.stepType)
		if step.Name() != tc.name {
			t.Errorf("Create(%d).Name() = %q, want %q", tc.stepType, step.Name(), tc.name)
		}
	}
}

func TestFactorySteps(t *testing.T) {
	factory := NewStepFactory()

	tests := []struct {
		stepType StepType
		input    string
		want     string
	}{
		{HalfWidthStep, "ＡＢＣ１２３", "ABC123"},
		{FullWidthStep, "ABC", "ＡＢＣ"},
		{HiraganaStep, "カタカナ", "かたかな"},
		{KatakanaStep, "こんにちは", "コンニチハ"},
		{KanaFoldStep, "ｶﾞｷﾞｸﾞｹﾞｺﾞ", "ガギグゲゴ"},
		{ProlongedSoundStep, "コ〜ヒ〜", "コーヒー"},
		{IterationMarkStep, "いろゝ", "いろろ"},
		{WhitespaceStep, "a　 b", "a b"},
	}

	for _, tc := range tests {
		step := factory.Create(tc.stepType)
		if got := step.Normalize(tc.input); got != tc.want {
			t.Errorf("%s.Normalize(%q) = %q, want %q", step.Name(), tc.input, got, tc.want)
		}
	}
}

// Sanity checks against the x/text behavior the folders rely on.
func TestFolders(t *testing.T) {
	if got := NewNFKCFolder().Normalize("ＡＢＣ"); got != "ABC" {
		t.Errorf("NFKC fold of full-width letters = %q, want %q", got, "ABC")
	}
	if got := NewNarrowFolder().Normalize("アイウ"); got != "ｱｲｳ" {
		t.Errorf("narrow fold = %q, want %q", got, "ｱｲｳ")
	}
	if got := NewWidenFolder().Normalize("ｱｲｳ"); got != "アイウ" {
		t.Errorf("widen fold = %q, want %q", got, "アイウ")
	}
}
