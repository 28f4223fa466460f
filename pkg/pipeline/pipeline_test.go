package pipeline

import (
	"context"
	"testing"

	"github.com/baditaflorin/go_japanese_text/internal/adapters/normalizer"
)

func TestDefaultPipeline(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Half-width katakana folded", "ｷﾞｮｳｻﾞ　ﾗｰﾒﾝ", "ギョウザ ラーメン"},
		{"Prolonged sound unified", "コ〜ヒ〜", "コーヒー"},
		{"Iteration marks expanded", "いろゝ", "いろろ"},
		{"Whitespace collapsed", "  a\t\tb  ", "a b"},
		{"Empty", "", ""},
	}

	ctx := context.Background()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := p.Normalize(ctx, tc.input)
			if result.Output != tc.want {
				t.Errorf("Normalize(%q).Output = %q, want %q", tc.input, result.Output, tc.want)
			}
			if result.Input != tc.input {
				t.Errorf("Input not preserved: %q", result.Input)
			}
			if len(result.Steps) != 4 {
				t.Errorf("expected 4 applied steps, got %v", result.Steps)
			}
		})
	}
}

func TestCustomSteps(t *testing.T) {
	p, err := New(WithSteps(normalizer.HalfWidthStep, normalizer.HiraganaStep))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	result := p.Normalize(context.Background(), "ＡＢＣカタカナ")
	if result.Output != "ABCかたかな" {
		t.Errorf("Output = %q, want %q", result.Output, "ABCかたかな")
	}
	want := []string{"half_width", "hiragana"}
	if len(result.Steps) != len(want) {
		t.Fatalf("Steps = %v, want %v", result.Steps, want)
	}
	for i, name := range want {
		if result.Steps[i] != name {
			t.Errorf("Steps[%d] = %q, want %q", i, result.Steps[i], name)
		}
	}
}

func TestTallies(t *testing.T) {
	p, err := New(WithSteps(normalizer.KanaFoldStep))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	result := p.Normalize(context.Background(), "ｶﾞｷﾞ")
	if result.Before.HalfWidthKatakana != 4 {
		t.Errorf("Before.HalfWidthKatakana = %d, want 4", result.Before.HalfWidthKatakana)
	}
	if result.After.Katakana != 2 {
		t.Errorf("After.Katakana = %d, want 2", result.After.Katakana)
	}
	if result.Before.Total() != 4 || result.After.Total() != 2 {
		t.Errorf("totals: before %d, after %d", result.Before.Total(), result.After.Total())
	}
}

func TestCancelledContext(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := p.Normalize(ctx, "ｶﾀｶﾅ")
	if result.Details["error"] != "normalization cancelled" {
		t.Errorf("expected cancellation detail, got %v", result.Details)
	}
	if result.Output != "ｶﾀｶﾅ" {
		t.Errorf("cancelled run must not transform, got %q", result.Output)
	}
	if len(result.Steps) != 0 {
		t.Errorf("cancelled run applied steps: %v", result.Steps)
	}
}

func TestOptimizedStepsMatchDefaults(t *testing.T) {
	def, err := New()
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	opt, err := New(
		WithPooledKanaFold(),
		WithSteps(normalizer.ProlongedSoundStep, normalizer.IterationMarkStep),
		WithOptimizedWhitespace(),
	)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	ctx := context.Background()
	inputs := []string{
		"ｷﾞｮｳｻﾞ　ﾗｰﾒﾝ",
		"コ〜ヒ〜 と ﾊﾟﾝ",
		"いろゝ  かゞ",
	}
	for _, in := range inputs {
		want := def.Normalize(ctx, in).Output
		if got := opt.Normalize(ctx, in).Output; got != want {
			t.Errorf("optimized pipeline on %q = %q, default gives %q", in, got, want)
		}
	}
}
