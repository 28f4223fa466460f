// Package normalizer provides ports.Normalizer strategies over the core
// transformations, plus optimized and Unicode-standard alternatives.
package normalizer

import (
	"github.com/baditaflorin/go_japanese_text/internal/core/kana"
	"github.com/baditaflorin/go_japanese_text/internal/core/whitespace"
	"github.com/baditaflorin/go_japanese_text/internal/core/width"
	"github.com/baditaflorin/go_japanese_text/internal/ports"
)

// funcStep adapts a plain transformation function to ports.Step.
type funcStep struct {
	name string
	fn   func(string) string
}

func (s funcStep) Name() string { return s.name }

func (s funcStep) Normalize(text string) string { return s.fn(text) }

// NewStep wraps a transformation function as a named step.
func NewStep(name string, fn func(string) string) ports.Step {
	return funcStep{name: name, fn: fn}
}

// StepType identifies a built-in normalization step.
type StepType int

const (
	// HalfWidthStep converts full-width ASCII variants to half-width.
	HalfWidthStep StepType = iota
	// FullWidthStep converts ASCII to full-width variants.
	FullWidthStep
	// HiraganaStep transliterates katakana to hiragana.
	HiraganaStep
	// KatakanaStep transliterates hiragana to katakana.
	KatakanaStep
	// KanaFoldStep folds half-width katakana to full-width, combining
	// voicing marks.
	KanaFoldStep
	// ProlongedSoundStep unifies wave dash and full-width tilde to the
	// prolonged sound mark.
	ProlongedSoundStep
	// IterationMarkStep expands kana iteration marks.
	IterationMarkStep
	// WhitespaceStep collapses all whitespace to single ASCII spaces.
	WhitespaceStep
	// NFKCFoldStep applies Unicode NFKC compatibility folding.
	NFKCFoldStep
	// NarrowFoldStep applies Unicode narrow-width folding.
	NarrowFoldStep
	// WidenFoldStep applies Unicode wide-width folding.
	WidenFoldStep
)

// StepFactory creates the built-in normalization steps.
type StepFactory struct{}

// NewStepFactory creates a new step factory.
func NewStepFactory() *StepFactory {
	return &StepFactory{}
}

// Create creates a step of the specified type.
func (f *StepFactory) Create(stepType StepType) ports.Step {
	switch stepType {
	case HalfWidthStep:
		return NewStep("half_width", width.ToHalfWidth)
	case FullWidthStep:
		return NewStep("full_width", width.ToFullWidth)
	case HiraganaStep:
		return NewStep("hiragana", kana.ToHiragana)
	case KatakanaStep:
		return NewStep("katakana", kana.ToKatakana)
	case KanaFoldStep:
		return NewStep("kana_fold", kana.HalfWidthToFullWidth)
	case ProlongedSoundStep:
		return NewStep("prolonged_sound", kana.NormalizeProlongedSound)
	case IterationMarkStep:
		return NewStep("iteration_marks", kana.ExpandIterationMarks)
	case NFKCFoldStep:
		return NewNFKCFolder()
	case NarrowFoldStep:
		return NewNarrowFolder()
	case WidenFoldStep:
		return NewWidenFolder()
	default:
		return NewStep("whitespace", whitespace.Normalize)
	}
}
