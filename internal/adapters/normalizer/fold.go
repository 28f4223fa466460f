package normalizer

import (
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"

	"github.com/baditaflorin/go_japanese_text/internal/ports"
)

// The folders below delegate to golang.org/x/text instead of the closed
// tables in internal/core. They follow the full Unicode folding rules, which
// cover more code points than the exact contract (NFKC also decomposes
// ligatures, circled characters and the like), so they are offered as
// separate strategies rather than replacements.

// NFKCFolder applies Unicode NFKC compatibility folding. Among other things
// this narrows full-width ASCII and composes half-width katakana with their
// voicing marks.
type NFKCFolder struct{}

// NewNFKCFolder creates a new NFKC folding step.
func NewNFKCFolder() ports.Step {
	return NFKCFolder{}
}

// Name implements ports.Step.
func (NFKCFolder) Name() string { return "nfkc_fold" }

// Normalize returns text in NFKC form.
func (NFKCFolder) Normalize(text string) string {
	return norm.NFKC.String(text)
}

// NarrowFolder maps runes to their narrow (half-width) form where one exists.
type NarrowFolder struct{}

// NewNarrowFolder creates a new narrow-width folding step.
func NewNarrowFolder() ports.Step {
	return NarrowFolder{}
}

// Name implements ports.Step.
func (NarrowFolder) Name() string { return "narrow_fold" }

// Normalize returns text with wide variants narrowed.
func (NarrowFolder) Normalize(text string) string {
	return width.Narrow.String(text)
}

// WidenFolder maps runes to their wide (full-width) form where one exists.
type WidenFolder struct{}

// NewWidenFolder creates a new wide-width folding step.
func NewWidenFolder() ports.Step {
	return WidenFolder{}
}

// Name implements ports.Step.
func (WidenFolder) Name() string { return "widen_fold" }

// Normalize returns text with narrow variants widened.
func (WidenFolder) Normalize(text string) string {
	return width.Widen.String(text)
}
