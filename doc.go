// Package japanesetext normalizes Japanese text by converting between
// character-width and script variants: full-width/half-width ASCII,
// katakana/hiragana, half-width/full-width katakana, prolonged-sound marks
// and iteration marks, with classification predicates and per-category
// counting.
//
// Every function here is pure and total: output depends only on input,
// nothing is shared between calls, and characters outside the mapped ranges
// pass through unchanged. Callers may use the package concurrently without
// coordination.
//
//	japanesetext.ToHalfWidth("ＡＢＣ１２３")                  // "ABC123"
//	japanesetext.ToHiragana("カタカナ")                       // "かたかな"
//	japanesetext.HalfWidthKatakanaToFullWidth("ｶﾞｷﾞｸﾞ")      // "ガギグ"
//
// For configurable multi-step normalization with logging, see pkg/pipeline.
package japanesetext
