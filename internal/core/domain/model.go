package domain

// CharacterTypes holds per-category rune counts for a single input string.
// Every rune lands in exactly one bucket, so the bucket sum equals the
// number of runes scanned.
type CharacterTypes struct {
	Hiragana          int
	Katakana          int
	HalfWidthKatakana int
	Kanji             int
	ASCII             int
	FullWidth         int
	Other             int
}

// Total returns the sum of all buckets.
func (ct CharacterTypes) Total() int {
	return ct.Hiragana + ct.Katakana + ct.HalfWidthKatakana +
		ct.Kanji + ct.ASCII + ct.FullWidth + ct.Other
}

// Result holds the outcome of a pipeline normalization.
type Result struct {
	// Input is the text as received.
	Input string
	// Output is the text after all steps were applied.
	Output string
	// Steps lists the names of the applied steps, in order.
	Steps []string
	// Before and After are the character-type tallies of Input and Output.
	Before CharacterTypes
	After  CharacterTypes
	// Details holds additional diagnostic information.
	Details map[string]interface{}
}

// Analysis holds the outcome of a script-composition analysis.
type Analysis struct {
	Counts CharacterTypes
	// Total is the number of runes scanned.
	Total int
	// Dominant names the bucket with the highest count, or "" for empty input.
	Dominant string
	Details  map[string]interface{}
}
