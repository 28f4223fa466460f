package width

import "testing"

func TestToHalfWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Letters", "ＡＢＣ", "ABC"},
		{"Digits", "１２３", "123"},
		{"Punctuation", "！＠＃", "!@#"},
		{"Ideographic space", "　", " "},
		{"Sentence", "Ｈｅｌｌｏ　Ｗｏｒｌｄ", "Hello World"},
		{"Mixed content passes through", "ＡＢＣあいう", "ABCあいう"},
		{"Empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ToHalfWidth(tc.input); got != tc.want {
				t.Errorf("ToHalfWidth(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestToFullWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Letters", "ABC", "ＡＢＣ"},
		{"Digits", "123", "１２３"},
		{"Punctuation", "!@#", "！＠＃"},
		{"Space", " ", "　"},
		{"Sentence", "Hello World 123", "Ｈｅｌｌｏ　Ｗｏｒｌｄ　１２３"},
		{"Mixed content passes through", "ABCあいう", "ＡＢＣあいう"},
		{"Empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ToFullWidth(tc.input); got != tc.want {
				t.Errorf("ToFullWidth(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

// Converting to full width and back must reproduce every printable ASCII rune.
func TestRoundTrip(t *testing.T) {
	for r := rune(0x21); r <= 0x7E; r++ {
		s := string(r)
		if got := ToHalfWidth(ToFullWidth(s)); got != s {
			t.Fatalf("round trip of %q produced %q", s, got)
		}
	}
	for r := rune(fullFirst); r <= fullLast; r++ {
		s := string(r)
		if got := ToFullWidth(ToHalfWidth(s)); got != s {
			t.Fatalf("round trip of %q produced %q", s, got)
		}
	}
}

// Converting already-converted text again must be a no-op.
func TestIdempotent(t *testing.T) {
	half := ToHalfWidth("ＡＢＣ１２３　ｘｙｚ")
	if got := ToHalfWidth(half); got != half {
		t.Errorf("ToHalfWidth not idempotent: %q -> %q", half, got)
	}
	full := ToFullWidth("ABC123 xyz")
	if got := ToFullWidth(full); got != full {
		t.Errorf("ToFullWidth not idempotent: %q -> %q", full, got)
	}
}
