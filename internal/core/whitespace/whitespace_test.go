package whitespace

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Ideographic space", "Hello　World", "Hello World"},
		{"Tabs", "A\t\t\tB", "A B"},
		{"Mixed runs", "Hello　　World\t\tTest", "Hello World Test"},
		{"Leading and trailing", "  Multiple   Spaces  ", "Multiple Spaces"},
		{"Newlines", "a\nb\r\nc", "a b c"},
		{"Only whitespace", " \t　\n", ""},
		{"Empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.input); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
