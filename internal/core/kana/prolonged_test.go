package kana

import "testing"

func TestNormalizeProlongedSound(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Already normalized", "コーヒー", "コーヒー"},
		{"Wave dash", "コ〜ヒ〜", "コーヒー"},
		{"Full-width tilde", "コ～ヒ～", "コーヒー"},
		{"No targets", "ラーメン", "ラーメン"},
		{"ASCII tilde untouched", "a~b", "a~b"},
		{"Empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeProlongedSound(tc.input); got != tc.want {
				t.Errorf("NormalizeProlongedSound(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
