package search

import "testing"

func TestIsIATA(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"PAR", true},
		{"par", true},
		{"lOn", true},
		{"pa", false},
		{"pari", false},
		{"p4r", false},
		{"", false},
		{"p r", false},
	}

	for _, tc := range cases {
		if got := IsIATA(tc.in); got != tc.want {
			t.Errorf("IsIATA(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
