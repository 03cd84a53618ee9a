package utils

import "testing"

func TestAtoiDefault(t *testing.T) {
	cases := []struct {
		s    string
		def  int
		want int
	}{
		{"", 10, 10},
		{"   ", 10, 10},
		{"42", 0, 42},
		{" 42 ", 7, 42},
		{"-13", 1, -13},
		{"0012", 99, 12},
		{"x", 5, 5},
		{"4x", 5, 5},
		// overflow
		{"999999999999999999999999", -1, -1},
	}

	for _, tc := range cases {
		if got := AtoiDefault(tc.s, tc.def); got != tc.want {
			t.Fatalf("AtoiDefault(%q, %d) = %d; want %d", tc.s, tc.def, got, tc.want)
		}
	}
}

func TestClampLimit(t *testing.T) {
	cases := []struct{ limit, max, want int }{
		{0, 20, 20},
		{-5, 20, 20},
		{1, 20, 1},
		{20, 20, 20},
		{21, 20, 20},
		{7, 50, 7},
	}
	for _, tc := range cases {
		if got := ClampLimit(tc.limit, tc.max); got != tc.want {
			t.Fatalf("ClampLimit(%d, %d) = %d; want %d", tc.limit, tc.max, got, tc.want)
		}
	}
}
