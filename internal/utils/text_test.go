package utils

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		s    string
		max  int
		want string
	}{
		{"hello", 10, "hello"},
		{"abcdefgh", 5, "abcde…"},
		{"abc", 0, "abc"},
		{"abc", -1, "abc"},
		{"ab🔥cd", 3, "ab…"},
		{"ab🔥cd", 6, "ab🔥…"},
	}
	for _, tc := range cases {
		if got := Truncate(tc.s, tc.max); got != tc.want {
			t.Fatalf("Truncate(%q, %d) = %q; want %q", tc.s, tc.max, got, tc.want)
		}
	}

	long := strings.Repeat("é", 1000)
	if got := Truncate(long, 511); !utf8.ValidString(got) || len(got) > 511+len("…") {
		t.Fatalf("invalid or oversized cut: %d bytes", len(got))
	}
}
