package grapheme

import "testing"

func TestWidth(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"é", 1},
		{"日本", 4},
	}
	for _, tc := range cases {
		if got := Width(tc.in); got != tc.want {
			t.Fatalf("Width(%q)=%d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello", 4, "hel…"},
		{"hello", 1, "…"},
		{"hello", 0, ""},
		{"ééé", 2, "é…"},
		{"日本語", 4, "日…"},
		{"e\u0301e\u0301e\u0301", 2, "e\u0301…"},
	}
	for _, tc := range cases {
		if got := Truncate(tc.in, tc.width); got != tc.want {
			t.Fatalf("Truncate(%q,%d)=%q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}

func TestFit(t *testing.T) {
	if got := Fit("ab", 4, AlignLeft); got != "ab  " {
		t.Fatalf("left fit=%q, want %q", got, "ab  ")
	}
	if got := Fit("15", 4, AlignRight); got != "  15" {
		t.Fatalf("right fit=%q, want %q", got, "  15")
	}
	if got := Fit("a\nb", 3, AlignLeft); got != "a b" {
		t.Fatalf("flattened fit=%q, want %q", got, "a b")
	}
	if got := Fit("abcdef", 3, AlignLeft); Width(got) != 3 {
		t.Fatalf("clipped fit width=%d, want 3", Width(got))
	}
	if got := Fit("x", 0, AlignLeft); got != "" {
		t.Fatalf("zero width fit=%q, want empty", got)
	}
}
