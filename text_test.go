package seohelper

import "testing"

func Test_Truncate(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		limit int
		want  string
		cut   bool
	}{
		{"fits", "hello", 5, "hello", false},
		{"disabled", "hello", 0, "hello", false},
		{"ascii", "abcdefghij", 8, "abcde...", true},
		{"trailing space before ellipsis", "abcd efgh", 8, "abcd...", true},
		{"wide runes count double", "日本語のタイトル", 9, "日本語...", true},
		{"tiny limit has no ellipsis", "abcdef", 2, "ab", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, cut := truncate(tc.in, tc.limit)
			if got != tc.want || cut != tc.cut {
				t.Fatalf("truncate(%q, %d) = %q, %v; want %q, %v", tc.in, tc.limit, got, cut, tc.want, tc.cut)
			}
			if tc.limit > 0 && textWidth(got) > tc.limit {
				t.Fatalf("width %d exceeds limit %d", textWidth(got), tc.limit)
			}
		})
	}
}

func Test_CleanText(t *testing.T) {
	cases := map[string]string{
		"  plain  ":                   "plain",
		"<strong>bold</strong> move":  "bold move",
		"fish &amp; chips":            "fish & chips",
		"<script>alert(1)</script>ok": "ok",
		"":                            "",
	}
	for in, want := range cases {
		if got := cleanText(in); got != want {
			t.Errorf("cleanText(%q) = %q, want %q", in, got, want)
		}
	}
}
