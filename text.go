package seohelper

import (
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/text/width"
)

const ellipsis = "..."

var stripPolicy = bluemonday.StrictPolicy()

// cleanText removes markup from s and trims surrounding whitespace.
// The sanitizer escapes what it keeps, so the result is unescaped again
// before it reaches the renderer.
func cleanText(s string) string {
	s = strings.TrimSpace(s)
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	return strings.TrimSpace(html.UnescapeString(stripPolicy.Sanitize(s)))
}

// runeWidth counts East Asian wide and fullwidth runes as two columns.
func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

func textWidth(s string) int {
	w := 0
	for _, r := range s {
		w += runeWidth(r)
	}
	return w
}

// truncate shortens s to at most limit display columns, ellipsis included.
// A limit of zero or less disables the limit. The second result reports
// whether s was cut.
func truncate(s string, limit int) (string, bool) {
	if limit <= 0 || textWidth(s) <= limit {
		return s, false
	}
	suffix := ellipsis
	if limit <= len(ellipsis) {
		suffix = ""
	}
	budget := limit - len(suffix)

	var sb strings.Builder
	used := 0
	for _, r := range s {
		rw := runeWidth(r)
		if used+rw > budget {
			break
		}
		sb.WriteRune(r)
		used += rw
	}
	return strings.TrimRightFunc(sb.String(), unicode.IsSpace) + suffix, true
}
