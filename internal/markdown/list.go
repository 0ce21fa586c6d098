// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import "strings"

// Items returns the content of every bullet line in body, in order. A bullet
// line starts (after indentation) with "-" or "*" followed by whitespace, or
// with a "[ ]" checkbox. The marker, an optional checkbox after it, and the
// surrounding whitespace are stripped; empty results are dropped.
func Items(body string) []string {
	items := []string{}
	for _, line := range SplitLines(body) {
		item, ok := bullet(line)
		if !ok || item == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}

func bullet(line string) (string, bool) {
	s := strings.TrimSpace(line)
	switch {
	case s == "-" || s == "*":
		return "", true
	case strings.HasPrefix(s, "- "), strings.HasPrefix(s, "-\t"),
		strings.HasPrefix(s, "* "), strings.HasPrefix(s, "*\t"):
		s = strings.TrimSpace(s[1:])
	case strings.HasPrefix(s, "[ ]"):
	default:
		return "", false
	}
	for _, box := range []string{"[ ]", "[x]", "[X]"} {
		if strings.HasPrefix(s, box) {
			s = strings.TrimSpace(s[len(box):])
			break
		}
	}
	return s, true
}

// SplitList splits a comma-separated value, trimming entries and dropping
// empty ones.
func SplitList(value string) []string {
	out := []string{}
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
