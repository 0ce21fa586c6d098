// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import "strings"

// Section returns the body of the first heading whose text equals name
// exactly. The body runs up to the next heading of the same or a shallower
// level, or the end of text, and is trimmed of surrounding whitespace.
// The second result is false when no such heading exists.
func Section(text, name string) (string, bool) {
	lines := SplitLines(text)
	headings := Headings(text)

	for i, h := range headings {
		if h.Text != name {
			continue
		}
		end := len(lines)
		for _, next := range headings[i+1:] {
			if next.Level <= h.Level {
				end = next.Line
				break
			}
		}
		return strings.TrimSpace(strings.Join(lines[h.Line+1:end], "\n")), true
	}
	return "", false
}

// FirstSection returns the body of the first name in names that has a section.
func FirstSection(text string, names ...string) (string, bool) {
	for _, name := range names {
		if body, ok := Section(text, name); ok {
			return body, true
		}
	}
	return "", false
}
