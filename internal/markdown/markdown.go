// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markdown provides the small set of line-oriented primitives the
// extractors share: heading detection, section bodies, bullet lists, and
// bold key-value field lines. It understands only the conventions used by
// the project documentation, not Markdown in general.
package markdown

import (
	"strings"
)

// Heading is an ATX heading line ("## Title").
type Heading struct {
	Level int
	Text  string
	// Line is the zero-based index of the heading in the split text.
	Line int
}

// Block is a heading together with the lines that follow it up to the next
// boundary heading.
type Block struct {
	Heading Heading
	Body    string
}

// SplitLines splits text on newlines and strips trailing carriage returns.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// ParseHeading reports whether line is a heading and returns its level and
// trimmed text. Up to six leading '#' characters are accepted; an optional
// closing run of '#' is dropped.
func ParseHeading(line string) (Heading, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "#") {
		return Heading{}, false
	}
	level := 0
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	if level > 6 {
		return Heading{}, false
	}
	text := strings.TrimSpace(trimmed[level:])
	if i := strings.LastIndex(text, " #"); i >= 0 && strings.Trim(text[i+1:], "#") == "" {
		text = strings.TrimSpace(text[:i])
	}
	return Heading{Level: level, Text: text}, true
}

// Headings returns every heading in text in document order. Lines inside
// fenced code blocks are never headings.
func Headings(text string) []Heading {
	var out []Heading
	scan(SplitLines(text), func(i int, line string) {
		if h, ok := ParseHeading(line); ok {
			h.Line = i
			out = append(out, h)
		}
	})
	return out
}

// scan calls fn for every line outside ``` or ~~~ fences.
func scan(lines []string, fn func(i int, line string)) {
	var fence string
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if fence != "" {
			if strings.HasPrefix(trimmed, fence) {
				fence = ""
			}
			continue
		}
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			fence = trimmed[:3]
			continue
		}
		fn(i, line)
	}
}

// Blocks splits text at every heading accepted by boundary. Each block's body
// runs from the line after its heading up to the next accepted heading or
// the end of text. Text before the first accepted heading is discarded.
func Blocks(text string, boundary func(Heading) bool) []Block {
	lines := SplitLines(text)
	var starts []Heading
	for _, h := range Headings(text) {
		if boundary(h) {
			starts = append(starts, h)
		}
	}

	blocks := make([]Block, 0, len(starts))
	for i, h := range starts {
		end := len(lines)
		if i+1 < len(starts) {
			end = starts[i+1].Line
		}
		blocks = append(blocks, Block{
			Heading: h,
			Body:    strings.Join(lines[h.Line+1:end], "\n"),
		})
	}
	return blocks
}

// FirstHeading returns the text of the first heading at exactly level.
func FirstHeading(text string, level int) (string, bool) {
	for _, h := range Headings(text) {
		if h.Level == level && h.Text != "" {
			return h.Text, true
		}
	}
	return "", false
}
