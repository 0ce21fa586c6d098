// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import "strings"

// Field returns the value of the first "**Key:** value" line in body. The
// line may be a bullet, and "**Key**:" is accepted as well. Keys match
// case-insensitively. Empty values report false.
func Field(body, key string) (string, bool) {
	for _, line := range SplitLines(body) {
		if v, ok := fieldValue(line, key); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// FieldBlock is like Field but also collects continuation lines that follow
// the field line, stopping at a blank line, a heading, or another field.
func FieldBlock(body, key string) (string, bool) {
	lines := SplitLines(body)
	for i, line := range lines {
		v, ok := fieldValue(line, key)
		if !ok {
			continue
		}
		parts := []string{}
		if v != "" {
			parts = append(parts, v)
		}
		for _, next := range lines[i+1:] {
			t := strings.TrimSpace(next)
			if t == "" && len(parts) > 0 {
				break
			}
			if t == "" {
				continue
			}
			if _, isHeading := ParseHeading(t); isHeading || isFieldLine(t) {
				break
			}
			parts = append(parts, t)
		}
		if len(parts) == 0 {
			return "", false
		}
		return strings.Join(parts, "\n"), true
	}
	return "", false
}

func fieldValue(line, key string) (string, bool) {
	s := strings.TrimSpace(line)
	s = strings.TrimPrefix(s, "- ")
	s = strings.TrimPrefix(s, "* ")
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "**") {
		return "", false
	}
	rest := s[2:]
	if len(rest) < len(key) || !strings.EqualFold(rest[:len(key)], key) {
		return "", false
	}
	rest = rest[len(key):]
	switch {
	case strings.HasPrefix(rest, ":**"):
		rest = rest[3:]
	case strings.HasPrefix(rest, "**:"):
		rest = rest[3:]
	default:
		return "", false
	}
	return strings.TrimSpace(rest), true
}

func isFieldLine(s string) bool {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "- "), "* ")
	if !strings.HasPrefix(s, "**") {
		return false
	}
	end := strings.Index(s[2:], "**")
	if end < 0 {
		return false
	}
	label := s[2 : 2+end]
	after := s[2+end+2:]
	return strings.HasSuffix(label, ":") || strings.HasPrefix(after, ":")
}
