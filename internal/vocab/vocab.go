// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package vocab maps loosely spelled status and type names onto the closed
// enumerations in pkg/types. Lookups never fail: text that matches no
// synonym yields the table's fallback value.
package vocab

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Key reduces raw to the form synonyms are stored under: NFC-normalized,
// case-folded, with every run of non-alphanumeric characters (hyphens,
// underscores, punctuation, markup, emoji) collapsed to one space.
func Key(raw string) string {
	folded := cases.Fold().String(norm.NFC.String(raw))
	fields := strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(fields, " ")
}

// Table is a closed vocabulary for one enumeration.
type Table[T ~string] struct {
	name     string
	fallback T
	entries  map[string]T
}

// NewTable builds a table from member → synonyms. Each member's own value is
// always a synonym of itself.
func NewTable[T ~string](name string, fallback T, synonyms map[T][]string) *Table[T] {
	t := &Table[T]{
		name:     name,
		fallback: fallback,
		entries:  make(map[string]T),
	}
	for member, words := range synonyms {
		t.entries[Key(string(member))] = member
		for _, w := range words {
			t.entries[Key(w)] = member
		}
	}
	return t
}

// Name identifies the table in log lines.
func (t *Table[T]) Name() string { return t.name }

// Fallback is the value returned for unrecognized text.
func (t *Table[T]) Fallback() T { return t.fallback }

// Lookup returns the member raw names, if any. When the whole text is not a
// synonym, the longest leading run of words that is one wins, so
// "Superseded by ADR005" still reads as superseded.
func (t *Table[T]) Lookup(raw string) (T, bool) {
	key := Key(raw)
	if v, ok := t.entries[key]; ok {
		return v, true
	}
	words := strings.Split(key, " ")
	for n := len(words) - 1; n > 0; n-- {
		if v, ok := t.entries[strings.Join(words[:n], " ")]; ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Normalize returns the member raw names, or the fallback.
func (t *Table[T]) Normalize(raw string) T {
	if v, ok := t.Lookup(raw); ok {
		return v
	}
	return t.fallback
}

// Members returns the distinct members of the table.
func (t *Table[T]) Members() []T {
	seen := make(map[T]bool)
	var out []T
	for _, v := range t.entries {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
