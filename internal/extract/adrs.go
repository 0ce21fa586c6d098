// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/docmigrate/internal/markdown"
	"github.com/pdiddy/docmigrate/internal/vocab"
	"github.com/pdiddy/docmigrate/pkg/types"
)

var (
	// adrFilePattern matches ADR file names: ADR007-title.md, ADR-7.md.
	adrFilePattern = regexp.MustCompile(`^ADR[-_ ]?(\d+)`)
	adrRefPattern  = regexp.MustCompile(`\bADR[-_ ]?(\d+)\b`)
)

// ADRExtractor reads architecture/ADR*.md, one decision per file. Files
// whose name lacks the ADR number are not ADRs and are skipped.
type ADRExtractor struct {
	Now func() time.Time
}

func (x *ADRExtractor) Category() types.Category { return types.CategoryADR }

func (x *ADRExtractor) Sources(root string) ([]Source, error) {
	dir, err := requireFile(root, adrDir)
	if err != nil {
		return nil, err
	}
	paths, err := markdownFiles(dir, func(name string) bool {
		_, ok := ADRID(name)
		return ok
	})
	if err != nil {
		return nil, err
	}
	sources := make([]Source, len(paths))
	for i, p := range paths {
		sources[i] = Source{Path: p}
	}
	return sources, nil
}

func (x *ADRExtractor) Spans(src Source, text string) []Span {
	return []Span{{Source: src, Text: text}}
}

// ADRID derives the ADR id from a file name: "ADR7-x.md" is "ADR007".
func ADRID(name string) (string, bool) {
	m := adrFilePattern.FindStringSubmatch(filepath.Base(name))
	if m == nil {
		return "", false
	}
	return adrNumber(m[1])
}

func adrNumber(digits string) (string, bool) {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("ADR%03d", n), true
}

func (x *ADRExtractor) Parse(span Span) (types.Record, error) {
	id, ok := ADRID(span.Source.Path)
	if !ok {
		return nil, fmt.Errorf("no ADR number in file name: %w", ErrMissingIdentifier)
	}

	now := stamp(x.Now)
	text := span.Text
	adr := &types.ADR{
		ID:           id,
		Status:       types.AdrAccepted,
		Alternatives: []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if title, ok := markdown.FirstHeading(text, 1); ok {
		adr.Title = title
	}
	if v, ok := adrStatus(text); ok {
		adr.Status = vocab.AdrStatus.Normalize(v)
	}
	adr.Context, _ = markdown.Section(text, "Context")
	adr.Decision, _ = markdown.Section(text, "Decision")
	adr.Consequences, _ = markdown.Section(text, "Consequences")
	if v, ok := markdown.FirstSection(text, "Alternatives", "Alternatives Considered", "Considered Options"); ok {
		adr.Alternatives = markdown.Items(v)
	}
	adr.RelatedADRs = adrRefs(text, id)
	for _, key := range []string{"Author", "Authors", "Deciders"} {
		if v, ok := markdown.Field(text, key); ok {
			adr.CreatedBy = strPtr(v)
			break
		}
	}

	return adr, nil
}

// adrStatus reads a "**Status:**" line, or the first line of a Status section.
func adrStatus(text string) (string, bool) {
	if v, ok := markdown.Field(text, "Status"); ok {
		return v, true
	}
	body, ok := markdown.Section(text, "Status")
	if !ok || body == "" {
		return "", false
	}
	first, _, _ := strings.Cut(body, "\n")
	return strings.TrimSpace(first), true
}

// adrRefs lists the other ADRs text mentions, normalized, in first-seen order.
func adrRefs(text, self string) []string {
	refs := []string{}
	seen := map[string]bool{self: true}
	for _, m := range adrRefPattern.FindAllStringSubmatch(text, -1) {
		id, ok := adrNumber(m[1])
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		refs = append(refs, id)
	}
	return refs
}
