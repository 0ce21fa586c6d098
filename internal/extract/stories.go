// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/pdiddy/docmigrate/internal/markdown"
	"github.com/pdiddy/docmigrate/internal/vocab"
	"github.com/pdiddy/docmigrate/pkg/types"
)

const (
	defaultPersona = "user"
	defaultBenefit = "value is delivered"
)

// storyPattern matches "As a X, I want Y, so that Z" on one line.
var storyPattern = regexp.MustCompile(`(?im)\bas\s+an?\s+(.+?),?\s+i\s+want\s+(.+?),?\s+so\s+that\s+(.+?)\.?\s*$`)

// UserStoryExtractor reads agile/user-stories.md. Every level-2 heading
// starts a story; ids are assigned in document order as US-001, US-002, ...
type UserStoryExtractor struct {
	Now func() time.Time
}

func (x *UserStoryExtractor) Category() types.Category { return types.CategoryUserStory }

func (x *UserStoryExtractor) Sources(root string) ([]Source, error) {
	path, err := requireFile(root, storiesFile)
	if err != nil {
		return nil, err
	}
	return []Source{{Path: path}}, nil
}

func (x *UserStoryExtractor) Spans(src Source, text string) []Span {
	blocks := markdown.Blocks(text, func(h markdown.Heading) bool { return h.Level == 2 })
	spans := make([]Span, len(blocks))
	for i, b := range blocks {
		spans[i] = Span{Source: src, Heading: b.Heading.Text, Text: b.Body}
	}
	return spans
}

// StoryID is the id of the story at zero-based position index.
func StoryID(index int) string {
	return fmt.Sprintf("US-%03d", index+1)
}

func (x *UserStoryExtractor) Parse(span Span) (types.Record, error) {
	now := stamp(x.Now)
	body := span.Text
	title := strings.TrimSpace(span.Heading)
	story := &types.UserStory{
		ID:                 StoryID(span.Index),
		Title:              title,
		Persona:            defaultPersona,
		Want:               title,
		Benefit:            defaultBenefit,
		AcceptanceCriteria: []string{},
		Priority:           types.PriorityMedium,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if m := storyPattern.FindStringSubmatch(body); m != nil {
		story.Persona = strings.TrimSpace(m[1])
		story.Want = strings.TrimSpace(m[2])
		story.Benefit = strings.TrimSpace(m[3])
	}
	if v, ok := acceptanceCriteria(body); ok {
		story.AcceptanceCriteria = markdown.Items(v)
	}
	if v, ok := markdown.FieldBlock(body, "Description"); ok {
		story.Description = strPtr(v)
	} else if v, ok := markdown.Section(body, "Description"); ok && v != "" {
		story.Description = strPtr(v)
	}
	for _, key := range []string{"Story Points", "Points", "Estimate"} {
		if v, ok := markdown.Field(body, key); ok {
			story.StoryPoints = storyPoints(v)
			break
		}
	}
	if v, ok := markdown.Field(body, "Priority"); ok {
		story.Priority = vocab.Priority.Normalize(v)
	}
	story.EpicID = optional(markdown.Field(body, "Epic"))

	return story, nil
}

// acceptanceCriteria returns the lines under an "Acceptance Criteria" heading
// or label line ("Acceptance Criteria:", "**Acceptance Criteria:**"), up to
// the next heading.
func acceptanceCriteria(body string) (string, bool) {
	if v, ok := markdown.Section(body, "Acceptance Criteria"); ok {
		return v, true
	}
	lines := markdown.SplitLines(body)
	for i, line := range lines {
		if vocab.Key(line) != "acceptance criteria" {
			continue
		}
		end := len(lines)
		for j := i + 1; j < len(lines); j++ {
			if _, ok := markdown.ParseHeading(lines[j]); ok {
				end = j
				break
			}
		}
		return strings.Join(lines[i+1:end], "\n"), true
	}
	return "", false
}
