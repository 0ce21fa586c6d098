// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/docmigrate/internal/markdown"
	"github.com/pdiddy/docmigrate/internal/vocab"
	"github.com/pdiddy/docmigrate/pkg/types"
)

var (
	// taskHeadingPattern matches the heading text of a task: "TASK-001: Title".
	taskHeadingPattern = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9]*-\d+):\s*(.*\S)\s*$`)

	sprintRefPattern  = regexp.MustCompile(`(?i)\bsprint[- ]?(\d+)\b`)
	leadingIntPattern = regexp.MustCompile(`^\d+`)
)

// TaskExtractor reads agile/tasks.md. Every heading of level 1-3 shaped like
// "PREFIX-123: Title" starts a task that runs to the next such heading.
type TaskExtractor struct {
	Now func() time.Time
}

func (x *TaskExtractor) Category() types.Category { return types.CategoryTask }

func (x *TaskExtractor) Sources(root string) ([]Source, error) {
	path, err := requireFile(root, tasksFile)
	if err != nil {
		return nil, err
	}
	return []Source{{Path: path}}, nil
}

func (x *TaskExtractor) Spans(src Source, text string) []Span {
	blocks := markdown.Blocks(text, isTaskHeading)
	spans := make([]Span, len(blocks))
	for i, b := range blocks {
		spans[i] = Span{Source: src, Heading: b.Heading.Text, Text: b.Body}
	}
	return spans
}

func isTaskHeading(h markdown.Heading) bool {
	return h.Level <= 3 && taskHeadingPattern.MatchString(h.Text)
}

func (x *TaskExtractor) Parse(span Span) (types.Record, error) {
	m := taskHeadingPattern.FindStringSubmatch(span.Heading)
	if m == nil {
		return nil, fmt.Errorf("heading %q is not a task heading: %w", span.Heading, ErrMissingIdentifier)
	}

	now := stamp(x.Now)
	body := span.Text
	task := &types.Task{
		ID:           m[1],
		Title:        strings.TrimSpace(m[2]),
		Status:       types.TaskTodo,
		Type:         types.TypeTask,
		Priority:     types.PriorityMedium,
		Labels:       []string{},
		Dependencies: []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if v, ok := markdown.Field(body, "Status"); ok {
		task.Status = vocab.TaskStatus.Normalize(v)
	}
	if v, ok := markdown.Field(body, "Type"); ok {
		task.Type = vocab.TaskType.Normalize(v)
	}
	if v, ok := markdown.Field(body, "Priority"); ok {
		task.Priority = vocab.Priority.Normalize(v)
	}
	if v, ok := markdown.FieldBlock(body, "Description"); ok {
		task.Description = strPtr(v)
	} else if v, ok := markdown.Section(body, "Description"); ok && v != "" {
		task.Description = strPtr(v)
	}
	task.Assignee = optional(markdown.Field(body, "Assignee"))
	if v, ok := markdown.Field(body, "Sprint"); ok {
		task.SprintID = sprintRef(v)
	}
	if v, ok := markdown.Field(body, "Story Points"); ok {
		task.StoryPoints = storyPoints(v)
	}
	if v, ok := markdown.Field(body, "Dependencies"); ok {
		task.Dependencies = markdown.SplitList(v)
	}
	if v, ok := markdown.Field(body, "Labels"); ok {
		task.Labels = markdown.SplitList(v)
	}

	if task.Status == types.TaskDone {
		done := now
		task.CompletedAt = &done
	}
	return task, nil
}

// sprintRef reads "sprint-3", "Sprint 3", or "sprint3" as "sprint-3".
func sprintRef(v string) *string {
	m := sprintRefPattern.FindStringSubmatch(v)
	if m == nil {
		return nil
	}
	return strPtr("sprint-" + m[1])
}

// storyPoints reads the leading integer of v. Values outside 0..255 or
// without a leading integer are treated as absent.
func storyPoints(v string) *uint8 {
	digits := leadingIntPattern.FindString(strings.TrimSpace(v))
	if digits == "" {
		return nil
	}
	n, err := strconv.ParseUint(digits, 10, 8)
	if err != nil {
		return nil
	}
	p := uint8(n)
	return &p
}
