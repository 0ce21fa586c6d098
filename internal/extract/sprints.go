// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/docmigrate/internal/markdown"
	"github.com/pdiddy/docmigrate/pkg/types"
)

const dateLayout = "2006-01-02"

var (
	sprintFilePattern = regexp.MustCompile(`(?i)sprint-(\d+)`)
	dateRangePattern  = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})\s*(?:-|–|—|to)\s*(\d{4}-\d{2}-\d{2})`)
	taskRefPattern    = regexp.MustCompile(`\b[A-Z]+-\d+\b`)
	numberPattern     = regexp.MustCompile(`^\d+(?:\.\d+)?`)
)

// SprintExtractor reads agile/sprints/. Top-level sprint-*.md files are the
// current sprint and always Active; every .md file under archive/ is
// Completed. The status text inside a file is never consulted.
type SprintExtractor struct {
	Now func() time.Time
}

func (x *SprintExtractor) Category() types.Category { return types.CategorySprint }

func (x *SprintExtractor) Sources(root string) ([]Source, error) {
	dir, err := requireFile(root, sprintsDir)
	if err != nil {
		return nil, err
	}

	current, err := markdownFiles(dir, func(name string) bool {
		return strings.HasPrefix(strings.ToLower(name), "sprint-")
	})
	if err != nil {
		return nil, err
	}
	var sources []Source
	for _, p := range current {
		sources = append(sources, Source{Path: p})
	}

	archive := filepath.Join(dir, archiveDir)
	if _, err := os.Stat(archive); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return sources, nil
		}
		return nil, fmt.Errorf("checking %s: %w", archive, err)
	}
	archived, err := markdownFiles(archive, nil)
	if err != nil {
		return nil, err
	}
	for _, p := range archived {
		sources = append(sources, Source{Path: p, Archived: true})
	}
	return sources, nil
}

func (x *SprintExtractor) Spans(src Source, text string) []Span {
	return []Span{{Source: src, Text: text}}
}

func (x *SprintExtractor) Parse(span Span) (types.Record, error) {
	m := sprintFilePattern.FindStringSubmatch(filepath.Base(span.Source.Path))
	if m == nil {
		return nil, fmt.Errorf("no sprint number in file name: %w", ErrMissingIdentifier)
	}

	now := stamp(x.Now)
	text := span.Text
	sprint := &types.Sprint{
		ID:        "sprint-" + m[1],
		Name:      "Sprint " + m[1],
		StartDate: now,
		EndDate:   now,
		Goals:     []string{},
		TaskIDs:   []string{},
		Status:    types.SprintActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if span.Source.Archived {
		sprint.Status = types.SprintCompleted
	}

	if name, ok := markdown.FirstHeading(text, 1); ok {
		sprint.Name = name
	}
	if v, ok := markdown.FirstSection(text, "Overview", "Description"); ok && v != "" {
		sprint.Description = strPtr(v)
	}
	if start, end, ok := dateRange(text); ok {
		sprint.StartDate, sprint.EndDate = start, end
	}
	if goals, ok := markdown.FirstSection(text, "Goals", "Goal", "Sprint Goals", "Sprint Goal"); ok {
		sprint.Goals = markdown.Items(goals)
	}
	sprint.TaskIDs = taskRefs(text)
	if v, ok := markdown.Field(text, "Velocity"); ok {
		sprint.Velocity = number(v)
	}
	if v, ok := markdown.Field(text, "Capacity"); ok {
		sprint.Capacity = number(v)
	}
	sprint.Retrospective = retrospective(text)

	return sprint, nil
}

// dateRange finds the first "YYYY-MM-DD - YYYY-MM-DD" range. The start is
// midnight and the end the last second of its day, both UTC. A range whose
// dates do not parse is ignored.
func dateRange(text string) (time.Time, time.Time, bool) {
	m := dateRangePattern.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, time.Time{}, false
	}
	start, err := time.Parse(dateLayout, m[1])
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse(dateLayout, m[2])
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, end.Add(24*time.Hour - time.Second), true
}

// taskRefs returns the distinct PREFIX-123 tokens of text, sorted.
func taskRefs(text string) []string {
	refs := taskRefPattern.FindAllString(text, -1)
	slices.Sort(refs)
	refs = slices.Compact(refs)
	if refs == nil {
		return []string{}
	}
	return refs
}

func number(v string) *float64 {
	s := numberPattern.FindString(strings.TrimSpace(v))
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func retrospective(text string) *types.Retrospective {
	var r types.Retrospective
	found := false
	read := func(names ...string) []string {
		body, ok := markdown.FirstSection(text, names...)
		if !ok {
			return []string{}
		}
		found = true
		return markdown.Items(body)
	}
	r.WentWell = read("What Went Well", "What went well")
	r.CouldImprove = read("What Could Improve", "What could improve", "What Could Be Improved")
	r.ActionItems = read("Action Items", "Action items")
	if !found {
		return nil
	}
	return &r
}
