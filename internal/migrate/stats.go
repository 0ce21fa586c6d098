// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package migrate

import "github.com/pdiddy/docmigrate/pkg/types"

// CategoryStats counts one category's records. Found includes records that
// failed extraction; Found - Migrated is the number needing attention.
type CategoryStats struct {
	Category types.Category `json:"category"`
	Found    int            `json:"found"`
	Migrated int            `json:"migrated"`

	// Skipped is set when the category's source path does not exist.
	Skipped bool `json:"skipped,omitempty"`
}

// Stats is the outcome of one migration run.
type Stats struct {
	RunID      string          `json:"run_id"`
	DocsDir    string          `json:"docs_dir"`
	DryRun     bool            `json:"dry_run"`
	Categories []CategoryStats `json:"categories"`
	Errors     []string        `json:"errors"`
}

func (s *Stats) add(r categoryResult) {
	s.Categories = append(s.Categories, r.CategoryStats)
	s.Errors = append(s.Errors, r.errors...)
}

// Category returns the counts for c, zero when c did not run.
func (s *Stats) Category(c types.Category) CategoryStats {
	for _, cs := range s.Categories {
		if cs.Category == c {
			return cs
		}
	}
	return CategoryStats{Category: c}
}

func (s *Stats) TotalFound() int {
	n := 0
	for _, cs := range s.Categories {
		n += cs.Found
	}
	return n
}

func (s *Stats) TotalMigrated() int {
	n := 0
	for _, cs := range s.Categories {
		n += cs.Migrated
	}
	return n
}
