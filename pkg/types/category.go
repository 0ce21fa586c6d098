// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the record model shared by the extractors, the
// migration coordinator, and the record store.
package types

import "fmt"

// Category is one of the five document kinds recovered from the corpus.
type Category string

const (
	CategoryTask      Category = "task"
	CategorySprint    Category = "sprint"
	CategoryUserStory Category = "user_story"
	CategoryComponent Category = "component"
	CategoryADR       Category = "adr"
)

// Categories lists every category in migration order.
var Categories = []Category{
	CategoryTask,
	CategorySprint,
	CategoryUserStory,
	CategoryComponent,
	CategoryADR,
}

// Label returns the plural display name used in reports.
func (c Category) Label() string {
	switch c {
	case CategoryTask:
		return "Tasks"
	case CategorySprint:
		return "Sprints"
	case CategoryUserStory:
		return "Stories"
	case CategoryComponent:
		return "Components"
	case CategoryADR:
		return "ADRs"
	}
	return string(c)
}

// Noun returns the singular lowercase name used in progress lines.
func (c Category) Noun() string {
	switch c {
	case CategoryUserStory:
		return "story"
	case CategoryADR:
		return "ADR"
	}
	return string(c)
}

// ParseCategory accepts the canonical name or the plural label of a category.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if s == string(c) || s == c.Label() || s == string(c)+"s" {
			return c, nil
		}
	}
	switch s {
	case "story", "stories", "user-story", "user-stories", "user_stories":
		return CategoryUserStory, nil
	case "ADR", "adrs":
		return CategoryADR, nil
	}
	return "", fmt.Errorf("unknown category %q: use task, sprint, user_story, component, or adr", s)
}

// Record is implemented by every migrated document variant.
type Record interface {
	// RecordID is the stable identifier the record is stored under.
	RecordID() string

	// Category reports which variant the record is.
	Category() Category

	// DisplayName is the human-readable name shown in previews and listings.
	DisplayName() string
}

// NewRecord returns an empty record of category c, ready to be decoded into.
func NewRecord(c Category) (Record, error) {
	switch c {
	case CategoryTask:
		return &Task{}, nil
	case CategorySprint:
		return &Sprint{}, nil
	case CategoryUserStory:
		return &UserStory{}, nil
	case CategoryComponent:
		return &Component{}, nil
	case CategoryADR:
		return &ADR{}, nil
	}
	return nil, fmt.Errorf("unknown category %q", c)
}
