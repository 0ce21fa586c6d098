// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Task is a unit of work recovered from the aggregate task file.
type Task struct {
	// ID is taken verbatim from the task heading (e.g. "TASK-001").
	ID string `json:"id" yaml:"id"`

	Title       string     `json:"title" yaml:"title"`
	Description *string    `json:"description,omitempty" yaml:"description,omitempty"`
	Status      TaskStatus `json:"status" yaml:"status"`
	Type        TaskType   `json:"task_type" yaml:"task_type"`
	Priority    Priority   `json:"priority" yaml:"priority"`
	SprintID    *string    `json:"sprint_id,omitempty" yaml:"sprint_id,omitempty"`
	Assignee    *string    `json:"assignee,omitempty" yaml:"assignee,omitempty"`

	// StoryPoints is nil when the source omits it or it does not fit in 0..255.
	StoryPoints *uint8 `json:"story_points,omitempty" yaml:"story_points,omitempty"`

	Labels       []string `json:"labels" yaml:"labels"`
	Dependencies []string `json:"dependencies" yaml:"dependencies"`

	CreatedAt   time.Time  `json:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" yaml:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty" yaml:"completed_at,omitempty"`
}

func (t *Task) RecordID() string { return t.ID }
func (t *Task) Category() Category { return CategoryTask }
func (t *Task) DisplayName() string { return t.Title }

// Retrospective holds the look-back sections of a finished sprint.
type Retrospective struct {
	WentWell     []string `json:"what_went_well" yaml:"what_went_well"`
	CouldImprove []string `json:"what_could_improve" yaml:"what_could_improve"`
	ActionItems  []string `json:"action_items" yaml:"action_items"`
}

// Sprint is one sprint plan, current or archived.
type Sprint struct {
	// ID is "sprint-<n>" where n is the number embedded in the file name.
	ID string `json:"id" yaml:"id"`

	Name        string  `json:"name" yaml:"name"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`

	// StartDate and EndDate equal the extraction time when the body has no
	// parsable date range.
	StartDate time.Time `json:"start_date" yaml:"start_date"`
	EndDate   time.Time `json:"end_date" yaml:"end_date"`

	Goals   []string     `json:"goals" yaml:"goals"`
	TaskIDs []string     `json:"task_ids" yaml:"task_ids"`
	Status  SprintStatus `json:"status" yaml:"status"`

	Velocity      *float64       `json:"velocity,omitempty" yaml:"velocity,omitempty"`
	Capacity      *float64       `json:"capacity,omitempty" yaml:"capacity,omitempty"`
	Retrospective *Retrospective `json:"retrospective,omitempty" yaml:"retrospective,omitempty"`

	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

func (s *Sprint) RecordID() string { return s.ID }
func (s *Sprint) Category() Category { return CategorySprint }
func (s *Sprint) DisplayName() string { return s.Name }

// Component describes one architectural building block.
type Component struct {
	// ID is "comp-" followed by the file stem with underscores turned into hyphens.
	ID string `json:"id" yaml:"id"`

	Name             string        `json:"name" yaml:"name"`
	Type             ComponentType `json:"component_type" yaml:"component_type"`
	Description      string        `json:"description" yaml:"description"`
	Dependencies     []string      `json:"dependencies" yaml:"dependencies"`
	Interfaces       []string      `json:"interfaces" yaml:"interfaces"`
	TechStack        []string      `json:"tech_stack" yaml:"tech_stack"`
	Owner            *string       `json:"owner,omitempty" yaml:"owner,omitempty"`
	DocumentationURL *string       `json:"documentation_url,omitempty" yaml:"documentation_url,omitempty"`
	RepositoryURL    *string       `json:"repository_url,omitempty" yaml:"repository_url,omitempty"`

	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

func (c *Component) RecordID() string { return c.ID }
func (c *Component) Category() Category { return CategoryComponent }
func (c *Component) DisplayName() string { return c.Name }

// ADR is an architecture decision record.
type ADR struct {
	// ID is "ADR" followed by the file name's number padded to three digits.
	ID string `json:"id" yaml:"id"`

	Title        string    `json:"title" yaml:"title"`
	Status       AdrStatus `json:"status" yaml:"status"`
	Context      string    `json:"context" yaml:"context"`
	Decision     string    `json:"decision" yaml:"decision"`
	Consequences string    `json:"consequences" yaml:"consequences"`
	Alternatives []string  `json:"alternatives" yaml:"alternatives"`
	RelatedADRs  []string  `json:"related_adrs" yaml:"related_adrs"`
	CreatedBy    *string   `json:"created_by,omitempty" yaml:"created_by,omitempty"`

	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

func (a *ADR) RecordID() string { return a.ID }
func (a *ADR) Category() Category { return CategoryADR }
func (a *ADR) DisplayName() string { return a.Title }

// UserStory is one "As a ..., I want ..., so that ..." story.
type UserStory struct {
	// ID is assigned in document order: US-001, US-002, ...
	ID string `json:"id" yaml:"id"`

	Title              string   `json:"title" yaml:"title"`
	Persona            string   `json:"persona" yaml:"persona"`
	Want               string   `json:"want" yaml:"want"`
	Benefit            string   `json:"benefit" yaml:"benefit"`
	Description        *string  `json:"description,omitempty" yaml:"description,omitempty"`
	AcceptanceCriteria []string `json:"acceptance_criteria" yaml:"acceptance_criteria"`
	StoryPoints        *uint8   `json:"story_points,omitempty" yaml:"story_points,omitempty"`
	Priority           Priority `json:"priority" yaml:"priority"`
	EpicID             *string  `json:"epic_id,omitempty" yaml:"epic_id,omitempty"`

	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

func (u *UserStory) RecordID() string { return u.ID }
func (u *UserStory) Category() Category { return CategoryUserStory }
func (u *UserStory) DisplayName() string { return u.Title }
