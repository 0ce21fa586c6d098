// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// TaskStatus is the workflow state of a task.
type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
	TaskBlocked    TaskStatus = "blocked"
	TaskCancelled  TaskStatus = "cancelled"
)

// TaskType classifies the kind of work a task tracks.
type TaskType string

const (
	TypeBug     TaskType = "bug"
	TypeFeature TaskType = "feature"
	TypeTask    TaskType = "task"
	TypeEpic    TaskType = "epic"
	TypeStory   TaskType = "story"
	TypeSpike   TaskType = "spike"
)

// Priority ranks tasks and user stories.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// SprintStatus is the lifecycle state of a sprint.
type SprintStatus string

const (
	SprintPlanning  SprintStatus = "planning"
	SprintActive    SprintStatus = "active"
	SprintCompleted SprintStatus = "completed"
	SprintCancelled SprintStatus = "cancelled"
)

// ComponentType classifies an architectural component.
// ComponentOther is used when the source names a type we do not recognize.
type ComponentType string

const (
	ComponentModule   ComponentType = "module"
	ComponentService  ComponentType = "service"
	ComponentLibrary  ComponentType = "library"
	ComponentDatabase ComponentType = "database"
	ComponentAPI      ComponentType = "api"
	ComponentOther    ComponentType = "other"
)

// AdrStatus is the decision state of an architecture decision record.
// AdrUnspecified is used when the source names a status we do not recognize.
type AdrStatus string

const (
	AdrProposed    AdrStatus = "proposed"
	AdrAccepted    AdrStatus = "accepted"
	AdrDeprecated  AdrStatus = "deprecated"
	AdrSuperseded  AdrStatus = "superseded"
	AdrRejected    AdrStatus = "rejected"
	AdrUnspecified AdrStatus = "unspecified"
)
