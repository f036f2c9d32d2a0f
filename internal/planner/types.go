package planner

import (
	"fmt"
	"time"

	"pawpal-planner/internal/model"
)

// --- Validation ---

// ValidationCode identifies one structural defect in a submitted task.
type ValidationCode string

const (
	CodeEmptyTitle        ValidationCode = "EmptyTitle"
	CodeInvalidDuration   ValidationCode = "InvalidDuration"
	CodeBackwardsWindow   ValidationCode = "BackwardsWindow"
	CodeOutOfRangeTime    ValidationCode = "OutOfRangeTime"
	CodeInvalidPriority   ValidationCode = "InvalidPriority"
	CodeUnknownDependency ValidationCode = "UnknownDependency"
)

// ValidationError describes one failed task check.
type ValidationError struct {
	Code    ValidationCode `json:"code"`
	Field   string         `json:"field"`
	Message string         `json:"message"`
}

// ValidationErrors is the full set of defects found in one task. It implements
// error so AddTask can reject a task while handing the caller every finding.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (v ValidationErrors) Error() string {
	return fmt.Sprintf("task validation failed: %d error(s)", len(v))
}

// --- Profile inputs/outputs ---

type SetPetInput struct {
	Name        string
	Species     model.Species
	Needs       []string
	Preferences map[string]string
}

type SetPetOutput struct {
	Pet model.Pet
}

type SetOwnerInput struct {
	Name         string
	Availability model.TimeWindow
	Preferences  map[string]string
}

type SetOwnerOutput struct {
	Owner model.PetOwner
}

// --- Task inputs/outputs ---

// AddTaskInput carries a candidate task. The ID is assigned by the use case;
// any value supplied here is ignored.
type AddTaskInput struct {
	Title           string
	Type            string
	Window          model.TimeWindow
	DurationMinutes int
	Priority        model.Priority
	Flexible        bool
	DependsOn       []string
	Recurrence      model.Recurrence
	Notes           string
}

type AddTaskOutput struct {
	Task model.Task
}

// ListTasksInput filters stored tasks. Nil pointer filters are not applied.
type ListTasksInput struct {
	Completed  *bool
	PetName    *string
	SortByTime bool // order by window start instead of insertion order
}

type ListTasksOutput struct {
	Tasks []model.Task
	Total int
}

// MarkCompleteOutput reports the completed task and, for recurring tasks, the
// freshly generated successor. The successor is returned, never auto-inserted.
type MarkCompleteOutput struct {
	Completed model.Task
	Next      *model.Task
}

// --- Planning inputs/outputs ---

// GeneratePlanOutput is one full placement run, retrievable later by PlanID.
type GeneratePlanOutput struct {
	PlanID      string
	GeneratedAt time.Time
	Items       []model.PlanItem
	Summary     []string // human-readable "HH:MM - title" lines, scheduled items only
}

// DetectConflictsInput selects the plan to sweep: a stored plan by ID, or raw
// items supplied directly (the detector exists to catch manually edited
// intervals, so callers may hand it arbitrary item sets).
type DetectConflictsInput struct {
	PlanID string
	Items  []model.PlanItem
}

type DetectConflictsOutput struct {
	Warnings []string
}

// ExportPlanInput anchors a stored plan's minute-of-day intervals to a real
// calendar date for export.
type ExportPlanInput struct {
	PlanID string
	Date   string // ISO date, e.g. "2026-08-29"
}

// ExportedEvent is one calendar event created from a scheduled plan item.
type ExportedEvent struct {
	TaskID   string
	Title    string
	HTMLLink string
}

type ExportPlanOutput struct {
	Events  []ExportedEvent
	Skipped int // scheduled items whose event creation failed
}
