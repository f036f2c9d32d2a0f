package model

// Priority is the closed set of task priority levels.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// priorityWeights maps each priority to its base scheduling weight.
var priorityWeights = map[Priority]float64{
	PriorityLow:    1.0,
	PriorityMedium: 2.0,
	PriorityHigh:   3.0,
}

// Valid reports whether p is one of the accepted priority levels.
func (p Priority) Valid() bool {
	_, ok := priorityWeights[p]
	return ok
}

// BaseWeight returns the scheduling weight for p (0 for unknown values).
func (p Priority) BaseWeight() float64 {
	return priorityWeights[p]
}

// Recurrence is the closed set of task repetition policies.
type Recurrence string

const (
	RecurrenceNone   Recurrence = "none"
	RecurrenceDaily  Recurrence = "daily"
	RecurrenceWeekly Recurrence = "weekly"
)

// Valid reports whether r is one of the accepted recurrence policies.
func (r Recurrence) Valid() bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly:
		return true
	}
	return false
}

// Repeats reports whether a completed task with this policy spawns a successor.
func (r Recurrence) Repeats() bool {
	return r == RecurrenceDaily || r == RecurrenceWeekly
}

// PlanStatus is the closed set of placement outcomes for a plan item.
type PlanStatus string

const (
	// PlanStatusScheduled means the task was committed to a concrete interval.
	PlanStatusScheduled PlanStatus = "scheduled"
	// PlanStatusDeferred means placement was postponed behind unmet dependencies.
	PlanStatusDeferred PlanStatus = "deferred"
	// PlanStatusUnscheduled means no fitting interval was found.
	PlanStatusUnscheduled PlanStatus = "unscheduled"
)

// Species is the closed set of supported pet species.
type Species string

const (
	SpeciesDog   Species = "dog"
	SpeciesCat   Species = "cat"
	SpeciesOther Species = "other"
)

// Valid reports whether s is one of the accepted species.
func (s Species) Valid() bool {
	switch s {
	case SpeciesDog, SpeciesCat, SpeciesOther:
		return true
	}
	return false
}

// Environment identifies the runtime environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
