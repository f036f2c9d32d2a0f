package usecase

import (
	"fmt"

	"pawpal-planner/internal/model"
	"pawpal-planner/internal/planner"
)

// ValidateTask checks a task's structural well-formedness. Every check is
// independent and every failure is reported; an empty result means valid.
// knownTask reports whether a dependency id refers to a stored task; nil
// skips the dependency check.
func ValidateTask(t model.Task, knownTask func(id string) bool) planner.ValidationErrors {
	var errs planner.ValidationErrors

	if t.Title == "" {
		errs = append(errs, planner.ValidationError{
			Code:    planner.CodeEmptyTitle,
			Field:   "title",
			Message: "title must not be empty",
		})
	}

	if t.DurationMinutes <= 0 || t.DurationMinutes > t.Window.Length() {
		errs = append(errs, planner.ValidationError{
			Code:    planner.CodeInvalidDuration,
			Field:   "duration_minutes",
			Message: fmt.Sprintf("duration %d must be positive and fit the %d-minute window", t.DurationMinutes, t.Window.Length()),
		})
	}

	if t.Window.Start >= t.Window.End {
		errs = append(errs, planner.ValidationError{
			Code:    planner.CodeBackwardsWindow,
			Field:   "window",
			Message: fmt.Sprintf("window start %d must be before end %d", t.Window.Start, t.Window.End),
		})
	}

	if t.Window.Start < 0 || t.Window.Start > model.MinutesPerDay ||
		t.Window.End < 0 || t.Window.End > model.MinutesPerDay {
		errs = append(errs, planner.ValidationError{
			Code:    planner.CodeOutOfRangeTime,
			Field:   "window",
			Message: fmt.Sprintf("window [%d, %d) must lie within [0, %d]", t.Window.Start, t.Window.End, model.MinutesPerDay),
		})
	}

	if !t.Priority.Valid() {
		errs = append(errs, planner.ValidationError{
			Code:    planner.CodeInvalidPriority,
			Field:   "priority",
			Message: fmt.Sprintf("priority %q must be one of low, medium, high", t.Priority),
		})
	}

	if knownTask != nil {
		for _, dep := range t.DependsOn {
			if !knownTask(dep) {
				errs = append(errs, planner.ValidationError{
					Code:    planner.CodeUnknownDependency,
					Field:   "depends_on",
					Message: fmt.Sprintf("dependency %q does not match any stored task", dep),
				})
			}
		}
	}

	return errs
}
