package usecase

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"pawpal-planner/internal/model"
	"pawpal-planner/internal/planner"
)

// AddTask validates the candidate and stores it under a fresh id. A failing
// task is never inserted; the returned error carries every validation finding.
func (uc *implUseCase) AddTask(ctx context.Context, input planner.AddTaskInput) (planner.AddTaskOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	recurrence := input.Recurrence
	if recurrence == "" {
		recurrence = model.RecurrenceNone
	}

	t := model.Task{
		ID:              uuid.NewString(),
		Title:           input.Title,
		Type:            input.Type,
		Window:          input.Window,
		DurationMinutes: input.DurationMinutes,
		Priority:        input.Priority,
		Flexible:        input.Flexible,
		DependsOn:       append([]string(nil), input.DependsOn...),
		Recurrence:      recurrence,
		Notes:           input.Notes,
	}

	errs := ValidateTask(t, func(id string) bool {
		_, ok := uc.tasks[id]
		return ok
	})
	if len(errs) > 0 {
		uc.l.Infof(ctx, "AddTask: rejected %q with %d validation error(s)", input.Title, len(errs))
		return planner.AddTaskOutput{}, errs
	}

	uc.tasks[t.ID] = &t
	uc.order = append(uc.order, t.ID)

	uc.l.Infof(ctx, "AddTask: stored %q id=%s priority=%s flexible=%t", t.Title, t.ID, t.Priority, t.Flexible)
	return planner.AddTaskOutput{Task: t}, nil
}

// RemoveTask deletes a stored task by id.
func (uc *implUseCase) RemoveTask(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, ok := uc.tasks[id]; !ok {
		return planner.ErrTaskNotFound
	}

	delete(uc.tasks, id)
	for i, existing := range uc.order {
		if existing == id {
			uc.order = append(uc.order[:i], uc.order[i+1:]...)
			break
		}
	}

	uc.l.Infof(ctx, "RemoveTask: removed id=%s", id)
	return nil
}

// ClearTasks drops all stored tasks. Pet and owner profiles are unaffected.
func (uc *implUseCase) ClearTasks(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	count := len(uc.tasks)
	uc.tasks = make(map[string]*model.Task)
	uc.order = nil

	uc.l.Infof(ctx, "ClearTasks: dropped %d task(s)", count)
	return nil
}

// ListTasks returns stored tasks, conjoining only the filters that were
// provided, in insertion order or ordered by window start.
func (uc *implUseCase) ListTasks(ctx context.Context, input planner.ListTasksInput) (planner.ListTasksOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	tasks := make([]model.Task, 0, len(uc.order))
	for _, id := range uc.order {
		t := uc.tasks[id]
		if input.Completed != nil && t.Completed != *input.Completed {
			continue
		}
		if input.PetName != nil && (uc.pet == nil || uc.pet.Name != *input.PetName) {
			continue
		}
		tasks = append(tasks, *t)
	}

	if input.SortByTime {
		sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].Window.Start < tasks[j].Window.Start })
	}

	return planner.ListTasksOutput{Tasks: tasks, Total: len(tasks)}, nil
}
