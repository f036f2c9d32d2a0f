package usecase

import (
	"context"

	"github.com/google/uuid"

	"pawpal-planner/internal/planner"
)

// MarkTaskComplete marks the task completed, which is terminal for that
// instance. For daily and weekly tasks it builds the logical successor: a new
// id, completed=false, every other attribute copied. The successor is
// returned for the caller to insert explicitly, never auto-inserted.
func (uc *implUseCase) MarkTaskComplete(ctx context.Context, id string) (planner.MarkCompleteOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	t, ok := uc.tasks[id]
	if !ok {
		return planner.MarkCompleteOutput{}, planner.ErrTaskNotFound
	}

	t.Completed = true
	out := planner.MarkCompleteOutput{Completed: *t}

	if t.Recurrence.Repeats() {
		next := *t
		next.ID = uuid.NewString()
		next.Completed = false
		next.DependsOn = append([]string(nil), t.DependsOn...)
		out.Next = &next
		uc.l.Infof(ctx, "MarkTaskComplete: %q completed, %s successor id=%s", t.Title, t.Recurrence, next.ID)
	} else {
		uc.l.Infof(ctx, "MarkTaskComplete: %q completed", t.Title)
	}

	return out, nil
}
