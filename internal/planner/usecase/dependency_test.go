package usecase_test

import (
	"testing"

	"pawpal-planner/internal/model"
	"pawpal-planner/internal/planner/usecase"
)

func depTask(id string, deps ...string) *model.Task {
	return &model.Task{
		ID:              id,
		Title:           id,
		Window:          model.TimeWindow{Start: 480, End: 600},
		DurationMinutes: 20,
		Priority:        model.PriorityMedium,
		DependsOn:       deps,
	}
}

func TestDependenciesReady(t *testing.T) {
	placed := map[string]struct{}{"a": {}, "b": {}}

	t.Run("no dependencies", func(t *testing.T) {
		if !usecase.DependenciesReady(*depTask("x"), placed) {
			t.Fatal("task without dependencies must be ready")
		}
	})

	t.Run("all placed", func(t *testing.T) {
		if !usecase.DependenciesReady(*depTask("x", "a", "b"), placed) {
			t.Fatal("task with all prerequisites placed must be ready")
		}
	})

	t.Run("one missing", func(t *testing.T) {
		if usecase.DependenciesReady(*depTask("x", "a", "c"), placed) {
			t.Fatal("task with a missing prerequisite must not be ready")
		}
	})
}

func TestFindCycles(t *testing.T) {
	t.Run("acyclic chain", func(t *testing.T) {
		tasks := map[string]*model.Task{
			"a": depTask("a"),
			"b": depTask("b", "a"),
			"c": depTask("c", "b"),
		}
		if got := usecase.FindCycles(tasks, []string{"a", "b", "c"}); len(got) != 0 {
			t.Fatalf("got cyclic set %v, want empty", got)
		}
	})

	t.Run("two task cycle", func(t *testing.T) {
		tasks := map[string]*model.Task{
			"a": depTask("a", "b"),
			"b": depTask("b", "a"),
		}
		got := usecase.FindCycles(tasks, []string{"a", "b"})
		if len(got) != 2 {
			t.Fatalf("got cyclic set %v, want both tasks", got)
		}
	})

	t.Run("tail into cycle stays schedulable", func(t *testing.T) {
		tasks := map[string]*model.Task{
			"a": depTask("a", "b"),
			"b": depTask("b", "a"),
			"c": depTask("c", "a"),
		}
		got := usecase.FindCycles(tasks, []string{"a", "b", "c"})
		if _, ok := got["c"]; ok {
			t.Fatalf("c merely depends on a cycle, got cyclic set %v", got)
		}
		if len(got) != 2 {
			t.Fatalf("got cyclic set %v, want exactly the two cycle members", got)
		}
	})

	t.Run("dependency outside active set ignored", func(t *testing.T) {
		tasks := map[string]*model.Task{
			"a": depTask("a", "done"),
		}
		if got := usecase.FindCycles(tasks, []string{"a"}); len(got) != 0 {
			t.Fatalf("got cyclic set %v, want empty", got)
		}
	})

	t.Run("three task cycle", func(t *testing.T) {
		tasks := map[string]*model.Task{
			"a": depTask("a", "c"),
			"b": depTask("b", "a"),
			"c": depTask("c", "b"),
			"d": depTask("d"),
		}
		got := usecase.FindCycles(tasks, []string{"a", "b", "c", "d"})
		if len(got) != 3 {
			t.Fatalf("got cyclic set %v, want the three cycle members", got)
		}
		if _, ok := got["d"]; ok {
			t.Fatal("independent task must not be marked cyclic")
		}
	})
}
