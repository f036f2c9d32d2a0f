package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"pawpal-planner/internal/model"
	"pawpal-planner/internal/planner"
	"pawpal-planner/internal/planner/usecase"
)

var workday = model.TimeWindow{Start: 480, End: 1200}

func TestGeneratePlanRequiresProfiles(t *testing.T) {
	ctx := context.Background()

	t.Run("pet not set", func(t *testing.T) {
		uc := newTestUseCase(480)
		if _, err := uc.SetOwner(ctx, planner.SetOwnerInput{Name: "Jordan", Availability: workday}); err != nil {
			t.Fatalf("SetOwner: %v", err)
		}
		out, err := uc.GeneratePlan(ctx)
		if !errors.Is(err, planner.ErrPetNotSet) {
			t.Fatalf("got %v, want ErrPetNotSet", err)
		}
		if len(out.Items) != 0 {
			t.Fatalf("got %d item(s), want none on configuration error", len(out.Items))
		}
	})

	t.Run("owner not set", func(t *testing.T) {
		uc := newTestUseCase(480)
		if _, err := uc.SetPet(ctx, planner.SetPetInput{Name: "Mochi", Species: model.SpeciesDog}); err != nil {
			t.Fatalf("SetPet: %v", err)
		}
		if _, err := uc.GeneratePlan(ctx); !errors.Is(err, planner.ErrOwnerNotSet) {
			t.Fatalf("got err = %v, want ErrOwnerNotSet", err)
		}
	})
}

func TestGeneratePlanRigidPlacement(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(480)
	setProfiles(t, uc, workday)

	feed := addTask(t, uc, planner.AddTaskInput{
		Title:           "Feed breakfast",
		Window:          model.TimeWindow{Start: 480, End: 600},
		DurationMinutes: 20,
		Priority:        model.PriorityHigh,
	})
	walk := addTask(t, uc, planner.AddTaskInput{
		Title:           "Morning walk",
		Window:          model.TimeWindow{Start: 480, End: 720},
		DurationMinutes: 30,
		Priority:        model.PriorityMedium,
	})

	plan, err := uc.GeneratePlan(ctx)
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	if len(plan.Items) != 2 {
		t.Fatalf("got %d item(s), want 2", len(plan.Items))
	}

	feedItem := itemFor(t, plan.Items, feed.ID)
	if feedItem.Start != 480 || feedItem.End != 500 {
		t.Errorf("feed placed at [%d, %d), want [480, 500)", feedItem.Start, feedItem.End)
	}
	if feedItem.Reason != usecase.ReasonScheduled {
		t.Errorf("feed reason %q, want %q", feedItem.Reason, usecase.ReasonScheduled)
	}

	// The walk collides at 480 and 495; the first clear probe is 510.
	walkItem := itemFor(t, plan.Items, walk.ID)
	if walkItem.Start != 510 || walkItem.End != 540 {
		t.Errorf("walk placed at [%d, %d), want [510, 540)", walkItem.Start, walkItem.End)
	}

	// Scheduled items come back in start order.
	if plan.Items[0].TaskID != feed.ID || plan.Items[1].TaskID != walk.ID {
		t.Errorf("items out of start order: %s before %s", plan.Items[0].Title, plan.Items[1].Title)
	}

	if len(plan.Summary) != 2 {
		t.Fatalf("got %d summary line(s), want 2", len(plan.Summary))
	}
	if want := "08:00 - Feed breakfast (20min, high priority)"; plan.Summary[0] != want {
		t.Errorf("summary[0] = %q, want %q", plan.Summary[0], want)
	}
}

func TestGeneratePlanDependencyGate(t *testing.T) {
	ctx := context.Background()

	t.Run("dependent lands after its prerequisite", func(t *testing.T) {
		uc := newTestUseCase(480)
		setProfiles(t, uc, workday)

		// The medication outranks the meal, so it is attempted first, deferred,
		// and then placed by the single re-pass once the meal has landed.
		feed := addTask(t, uc, planner.AddTaskInput{
			Title:           "Feed breakfast",
			Window:          model.TimeWindow{Start: 480, End: 600},
			DurationMinutes: 20,
			Priority:        model.PriorityLow,
		})
		med := addTask(t, uc, planner.AddTaskInput{
			Title:           "Give medication",
			Window:          model.TimeWindow{Start: 480, End: 600},
			DurationMinutes: 10,
			Priority:        model.PriorityHigh,
			DependsOn:       []string{feed.ID},
		})

		plan, err := uc.GeneratePlan(ctx)
		if err != nil {
			t.Fatalf("GeneratePlan: %v", err)
		}

		feedItem := itemFor(t, plan.Items, feed.ID)
		medItem := itemFor(t, plan.Items, med.ID)
		if medItem.Status != model.PlanStatusScheduled {
			t.Fatalf("medication %s (%q), want scheduled by the re-pass", medItem.Status, medItem.Reason)
		}
		if medItem.Start < feedItem.End {
			t.Errorf("medication starts at %d, before its prerequisite ends at %d", medItem.Start, feedItem.End)
		}
	})

	t.Run("unsatisfiable dependency stays deferred", func(t *testing.T) {
		uc := newTestUseCase(480)
		setProfiles(t, uc, workday)

		feed := addTask(t, uc, planner.AddTaskInput{
			Title:           "Feed breakfast",
			Window:          model.TimeWindow{Start: 0, End: 120}, // outside owner availability
			DurationMinutes: 20,
			Priority:        model.PriorityHigh,
		})
		med := addTask(t, uc, planner.AddTaskInput{
			Title:           "Give medication",
			Window:          model.TimeWindow{Start: 480, End: 600},
			DurationMinutes: 10,
			Priority:        model.PriorityLow,
			DependsOn:       []string{feed.ID},
		})

		plan, err := uc.GeneratePlan(ctx)
		if err != nil {
			t.Fatalf("GeneratePlan: %v", err)
		}

		medItem := itemFor(t, plan.Items, med.ID)
		if medItem.Status != model.PlanStatusDeferred {
			t.Fatalf("medication %s, want deferred behind an unplaced prerequisite", medItem.Status)
		}
		if !strings.Contains(medItem.Reason, "Waiting for dependency") || !strings.Contains(medItem.Reason, "Feed breakfast") {
			t.Errorf("reason %q must name the missing prerequisite", medItem.Reason)
		}
	})

	t.Run("completed prerequisite satisfies the gate", func(t *testing.T) {
		uc := newTestUseCase(480)
		setProfiles(t, uc, workday)

		feed := addTask(t, uc, planner.AddTaskInput{
			Title:           "Feed breakfast",
			Window:          model.TimeWindow{Start: 480, End: 600},
			DurationMinutes: 20,
			Priority:        model.PriorityHigh,
		})
		med := addTask(t, uc, planner.AddTaskInput{
			Title:           "Give medication",
			Window:          model.TimeWindow{Start: 480, End: 600},
			DurationMinutes: 10,
			Priority:        model.PriorityHigh,
			DependsOn:       []string{feed.ID},
		})
		if _, err := uc.MarkTaskComplete(ctx, feed.ID); err != nil {
			t.Fatalf("MarkTaskComplete: %v", err)
		}

		plan, err := uc.GeneratePlan(ctx)
		if err != nil {
			t.Fatalf("GeneratePlan: %v", err)
		}
		if len(plan.Items) != 1 {
			t.Fatalf("got %d item(s), want only the active task", len(plan.Items))
		}

		medItem := itemFor(t, plan.Items, med.ID)
		if medItem.Start != 480 {
			t.Errorf("medication starts at %d, want 480 with its prerequisite already done", medItem.Start)
		}
	})
}

func TestGeneratePlanGapFilling(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(480)
	setProfiles(t, uc, workday)

	addTask(t, uc, planner.AddTaskInput{
		Title:           "Morning walk",
		Window:          model.TimeWindow{Start: 480, End: 600},
		DurationMinutes: 60,
		Priority:        model.PriorityHigh,
	})
	addTask(t, uc, planner.AddTaskInput{
		Title:           "Vet call",
		Window:          model.TimeWindow{Start: 600, End: 720},
		DurationMinutes: 30,
		Priority:        model.PriorityHigh,
	})
	play := addTask(t, uc, planner.AddTaskInput{
		Title:           "Play session",
		Window:          model.TimeWindow{Start: 0, End: 1440},
		DurationMinutes: 45,
		Priority:        model.PriorityMedium,
		Flexible:        true,
	})
	groom := addTask(t, uc, planner.AddTaskInput{
		Title:           "Full grooming",
		Window:          model.TimeWindow{Start: 0, End: 1440},
		DurationMinutes: 800,
		Priority:        model.PriorityLow,
		Flexible:        true,
	})

	plan, err := uc.GeneratePlan(ctx)
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}

	// Rigid items hold [480, 540) and [600, 630); the first gap is [540, 600).
	playItem := itemFor(t, plan.Items, play.ID)
	if playItem.Start != 540 || playItem.End != 585 {
		t.Errorf("play placed at [%d, %d), want [540, 585)", playItem.Start, playItem.End)
	}
	if playItem.Reason != usecase.ReasonGapFilled {
		t.Errorf("play reason %q, want %q", playItem.Reason, usecase.ReasonGapFilled)
	}

	groomItem := itemFor(t, plan.Items, groom.ID)
	if groomItem.Status != model.PlanStatusUnscheduled {
		t.Fatalf("grooming %s, want unscheduled: no gap holds 800 minutes", groomItem.Status)
	}
	if groomItem.Reason != usecase.ReasonNoGap {
		t.Errorf("grooming reason %q, want %q", groomItem.Reason, usecase.ReasonNoGap)
	}
}

func TestGeneratePlanFailureReasons(t *testing.T) {
	ctx := context.Background()

	t.Run("window outside owner availability", func(t *testing.T) {
		uc := newTestUseCase(480)
		setProfiles(t, uc, workday)

		night := addTask(t, uc, planner.AddTaskInput{
			Title:           "Night feeding",
			Window:          model.TimeWindow{Start: 0, End: 120},
			DurationMinutes: 20,
			Priority:        model.PriorityHigh,
		})

		plan, err := uc.GeneratePlan(ctx)
		if err != nil {
			t.Fatalf("GeneratePlan: %v", err)
		}
		item := itemFor(t, plan.Items, night.ID)
		if item.Status != model.PlanStatusUnscheduled {
			t.Fatalf("got %s, want unscheduled", item.Status)
		}
		if !strings.Contains(item.Reason, "availability") {
			t.Errorf("reason %q must point at owner availability", item.Reason)
		}
	})

	t.Run("window exhausted by an earlier task", func(t *testing.T) {
		uc := newTestUseCase(480)
		setProfiles(t, uc, workday)

		addTask(t, uc, planner.AddTaskInput{
			Title:           "Feed breakfast",
			Window:          model.TimeWindow{Start: 480, End: 540},
			DurationMinutes: 60,
			Priority:        model.PriorityHigh,
		})
		second := addTask(t, uc, planner.AddTaskInput{
			Title:           "Second feeding",
			Window:          model.TimeWindow{Start: 480, End: 540},
			DurationMinutes: 60,
			Priority:        model.PriorityHigh,
		})

		plan, err := uc.GeneratePlan(ctx)
		if err != nil {
			t.Fatalf("GeneratePlan: %v", err)
		}
		item := itemFor(t, plan.Items, second.ID)
		if item.Status != model.PlanStatusUnscheduled {
			t.Fatalf("got %s, want unscheduled: the only fitting slot is taken", item.Status)
		}
		if !strings.Contains(item.Reason, "exhausted") {
			t.Errorf("reason %q must report the exhausted window", item.Reason)
		}
	})
}

func TestGeneratePlanPriorityOrdering(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(480)
	setProfiles(t, uc, workday)

	low := addTask(t, uc, planner.AddTaskInput{
		Title:           "Brush coat",
		Window:          model.TimeWindow{Start: 480, End: 720},
		DurationMinutes: 30,
		Priority:        model.PriorityLow,
	})
	high := addTask(t, uc, planner.AddTaskInput{
		Title:           "Give medication",
		Window:          model.TimeWindow{Start: 480, End: 720},
		DurationMinutes: 30,
		Priority:        model.PriorityHigh,
	})

	plan, err := uc.GeneratePlan(ctx)
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}

	highItem := itemFor(t, plan.Items, high.ID)
	lowItem := itemFor(t, plan.Items, low.ID)
	if highItem.Start >= lowItem.Start {
		t.Errorf("high priority starts at %d, low at %d; higher score must claim the earlier slot",
			highItem.Start, lowItem.Start)
	}
}

func TestGeneratePlanDeterministic(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(480)
	setProfiles(t, uc, workday)

	for _, title := range []string{"Feed breakfast", "Morning walk", "Play session", "Brush coat"} {
		addTask(t, uc, planner.AddTaskInput{
			Title:           title,
			Window:          model.TimeWindow{Start: 480, End: 720},
			DurationMinutes: 30,
			Priority:        model.PriorityMedium,
			Flexible:        title == "Play session",
		})
	}

	first, err := uc.GeneratePlan(ctx)
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	second, err := uc.GeneratePlan(ctx)
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}

	if !reflect.DeepEqual(first.Items, second.Items) {
		t.Fatalf("same inputs produced different plans:\n%v\n%v", first.Items, second.Items)
	}
	if !reflect.DeepEqual(first.Summary, second.Summary) {
		t.Fatalf("same inputs produced different summaries:\n%v\n%v", first.Summary, second.Summary)
	}
}

func TestPlanByID(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(480)
	setProfiles(t, uc, workday)

	addTask(t, uc, planner.AddTaskInput{
		Title:           "Feed breakfast",
		Window:          model.TimeWindow{Start: 480, End: 600},
		DurationMinutes: 20,
		Priority:        model.PriorityHigh,
	})

	plan, err := uc.GeneratePlan(ctx)
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}

	got, err := uc.PlanByID(ctx, plan.PlanID)
	if err != nil {
		t.Fatalf("PlanByID: %v", err)
	}
	if !reflect.DeepEqual(got.Items, plan.Items) {
		t.Fatalf("stored plan differs from the generated one:\n%v\n%v", got.Items, plan.Items)
	}

	if _, err := uc.PlanByID(ctx, "missing"); !errors.Is(err, planner.ErrPlanNotFound) {
		t.Fatalf("got %v, want ErrPlanNotFound", err)
	}
}
