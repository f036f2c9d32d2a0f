package usecase_test

import (
	"context"
	"testing"

	"pawpal-planner/internal/model"
	"pawpal-planner/internal/planner"
	"pawpal-planner/internal/planner/usecase"
	"pawpal-planner/pkg/gcalendar"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any) {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any) {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Error(ctx context.Context, arg ...any) {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any) {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any) {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any) {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any) {}

// Mock calendar client for testing
type mockCalendarClient struct {
	createFunc func(req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	calls      int
}

func (m *mockCalendarClient) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.calls++
	if m.createFunc != nil {
		return m.createFunc(req)
	}
	return &gcalendar.Event{ID: "event-1", Summary: req.Summary, HtmlLink: "https://calendar/event-1"}, nil
}

// newTestUseCase builds a use case with a fixed evaluation time so plans are
// reproducible.
func newTestUseCase(nowMinutes int) planner.UseCase {
	return usecase.New(&mockLogger{}, nil, usecase.Config{
		NowFunc: func() int { return nowMinutes },
	})
}

// setProfiles stores a default pet and an owner with the given availability.
func setProfiles(t *testing.T, uc planner.UseCase, avail model.TimeWindow) {
	t.Helper()
	ctx := context.Background()

	if _, err := uc.SetPet(ctx, planner.SetPetInput{Name: "Mochi", Species: model.SpeciesDog}); err != nil {
		t.Fatalf("SetPet: %v", err)
	}
	if _, err := uc.SetOwner(ctx, planner.SetOwnerInput{Name: "Jordan", Availability: avail}); err != nil {
		t.Fatalf("SetOwner: %v", err)
	}
}

// addTask inserts a task and fails the test on rejection.
func addTask(t *testing.T, uc planner.UseCase, input planner.AddTaskInput) model.Task {
	t.Helper()

	out, err := uc.AddTask(context.Background(), input)
	if err != nil {
		t.Fatalf("AddTask(%q): %v", input.Title, err)
	}
	return out.Task
}

// itemFor finds the plan item for the given task id.
func itemFor(t *testing.T, items []model.PlanItem, taskID string) model.PlanItem {
	t.Helper()

	for _, item := range items {
		if item.TaskID == taskID {
			return item
		}
	}
	t.Fatalf("no plan item for task %s", taskID)
	return model.PlanItem{}
}
