package planner

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Profile
	SetPet(ctx context.Context, input SetPetInput) (SetPetOutput, error)
	SetOwner(ctx context.Context, input SetOwnerInput) (SetOwnerOutput, error)

	// Task mutation
	AddTask(ctx context.Context, input AddTaskInput) (AddTaskOutput, error)
	RemoveTask(ctx context.Context, id string) error
	ClearTasks(ctx context.Context) error
	MarkTaskComplete(ctx context.Context, id string) (MarkCompleteOutput, error)

	// Task queries
	ListTasks(ctx context.Context, input ListTasksInput) (ListTasksOutput, error)

	// Planning
	GeneratePlan(ctx context.Context) (GeneratePlanOutput, error)
	PlanByID(ctx context.Context, id string) (GeneratePlanOutput, error)
	DetectSchedulingConflicts(ctx context.Context, input DetectConflictsInput) (DetectConflictsOutput, error)
	ExportPlan(ctx context.Context, input ExportPlanInput) (ExportPlanOutput, error)
}
