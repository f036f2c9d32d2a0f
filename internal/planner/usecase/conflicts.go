package usecase

import (
	"context"
	"fmt"
	"sort"

	"pawpal-planner/internal/model"
	"pawpal-planner/internal/planner"
)

// DetectConflicts sweeps scheduled items in start order and reports every
// pair of overlapping committed intervals as a warning. It is read-only and
// never blocks a plan: plans produced by GeneratePlan contain no true
// overlaps, so warnings here surface manually edited intervals.
func DetectConflicts(items []model.PlanItem) []string {
	scheduled := make([]model.PlanItem, 0, len(items))
	for _, item := range items {
		if item.Scheduled() {
			scheduled = append(scheduled, item)
		}
	}
	sort.SliceStable(scheduled, func(i, j int) bool { return scheduled[i].Start < scheduled[j].Start })

	var warnings []string
	for i := 1; i < len(scheduled); i++ {
		cur := scheduled[i]
		// Items are sorted by start, so earlier items whose end precedes this
		// start cannot overlap; stop walking back at the first such item.
		for j := i - 1; j >= 0; j-- {
			prev := scheduled[j]
			overlap := prev.End - cur.Start
			if overlap <= 0 {
				break
			}
			if span := cur.End - cur.Start; overlap > span {
				overlap = span
			}
			warnings = append(warnings, fmt.Sprintf(
				"Conflict: %q and %q overlap by %d minutes", prev.Title, cur.Title, overlap))
		}
	}
	return warnings
}

// DetectSchedulingConflicts resolves the target item set (stored plan by id,
// or raw items supplied by the caller) and runs the overlap sweep.
func (uc *implUseCase) DetectSchedulingConflicts(ctx context.Context, input planner.DetectConflictsInput) (planner.DetectConflictsOutput, error) {
	items := input.Items
	if input.PlanID != "" {
		plan, err := uc.PlanByID(ctx, input.PlanID)
		if err != nil {
			return planner.DetectConflictsOutput{}, err
		}
		items = plan.Items
	}

	warnings := DetectConflicts(items)
	if len(warnings) > 0 {
		uc.l.Warnf(ctx, "DetectSchedulingConflicts: %d overlap(s) found", len(warnings))
	}
	return planner.DetectConflictsOutput{Warnings: warnings}, nil
}
