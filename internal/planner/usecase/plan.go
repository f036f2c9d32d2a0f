package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"pawpal-planner/internal/model"
	"pawpal-planner/internal/planner"
	"pawpal-planner/pkg/clockmin"
)

// Placement reason strings carried on plan items.
const (
	ReasonScheduled = "Scheduled at earliest available slot"
	ReasonGapFilled = "Filled available gap"
	ReasonNoGap     = "No suitable gap found"

	reasonWaitingPrefix = "Waiting for dependency: "
	reasonCyclePrefix   = "Part of dependency cycle: "

	reasonWindowExhausted = "Time window exhausted, no free slot within search depth"
	reasonNoAvailability  = "No owner availability within task window"
)

// GeneratePlan runs the full placement algorithm over the current task set:
// cycle detection, rigid placement in score order with a single dependency
// re-pass, then gap filling for flexible tasks under the same dependency gate.
// The result is stored in the plan history under a fresh plan id.
func (uc *implUseCase) GeneratePlan(ctx context.Context) (planner.GeneratePlanOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.pet == nil {
		return planner.GeneratePlanOutput{}, planner.ErrPetNotSet
	}
	if uc.owner == nil {
		return planner.GeneratePlanOutput{}, planner.ErrOwnerNotSet
	}

	now := uc.cfg.NowFunc()
	avail := uc.owner.Availability

	// Snapshot active tasks in insertion order; completed tasks seed the
	// placed set so finished prerequisites still satisfy the gate.
	active := make(map[string]*model.Task)
	var activeOrder []string
	placed := make(map[string]struct{})
	for _, id := range uc.order {
		t := uc.tasks[id]
		if t.Completed {
			placed[id] = struct{}{}
			continue
		}
		active[id] = t
		activeOrder = append(activeOrder, id)
	}

	cyclic := FindCycles(active, activeOrder)

	var rigid, flexible []scoredTask
	var cyclicTasks []*model.Task
	for i, id := range activeOrder {
		t := active[id]
		if _, inCycle := cyclic[id]; inCycle {
			cyclicTasks = append(cyclicTasks, t)
			continue
		}
		st := scoredTask{task: t, score: Score(*t, now, uc.cfg.UrgencyHorizonMinutes), index: i}
		if t.Flexible {
			flexible = append(flexible, st)
		} else {
			rigid = append(rigid, st)
		}
	}
	orderByScore(rigid)
	orderByScore(flexible)

	itemsByID := make(map[string]model.PlanItem)
	var attemptOrder []string
	var occupied []interval

	record := func(item model.PlanItem) {
		if _, seen := itemsByID[item.TaskID]; !seen {
			attemptOrder = append(attemptOrder, item.TaskID)
		}
		itemsByID[item.TaskID] = item
	}

	// Rigid pass: commit each task at the earliest probe that clears the
	// occupied intervals, the task window and owner availability.
	var deferredRigid []scoredTask
	for _, st := range rigid {
		if !DependenciesReady(*st.task, placed) {
			record(uc.deferredItem(st.task, placed))
			deferredRigid = append(deferredRigid, st)
			continue
		}
		record(uc.placeRigid(st.task, &occupied, placed, avail))
	}

	// Single re-pass: a deferred task whose prerequisites all landed during
	// the pass gets one more placement attempt. No further retries.
	for _, st := range deferredRigid {
		if DependenciesReady(*st.task, placed) {
			record(uc.placeRigid(st.task, &occupied, placed, avail))
		}
	}

	// Flexible pass: fit each task into the first gap that accommodates it,
	// in the same score order and under the same dependency gate.
	gaps := computeGaps(occupied, avail, uc.cfg.MinGapMinutes)
	var deferredFlex []scoredTask
	for _, st := range flexible {
		if !DependenciesReady(*st.task, placed) {
			record(uc.deferredItem(st.task, placed))
			deferredFlex = append(deferredFlex, st)
			continue
		}
		var item model.PlanItem
		item, gaps = uc.fillGap(st.task, gaps, placed)
		record(item)
	}
	for _, st := range deferredFlex {
		if DependenciesReady(*st.task, placed) {
			var item model.PlanItem
			item, gaps = uc.fillGap(st.task, gaps, placed)
			record(item)
		}
	}

	// Cyclic tasks never enter a placement pass; they are reported as a
	// named condition instead of deferring forever.
	for _, t := range cyclicTasks {
		record(model.PlanItem{
			TaskID:   t.ID,
			Title:    t.Title,
			Priority: t.Priority,
			Start:    model.UnscheduledTime,
			End:      model.UnscheduledTime,
			Status:   model.PlanStatusUnscheduled,
			Reason:   reasonCyclePrefix + uc.titlesOf(cyclic),
		})
	}

	out := uc.assemblePlan(itemsByID, attemptOrder)
	uc.plans.Add(out.PlanID, out)

	scheduled := 0
	for _, item := range out.Items {
		if item.Scheduled() {
			scheduled++
		}
	}
	uc.l.Infof(ctx, "GeneratePlan: plan=%s tasks=%d scheduled=%d now=%d", out.PlanID, len(out.Items), scheduled, now)

	return out, nil
}

// PlanByID retrieves a previously generated plan from the bounded history.
func (uc *implUseCase) PlanByID(ctx context.Context, id string) (planner.GeneratePlanOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out, ok := uc.plans.Get(id)
	if !ok {
		return planner.GeneratePlanOutput{}, planner.ErrPlanNotFound
	}
	return out, nil
}

// placeRigid finds and commits a slot for a rigid task, updating the occupied
// intervals and the placed set on success.
func (uc *implUseCase) placeRigid(t *model.Task, occupied *[]interval, placed map[string]struct{}, avail model.TimeWindow) model.PlanItem {
	start, ok, failure := uc.findBestTime(t, *occupied, avail)
	if !ok {
		return model.PlanItem{
			TaskID:   t.ID,
			Title:    t.Title,
			Priority: t.Priority,
			Start:    model.UnscheduledTime,
			End:      model.UnscheduledTime,
			Status:   model.PlanStatusUnscheduled,
			Reason:   failure,
		}
	}

	end := start + t.DurationMinutes
	*occupied = append(*occupied, interval{start: start, end: end})
	placed[t.ID] = struct{}{}

	return model.PlanItem{
		TaskID:   t.ID,
		Title:    t.Title,
		Priority: t.Priority,
		Start:    start,
		End:      end,
		Status:   model.PlanStatusScheduled,
		Reason:   ReasonScheduled,
	}
}

// findBestTime tries the task's window start first, then probes forward in
// fixed increments up to the probe limit. Every candidate is checked against
// the task window, owner availability and all previously occupied intervals.
func (uc *implUseCase) findBestTime(t *model.Task, occupied []interval, avail model.TimeWindow) (int, bool, string) {
	sawAvailability := false

	for probe := 0; probe <= uc.cfg.ProbeLimit; probe++ {
		start := t.Window.Start + probe*uc.cfg.ProbeStepMinutes
		end := start + t.DurationMinutes

		if end > t.Window.End {
			break
		}
		if start < avail.Start || end > avail.End {
			continue
		}
		sawAvailability = true
		if !overlapsAny(start, end, occupied) {
			return start, true, ""
		}
	}

	if !sawAvailability {
		return 0, false, reasonNoAvailability
	}
	return 0, false, reasonWindowExhausted
}

// fillGap fits a flexible task into the first gap, in time order, that lies
// within the task's window and is large enough for its duration. The chosen
// gap is shrunk or split around the committed interval.
func (uc *implUseCase) fillGap(t *model.Task, gaps []interval, placed map[string]struct{}) (model.PlanItem, []interval) {
	for i, g := range gaps {
		start := g.start
		if t.Window.Start > start {
			start = t.Window.Start
		}
		end := start + t.DurationMinutes
		if end > g.end || end > t.Window.End || start < g.start {
			continue
		}

		placed[t.ID] = struct{}{}
		return model.PlanItem{
			TaskID:   t.ID,
			Title:    t.Title,
			Priority: t.Priority,
			Start:    start,
			End:      end,
			Status:   model.PlanStatusScheduled,
			Reason:   ReasonGapFilled,
		}, splitGap(gaps, i, start, end, uc.cfg.MinGapMinutes)
	}

	return model.PlanItem{
		TaskID:   t.ID,
		Title:    t.Title,
		Priority: t.Priority,
		Start:    model.UnscheduledTime,
		End:      model.UnscheduledTime,
		Status:   model.PlanStatusUnscheduled,
		Reason:   ReasonNoGap,
	}, gaps
}

// deferredItem builds the placement record for a task gated behind unmet
// dependencies, naming each missing prerequisite.
func (uc *implUseCase) deferredItem(t *model.Task, placed map[string]struct{}) model.PlanItem {
	var missing []string
	for _, dep := range t.DependsOn {
		if _, ok := placed[dep]; ok {
			continue
		}
		if depTask, ok := uc.tasks[dep]; ok {
			missing = append(missing, depTask.Title)
		} else {
			missing = append(missing, dep)
		}
	}

	return model.PlanItem{
		TaskID:   t.ID,
		Title:    t.Title,
		Priority: t.Priority,
		Start:    model.UnscheduledTime,
		End:      model.UnscheduledTime,
		Status:   model.PlanStatusDeferred,
		Reason:   reasonWaitingPrefix + strings.Join(missing, ", "),
	}
}

// titlesOf renders the titles of the given task ids in insertion order.
func (uc *implUseCase) titlesOf(ids map[string]struct{}) string {
	var titles []string
	for _, id := range uc.order {
		if _, ok := ids[id]; ok {
			titles = append(titles, uc.tasks[id].Title)
		}
	}
	return strings.Join(titles, ", ")
}

// assemblePlan orders the final items: scheduled first by committed start
// time, then deferred and unscheduled items in placement-attempt order.
func (uc *implUseCase) assemblePlan(itemsByID map[string]model.PlanItem, attemptOrder []string) planner.GeneratePlanOutput {
	var scheduled, rest []model.PlanItem
	for _, id := range attemptOrder {
		item := itemsByID[id]
		if item.Scheduled() {
			scheduled = append(scheduled, item)
		} else {
			rest = append(rest, item)
		}
	}
	sort.SliceStable(scheduled, func(i, j int) bool { return scheduled[i].Start < scheduled[j].Start })

	items := make([]model.PlanItem, 0, len(scheduled)+len(rest))
	items = append(items, scheduled...)
	items = append(items, rest...)

	summary := make([]string, 0, len(scheduled))
	for _, item := range scheduled {
		summary = append(summary, fmt.Sprintf("%s - %s (%dmin, %s priority)",
			clockmin.Format(item.Start), item.Title, item.End-item.Start, item.Priority))
	}

	return planner.GeneratePlanOutput{
		PlanID:      uuid.NewString(),
		GeneratedAt: time.Now(),
		Items:       items,
		Summary:     summary,
	}
}
