package http

import (
	"time"

	"pawpal-planner/internal/model"
	"pawpal-planner/internal/planner"
	"pawpal-planner/pkg/clockmin"
)

// --- Request DTOs ---

// Time fields accept either a minute-of-day integer string ("510") or a 24h
// clock string ("08:30").

type setPetReq struct {
	Name        string            `json:"name"        binding:"required,min=1,max=255"`
	Species     string            `json:"species"     binding:"required,oneof=dog cat other"`
	Needs       []string          `json:"needs"`
	Preferences map[string]string `json:"preferences"`
}

func (r setPetReq) toInput() planner.SetPetInput {
	return planner.SetPetInput{
		Name:        r.Name,
		Species:     model.Species(r.Species),
		Needs:       r.Needs,
		Preferences: r.Preferences,
	}
}

type setOwnerReq struct {
	Name              string            `json:"name" binding:"required,min=1,max=255"`
	AvailabilityStart string            `json:"availability_start"`
	AvailabilityEnd   string            `json:"availability_end"`
	Preferences       map[string]string `json:"preferences"`
}

func (r setOwnerReq) toInput() (planner.SetOwnerInput, error) {
	window, err := parseWindow(r.AvailabilityStart, r.AvailabilityEnd)
	if err != nil {
		return planner.SetOwnerInput{}, err
	}
	return planner.SetOwnerInput{
		Name:         r.Name,
		Availability: window,
		Preferences:  r.Preferences,
	}, nil
}

type createTaskReq struct {
	Title           string   `json:"title"            binding:"required,min=1,max=255"`
	Type            string   `json:"type"             binding:"max=64"`
	WindowStart     string   `json:"window_start"`
	WindowEnd       string   `json:"window_end"`
	DurationMinutes int      `json:"duration_minutes" binding:"required"`
	Priority        string   `json:"priority"         binding:"required"`
	Flexible        bool     `json:"flexible"`
	DependsOn       []string `json:"depends_on"`
	Recurrence      string   `json:"recurrence"       binding:"omitempty,oneof=none daily weekly"`
	Notes           string   `json:"notes"            binding:"max=1000"`
}

func (r createTaskReq) toInput() (planner.AddTaskInput, error) {
	start := r.WindowStart
	if start == "" {
		start = "0"
	}
	end := r.WindowEnd
	if end == "" {
		end = "1440"
	}
	window, err := parseWindow(start, end)
	if err != nil {
		return planner.AddTaskInput{}, err
	}

	return planner.AddTaskInput{
		Title:           r.Title,
		Type:            r.Type,
		Window:          window,
		DurationMinutes: r.DurationMinutes,
		Priority:        model.Priority(r.Priority),
		Flexible:        r.Flexible,
		DependsOn:       r.DependsOn,
		Recurrence:      model.Recurrence(r.Recurrence),
		Notes:           r.Notes,
	}, nil
}

type listTasksReq struct {
	Completed  *bool   `form:"completed"`
	PetName    *string `form:"pet_name"`
	SortByTime bool    `form:"sort_by_time"`
}

func (r listTasksReq) toInput() planner.ListTasksInput {
	return planner.ListTasksInput{
		Completed:  r.Completed,
		PetName:    r.PetName,
		SortByTime: r.SortByTime,
	}
}

type conflictsReq struct {
	PlanID string `form:"plan_id" binding:"required"`
}

type exportPlanReq struct {
	PlanID string `json:"plan_id" binding:"required"`
	Date   string `json:"date"    binding:"required"`
}

func (r exportPlanReq) toInput() planner.ExportPlanInput {
	return planner.ExportPlanInput{PlanID: r.PlanID, Date: r.Date}
}

func parseWindow(startValue, endValue string) (model.TimeWindow, error) {
	if startValue == "" && endValue == "" {
		return model.TimeWindow{}, nil
	}
	start, err := clockmin.Parse(startValue)
	if err != nil {
		return model.TimeWindow{}, err
	}
	end, err := clockmin.Parse(endValue)
	if err != nil {
		return model.TimeWindow{}, err
	}
	return model.TimeWindow{Start: start, End: end}, nil
}

// --- Response DTOs ---

type taskResp struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Type            string   `json:"type,omitempty"`
	WindowStart     int      `json:"window_start"`
	WindowEnd       int      `json:"window_end"`
	WindowLabel     string   `json:"window_label"`
	DurationMinutes int      `json:"duration_minutes"`
	Priority        string   `json:"priority"`
	Flexible        bool     `json:"flexible"`
	DependsOn       []string `json:"depends_on,omitempty"`
	Recurrence      string   `json:"recurrence"`
	Completed       bool     `json:"completed"`
	Notes           string   `json:"notes,omitempty"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:              t.ID,
		Title:           t.Title,
		Type:            t.Type,
		WindowStart:     t.Window.Start,
		WindowEnd:       t.Window.End,
		WindowLabel:     clockmin.Format(t.Window.Start) + " - " + clockmin.Format(t.Window.End),
		DurationMinutes: t.DurationMinutes,
		Priority:        string(t.Priority),
		Flexible:        t.Flexible,
		DependsOn:       t.DependsOn,
		Recurrence:      string(t.Recurrence),
		Completed:       t.Completed,
		Notes:           t.Notes,
	}
}

type createTaskResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateTaskResp(out planner.AddTaskOutput) createTaskResp {
	return createTaskResp{Task: newTaskResp(out.Task)}
}

type listTasksResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListTasksResp(out planner.ListTasksOutput) listTasksResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listTasksResp{Tasks: tasks, Total: out.Total}
}

type planItemResp struct {
	TaskID     string `json:"task_id"`
	Title      string `json:"title"`
	Priority   string `json:"priority"`
	Start      int    `json:"start"`
	End        int    `json:"end"`
	StartLabel string `json:"start_label,omitempty"`
	EndLabel   string `json:"end_label,omitempty"`
	Status     string `json:"status"`
	Reason     string `json:"reason"`
}

func newPlanItemResp(item model.PlanItem) planItemResp {
	resp := planItemResp{
		TaskID:   item.TaskID,
		Title:    item.Title,
		Priority: string(item.Priority),
		Start:    item.Start,
		End:      item.End,
		Status:   string(item.Status),
		Reason:   item.Reason,
	}
	if item.Scheduled() {
		resp.StartLabel = clockmin.Format(item.Start)
		resp.EndLabel = clockmin.Format(item.End)
	}
	return resp
}

type planResp struct {
	PlanID      string         `json:"plan_id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Items       []planItemResp `json:"items"`
	Summary     []string       `json:"summary"`
}

func (h *handler) newPlanResp(out planner.GeneratePlanOutput) planResp {
	items := make([]planItemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = newPlanItemResp(item)
	}
	return planResp{
		PlanID:      out.PlanID,
		GeneratedAt: out.GeneratedAt,
		Items:       items,
		Summary:     out.Summary,
	}
}

type conflictsResp struct {
	Warnings []string `json:"warnings"`
}

type completeTaskResp struct {
	Completed taskResp  `json:"completed"`
	Next      *taskResp `json:"next,omitempty"`
}

func (h *handler) newCompleteTaskResp(out planner.MarkCompleteOutput) completeTaskResp {
	resp := completeTaskResp{Completed: newTaskResp(out.Completed)}
	if out.Next != nil {
		next := newTaskResp(*out.Next)
		resp.Next = &next
	}
	return resp
}

type exportedEventResp struct {
	TaskID   string `json:"task_id"`
	Title    string `json:"title"`
	HTMLLink string `json:"html_link"`
}

type exportPlanResp struct {
	Events  []exportedEventResp `json:"events"`
	Skipped int                 `json:"skipped"`
}

func (h *handler) newExportPlanResp(out planner.ExportPlanOutput) exportPlanResp {
	events := make([]exportedEventResp, len(out.Events))
	for i, ev := range out.Events {
		events[i] = exportedEventResp{TaskID: ev.TaskID, Title: ev.Title, HTMLLink: ev.HTMLLink}
	}
	return exportPlanResp{Events: events, Skipped: out.Skipped}
}
