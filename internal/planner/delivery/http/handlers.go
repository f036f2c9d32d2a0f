package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pawpal-planner/internal/planner"
	"pawpal-planner/pkg/response"
)

// SetPet godoc
// @Summary     Set the pet profile
// @Description Stores the pet whose care tasks are being planned.
// @Tags        Profile
// @Accept      json
// @Produce     json
// @Param       body body setPetReq true "Pet profile"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/planner/profile/pet [POST]
func (h *handler) SetPet(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetPetReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SetPet(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SetPet: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, gin.H{"pet": output.Pet})
}

// SetOwner godoc
// @Summary     Set the owner profile
// @Description Stores the owner whose availability bounds every placement.
// @Tags        Profile
// @Accept      json
// @Produce     json
// @Param       body body setOwnerReq true "Owner profile"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/planner/profile/owner [POST]
func (h *handler) SetOwner(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetOwnerReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SetOwner(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.SetOwner: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, gin.H{"owner": output.Owner})
}

// CreateTask godoc
// @Summary     Add a care task
// @Description Validates and stores a task. All structural defects are reported together; a failing task is never stored.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createTaskReq true "Task data"
// @Success     200 {object} createTaskResp
// @Failure     400 {object} response.Resp "Validation errors"
// @Router      /api/v1/planner/tasks [POST]
func (h *handler) CreateTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateTaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.AddTask(ctx, input)
	if err != nil {
		var verrs planner.ValidationErrors
		if errors.As(err, &verrs) {
			response.ValidationFailed(c, verrs)
			return
		}
		h.l.Errorf(ctx, "uc.AddTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateTaskResp(output))
}

// DeleteTask godoc
// @Summary     Remove a task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/planner/tasks/{id} [DELETE]
func (h *handler) DeleteTask(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.RemoveTask(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.RemoveTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// ClearTasks godoc
// @Summary     Remove all tasks
// @Description Drops every stored task. Pet and owner profiles are kept.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/planner/tasks [DELETE]
func (h *handler) ClearTasks(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.ClearTasks(ctx); err != nil {
		h.l.Errorf(ctx, "uc.ClearTasks: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// ListTasks godoc
// @Summary     List tasks
// @Description Returns stored tasks with optional completed/pet filters, in insertion order or by window start.
// @Tags        Tasks
// @Produce     json
// @Param       completed    query bool   false "Filter by completion"
// @Param       pet_name     query string false "Filter by pet name"
// @Param       sort_by_time query bool   false "Order by window start"
// @Success     200 {object} listTasksResp
// @Router      /api/v1/planner/tasks [GET]
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListTasksReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListTasks(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTasks: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListTasksResp(output))
}

// CompleteTask godoc
// @Summary     Mark a task complete
// @Description Marks the task completed. Daily and weekly tasks return a fresh successor instance which is not auto-inserted.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} completeTaskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/planner/tasks/{id}/complete [POST]
func (h *handler) CompleteTask(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.MarkTaskComplete(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.MarkTaskComplete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCompleteTaskResp(output))
}

// GeneratePlan godoc
// @Summary     Generate the daily plan
// @Description Runs the placement passes over all active tasks and returns one decision per task with its reason.
// @Tags        Plan
// @Produce     json
// @Success     200 {object} planResp
// @Failure     409 {object} response.Resp "Pet or owner profile missing"
// @Router      /api/v1/planner/plan [POST]
func (h *handler) GeneratePlan(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.GeneratePlan(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.GeneratePlan: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPlanResp(output))
}

// PlanDetail godoc
// @Summary     Get a generated plan
// @Tags        Plan
// @Produce     json
// @Param       id path string true "Plan ID"
// @Success     200 {object} planResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/planner/plans/{id} [GET]
func (h *handler) PlanDetail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.PlanByID(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.PlanByID: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPlanResp(output))
}

// Conflicts godoc
// @Summary     Detect scheduling conflicts
// @Description Read-only sweep over a stored plan reporting overlapping intervals as warnings. Never blocks a plan.
// @Tags        Plan
// @Produce     json
// @Param       plan_id query string true "Plan ID"
// @Success     200 {object} conflictsResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/planner/plan/conflicts [GET]
func (h *handler) Conflicts(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processConflictsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.DetectSchedulingConflicts(ctx, planner.DetectConflictsInput{PlanID: req.PlanID})
	if err != nil {
		h.l.Errorf(ctx, "uc.DetectSchedulingConflicts: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, conflictsResp{Warnings: output.Warnings})
}

// ExportPlan godoc
// @Summary     Export a plan to Google Calendar
// @Description Anchors a stored plan's scheduled items to the given ISO date and creates calendar events.
// @Tags        Plan
// @Accept      json
// @Produce     json
// @Param       body body exportPlanReq true "Plan id and target date"
// @Success     200 {object} exportPlanResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     503 {object} response.Resp "Export not configured"
// @Router      /api/v1/planner/plan/export [POST]
func (h *handler) ExportPlan(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportPlanReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ExportPlan(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportPlan: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newExportPlanResp(output))
}
