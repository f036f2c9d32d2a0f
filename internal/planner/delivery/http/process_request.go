package http

import (
	"github.com/gin-gonic/gin"
)

// processSetPetReq binds and validates the pet profile body.
func (h *handler) processSetPetReq(c *gin.Context) (setPetReq, error) {
	var req setPetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSetOwnerReq binds and validates the owner profile body.
func (h *handler) processSetOwnerReq(c *gin.Context) (setOwnerReq, error) {
	var req setOwnerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processCreateTaskReq binds and validates the create task body.
func (h *handler) processCreateTaskReq(c *gin.Context) (createTaskReq, error) {
	var req createTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListTasksReq binds the task list query parameters.
func (h *handler) processListTasksReq(c *gin.Context) (listTasksReq, error) {
	var req listTasksReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processConflictsReq binds the conflict sweep query parameters.
func (h *handler) processConflictsReq(c *gin.Context) (conflictsReq, error) {
	var req conflictsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processExportPlanReq binds and validates the export body.
func (h *handler) processExportPlanReq(c *gin.Context) (exportPlanReq, error) {
	var req exportPlanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
