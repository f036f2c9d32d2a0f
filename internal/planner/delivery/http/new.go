package http

import (
	"github.com/gin-gonic/gin"

	"pawpal-planner/internal/planner"
	"pawpal-planner/pkg/log"
)

// Handler is the public interface for the planner HTTP delivery layer.
type Handler interface {
	SetPet(c *gin.Context)
	SetOwner(c *gin.Context)
	CreateTask(c *gin.Context)
	DeleteTask(c *gin.Context)
	ClearTasks(c *gin.Context)
	ListTasks(c *gin.Context)
	CompleteTask(c *gin.Context)
	GeneratePlan(c *gin.Context)
	PlanDetail(c *gin.Context)
	Conflicts(c *gin.Context)
	ExportPlan(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc planner.UseCase
}

// New creates a new HTTP handler for the planner domain.
func New(l log.Logger, uc planner.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
