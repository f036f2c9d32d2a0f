package http

import (
	"github.com/gin-gonic/gin"

	"pawpal-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	profile := rg.Group("/profile")
	{
		profile.POST("/pet", mw.RateLimit(), h.SetPet)
		profile.POST("/owner", mw.RateLimit(), h.SetOwner)
	}

	tasks := rg.Group("/tasks")
	{
		tasks.POST("", mw.RateLimit(), h.CreateTask)
		tasks.GET("", mw.RateLimit(), h.ListTasks)
		tasks.DELETE("", mw.RateLimit(), h.ClearTasks)
		tasks.DELETE("/:id", mw.RateLimit(), h.DeleteTask)
		tasks.POST("/:id/complete", mw.RateLimit(), h.CompleteTask)
	}

	plan := rg.Group("/plan")
	{
		plan.POST("", mw.RateLimit(), h.GeneratePlan)
		plan.GET("/conflicts", mw.RateLimit(), h.Conflicts)
		plan.POST("/export", mw.RateLimit(), h.ExportPlan)
	}

	rg.GET("/plans/:id", mw.RateLimit(), h.PlanDetail)
}
