package router

import (
	"hrms/internal/handler"
	"hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

// HRRouter 需要 hr / admin 角色
type HRRouter struct {
	dashboardHandler   *handler.DashboardHandler
	employeeHandler    *handler.EmployeeHandler
	leaveHandler       *handler.LeaveHandler
	auth               *middleware.Auth
	employeeMiddleware *middleware.Employee
	role               *middleware.Role
}

func NewHRRouter(
	dashboardHandler *handler.DashboardHandler,
	employeeHandler *handler.EmployeeHandler,
	leaveHandler *handler.LeaveHandler,
	auth *middleware.Auth,
	employeeMiddleware *middleware.Employee,
	role *middleware.Role,
) *HRRouter {
	return &HRRouter{
		dashboardHandler:   dashboardHandler,
		employeeHandler:    employeeHandler,
		leaveHandler:       leaveHandler,
		auth:               auth,
		employeeMiddleware: employeeMiddleware,
		role:               role,
	}
}

func (hr *HRRouter) RegisterRoutes(r *gin.Engine) {
	group := r.Group("/hr", hr.auth.Handler(), hr.employeeMiddleware.Handler(), hr.role.RequireReviewer())
	{
		group.GET("/dashboard", hr.dashboardHandler.Summary)

		group.GET("/employees", hr.employeeHandler.List)
		group.POST("/employees", hr.employeeHandler.Create)
		group.GET("/employees/:employeeID", hr.employeeHandler.Get)
		group.PUT("/employees/:employeeID", hr.employeeHandler.Update)
		group.DELETE("/employees/:employeeID", hr.employeeHandler.Delete)
		group.GET("/employees/:employeeID/leaves", hr.employeeHandler.Leaves)

		group.GET("/leaves", hr.leaveHandler.List)
		group.PATCH("/leaves/:leaveID/decision", hr.leaveHandler.Decide)
	}
}
