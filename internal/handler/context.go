package handler

import (
	"hrms/internal/database/mongodb/model"
	"hrms/internal/middleware"
	cErr "hrms/internal/pkg/error"

	"github.com/gin-gonic/gin"
)

// currentEmployee 取得 Employee middleware 載入的登入者
func currentEmployee(c *gin.Context) (*model.Employee, error) {
	employee, ok := middleware.EmployeeFrom(c)
	if !ok {
		return nil, cErr.Unauthorized("Missing employee context")
	}
	return employee, nil
}
