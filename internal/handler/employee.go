package handler

import (
	"hrms/internal/core"
	"hrms/internal/dto"
	"hrms/internal/pkg/response"
	"hrms/internal/service"
	"hrms/internal/telemetry"
	"hrms/utils/validate"

	"github.com/gin-gonic/gin"
)

// EmployeeHandler 人資管理員工名冊
type EmployeeHandler struct {
	trace           *telemetry.Trace
	employeeService *service.EmployeeService
	leaveService    *service.LeaveService
}

func NewEmployeeHandler(
	trace *telemetry.Trace,
	employeeService *service.EmployeeService,
	leaveService *service.LeaveService,
) *EmployeeHandler {
	return &EmployeeHandler{trace: trace, employeeService: employeeService, leaveService: leaveService}
}

// List 員工列表
// @Summary 取得員工列表（新到舊）
// @Tags HR-Employee
// @Security BearerAuth
// @Produce json
// @Param excludeRole query string false "排除的角色，預設 hr；傳空值列出全部"
// @Success 200 {array} model.Employee
// @Failure 400 {object} response.Response
// @Router /hr/employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	ctx, span, end := h.trace.WithSpan(c)
	defer end(nil)

	excludeRole := core.Role(c.DefaultQuery("excludeRole", string(core.RoleHR)))
	employees, err := h.employeeService.ListEmployees(ctx, excludeRole)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	h.trace.ApplyTraceAttributes(span, core.TraceEmployeeListMeta{
		ExcludeRole: string(excludeRole),
		ResultCount: len(employees),
	})
	response.Success(c, employees)
}

// Get 取得員工
// @Summary 取得單一員工
// @Tags HR-Employee
// @Security BearerAuth
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Success 200 {object} model.Employee
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /hr/employees/{employeeID} [get]
func (h *EmployeeHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseObjectID(c, "employeeID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	employee, err := h.employeeService.GetEmployee(ctx, id)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, employee)
}

// Create 新增員工
// @Summary 新增員工（預設密碼由設定決定）
// @Tags HR-Employee
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateEmployeeDto true "員工資料"
// @Success 201 {object} model.Employee
// @Failure 400 {object} response.Response
// @Router /hr/employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.CreateEmployeeDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	employee, err := h.employeeService.AddEmployee(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, employee)
}

// Update 更新員工
// @Summary 部分更新員工資料
// @Tags HR-Employee
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Param body body dto.UpdateEmployeeDto true "更新欄位"
// @Success 200 {object} model.Employee
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /hr/employees/{employeeID} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseObjectID(c, "employeeID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.UpdateEmployeeDto
	if cause, respErr = validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	employee, err := h.employeeService.UpdateEmployee(ctx, id, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, employee)
}

// Delete 刪除員工
// @Summary 刪除員工；既有假單保留
// @Tags HR-Employee
// @Security BearerAuth
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /hr/employees/{employeeID} [delete]
func (h *EmployeeHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseObjectID(c, "employeeID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.employeeService.DeleteEmployee(ctx, id); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Employee deleted successfully"})
}

// Leaves 員工的請假紀錄
// @Summary 列出指定員工的請假紀錄
// @Tags HR-Employee
// @Security BearerAuth
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Success 200 {array} dto.LeaveResponseDto
// @Failure 400 {object} response.Response
// @Router /hr/employees/{employeeID}/leaves [get]
func (h *EmployeeHandler) Leaves(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseObjectID(c, "employeeID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	leaves, err := h.leaveService.ListLeavesForEmployee(ctx, id)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, leaves)
}
