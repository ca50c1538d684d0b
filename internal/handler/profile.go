package handler

import (
	"hrms/internal/dto"
	"hrms/internal/pkg/response"
	"hrms/internal/service"
	"hrms/internal/telemetry"
	"hrms/utils/validate"

	"github.com/gin-gonic/gin"
)

// ProfileHandler 登入者自己的資料
type ProfileHandler struct {
	trace           *telemetry.Trace
	employeeService *service.EmployeeService
	leaveService    *service.LeaveService
}

func NewProfileHandler(
	trace *telemetry.Trace,
	employeeService *service.EmployeeService,
	leaveService *service.LeaveService,
) *ProfileHandler {
	return &ProfileHandler{trace: trace, employeeService: employeeService, leaveService: leaveService}
}

// Get 取得個人資料
// @Summary 取得登入者的員工資料
// @Tags Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} model.Employee
// @Failure 401 {object} response.Response
// @Router /profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	_, _, end := h.trace.WithSpan(c)
	defer end(nil)

	employee, err := currentEmployee(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, employee)
}

// Update 更新個人資料
// @Summary 更新姓名、電話、地址
// @Tags Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.UpdateProfileDto true "個人資料"
// @Success 200 {object} model.Employee
// @Failure 400 {object} response.Response
// @Router /profile [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	employee, err := currentEmployee(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	var req dto.UpdateProfileDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	update := req.ToUpdateEmployee()
	updated, err := h.employeeService.UpdateEmployee(ctx, employee.ID, &update)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, updated)
}

// ChangePassword 修改密碼
// @Summary 以目前密碼驗證後設定新密碼
// @Tags Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.ChangePasswordDto true "密碼"
// @Success 200 {object} map[string]string
// @Failure 400 {object} response.Response
// @Router /profile/password [put]
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	employee, err := currentEmployee(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	var req dto.ChangePasswordDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.employeeService.ChangePassword(ctx, employee.ID, req.CurrentPassword, req.NewPassword); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Password updated successfully"})
}

// Leaves 自己的請假紀錄
// @Summary 列出登入者的請假紀錄（新到舊）
// @Tags Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.LeaveResponseDto
// @Router /profile/leaves [get]
func (h *ProfileHandler) Leaves(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	employee, err := currentEmployee(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	leaves, err := h.leaveService.ListLeavesForEmployee(ctx, employee.ID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, leaves)
}
