package handler

import (
	"strings"

	"hrms/internal/core"
	"hrms/internal/dto"
	"hrms/internal/middleware"
	cErr "hrms/internal/pkg/error"
	"hrms/internal/pkg/response"
	"hrms/internal/service"
	"hrms/internal/telemetry"
	"hrms/utils/validate"

	"github.com/gin-gonic/gin"
)

type LeaveHandler struct {
	trace        *telemetry.Trace
	leaveService *service.LeaveService
}

func NewLeaveHandler(trace *telemetry.Trace, leaveService *service.LeaveService) *LeaveHandler {
	return &LeaveHandler{trace: trace, leaveService: leaveService}
}

// Apply 送出請假
// @Summary 送出請假申請；一般員工只能替自己申請
// @Tags Leave
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.ApplyLeaveDto true "請假資訊"
// @Success 201 {object} dto.LeaveResponseDto
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /leaves [post]
func (h *LeaveHandler) Apply(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.ApplyLeaveDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	employee, err := currentEmployee(c)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	if !employee.Role.CanReview() && !strings.EqualFold(strings.TrimSpace(req.Email), employee.Email) {
		cause := cErr.Forbidden("You can only apply leave for yourself")
		end(cause)
		response.AbortWithError(c, cause)
		return
	}

	leave, err := h.leaveService.ApplyLeave(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, leave)
}

// List 所有請假紀錄
// @Summary 列出所有請假紀錄，可依狀態篩選
// @Tags HR-Leave
// @Security BearerAuth
// @Produce json
// @Param status query string false "pending / approved / rejected"
// @Success 200 {array} dto.LeaveListItemDto
// @Failure 400 {object} response.Response
// @Router /hr/leaves [get]
func (h *LeaveHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	leaves, err := h.leaveService.ListAllLeaves(ctx, core.LeaveStatus(strings.TrimSpace(c.Query("status"))))
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, leaves)
}

// Decide 審核請假
// @Summary 核准或駁回請假；未指定審核人時為呼叫者
// @Tags HR-Leave
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param leaveID path string true "Leave ID"
// @Param body body dto.DecideLeaveDto true "審核結果"
// @Success 200 {object} dto.DecisionResultDto
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /hr/leaves/{leaveID}/decision [patch]
func (h *LeaveHandler) Decide(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseObjectID(c, "leaveID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.DecideLeaveDto
	if cause, respErr = validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	reviewer := strings.TrimSpace(req.ReviewerID)
	if reviewer == "" {
		if employee, ok := middleware.EmployeeFrom(c); ok {
			reviewer = employee.ID.Hex()
		}
	}

	result, err := h.leaveService.Decide(ctx, id, req.Decision, reviewer, req.Comments)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, result)
}
