package handler

import (
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

type AuthHandler struct {
	trace       *telemetry.Trace
	authService *service.AuthService
}

func NewAuthHandler(trace *telemetry.Trace, authService *service.AuthService) *AuthHandler {
	return &AuthHandler{trace: trace, authService: authService}
}

// Login 登入
// @Summary 以 email / 密碼登入取得 access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.LoginDto true "登入資訊"
// @Success 200 {object} dto.LoginResponseDto
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 429 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	ctx, span, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.LoginDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.authService.Login(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	h.trace.ApplyTraceAttributes(span, core.TraceAuthMiddlewareMeta{
		Where:      "login",
		EmployeeID: res.Employee.ID.Hex(),
		Role:       string(res.Employee.Role),
		Status:     "success",
	})
	response.Success(c, res)
}

// Logout 登出
// @Summary 撤銷目前的 access token
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} response.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		response.AbortWithError(c, cErr.Unauthorized("Missing access token"))
		return
	}
	if err := h.authService.Logout(ctx, claims); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Logged out successfully"})
}
