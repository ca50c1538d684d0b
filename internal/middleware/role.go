package middleware

import (
	"hrms/internal/core"
	cErr "hrms/internal/pkg/error"
	"hrms/internal/pkg/response"
	"hrms/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Role struct {
	logger *zap.Logger
	trace  *telemetry.Trace
}

func NewRole(logger *zap.Logger, trace *telemetry.Trace) *Role {
	return &Role{logger: logger, trace: trace}
}

// RequireReviewer 僅允許 hr / admin，需掛在 Auth 與 Employee 之後
func (middleware *Role) RequireReviewer() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, span, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanRoleMiddleware))
		meta := core.TraceAuthMiddlewareMeta{Where: "role"}

		employee, ok := EmployeeFrom(c)
		if !ok {
			meta.Status = "missing_employee"
			middleware.trace.ApplyTraceAttributes(span, meta)
			cause := cErr.Unauthorized("Missing access token")
			response.AbortWithError(c, cause)
			end(cause)
			return
		}
		meta.EmployeeID = employee.ID.Hex()
		meta.Role = string(employee.Role)

		// 以目前資料庫中的角色為準，降級後舊 token 立即失去權限
		if !employee.Role.CanReview() {
			meta.Status = "forbidden_role"
			middleware.trace.ApplyTraceAttributes(span, meta)
			middleware.logger.Warn("[Role] access denied",
				zap.String("employeeId", employee.ID.Hex()),
				zap.String("role", string(employee.Role)),
				zap.String("path", c.Request.URL.Path),
			)
			cause := cErr.Forbidden("Access denied. HR role required.")
			response.AbortWithError(c, cause)
			end(cause)
			return
		}

		meta.Status = "success"
		middleware.trace.ApplyTraceAttributes(span, meta)
		end(nil)
		c.Next()
	}
}
