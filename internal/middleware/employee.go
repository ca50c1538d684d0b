package middleware

import (
	"hrms/internal/core"
	"hrms/internal/database/mongodb/model"
	cErr "hrms/internal/pkg/error"
	"hrms/internal/pkg/response"
	"hrms/internal/service"
	"hrms/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const ContextEmployeeKey = "employee"

type Employee struct {
	logger          *zap.Logger
	trace           *telemetry.Trace
	employeeService *service.EmployeeService
}

func NewEmployee(
	logger *zap.Logger,
	trace *telemetry.Trace,
	employeeService *service.EmployeeService,
) *Employee {
	return &Employee{
		logger:          logger,
		trace:           trace,
		employeeService: employeeService,
	}
}

// Handler 確認 token 對應的員工仍存在且為 Active；停用或刪除後舊 token 立即失效
func (m *Employee) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span, end := m.trace.WithSpan(c.Request.Context(), string(core.SpanEmployeeMiddleware))

		claims, ok := ClaimsFrom(c)
		if !ok {
			m.trace.ApplyTraceAttributes(span, core.TraceEmployeeMiddlewareMeta{Status: "missing_claims"})
			cause := cErr.Unauthorized("Missing access token")
			response.AbortWithError(c, cause)
			end(cause)
			return
		}

		oid, err := primitive.ObjectIDFromHex(claims.EmployeeID)
		if err != nil {
			m.trace.ApplyTraceAttributes(span, core.TraceEmployeeMiddlewareMeta{
				EmployeeID: claims.EmployeeID,
				Status:     "invalid_employee_id",
			})
			cause := cErr.InvalidSession("invalid session subject")
			response.AbortWithError(c, cause)
			end(cause)
			return
		}

		employee, err := m.employeeService.GetEmployee(ctx, oid)
		if err != nil {
			m.trace.ApplyTraceAttributes(span, core.TraceEmployeeMiddlewareMeta{
				EmployeeID: claims.EmployeeID,
				Status:     "employee_check_failed",
			})
			if cErr.HasCode(err, cErr.NOT_FOUND) {
				err = cErr.InvalidSession("account no longer exists")
			}
			response.AbortWithError(c, err)
			end(err)
			return
		}
		if employee.Status != core.StatusActive {
			m.trace.ApplyTraceAttributes(span, core.TraceEmployeeMiddlewareMeta{
				EmployeeID:     claims.EmployeeID,
				EmployeeStatus: string(employee.Status),
				Status:         "inactive_employee",
			})
			cause := cErr.InvalidSession("account is inactive")
			response.AbortWithError(c, cause)
			end(cause)
			return
		}

		m.trace.ApplyTraceAttributes(span, core.TraceEmployeeMiddlewareMeta{
			EmployeeID:     claims.EmployeeID,
			EmployeeStatus: string(employee.Status),
			Status:         "success",
		})
		end(nil)

		c.Set(ContextEmployeeKey, employee)
		c.Next()
	}
}

// EmployeeFrom 取得 Employee middleware 載入的登入者
func EmployeeFrom(c *gin.Context) (*model.Employee, bool) {
	raw, ok := c.Get(ContextEmployeeKey)
	if !ok {
		return nil, false
	}
	employee, ok := raw.(*model.Employee)
	return employee, ok && employee != nil
}
