package middleware

import (
	"fmt"
	"strings"

	"hrms/internal/core"
	cErr "hrms/internal/pkg/error"
	"hrms/internal/pkg/response"
	"hrms/internal/service"
	"hrms/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Auth struct {
	logger      *zap.Logger
	trace       *telemetry.Trace
	authService *service.AuthService
}

func NewAuth(
	logger *zap.Logger,
	trace *telemetry.Trace,
	authService *service.AuthService,
) *Auth {
	return &Auth{
		logger:      logger,
		trace:       trace,
		authService: authService,
	}
}

// Handler 驗證 Bearer access token，成功後將 claims 放入 context
func (middleware *Auth) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanAuthMiddleware))
		var cause error
		meta := core.TraceAuthMiddlewareMeta{
			Where:    "bearer",
			ClientIP: c.ClientIP(),
		}

		raw := readBearerToken(c)
		if raw == "" {
			meta.Status = "missing_token"
			middleware.trace.ApplyTraceAttributes(span, meta)
			cause = cErr.Unauthorized("Missing access token")
			response.AbortWithError(c, cause)
			end(cause)
			return
		}

		claims, err := middleware.authService.ParseToken(ctx, raw)
		if err != nil {
			meta.Status = "invalid_token"
			middleware.trace.ApplyTraceAttributes(span, meta)
			response.AbortWithError(c, err)
			end(err)
			return
		}

		meta.EmployeeID = claims.EmployeeID
		meta.Role = string(claims.Role)
		meta.TokenID = claims.ID
		meta.Status = "success"
		middleware.trace.ApplyTraceAttributes(span, meta)

		traceID := span.SpanContext().TraceID()
		spanID := span.SpanContext().SpanID()
		middleware.logger.Debug("[Auth] token accepted",
			zap.String("employeeId", claims.EmployeeID),
			zap.String("role", string(claims.Role)),
			zap.String("spanId", fmt.Sprintf("%x", spanID[:])),
			zap.String("traceId", fmt.Sprintf("%x", traceID[:])),
		)
		end(nil)

		c.Set(core.ContextClaimsKey, claims)
		c.Next()
	}
}

func readBearerToken(c *gin.Context) string {
	auth := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(auth) < len("Bearer ") || !strings.EqualFold(auth[:len("Bearer ")], "bearer ") {
		return ""
	}
	return strings.TrimSpace(auth[len("Bearer "):])
}

// ClaimsFrom 取得 Auth middleware 設定的 claims
func ClaimsFrom(c *gin.Context) (*core.Claims, bool) {
	raw, ok := c.Get(core.ContextClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := raw.(*core.Claims)
	return claims, ok && claims != nil
}

func employeeIDFrom(c *gin.Context) string {
	if claims, ok := ClaimsFrom(c); ok {
		return claims.EmployeeID
	}
	return ""
}
