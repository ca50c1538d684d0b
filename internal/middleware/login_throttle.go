package middleware

import (
	"context"
	"errors"
	"strconv"

	"hrms/config"
	"hrms/internal/core"
	redisRepo "hrms/internal/database/redis/repository"
	cErr "hrms/internal/pkg/error"
	"hrms/internal/pkg/response"
	"hrms/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type loginAttempts interface {
	Consume(ctx context.Context, subject string, windowSeconds int64, limitCount int) (int, int64, error)
	Reset(ctx context.Context, subject string) error
}

type LoginThrottle struct {
	logger   *zap.Logger
	trace    *telemetry.Trace
	metric   *telemetry.Metric
	config   *config.Configuration
	attempts loginAttempts
}

func NewLoginThrottle(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	config *config.Configuration,
	attempts *redisRepo.LoginAttemptRepository,
) *LoginThrottle {
	return &LoginThrottle{
		logger:   logger,
		trace:    trace,
		metric:   metric,
		config:   config,
		attempts: attempts,
	}
}

// Handler 以 client IP 計算登入嘗試次數；登入成功後重置
// Redis 無法使用時放行，避免整個登入功能中斷
func (m *LoginThrottle) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span, end := m.trace.WithSpan(c.Request.Context(), string(core.SpanLoginThrottle))
		limit, window := m.config.Security.LoginLimit()
		subject := c.ClientIP()
		meta := core.TraceLoginThrottleMeta{
			ClientIP:    subject,
			ConfigLimit: limit,
		}

		remaining, ttl, err := m.attempts.Consume(ctx, subject, window, limit)
		meta.Remaining = remaining
		meta.TTLSeconds = ttl
		switch {
		case errors.Is(err, redisRepo.ErrRateLimitExceeded):
			meta.Blocked = true
			m.trace.ApplyTraceAttributes(span, meta)
			m.metric.IncLoginThrottled()
			m.logger.Warn("[LoginThrottle] too many login attempts",
				zap.String("clientIP", subject),
				zap.Int64("ttl", ttl),
			)
			if ttl > 0 {
				c.Header("Retry-After", strconv.FormatInt(ttl, 10))
			}
			cause := cErr.RateLimitExceeded("Too many login attempts, please try again later")
			response.AbortWithError(c, cause)
			end(cause)
			return
		case err != nil:
			m.logger.Warn("[LoginThrottle] consume failed, allowing request", zap.Error(err))
		}
		m.trace.ApplyTraceAttributes(span, meta)
		end(nil)

		c.Next()

		if len(c.Errors) == 0 && c.Writer.Status() < 400 {
			if err := m.attempts.Reset(c.Request.Context(), subject); err != nil {
				m.logger.Warn("[LoginThrottle] reset failed", zap.Error(err))
			}
		}
	}
}
