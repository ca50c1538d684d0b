package middleware

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"
	"unicode/utf8"

	"hrms/config"
	"hrms/internal/core"
	"hrms/internal/database/fluentd/model"
	"hrms/internal/database/fluentd/repository"
	cErr "hrms/internal/pkg/error"
	res "hrms/internal/pkg/response"
	"hrms/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const timestampLayout = "2006-01-02 15:04:05.999999 UTC"

type Recovery struct {
	logger            *zap.Logger
	trace             *telemetry.Trace
	metric            *telemetry.Metric
	config            *config.Configuration
	fluentdRepository *repository.LogRepository
}

func NewRecovery(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	config *config.Configuration,
	fluentdRepository *repository.LogRepository,
) *Recovery {
	return &Recovery{
		logger:            logger,
		trace:             trace,
		metric:            metric,
		config:            config,
		fluentdRepository: fluentdRepository,
	}
}

func (middleware *Recovery) ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestTime := time.Now()
		if startTime, exists := c.Get("requestDuration"); exists {
			if t, ok := startTime.(time.Time); ok {
				requestTime = t
			}
		}
		requestID := requestIDFrom(c, "")

		// ---- panic recover 必須在 c.Next() 之前註冊 ----
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			duration := time.Since(requestTime)

			ctx, span, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanRecoveryMiddleware))
			traceID := span.SpanContext().TraceID()
			spanID := span.SpanContext().SpanID()

			meta := core.TracePanicMeta{
				Path:       c.Request.URL.Path,
				Method:     c.Request.Method,
				ClientIP:   c.ClientIP(),
				UserAgent:  c.Request.UserAgent(),
				DurationMs: float64(duration.Milliseconds()),
				Message:    toSafeString(fmt.Sprint(rec)),
				Stack:      toSafeStack(debug.Stack()),
				Status:     http.StatusInternalServerError,
			}
			middleware.trace.ApplyTraceAttributes(span, meta)

			middleware.logger.Error("[PANIC] Recovered",
				zap.String("path", meta.Path),
				zap.String("method", meta.Method),
				zap.String("client_ip", meta.ClientIP),
				zap.String("user_agent", meta.UserAgent),
				zap.Duration("duration", duration),
				zap.String("panic", meta.Message),
				zap.String("stacktrace", meta.Stack),
				zap.String("requestId", requestID),
				zap.String("spanId", fmt.Sprintf("%x", spanID[:])),
				zap.String("traceId", fmt.Sprintf("%x", traceID[:])),
			)

			err := cErr.InternalServer("unexpected panic")
			// 尚未回寫才輸出
			if !c.Writer.Written() {
				res.FailByErr(c, requestID, err)
			}
			middleware.logResponse(ctx, c, requestID, cErr.INTERNAL_ERROR, http.StatusInternalServerError, meta.Message)
			middleware.metric.IncFail("panic")
			end(err)
			c.Abort()
		}()

		// 執行下游
		c.Next()

		// ---- 統一處理非 panic 的 gin errors（若尚未回寫）----
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		duration := time.Since(requestTime)

		ctx, span, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanRecoveryMiddleware))
		traceID := span.SpanContext().TraceID()
		spanID := span.SpanContext().SpanID()

		// 找第一個 *cErr.Error
		for _, e := range c.Errors {
			appErr, ok := e.Err.(*cErr.Error)
			if !ok {
				continue
			}
			middleware.trace.ApplyTraceAttributes(span, core.TraceErrorMeta{
				Code:       appErr.ErrorCode(),
				Message:    appErr.Error(),
				Detail:     appErr.ErrorDesc(),
				DurationMs: float64(duration.Milliseconds()),
				Status:     appErr.HttpCode(),
			})
			fields := []zap.Field{
				zap.Int("code", appErr.ErrorCode()),
				zap.String("data", appErr.ErrorDesc()),
				zap.String("path", c.Request.URL.Path),
				zap.Duration("duration", duration),
				zap.String("requestId", requestID),
				zap.String("spanId", fmt.Sprintf("%x", spanID[:])),
				zap.String("traceId", fmt.Sprintf("%x", traceID[:])),
			}
			if appErr.HttpCode() >= http.StatusInternalServerError {
				middleware.logger.Error(appErr.Error(), fields...)
			} else {
				middleware.logger.Warn(appErr.Error(), fields...)
			}
			res.FailByErr(c, requestID, appErr)
			middleware.logResponse(ctx, c, requestID, appErr.ErrorCode(), appErr.HttpCode(), appErr.Error())
			middleware.metric.IncFail(appErr.Error())
			end(appErr)
			c.Abort()
			return
		}

		// 其餘未知錯誤
		unknown := c.Errors.String()
		middleware.trace.ApplyTraceAttributes(span, core.TraceErrorMeta{
			Code:       cErr.INTERNAL_ERROR,
			Message:    "unknown-error",
			Detail:     toSafeString(unknown),
			DurationMs: float64(duration.Milliseconds()),
			Status:     http.StatusInternalServerError,
		})
		middleware.logger.Error("[ERROR] unknown",
			zap.String("error", unknown),
			zap.Duration("duration", duration),
			zap.String("requestId", requestID),
			zap.String("spanId", fmt.Sprintf("%x", spanID[:])),
			zap.String("traceId", fmt.Sprintf("%x", traceID[:])),
		)
		// 內部錯誤細節只留在 log
		res.Fail(c, requestID, http.StatusInternalServerError, cErr.INTERNAL_ERROR, "internal-server-error", "unexpected error")
		middleware.logResponse(ctx, c, requestID, cErr.INTERNAL_ERROR, http.StatusInternalServerError, toSafeString(unknown))
		middleware.metric.IncFail("unknown")
		end(c.Errors.Last().Err)
		c.Abort()
	}
}

func (middleware *Recovery) logResponse(ctx context.Context, c *gin.Context, requestID string, code int, status int, message string) {
	if isOpsEndpoint(c.FullPath()) {
		return
	}
	err := middleware.fluentdRepository.LogResponse(ctx, model.ResponseLog{
		RequestID:  requestID,
		EmployeeID: employeeIDFrom(c),
		Code:       code,
		StatusCode: status,
		Error:      message,
		ResponseTS: time.Now().UTC().Format(timestampLayout),
		Version:    middleware.config.App.Version,
	})
	if err != nil {
		middleware.logger.Warn("fluentd response log failed", zap.Error(err))
	}
}

// ---- helpers ----

func toSafeString(s string) string {
	const max = 8000
	if utf8.ValidString(s) {
		if len(s) > max {
			return s[:max] + "…"
		}
		return s
	}
	b := []byte(s)
	if len(b) > max {
		b = b[:max]
	}
	return "b64:" + base64.StdEncoding.EncodeToString(b)
}

func toSafeStack(b []byte) string {
	const max = 16000
	if utf8.Valid(b) {
		if len(b) > max {
			return string(b[:max]) + "…"
		}
		return string(b)
	}
	if len(b) > max {
		b = b[:max]
	}
	return "b64:" + base64.StdEncoding.EncodeToString(b)
}
