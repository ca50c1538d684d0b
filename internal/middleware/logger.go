package middleware

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"strings"
	"time"
	"unicode/utf8"

	"hrms/config"
	"hrms/internal/core"
	"hrms/internal/database/fluentd/model"
	"hrms/internal/database/fluentd/repository"
	"hrms/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	maskedValue      = "******"
	bodyPreviewLimit = 2000
)

// 寫入 log 前需遮蔽的欄位（小寫比對）
var sensitiveFields = map[string]struct{}{
	"password":        {},
	"currentpassword": {},
	"newpassword":     {},
	"accesstoken":     {},
}

type Logger struct {
	logger            *zap.Logger
	trace             *telemetry.Trace
	config            *config.Configuration
	fluentdRepository *repository.LogRepository
}

func NewLogger(
	logger *zap.Logger,
	trace *telemetry.Trace,
	config *config.Configuration,
	fluentdRepository *repository.LogRepository,
) *Logger {
	return &Logger{
		logger:            logger,
		trace:             trace,
		config:            config,
		fluentdRepository: fluentdRepository,
	}
}

// LoggerHandler 記錄每個請求的詳細資訊；JSON body 內的密碼欄位一律遮蔽
func (m *Logger) LoggerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		endpoint := c.FullPath()
		if isOpsEndpoint(endpoint) {
			c.Next()
			return
		}

		ctx, span, end := m.trace.WithSpan(c.Request.Context(), string(core.SpanLoggerMiddleware))

		ct := c.GetHeader("Content-Type")

		requestTime := time.Now().UTC()
		if startTime, exists := c.Get("requestDuration"); exists {
			if t, ok := startTime.(time.Time); ok {
				requestTime = t
			}
		}

		mediaType, _, _ := mime.ParseMediaType(ct)

		var bodyRaw string
		if c.Request.Body != nil && c.Request.ContentLength != 0 {
			// 讀完整 body 後回填，確保下游仍可讀取
			data, _ := io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewReader(data))

			if strings.HasPrefix(mediaType, "application/json") {
				bodyRaw = toSafePreview(maskJSONBody(data), bodyPreviewLimit)
			} else {
				bodyRaw = fmt.Sprintf("(%s, %d bytes)", mediaType, len(data))
			}
		}

		method := c.Request.Method
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery
		traceID := span.SpanContext().TraceID()
		spanID := span.SpanContext().SpanID()

		// headers → map[string]string（lowercase key），Authorization 不落地
		headerMap := make(map[string]string, len(c.Request.Header))
		for k, v := range c.Request.Header {
			lk := strings.ToLower(k)
			if lk == "authorization" || lk == "cookie" {
				headerMap[lk] = maskedValue
				continue
			}
			headerMap[lk] = strings.Join(v, ",")
		}

		paramsMap := make(map[string]string, len(c.Params))
		for _, p := range c.Params {
			paramsMap[p.Key] = p.Value
		}

		meta := core.LoggerRequestMeta{
			Method:     method,
			Path:       path,
			FullPath:   endpoint,
			Query:      query,
			Body:       bodyRaw,
			Host:       c.Request.Host,
			UserAgent:  c.Request.UserAgent(),
			ContentLen: c.Request.ContentLength,
			Proto:      c.Request.Proto,
			ClientIP:   c.ClientIP(),
			Headers:    headerMap,
			Params:     paramsMap,
		}
		m.trace.ApplyTraceAttributes(span, meta)

		logFields := []zap.Field{
			zap.String("method", method),
			zap.String("path", path),
			zap.Any("headers", headerMap),
		}
		if query != "" {
			logFields = append(logFields, zap.String("query", query))
		}
		if len(paramsMap) > 0 {
			logFields = append(logFields, zap.Any("params", paramsMap))
		}
		if bodyRaw != "" {
			logFields = append(logFields, zap.String("body", bodyRaw))
		}
		logFields = append(logFields, zap.String("spanId", fmt.Sprintf("%x", spanID[:])))
		logFields = append(logFields, zap.String("traceId", fmt.Sprintf("%x", traceID[:])))

		m.logger.Info("[Request] logging middleware message", logFields...)

		requestLog := model.RequestLog{
			RequestID: requestIDFrom(c, traceID.String()),
			Method:    method,
			Path:      path,
			RequestTS: requestTime.UTC().Format(timestampLayout),
			Body:      bodyRaw,
			ClientIP:  c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
			Version:   m.config.App.Version,
		}
		if err := m.fluentdRepository.LogRequest(ctx, requestLog); err != nil {
			m.logger.Warn("fluentd request log failed", zap.Error(err))
		}
		end(nil)
		c.Next()
	}
}

func isOpsEndpoint(endpoint string) bool {
	return strings.HasPrefix(endpoint, "/swagger") ||
		strings.HasPrefix(endpoint, "/metrics") ||
		strings.HasPrefix(endpoint, "/version") ||
		strings.HasPrefix(endpoint, "/health") ||
		strings.HasPrefix(endpoint, "/debug/pprof")
}

// maskJSONBody 非 JSON object 時回傳原始內容
func maskJSONBody(data []byte) []byte {
	var body map[string]any
	if err := json.Unmarshal(data, &body); err != nil {
		return data
	}
	maskFields(body)
	masked, err := json.Marshal(body)
	if err != nil {
		return data
	}
	return masked
}

func maskFields(body map[string]any) {
	for key, value := range body {
		if _, ok := sensitiveFields[strings.ToLower(key)]; ok {
			body[key] = maskedValue
			continue
		}
		if nested, ok := value.(map[string]any); ok {
			maskFields(nested)
		}
	}
}

// 僅對文字內容做安全預覽：UTF-8 直接截斷；非 UTF-8 以 Base64 表示
func toSafePreview(b []byte, max int) string {
	if len(b) == 0 {
		return ""
	}
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
