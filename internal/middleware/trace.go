package middleware

import (
	"net"
	"strconv"
	"strings"
	"time"

	"hrms/config"
	"hrms/internal/core"
	"hrms/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	headerRequestID  = "X-Request-ID"
	contextRequestID = "requestID"
)

type TraceEntry struct {
	trace  *telemetry.Trace
	metric *telemetry.Metric
	conf   *config.Configuration
}

func NewTraceEntry(trace *telemetry.Trace, metric *telemetry.Metric, conf *config.Configuration) *TraceEntry {
	return &TraceEntry{trace: trace, metric: metric, conf: conf}
}

// Handler 必須是第一個 middleware：建立 server span、request id 與計時
func (m *TraceEntry) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(headerRequestID))
		if requestID == "" {
			requestID = newRequestID()
		}
		c.Set(contextRequestID, requestID)
		c.Header(headerRequestID, requestID)

		start := time.Now().UTC()
		if _, exists := c.Get("requestDuration"); !exists {
			c.Set("requestDuration", start)
		}

		endpoint := c.FullPath()
		if isOpsEndpoint(endpoint) {
			c.Next()
			return
		}
		carrier := propagation.HeaderCarrier(c.Request.Header)
		ctx := otel.GetTextMapPropagator().Extract(c.Request.Context(), carrier)
		route := endpoint
		if route == "" {
			route = c.Request.URL.Path
		}
		ctx, span := m.trace.StartSpanForLayer(ctx, core.TraceSpanName(c.Request.Method+" "+route), trace.WithSpanKind(trace.SpanKindServer))
		c.Request = c.Request.WithContext(ctx)
		c.Set(core.ContextTraceKey, ctx)

		peerAddr, peerPort := "", 0
		if host, port, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil {
			peerAddr = host
			if p, err2 := strconv.Atoi(port); err2 == nil {
				peerPort = p
			}
		} else {
			peerAddr = c.ClientIP()
		}

		meta := core.TraceHttpServerMeta{
			ClientAddr:        c.ClientIP(),
			HttpRequestMethod: c.Request.Method,
			HttpRoute:         route,
			UrlPath:           c.Request.URL.Path,
			UrlScheme: func() string {
				if c.Request.TLS != nil {
					return "https"
				}
				return "http"
			}(),
			UserAgent:       c.Request.UserAgent(),
			ServerAddress:   m.conf.App.Name,
			NetworkPeerAddr: peerAddr,
			NetworkPeerPort: peerPort,
			NetworkProtoVer: c.Request.Proto,
			SpanTraceID:     span.SpanContext().TraceID().String(),
		}
		m.trace.ApplyTraceAttributes(span, &meta)

		c.Next()

		statusCode := c.Writer.Status()
		meta.HttpStatusCode = statusCode
		m.trace.ApplyTraceAttributes(span, &meta)

		var spanErr error
		if statusCode >= 400 && len(c.Errors) > 0 {
			spanErr = c.Errors.Last().Err
		}
		m.metric.ObserveRequest(endpoint, strconv.Itoa(statusCode), time.Since(start))
		m.trace.EndSpan(span, spanErr)
	}
}

func newRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// requestIDFrom 取得 TraceEntry 設定的 request id；未經過 TraceEntry 時使用 fallback
func requestIDFrom(c *gin.Context, fallback string) string {
	if v, ok := c.Get(contextRequestID); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	if fallback == "" {
		fallback = newRequestID()
		c.Set(contextRequestID, fallback)
	}
	return fallback
}
