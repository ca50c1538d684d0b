package middleware

import (
	"hrms/internal/core"
	"hrms/internal/telemetry"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Cors struct {
	trace *telemetry.Trace
}

func NewCors(trace *telemetry.Trace) *Cors {
	return &Cors{trace: trace}
}

// CorsHandler 設定 CORS；token 走 Authorization header，不需要 credentials
func (m *Cors) CorsHandler() gin.HandlerFunc {
	cfg := cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization", "Accept-Encoding", headerRequestID},
		ExposeHeaders:   []string{headerRequestID, "Retry-After"},
	}
	corsHandler := cors.New(cfg)

	type corsMeta struct {
		AllowMethods []string `trace:"http.cors.allow_methods"`
		AllowHeaders []string `trace:"http.cors.allow_headers"`
		AllowAll     bool     `trace:"http.cors.allow_all_origins"`
	}

	return func(c *gin.Context) {
		// ops 路徑不做 tracing，但仍需套用 CORS（避免 preflight 失敗）
		if isOpsEndpoint(c.FullPath()) {
			corsHandler(c)
			return
		}

		_, span, end := m.trace.WithSpan(c.Request.Context(), string(core.SpanCorsMiddleware))
		defer end(nil)

		m.trace.ApplyTraceAttributes(span, corsMeta{
			AllowMethods: cfg.AllowMethods,
			AllowHeaders: cfg.AllowHeaders,
			AllowAll:     cfg.AllowAllOrigins,
		})

		corsHandler(c)
	}
}
