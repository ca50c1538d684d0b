package middleware

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"hrms/internal/core"
	"hrms/internal/telemetry"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"
)

const (
	encodingBrotli = "br"
	encodingZstd   = "zstd"
	encodingGzip   = "gzip"
)

// 依偏好順序挑選
var supportedEncodings = []string{encodingBrotli, encodingZstd, encodingGzip}

type Compress struct {
	logger *zap.Logger
	trace  *telemetry.Trace
}

func NewCompress(logger *zap.Logger, trace *telemetry.Trace) *Compress {
	return &Compress{logger: logger, trace: trace}
}

// Handler 依 Accept-Encoding 壓縮回應；需在 Recovery / Response 之前註冊
func (m *Compress) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		accept := c.GetHeader("Accept-Encoding")
		encoding := negotiateEncoding(accept)
		if encoding == "" || c.Request.Method == http.MethodHead || strings.HasPrefix(c.Request.URL.Path, "/debug/pprof") {
			c.Next()
			return
		}

		_, span, end := m.trace.WithSpan(c.Request.Context(), string(core.SpanCompressMiddleware))
		m.trace.ApplyTraceAttributes(span, core.TraceCompressMeta{Encoding: encoding, Accept: accept})
		end(nil)

		writer := &compressWriter{ResponseWriter: c.Writer, encoding: encoding}
		c.Writer = writer
		c.Header("Vary", "Accept-Encoding")

		c.Next()

		if err := writer.Close(); err != nil {
			m.logger.Warn("close compress writer failed", zap.String("encoding", encoding), zap.Error(err))
		}
	}
}

// negotiateEncoding 回傳伺服器支援且 q > 0 的最佳編碼
func negotiateEncoding(header string) string {
	if header == "" {
		return ""
	}
	accepted := make(map[string]bool)
	for _, part := range strings.Split(header, ",") {
		fields := strings.Split(strings.TrimSpace(part), ";")
		name := strings.ToLower(strings.TrimSpace(fields[0]))
		allowed := true
		for _, param := range fields[1:] {
			param = strings.TrimSpace(param)
			if !strings.HasPrefix(param, "q=") {
				continue
			}
			if q, err := strconv.ParseFloat(strings.TrimPrefix(param, "q="), 64); err == nil && q <= 0 {
				allowed = false
			}
		}
		accepted[name] = allowed
	}
	for _, encoding := range supportedEncodings {
		if accepted[encoding] {
			return encoding
		}
	}
	return ""
}

// compressWriter 第一次寫入時才建立 encoder，沒有 body 的回應不會被改寫
type compressWriter struct {
	gin.ResponseWriter
	encoding string
	encoder  io.WriteCloser
	size     int
}

func (w *compressWriter) Write(b []byte) (int, error) {
	if w.encoder == nil {
		header := w.ResponseWriter.Header()
		header.Set("Content-Encoding", w.encoding)
		header.Del("Content-Length")
		encoder, err := newEncoder(w.encoding, w.ResponseWriter)
		if err != nil {
			return 0, err
		}
		w.encoder = encoder
	}
	n, err := w.encoder.Write(b)
	w.size += n
	return n, err
}

func (w *compressWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// Written encoder 可能仍在緩衝，以實際寫入量判斷
func (w *compressWriter) Written() bool {
	return w.size > 0 || w.ResponseWriter.Written()
}

func (w *compressWriter) Size() int {
	if w.size > 0 {
		return w.size
	}
	return w.ResponseWriter.Size()
}

func (w *compressWriter) Flush() {
	if f, ok := w.encoder.(interface{ Flush() error }); ok {
		_ = f.Flush()
	}
	w.ResponseWriter.Flush()
}

func (w *compressWriter) Close() error {
	if w.encoder == nil {
		return nil
	}
	return w.encoder.Close()
}

func newEncoder(encoding string, w io.Writer) (io.WriteCloser, error) {
	switch encoding {
	case encodingBrotli:
		return brotli.NewWriterLevel(w, brotli.DefaultCompression), nil
	case encodingZstd:
		return zstd.NewWriter(w)
	default:
		return gzip.NewWriterLevel(w, gzip.DefaultCompression)
	}
}
