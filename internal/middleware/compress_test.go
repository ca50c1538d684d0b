package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"hrms/internal/pkg/response"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNegotiateEncoding(t *testing.T) {
	cases := map[string]string{
		"":                       "",
		"identity":               "",
		"gzip":                   "gzip",
		"gzip, deflate, br":      "br",
		"gzip;q=1.0, zstd;q=0.5": "zstd",
		"br;q=0, gzip":           "gzip",
		"GZIP":                   "gzip",
	}
	for header, want := range cases {
		assert.Equal(t, want, negotiateEncoding(header), "header %q", header)
	}
}

func decompress(t *testing.T, encoding string, body []byte) []byte {
	t.Helper()
	var reader io.Reader
	switch encoding {
	case encodingBrotli:
		reader = brotli.NewReader(bytes.NewReader(body))
	case encodingZstd:
		decoder, err := zstd.NewReader(bytes.NewReader(body))
		require.NoError(t, err)
		defer decoder.Close()
		reader = decoder
	default:
		gz, err := gzip.NewReader(bytes.NewReader(body))
		require.NoError(t, err)
		reader = gz
	}
	out, err := io.ReadAll(reader)
	require.NoError(t, err)
	return out
}

func TestCompress_EncodesEnvelope(t *testing.T) {
	for _, encoding := range supportedEncodings {
		t.Run(encoding, func(t *testing.T) {
			engine := newPipeline()
			engine.GET("/data", func(c *gin.Context) {
				response.Success(c, gin.H{"name": "Jane Smith"})
			})

			req := httptest.NewRequest(http.MethodGet, "/data", nil)
			req.Header.Set("Accept-Encoding", encoding)
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, encoding, w.Header().Get("Content-Encoding"))
			assert.Equal(t, "Accept-Encoding", w.Header().Get("Vary"))
			envelope := decodeEnvelope(t, decompress(t, encoding, w.Body.Bytes()))
			assert.True(t, envelope.Success)
			assert.Equal(t, map[string]any{"name": "Jane Smith"}, envelope.Data)
		})
	}
}

func TestCompress_ErrorEnvelopeIsWrittenOnce(t *testing.T) {
	engine := newPipeline()

	req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	envelope := decodeEnvelope(t, decompress(t, encodingGzip, w.Body.Bytes()))
	assert.False(t, envelope.Success)
}

func TestCompress_NoAcceptEncodingLeavesBodyPlain(t *testing.T) {
	engine := newPipeline()
	engine.GET("/data", func(c *gin.Context) {
		response.Success(c, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/data", nil))

	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.True(t, decodeEnvelope(t, w.Body.Bytes()).Success)
}
