package telemetry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hrms/config"
	"hrms/internal/core"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type decisionMeta struct {
	LeaveID   string            `trace:"leave.id"`
	Days      int               `trace:"leave.days"`
	DecidedAt time.Time         `trace:"leave.decided_at"`
	Labels    map[string]string `trace:"leave.label"`
	Ignored   string
}

func newRecordingTrace() (*Trace, *tracetest.SpanRecorder) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	return &Trace{TracerProvider: tp, ServiceName: "hrms"}, recorder
}

func TestNewTrace_DisabledIsNoop(t *testing.T) {
	tr, cleanup, err := NewTrace(&config.Configuration{})
	require.NoError(t, err)
	defer cleanup()

	_, span, end := tr.WithSpan(context.Background())
	end(nil)

	assert.Nil(t, tr.TracerProvider)
	assert.False(t, span.SpanContext().IsValid())
}

func TestWithSpan_NamesSpanAfterCaller(t *testing.T) {
	tr, recorder := newRecordingTrace()

	_, _, end := tr.WithSpan(context.Background())
	end(errors.New("boom"))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "TestWithSpan_NamesSpanAfterCaller", spans[0].Name())
	assert.Equal(t, "boom", spans[0].Status().Description)
}

func TestWithSpan_GinContextStoresTraceContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tr, recorder := newRecordingTrace()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/hr/leaves", nil)

	ctx, _, end := tr.WithSpan(c, "ListLeaves")
	end(nil)

	assert.Equal(t, ctx, tr.GetTraceContext(c))
	require.Len(t, recorder.Ended(), 1)
	assert.Equal(t, "ListLeaves", recorder.Ended()[0].Name())
}

func TestApplyTraceAttributes(t *testing.T) {
	tr, recorder := newRecordingTrace()
	_, span := tr.StartSpanForLayer(context.Background(), core.TraceSpanName("decide"))

	tr.ApplyTraceAttributes(span, &decisionMeta{
		LeaveID:   "abc",
		Days:      3,
		DecidedAt: time.Date(2024, 2, 5, 9, 30, 0, 0, time.UTC),
		Labels:    map[string]string{"type": "sick"},
		Ignored:   "x",
	})
	span.End()

	attrs := map[string]string{}
	for _, kv := range recorder.Ended()[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, map[string]string{
		"leave.id":         "abc",
		"leave.days":       "3",
		"leave.decided_at": "2024-02-05T09:30:00Z",
		"leave.label.type": "sick",
	}, attrs)
}

func TestPrettifyFuncName(t *testing.T) {
	cases := map[string]string{
		"hrms/internal/service.(*LeaveService).Decide":     "LeaveService.Decide",
		"hrms/internal/handler.(*LeaveHandler).Apply-fm":   "LeaveHandler.Apply",
		"hrms/internal/middleware.(*Auth).Handler.func1":   "Auth.Handler",
		"hrms/internal/service.(*Store[go.shape.int]).Get": "Store.Get",
	}
	for input, want := range cases {
		assert.Equal(t, want, prettifyFuncName(input), input)
	}
}

func TestNewSampler(t *testing.T) {
	assert.Equal(t, sdktrace.AlwaysSample().Description(), newSampler(0).Description())
	assert.Equal(t, sdktrace.AlwaysSample().Description(), newSampler(1).Description())
	assert.Contains(t, newSampler(0.25).Description(), "TraceIDRatioBased{0.25}")
}
