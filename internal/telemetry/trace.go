package telemetry

import (
	"context"
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"time"

	"hrms/config"
	"hrms/internal/core"

	gcppropagator "github.com/GoogleCloudPlatform/opentelemetry-operations-go/propagator"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Trace TracerProvider 為 nil 時所有 span 皆為 noop
type Trace struct {
	TracerProvider *sdktrace.TracerProvider
	ServiceName    string
}

func NewTrace(conf *config.Configuration) (*Trace, func(), error) {
	if conf == nil || !conf.Telemetry.Trace.Enabled {
		return &Trace{}, func() {}, nil
	}
	exporter, err := otlptracehttp.New(context.Background(),
		otlptracehttp.WithInsecure(),
		otlptracehttp.WithEndpointURL(conf.Telemetry.Trace.EndpointUrl),
		otlptracehttp.WithRetry(otlptracehttp.RetryConfig{
			Enabled:         true,
			InitialInterval: 5 * time.Second,
			MaxInterval:     10 * time.Second,
			MaxElapsedTime:  60 * time.Second, // 超過則丟棄
		}),
		otlptracehttp.WithTimeout(30*time.Second),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create otlp exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(newSampler(conf.Telemetry.Trace.SampleRatio)),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(conf.App.Name),
			semconv.ServiceVersion(conf.App.Version),
			semconv.DeploymentEnvironmentName(conf.App.Env),
		)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
			// 只讀 X-Cloud-Trace-Context，不回寫
			gcppropagator.CloudTraceOneWayPropagator{},
		),
	)
	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = tp.Shutdown(ctx)
	}
	return &Trace{
		TracerProvider: tp,
		ServiceName:    conf.App.Name,
	}, cleanup, nil
}

// newSampler ratio 不在 (0,1) 區間時全取樣；上游已取樣的 span 一律跟隨
func newSampler(ratio float64) sdktrace.Sampler {
	if ratio <= 0 || ratio >= 1 {
		return sdktrace.AlwaysSample()
	}
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
}

func (t *Trace) StartSpanForLayer(
	ctx context.Context,
	spanName core.TraceSpanName,
	opts ...trace.SpanStartOption,
) (context.Context, trace.Span) {
	var tracer trace.Tracer
	if t.TracerProvider == nil {
		tracer = noop.NewTracerProvider().Tracer("noop")
	} else {
		tracer = t.TracerProvider.Tracer(t.ServiceName)
	}
	return tracer.Start(ctx, string(spanName), opts...)
}

// handler：父 ctx 取自 gin，span 名稱為 handler 方法名
func (t *Trace) startSpanFromGin(c *gin.Context, name ...string) (context.Context, trace.Span) {
	n := spanNameFromGin(c)
	if len(name) > 0 && strings.TrimSpace(name[0]) != "" {
		n = name[0]
	}
	ctx, span := t.StartSpanForLayer(t.GetTraceContext(c), core.TraceSpanName(n))
	c.Set(core.ContextTraceKey, ctx)
	return ctx, span
}

// service / repository：span 名稱為呼叫者方法名
func (t *Trace) startSpanFromContext(ctx context.Context, name ...string) (context.Context, trace.Span) {
	n := prettifyFuncName(callerFuncName(4))
	if n == "" {
		n = "unknown"
	}
	if len(name) > 0 && strings.TrimSpace(name[0]) != "" {
		n = name[0]
	}
	return t.StartSpanForLayer(ctx, core.TraceSpanName(n))
}

func (t *Trace) startSpanAny(parent any, name ...string) (context.Context, trace.Span) {
	switch p := parent.(type) {
	case *gin.Context:
		return t.startSpanFromGin(p, name...)
	case context.Context:
		return t.startSpanFromContext(p, name...)
	default:
		n := "unknown"
		if len(name) > 0 && strings.TrimSpace(name[0]) != "" {
			n = name[0]
		}
		return t.StartSpanForLayer(context.Background(), core.TraceSpanName(n))
	}
}

// 統一結束 span（含錯誤標註）
func (t *Trace) EndSpan(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// GetTraceContext 取得目前請求最新的 span ctx
func (t *Trace) GetTraceContext(c *gin.Context) context.Context {
	if raw, ok := c.Get(core.ContextTraceKey); ok {
		if ctx, ok := raw.(context.Context); ok {
			return ctx
		}
	}
	return c.Request.Context()
}

// ApplyTraceAttributes 依 `trace` tag 把 meta struct 寫成 span 屬性
func (t *Trace) ApplyTraceAttributes(span trace.Span, obj any) {
	if span == nil || obj == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			span.RecordError(fmt.Errorf("ApplyTraceAttributes panic: %v", r))
		}
	}()
	val := reflect.ValueOf(obj)
	typ := reflect.TypeOf(obj)

	if typ.Kind() == reflect.Ptr {
		val = val.Elem()
		typ = typ.Elem()
	}

	for i := 0; i < typ.NumField(); i++ {
		fieldType := typ.Field(i)
		tag := fieldType.Tag.Get("trace")
		if tag == "" {
			continue
		}

		fieldVal := val.Field(i)
		if !fieldVal.IsValid() || !fieldVal.CanInterface() {
			continue
		}

		switch fieldVal.Kind() {
		case reflect.String:
			span.SetAttributes(attribute.String(tag, fieldVal.String()))
		case reflect.Bool:
			span.SetAttributes(attribute.Bool(tag, fieldVal.Bool()))
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			span.SetAttributes(attribute.Int64(tag, fieldVal.Int()))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			span.SetAttributes(attribute.Int64(tag, int64(fieldVal.Uint())))
		case reflect.Float32, reflect.Float64:
			span.SetAttributes(attribute.Float64(tag, fieldVal.Float()))
		case reflect.Slice, reflect.Array:
			if fieldVal.Type().Elem().Kind() == reflect.String {
				var strs []string
				for j := 0; j < fieldVal.Len(); j++ {
					strs = append(strs, fieldVal.Index(j).String())
				}
				span.SetAttributes(attribute.StringSlice(tag, strs))
			}
		case reflect.Struct:
			if ts, ok := fieldVal.Interface().(time.Time); ok {
				span.SetAttributes(attribute.String(tag, ts.UTC().Format(time.RFC3339)))
				continue
			}
			t.ApplyTraceAttributes(span, fieldVal.Interface())
		case reflect.Ptr:
			if !fieldVal.IsNil() {
				t.ApplyTraceAttributes(span, fieldVal.Interface())
			}
		case reflect.Map:
			// 展開為 tag.key
			if fieldVal.Type().Key().Kind() != reflect.String {
				continue
			}
			for _, key := range fieldVal.MapKeys() {
				attrKey := tag + "." + key.String()
				mapVal := fieldVal.MapIndex(key)
				switch mapVal.Kind() {
				case reflect.String:
					span.SetAttributes(attribute.String(attrKey, mapVal.String()))
				case reflect.Int, reflect.Int64:
					span.SetAttributes(attribute.Int64(attrKey, mapVal.Int()))
				case reflect.Float64, reflect.Float32:
					span.SetAttributes(attribute.Float64(attrKey, mapVal.Float()))
				case reflect.Bool:
					span.SetAttributes(attribute.Bool(attrKey, mapVal.Bool()))
				}
			}
		}
	}
}

// WithSpan parent 可為 *gin.Context 或 context.Context；回傳的 end 可重複呼叫
func (t *Trace) WithSpan(parent any, name ...string) (context.Context, trace.Span, func(error)) {
	ctx, span := t.startSpanAny(parent, name...)
	end := func(err error) {
		t.EndSpan(span, err)
	}
	return ctx, span, end
}

var funcNameReplacer = strings.NewReplacer("(*", "", "(", "", ")", "")

// prettifyFuncName hrms/internal/service.(*LeaveService).Decide → LeaveService.Decide
func prettifyFuncName(full string) string {
	if i := strings.LastIndex(full, "/"); i >= 0 {
		full = full[i+1:]
	}
	full = strings.TrimSuffix(full, "-fm")
	if i := strings.LastIndex(full, ".func"); i >= 0 {
		full = full[:i]
	}
	if i := strings.Index(full, "·"); i >= 0 {
		full = full[:i]
	}
	// 去掉 package 名稱
	if i := strings.Index(full, "."); i >= 0 {
		full = full[i+1:]
	}
	full = funcNameReplacer.Replace(full)
	// 泛型型參
	if i := strings.Index(full, "["); i >= 0 {
		if j := strings.Index(full, "]"); j > i {
			full = full[:i] + full[j+1:]
		}
	}
	return full
}

func spanNameFromGin(c *gin.Context) string {
	if hn := c.HandlerName(); hn != "" {
		return prettifyFuncName(hn)
	}
	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}
	return c.Request.Method + " " + route
}

func callerFuncName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		return fn.Name()
	}
	return ""
}
