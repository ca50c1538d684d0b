package core

const ContextTraceKey = "telemetry_trace_ctx"

// ==== 型別安全 span name ====
type TraceSpanName string

const (
	SpanHttpRequest          TraceSpanName = "http_request"
	SpanLoggerMiddleware     TraceSpanName = "logger_middleware"
	SpanRecoveryMiddleware   TraceSpanName = "recovery_middleware"
	SpanCorsMiddleware       TraceSpanName = "cors_middleware"
	SpanResponseMiddleware   TraceSpanName = "response_middleware"
	SpanAuthMiddleware       TraceSpanName = "auth_middleware"
	SpanRoleMiddleware       TraceSpanName = "role_middleware"
	SpanLoginThrottle        TraceSpanName = "login_throttle_middleware"
	SpanEmployeeMiddleware   TraceSpanName = "employee_middleware"
	SpanCompressMiddleware   TraceSpanName = "compress_middleware"
	SpanLeaveGaugeRefreshJob TraceSpanName = "cron.leave_gauge_refresh"
	SpanSeedCommand          TraceSpanName = "command.seed"
)

// 指標名稱常數
type MetricName string

const (
	MetricHttpRequestsTotal   MetricName = "requests_total"
	MetricHttpRequestDuration MetricName = "request_duration_seconds"
	MetricRequestSuccessTotal MetricName = "request_success_total"
	MetricRequestFailTotal    MetricName = "request_fail_total"
	MetricLoginThrottledTotal MetricName = "login_throttled_total"
	MetricLeaveStatusGauge    MetricName = "leave_requests"
	MetricLeaveDecisionTotal  MetricName = "leave_decisions_total"
)

type MetricLabelName string

const (
	MetricLabelEndpoint MetricLabelName = "endpoint"
	MetricLabelStatus   MetricLabelName = "status"
	MetricLabelReason   MetricLabelName = "reason"
	MetricLabelDecision MetricLabelName = "decision"
)

type LoggerRequestMeta struct {
	Method     string            `trace:"request.method"`
	Path       string            `trace:"request.path"`
	FullPath   string            `trace:"request.full_path"`
	Query      string            `trace:"request.query"`
	Body       string            `trace:"request.body"`
	Host       string            `trace:"http.host"`
	UserAgent  string            `trace:"http.user_agent"`
	ContentLen int64             `trace:"http.request_content_length"`
	Proto      string            `trace:"http.flavor"`
	ClientIP   string            `trace:"net.peer.ip"`
	Headers    map[string]string `trace:"http.request.header"`
	Params     map[string]string `trace:"http.request.param"`
}

// 供 Redis 登入節流 Consume / Reset 使用
type TraceLoginAttemptMeta struct {
	Subject   string `trace:"rl.subject"`
	Limit     int    `trace:"rl.limit_count"`
	WindowSec int64  `trace:"rl.window_sec"`
	Remaining int    `trace:"rl.remaining,omitempty"`
	TTL       int64  `trace:"rl.ttl_sec,omitempty"`
	Op        string `trace:"rl.op"` // "consume" / "reset"
}

type TraceTokenBlacklistMeta struct {
	TokenID string `trace:"token.jti"`
	TTLSec  int64  `trace:"token.ttl_sec,omitempty"`
	Revoked bool   `trace:"token.revoked"`
	Op      string `trace:"op"`
}

type TraceEmployeeListMeta struct {
	ExcludeRole string `trace:"list.exclude_role,omitempty"`
	ResultCount int    `trace:"result.count"`
}

type TraceLeaveDecisionMeta struct {
	LeaveID        string `trace:"leave.id"`
	Decision       string `trace:"leave.decision"`
	PreviousStatus string `trace:"leave.previous_status"`
	ReviewerID     string `trace:"leave.reviewer_id,omitempty"`
	Overridden     bool   `trace:"leave.overridden"`
}

type TraceLeaveApplyMeta struct {
	EmployeeID string `trace:"employee.id"`
	LeaveType  string `trace:"leave.type"`
	Days       int    `trace:"leave.days"`
}

type TraceAuthMiddlewareMeta struct {
	Where      string `trace:"auth.where"`
	ClientIP   string `trace:"net.peer.ip,omitempty"`
	EmployeeID string `trace:"auth.employee_id,omitempty"`
	Role       string `trace:"auth.role,omitempty"`
	TokenID    string `trace:"auth.token_id,omitempty"`
	Status     string `trace:"auth.status,omitempty"`
}

type TraceEmployeeMiddlewareMeta struct {
	EmployeeID     string `trace:"auth.employee_id,omitempty"`
	EmployeeStatus string `trace:"auth.employee_status,omitempty"`
	Status         string `trace:"auth.status,omitempty"`
}

type TraceLoginThrottleMeta struct {
	ClientIP    string `trace:"net.peer.ip"`
	ConfigLimit int    `trace:"ratelimit.config.limit"`
	Remaining   int    `trace:"ratelimit.remaining"`
	TTLSeconds  int64  `trace:"ratelimit.ttl_sec"`
	Blocked     bool   `trace:"ratelimit.blocked"`
}

type TracePanicMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	ClientIP   string  `trace:"net.peer.ip"`
	UserAgent  string  `trace:"http.user_agent"`
	DurationMs float64 `trace:"response.latency_ms"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"error.message"`
	Stack      string  `trace:"error.stack"`
}

type TraceErrorMeta struct {
	Code       int     `trace:"error.code"`
	Message    string  `trace:"error.message"`
	Detail     string  `trace:"error.detail"`
	Status     int     `trace:"http.status_code"`
	DurationMs float64 `trace:"response.latency_ms"`
}

type TraceResponseMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"response.message"`
	Code       int     `trace:"response.code"`
	DurationMs float64 `trace:"response.latency_ms"`
	Data       string  `trace:"response.data_preview"`
}

type TraceHttpServerMeta struct {
	ClientAddr        string `trace:"client.address"`
	HttpRequestMethod string `trace:"http.request.method"`
	HttpRoute         string `trace:"http.route"`
	UrlPath           string `trace:"http.request.path"`
	UrlScheme         string `trace:"http.request.url.scheme"`
	UserAgent         string `trace:"user_agent.original"`
	ServerAddress     string `trace:"server.address"`
	NetworkPeerAddr   string `trace:"network.peer.address"`
	NetworkPeerPort   int    `trace:"network.peer.port"`
	NetworkProtoVer   string `trace:"network.protocol.version"`
	SpanTraceID       string `trace:"span.trace_id"`
	HttpStatusCode    int    `trace:"http.response.status_code"`
}

type TraceCompressMeta struct {
	Encoding string `trace:"http.response.content_encoding"`
	Accept   string `trace:"http.request.accept_encoding"`
}

type TraceSeedMeta struct {
	Email   string `trace:"seed.email"`
	Created bool   `trace:"seed.created"`
}
