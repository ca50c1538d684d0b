package telemetry

import (
	"time"

	"hrms/config"
	"hrms/internal/core"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric 未啟用時所有欄位為 nil，方法皆可安全呼叫
type Metric struct {
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec
	RequestSuccessTotal *prometheus.CounterVec
	RequestFailTotal    *prometheus.CounterVec
	LoginThrottledTotal prometheus.Counter
	LeaveStatusGauge    *prometheus.GaugeVec
	LeaveDecisionTotal  *prometheus.CounterVec
	config              *config.Configuration
}

// NewMetric 建立所有指標
func NewMetric(config *config.Configuration) *Metric {
	if config == nil || !config.Telemetry.Metric.Enabled {
		return &Metric{}
	}
	buckets := prometheus.DefBuckets
	if len(config.Telemetry.Metric.Buckets) > 0 {
		buckets = config.Telemetry.Metric.Buckets
	}
	return &Metric{
		config: config,
		HttpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricName(config, core.MetricHttpRequestsTotal),
				Help: "Total received API requests",
			},
			labelNames(core.MetricLabelEndpoint, core.MetricLabelStatus),
		),
		HttpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricName(config, core.MetricHttpRequestDuration),
				Help:    "API request duration (seconds)",
				Buckets: buckets,
			},
			labelNames(core.MetricLabelEndpoint),
		),
		RequestSuccessTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricName(config, core.MetricRequestSuccessTotal),
				Help: "Successful API responses",
			},
			labelNames(core.MetricLabelEndpoint, core.MetricLabelStatus),
		),
		RequestFailTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricName(config, core.MetricRequestFailTotal),
				Help: "Failed API responses by error kind",
			},
			labelNames(core.MetricLabelReason),
		),
		LoginThrottledTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: metricName(config, core.MetricLoginThrottledTotal),
				Help: "Login attempts rejected by the per-IP throttle",
			},
		),
		LeaveStatusGauge: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: metricName(config, core.MetricLeaveStatusGauge),
				Help: "Current number of leave requests by status",
			},
			labelNames(core.MetricLabelStatus),
		),
		LeaveDecisionTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricName(config, core.MetricLeaveDecisionTotal),
				Help: "Leave decisions recorded",
			},
			labelNames(core.MetricLabelDecision),
		),
	}
}

func (m *Metric) ObserveRequest(endpoint string, status string, elapsed time.Duration) {
	if m == nil || m.HttpRequestsTotal == nil {
		return
	}
	m.HttpRequestsTotal.WithLabelValues(endpoint, status).Inc()
	m.HttpRequestDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

func (m *Metric) IncSuccess(endpoint string, status string) {
	if m == nil || m.RequestSuccessTotal == nil {
		return
	}
	m.RequestSuccessTotal.WithLabelValues(endpoint, status).Inc()
}

func (m *Metric) IncFail(reason string) {
	if m == nil || m.RequestFailTotal == nil {
		return
	}
	m.RequestFailTotal.WithLabelValues(reason).Inc()
}

func (m *Metric) IncLoginThrottled() {
	if m == nil || m.LoginThrottledTotal == nil {
		return
	}
	m.LoginThrottledTotal.Inc()
}

func (m *Metric) IncLeaveDecision(decision core.LeaveStatus) {
	if m == nil || m.LeaveDecisionTotal == nil {
		return
	}
	m.LeaveDecisionTotal.WithLabelValues(string(decision)).Inc()
}

// SetLeaveStatus 每個已知狀態都會寫入，缺少的視為 0
func (m *Metric) SetLeaveStatus(counts map[core.LeaveStatus]int64) {
	if m == nil || m.LeaveStatusGauge == nil {
		return
	}
	for _, status := range core.LeaveStatuses {
		m.LeaveStatusGauge.WithLabelValues(string(status)).Set(float64(counts[status]))
	}
}

func metricName(config *config.Configuration, name core.MetricName) string {
	return config.App.Name + "_" + string(name)
}

// labelNames helper: LabelName slice 轉成 []string
func labelNames(labels ...core.MetricLabelName) []string {
	strs := make([]string, len(labels))
	for i, l := range labels {
		strs[i] = string(l)
	}
	return strs
}
