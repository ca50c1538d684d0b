package cron

import (
	"context"
	"time"

	"hrms/internal/core"
	"hrms/internal/service"
	"hrms/internal/telemetry"

	"go.uber.org/zap"
)

const leaveGaugeTimeout = 10 * time.Second

// LeaveGaugeJob 將各狀態假單數量寫入 Prometheus gauge
type LeaveGaugeJob struct {
	logger       *zap.Logger
	trace        *telemetry.Trace
	metric       *telemetry.Metric
	leaveService *service.LeaveService
}

func NewLeaveGaugeJob(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	leaveService *service.LeaveService,
) *LeaveGaugeJob {
	return &LeaveGaugeJob{
		logger:       logger,
		trace:        trace,
		metric:       metric,
		leaveService: leaveService,
	}
}

// Run 實作 cron.Job
func (j *LeaveGaugeJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), leaveGaugeTimeout)
	defer cancel()

	ctx, _, end := j.trace.WithSpan(ctx, string(core.SpanLeaveGaugeRefreshJob))
	counts, err := j.leaveService.CountByStatus(ctx)
	if err != nil {
		j.logger.Warn("refresh leave gauge failed", zap.Error(err))
		end(err)
		return
	}
	j.metric.SetLeaveStatus(counts)
	end(nil)
}
