package cron

import (
	"context"

	"hrms/config"

	"github.com/google/wire"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewCron, NewLeaveGaugeJob)

// 每分鐘第 0 秒
const defaultRefreshSpec = "0 * * * * *"

type Cron struct {
	logger        *zap.Logger
	config        *config.Configuration
	server        *cron.Cron
	leaveGaugeJob *LeaveGaugeJob
}

// NewCron .
func NewCron(logger *zap.Logger, config *config.Configuration, leaveGaugeJob *LeaveGaugeJob) *Cron {
	server := cron.New(
		cron.WithSeconds(),
		cron.WithChain(cron.Recover(cron.DefaultLogger)),
	)

	return &Cron{
		logger:        logger,
		config:        config,
		server:        server,
		leaveGaugeJob: leaveGaugeJob,
	}
}

func (c *Cron) Run() error {
	spec := c.config.Telemetry.Metric.RefreshSpec
	if spec == "" {
		spec = defaultRefreshSpec
	}
	if c.config.Telemetry.Metric.Enabled {
		if _, err := c.server.AddJob(spec, c.leaveGaugeJob); err != nil {
			return err
		}
		c.logger.Info("leave gauge refresh scheduled", zap.String("spec", spec))
	}

	c.server.Start()
	return nil
}

// Stop 等待執行中的 job 結束或 ctx 逾時
func (c *Cron) Stop(ctx context.Context) error {
	done := c.server.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
