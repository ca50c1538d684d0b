package client

import (
	"context"
	"time"

	"hrms/config"

	"github.com/fluent/fluent-logger-golang/fluent"
	"go.uber.org/zap"
)

// Poster 讓 fluentd repository 可在測試或關閉時替換為 noop
type Poster interface {
	Post(ctx context.Context, tag string, message any) error
	Close() error
}

// FluentdClient implements Poster using fluent-logger-golang.
type FluentdClient struct {
	client    *fluent.Fluent
	tagPrefix string
}

// NewFluentdClient FLUENTD.ENABLED=false 時回傳 NoopClient
func NewFluentdClient(logger *zap.Logger, config *config.Configuration) (Poster, func(), error) {
	if !config.Fluentd.Enabled {
		logger.Info("fluentd disabled, request logs stay local")
		return NoopClient{}, func() {}, nil
	}
	prefix := "hrms"
	if config.Fluentd.TagPrefix != "" {
		prefix = config.Fluentd.TagPrefix
	}
	var timeout time.Duration
	if config.Fluentd.Timeout > 0 {
		timeout = time.Duration(config.Fluentd.Timeout) * time.Millisecond
	}

	f, err := fluent.New(fluent.Config{
		FluentHost: config.Fluentd.Host,
		FluentPort: config.Fluentd.Port,
		Timeout:    timeout,
		TagPrefix:  prefix,
		Async:      true,
	})
	if err != nil {
		logger.Error("failed to connect to Fluentd", zap.Error(err))
		return nil, nil, err
	}
	fluentdClient := &FluentdClient{client: f, tagPrefix: prefix}
	cleanup := func() {
		logger.Info("closing the Fluentd resources")
		if err := fluentdClient.Close(); err != nil {
			logger.Error("failed to close Fluentd client", zap.Error(err))
		}
	}
	return fluentdClient, cleanup, nil
}

func (c *FluentdClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Post fluent-logger-golang 不支援 ctx；TagPrefix 由 library 自動加上
func (c *FluentdClient) Post(_ context.Context, tag string, message any) error {
	return c.client.Post(tag, message)
}

// NoopClient 關閉模式
type NoopClient struct{}

func (NoopClient) Post(context.Context, string, any) error { return nil }
func (NoopClient) Close() error                            { return nil }
