package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthService_Readiness(t *testing.T) {
	up := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("dial tcp: refused") })

	health := newHealthService(zap.NewNop(), map[string]pinger{"mongodb": up, "redis": down})
	assert.True(t, health.IsLive())

	ready, checks := health.Readiness(context.Background())
	assert.False(t, ready)
	assert.Equal(t, "starting", checks["server"])

	health.SetReady(true)
	ready, checks = health.Readiness(context.Background())
	assert.False(t, ready)
	assert.Equal(t, map[string]string{"mongodb": "up", "redis": "down"}, checks)

	health.dependencies["redis"] = up
	ready, checks = health.Readiness(context.Background())
	assert.True(t, ready)
	assert.Equal(t, map[string]string{"mongodb": "up", "redis": "up"}, checks)
}
