package service

import (
	"context"
	"sync/atomic"
	"time"

	"hrms/internal/database/client"

	"go.uber.org/zap"
)

const dependencyPingTimeout = 2 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

// HealthService liveness 只看行程；readiness 另外檢查 MongoDB 與 Redis
type HealthService struct {
	logger       *zap.Logger
	live         atomic.Bool
	ready        atomic.Bool
	dependencies map[string]pinger
}

func NewHealthService(logger *zap.Logger, mongoClient *client.MongoClient, redisClient *client.RedisClient) *HealthService {
	return newHealthService(logger, map[string]pinger{
		"mongodb": mongoClient,
		"redis":   redisClient,
	})
}

func newHealthService(logger *zap.Logger, dependencies map[string]pinger) *HealthService {
	s := &HealthService{logger: logger, dependencies: dependencies}
	s.live.Store(true)
	s.ready.Store(false) // 啟動完成後再打開
	return s
}

func (s *HealthService) SetReady(v bool) {
	s.ready.Store(v)
}

func (s *HealthService) IsLive() bool {
	return s.live.Load()
}

// Readiness 回傳各依賴狀態；任一失敗即未就緒
func (s *HealthService) Readiness(ctx context.Context) (bool, map[string]string) {
	checks := make(map[string]string, len(s.dependencies))
	ready := s.ready.Load()
	if !ready {
		checks["server"] = "starting"
	}
	for name, dependency := range s.dependencies {
		pingCtx, cancel := context.WithTimeout(ctx, dependencyPingTimeout)
		err := dependency.Ping(pingCtx)
		cancel()
		if err != nil {
			s.logger.Warn("readiness check failed", zap.String("dependency", name), zap.Error(err))
			checks[name] = "down"
			ready = false
			continue
		}
		checks[name] = "up"
	}
	return ready, checks
}
