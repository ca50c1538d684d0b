package client

import (
	"context"
	"fmt"

	"hrms/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisClient 供登入節流與 token 黑名單使用
type RedisClient struct {
	client *redis.Client
	logger *zap.Logger
}

func NewRedisClient(logger *zap.Logger, config *config.Configuration) (*RedisClient, func(), error) {
	redisClient := &RedisClient{logger: logger}
	client, err := redisClient.connectDB(config)
	if err != nil {
		logger.Error("failed to connect to Redis", zap.Error(err))
		return nil, nil, err
	}
	logger.Info("Connected to Redis")
	redisClient.client = client

	cleanup := func() {
		logger.Info("closing the Redis resources")
		if err := redisClient.Close(); err != nil {
			logger.Error("failed to close Redis client", zap.Error(err))
		}
	}
	return redisClient, cleanup, nil
}

func (redisClient *RedisClient) connectDB(config *config.Configuration) (*redis.Client, error) {
	r := redis.NewClient(&redis.Options{
		Addr:        fmt.Sprintf("%s:%d", config.Redis.Host, config.Redis.Port),
		Password:    config.Redis.Password,
		DB:          config.Redis.DB,
		PoolSize:    config.Redis.PoolSize,
		DialTimeout: config.Redis.DialTimeout(),
	})
	ctx, cancel := context.WithTimeout(context.Background(), config.Redis.DialTimeout())
	defer cancel()
	if _, err := r.Ping(ctx).Result(); err != nil {
		_ = r.Close()
		return nil, err
	}
	return r, nil
}

// Close 關閉 Redis 連線
func (redisClient *RedisClient) Close() error {
	return redisClient.client.Close()
}

// Client 回傳 Redis 連線
func (redisClient *RedisClient) Client() *redis.Client {
	return redisClient.client
}

// Ping readiness 檢查用
func (redisClient *RedisClient) Ping(ctx context.Context) error {
	return redisClient.client.Ping(ctx).Err()
}
