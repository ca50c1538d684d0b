package repository

import (
	"context"
	"fmt"
	"time"

	"hrms/internal/core"
	client "hrms/internal/database/client"
	"hrms/internal/telemetry"

	"github.com/redis/go-redis/v9"
)

// TokenBlacklistRepository 記錄已登出的 token jti，TTL 與 token 剩餘效期相同
type TokenBlacklistRepository struct {
	trace  *telemetry.Trace
	client *redis.Client
}

func NewTokenBlacklistRepository(trace *telemetry.Trace, client *client.RedisClient) *TokenBlacklistRepository {
	return &TokenBlacklistRepository{trace: trace, client: client.Client()}
}

func (repository *TokenBlacklistRepository) Revoke(contextValue context.Context, tokenID string, ttl time.Duration) (returnedError error) {
	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	repository.trace.ApplyTraceAttributes(span, core.TraceTokenBlacklistMeta{
		TokenID: tokenID,
		TTLSec:  int64(ttl.Seconds()),
		Revoked: true,
		Op:      "revoke",
	})

	// 已過期的 token 不需要記錄
	if ttl <= 0 {
		return nil
	}
	returnedError = repository.client.Set(contextValue, repository.buildKey(tokenID), 1, ttl).Err()
	return returnedError
}

func (repository *TokenBlacklistRepository) IsRevoked(contextValue context.Context, tokenID string) (revoked bool, returnedError error) {
	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	count, existsError := repository.client.Exists(contextValue, repository.buildKey(tokenID)).Result()
	if existsError != nil {
		returnedError = existsError
		return false, returnedError
	}
	revoked = count > 0
	repository.trace.ApplyTraceAttributes(span, core.TraceTokenBlacklistMeta{TokenID: tokenID, Revoked: revoked, Op: "check"})
	return revoked, nil
}

func (repository *TokenBlacklistRepository) buildKey(tokenID string) string {
	return fmt.Sprintf("%s:%s:%s", core.RedisKeyServerName, core.RedisKeyBlacklist, tokenID)
}
