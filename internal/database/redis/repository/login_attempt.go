package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hrms/internal/core"
	client "hrms/internal/database/client"
	"hrms/internal/telemetry"

	"github.com/redis/go-redis/v9"
)

// LoginAttemptRepository 以 client IP 為單位的固定視窗登入節流
type LoginAttemptRepository struct {
	trace  *telemetry.Trace
	client *redis.Client
}

func NewLoginAttemptRepository(trace *telemetry.Trace, client *client.RedisClient) *LoginAttemptRepository {
	return &LoginAttemptRepository{trace: trace, client: client.Client()}
}

var ErrRateLimitExceeded = errors.New("rate limit exceeded")

// Consume 消耗一次配額；自動處理新週期初始化與剩餘 TTL。
// 回傳：remaining（剩餘次數）、ttlSec（剩餘秒數）、err（若超限為 ErrRateLimitExceeded）
func (repository *LoginAttemptRepository) Consume(
	contextValue context.Context,
	subject string,
	windowSeconds int64,
	limitCount int,
) (remainingCount int, timeToLiveSeconds int64, returnedError error) {

	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() {
		endSpan(returnedError)
	}()

	traceMetadata := core.TraceLoginAttemptMeta{
		Subject:   subject,
		Limit:     limitCount,
		WindowSec: windowSeconds,
		Op:        "consume",
	}
	repository.trace.ApplyTraceAttributes(span, traceMetadata)

	redisKey := repository.buildKey(subject)
	expirationDuration := time.Duration(windowSeconds) * time.Second

	// SETNX key value EX expiration
	wasSet, setError := repository.client.SetNX(
		contextValue,
		redisKey,
		limitCount-1, // 本次消耗一次，所以初始值 = 總額-1
		expirationDuration,
	).Result()
	if setError != nil {
		returnedError = setError
		return 0, 0, returnedError
	}
	if wasSet {
		remainingCount = limitCount - 1
		if remainingCount < 0 {
			remainingCount = 0
			returnedError = ErrRateLimitExceeded
		}
		timeToLiveSeconds = windowSeconds
		traceMetadata.Remaining, traceMetadata.TTL = remainingCount, timeToLiveSeconds
		repository.trace.ApplyTraceAttributes(span, traceMetadata)
		return remainingCount, timeToLiveSeconds, returnedError
	}

	// Key 已存在 → DECR
	newValue, decrError := repository.client.Decr(contextValue, redisKey).Result()
	if decrError != nil {
		returnedError = decrError
		return 0, 0, returnedError
	}

	ttlDuration, _ := repository.client.TTL(contextValue, redisKey).Result()
	if ttlDuration > 0 {
		timeToLiveSeconds = int64(ttlDuration.Seconds())
	} else {
		// key 遺失 TTL 時補上，避免永久封鎖
		_ = repository.client.Expire(contextValue, redisKey, expirationDuration).Err()
		timeToLiveSeconds = windowSeconds
	}

	if newValue < 0 {
		remainingCount = 0
		traceMetadata.Remaining, traceMetadata.TTL = remainingCount, timeToLiveSeconds
		repository.trace.ApplyTraceAttributes(span, traceMetadata)
		returnedError = ErrRateLimitExceeded
		return remainingCount, timeToLiveSeconds, returnedError
	}

	remainingCount = int(newValue)
	traceMetadata.Remaining, traceMetadata.TTL = remainingCount, timeToLiveSeconds
	repository.trace.ApplyTraceAttributes(span, traceMetadata)
	return remainingCount, timeToLiveSeconds, nil
}

// Reset 登入成功後清除計數
func (repository *LoginAttemptRepository) Reset(contextValue context.Context, subject string) (returnedError error) {
	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	repository.trace.ApplyTraceAttributes(span, core.TraceLoginAttemptMeta{Subject: subject, Op: "reset"})

	returnedError = repository.client.Del(contextValue, repository.buildKey(subject)).Err()
	return returnedError
}

func (repository *LoginAttemptRepository) buildKey(subject string) string {
	return fmt.Sprintf("%s:%s:%s", core.RedisKeyServerName, core.RedisKeyLoginAttempt, subject)
}
