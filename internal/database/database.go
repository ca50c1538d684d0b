package database

import (
	client "hrms/internal/database/client"
	fluentdRepo "hrms/internal/database/fluentd/repository"
	mongoRepo "hrms/internal/database/mongodb/repository"
	redisRepo "hrms/internal/database/redis/repository"

	"github.com/google/wire"
)

// ProviderSet 定義所有 DB Client 的依賴
var ProviderSet = wire.NewSet(
	client.NewMongoClient,
	client.NewRedisClient,
	client.NewFluentdClient,
	mongoRepo.ProviderSet,
	redisRepo.ProviderSet,
	fluentdRepo.ProviderSet,
)
