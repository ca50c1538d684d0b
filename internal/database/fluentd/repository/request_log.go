package repository

import (
	"context"
	"encoding/json"
	"time"

	"hrms/config"
	"hrms/internal/core"
	"hrms/internal/database/client"
	"hrms/internal/database/fluentd/model"
)

const loggedAtLayout = "2006-01-02 15:04:05.999999 UTC"

// LogRepository 統一負責發送 Request/Response Log 到 Fluentd
type LogRepository struct {
	fluentdClient client.Poster
	version       string
	now           func() time.Time
}

func NewLogRepository(config *config.Configuration, client client.Poster) *LogRepository {
	version := "1.0.0"
	if config.App.Version != "" {
		version = config.App.Version
	}
	return &LogRepository{fluentdClient: client, version: version, now: time.Now}
}

func (repository *LogRepository) LogRequest(ctx context.Context, req model.RequestLog) error {
	if req.LoggedAt == "" {
		req.LoggedAt = repository.now().UTC().Format(loggedAtLayout)
	}
	if req.Version == "" {
		req.Version = repository.version
	}
	return repository.post(ctx, core.FluentdRequest, req)
}

func (repository *LogRepository) LogResponse(ctx context.Context, resp model.ResponseLog) error {
	if resp.LoggedAt == "" {
		resp.LoggedAt = repository.now().UTC().Format(loggedAtLayout)
	}
	if resp.Version == "" {
		resp.Version = repository.version
	}
	return repository.post(ctx, core.FluentdResponse, resp)
}

// post fluent-logger 對 struct 需要 msgpack tag，統一轉成 map 再送
func (repository *LogRepository) post(ctx context.Context, tag core.FluentdSubTag, message any) error {
	b, err := json.Marshal(message)
	if err != nil {
		return err
	}
	var fluentdMessage map[string]any
	if err := json.Unmarshal(b, &fluentdMessage); err != nil {
		return err
	}
	return repository.fluentdClient.Post(ctx, string(tag), fluentdMessage)
}
