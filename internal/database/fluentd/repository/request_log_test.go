package repository

import (
	"context"
	"testing"
	"time"

	"hrms/config"
	"hrms/internal/core"
	"hrms/internal/database/fluentd/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedPost struct {
	tag     string
	message map[string]any
}

type recordingPoster struct {
	posts []recordedPost
}

func (p *recordingPoster) Post(_ context.Context, tag string, message any) error {
	p.posts = append(p.posts, recordedPost{tag: tag, message: message.(map[string]any)})
	return nil
}

func (p *recordingPoster) Close() error { return nil }

func TestLogRepository_LogRequest(t *testing.T) {
	poster := &recordingPoster{}
	conf := &config.Configuration{}
	conf.App.Version = "2.1.0"
	repository := NewLogRepository(conf, poster)
	repository.now = func() time.Time { return time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC) }

	err := repository.LogRequest(context.Background(), model.RequestLog{
		RequestID: "req-1",
		Path:      "/leaves",
		Method:    "POST",
	})
	require.NoError(t, err)
	require.Len(t, poster.posts, 1)

	post := poster.posts[0]
	assert.Equal(t, string(core.FluentdRequest), post.tag)
	assert.Equal(t, "req-1", post.message["request_id"])
	assert.Equal(t, "2.1.0", post.message["version"])
	assert.Equal(t, "2024-02-01 08:00:00 UTC", post.message["logged_at"])
	assert.NotContains(t, post.message, "body")
}

func TestLogRepository_LogResponseDefaultsVersion(t *testing.T) {
	poster := &recordingPoster{}
	repository := NewLogRepository(&config.Configuration{}, poster)

	require.NoError(t, repository.LogResponse(context.Background(), model.ResponseLog{RequestID: "req-2", StatusCode: 404}))
	require.Len(t, poster.posts, 1)
	assert.Equal(t, string(core.FluentdResponse), poster.posts[0].tag)
	assert.Equal(t, "1.0.0", poster.posts[0].message["version"])
	assert.EqualValues(t, 404, poster.posts[0].message["status_code"])
}
