package handler

import (
	"net/http"
	"runtime"
	"time"

	"hrms/config"
	"hrms/internal/service"

	"github.com/gin-gonic/gin"
)

type RuntimeInfo struct {
	Env       string    `json:"env"`
	Name      string    `json:"name"`
	Version   string    `json:"version"`
	GoVersion string    `json:"go_version"`
	StartAt   time.Time `json:"start_at"`
	Uptime    string    `json:"uptime"`
}

type HealthHandler struct {
	healthStatus *service.HealthService
	config       *config.Configuration
	startAt      time.Time // 程式啟動時間
}

func NewHealthHandler(status *service.HealthService, config *config.Configuration) *HealthHandler {
	return &HealthHandler{healthStatus: status, config: config, startAt: time.Now()}
}

func (h *HealthHandler) Liveness(c *gin.Context) {
	if h.healthStatus.IsLive() {
		c.JSON(http.StatusOK, gin.H{"status": "alive"})
		return
	}
	c.Status(http.StatusServiceUnavailable)
}

// Readiness MongoDB / Redis 任一無法連線即回 503
func (h *HealthHandler) Readiness(c *gin.Context) {
	ready, checks := h.healthStatus.Readiness(c.Request.Context())
	if ready {
		c.JSON(http.StatusOK, gin.H{"status": "ready", "checks": checks})
		return
	}
	c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "checks": checks})
}

func (h *HealthHandler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, RuntimeInfo{
		Env:       h.config.App.Env,
		Name:      h.config.App.Name,
		Version:   h.config.App.Version,
		GoVersion: runtime.Version(),
		StartAt:   h.startAt,
		Uptime:    time.Since(h.startAt).Truncate(time.Second).String(),
	})
}
