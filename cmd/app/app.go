package main

import (
	"context"
	"errors"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"hrms/config"
	"hrms/internal/cron"
	"hrms/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	conf          *config.Configuration
	logger        *zap.Logger
	cronSrv       *cron.Cron
	httpSrv       *http.Server
	healthService *service.HealthService
}

func newHttpServer(
	conf *config.Configuration,
	router *gin.Engine,
) *http.Server {
	return &http.Server{
		Addr:              ":" + strconv.FormatUint(uint64(conf.App.Port), 10),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func newApp(
	conf *config.Configuration,
	logger *zap.Logger,
	httpSrv *http.Server,
	healthService *service.HealthService,
	cronSrv *cron.Cron,
) *App {
	return &App{
		conf:          conf,
		logger:        logger,
		httpSrv:       httpSrv,
		healthService: healthService,
		cronSrv:       cronSrv,
	}
}

func (a *App) Run() error {
	// 1) 啟動時寫入版本/環境資訊
	a.logger.Info("app runtime info",
		zap.String("env", a.conf.App.Env),
		zap.String("name", a.conf.App.Name),
		zap.String("version", a.conf.App.Version),
		zap.String("go_version", runtime.Version()),
	)

	// 2) 啟動 cron
	if err := a.cronSrv.Run(); err != nil {
		return err
	}
	a.logger.Info("cron server started")

	// 3) 啟動 http server
	go func() {
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("http server stopped unexpectedly", zap.Error(err))
		}
	}()
	a.logger.Info("http server started", zap.String("addr", a.httpSrv.Addr))

	a.healthService.SetReady(true)
	return nil
}

func (a *App) Close(ctx context.Context) error {
	if a.healthService != nil {
		a.healthService.SetReady(false)
	}

	var errs []error
	if a.httpSrv != nil {
		if err := a.httpSrv.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		} else {
			a.logger.Info("http server has been stop")
		}
	}
	if a.cronSrv != nil {
		if err := a.cronSrv.Stop(ctx); err != nil {
			errs = append(errs, err)
		} else {
			a.logger.Info("cron server has been stop")
		}
	}

	return errors.Join(errs...)
}

func (a *App) Stop(ctx context.Context) error {
	return a.Close(ctx)
}
