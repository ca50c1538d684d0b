package router

import (
	docs "hrms/cmd/docs"
	"hrms/config"
	"hrms/internal/middleware"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var ProviderSet = wire.NewSet(
	NewRouter,
	NewHealthRouter,
	NewAuthRouter,
	NewHRRouter,
)

// 透過依賴注入將 middleware 與各路由組裝成 gin engine
func NewRouter(
	config *config.Configuration,
	traceEntry *middleware.TraceEntry,
	compress *middleware.Compress,
	recovery *middleware.Recovery,
	cors *middleware.Cors,
	logger *middleware.Logger,
	responseMiddleware *middleware.Response,
	healthRouter *HealthRouter,
	authRouter *AuthRouter,
	hrRouter *HRRouter,
) *gin.Engine {

	switch config.App.Env {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()
	router.Use(traceEntry.Handler())
	// 壓縮需包住 Recovery / Response 的輸出
	router.Use(compress.Handler())
	router.Use(logger.LoggerHandler())
	router.Use(cors.CorsHandler())
	router.Use(recovery.ErrorHandler())
	router.Use(responseMiddleware.FormatHandler())

	healthRouter.RegisterHealthRoutes(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if config.App.SwaggerEnabled {
		router.GET("/swagger/*any", func(c *gin.Context) {
			docs.SwaggerInfo.Host = c.Request.Host

			if config.App.Env == "production" {
				docs.SwaggerInfo.Schemes = []string{"https"}
			}
		}, ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	authRouter.RegisterRoutes(router)
	hrRouter.RegisterRoutes(router)
	pprof.Register(router)
	return router
}
