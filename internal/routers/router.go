// Package routers 组装 HTTP 路由
package routers

import (
	"time"

	"github.com/haierkeys/note-organizer-service/internal/app"
	"github.com/haierkeys/note-organizer-service/internal/middleware"
	"github.com/haierkeys/note-organizer-service/internal/routers/api_router"
	"github.com/haierkeys/note-organizer-service/pkg/limiter"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
)

var methodLimiters = limiter.NewMethodLimiter().AddBuckets(
	limiter.BucketRule{
		Key:          "/api",
		FillInterval: time.Second,
		Capacity:     100,
		Quantum:      100,
	},
)

func NewRouter(appContainer *app.App, uni *ut.UniversalTranslator) *gin.Engine {

	cfg := appContainer.Config()

	r := gin.New()

	api := r.Group("/api")
	{
		api.Use(middleware.AppInfo(app.Name, appContainer.Version().Version))
		api.Use(middleware.TraceMiddleware(cfg.Tracer.Enabled, cfg.Tracer.Header))
		api.Use(middleware.RateLimiter(methodLimiters))
		api.Use(middleware.ContextTimeout(time.Duration(cfg.App.DefaultContextTimeout) * time.Second))
		api.Use(middleware.Cors())
		api.Use(middleware.LangWithTranslator(uni))
		api.Use(middleware.AccessLogWithLogger(appContainer.Logger()))
		api.Use(middleware.RecoveryWithLogger(appContainer.Logger()))

		noteHandler := api_router.NewNoteHandler(appContainer)
		folderHandler := api_router.NewFolderHandler(appContainer)
		tagHandler := api_router.NewTagHandler(appContainer)
		healthHandler := api_router.NewHealthHandler(appContainer)

		api.GET("/health", healthHandler.Check)

		api.GET("/notes", noteHandler.List)
		api.GET("/notes/:id", noteHandler.Get)
		api.POST("/notes", noteHandler.Create)
		api.PUT("/notes/:id", noteHandler.Update)
		api.DELETE("/notes/:id", noteHandler.Delete)

		api.GET("/folders", folderHandler.List)
		api.GET("/folders/:id", folderHandler.Get)
		api.POST("/folders", folderHandler.Create)
		api.PUT("/folders/:id", folderHandler.Update)
		api.DELETE("/folders/:id", folderHandler.Delete)

		api.GET("/tags", tagHandler.List)
		api.GET("/tags/:id", tagHandler.Get)
		api.POST("/tags", tagHandler.Create)
		api.PUT("/tags/:id", tagHandler.Update)
		api.DELETE("/tags/:id", tagHandler.Delete)
	}

	r.Use(middleware.Cors())
	r.NoRoute(middleware.NoFound())

	return r
}
