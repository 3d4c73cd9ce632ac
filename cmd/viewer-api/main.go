package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/speedrunjp/oengus-viewer-api/api/swagger"
	"github.com/speedrunjp/oengus-viewer-api/internal/handler"
	"github.com/speedrunjp/oengus-viewer-api/internal/middleware"
	"github.com/speedrunjp/oengus-viewer-api/internal/oengus"
	"github.com/speedrunjp/oengus-viewer-api/internal/service"
	"github.com/speedrunjp/oengus-viewer-api/internal/session"
	"github.com/speedrunjp/oengus-viewer-api/pkg/config"
	"github.com/speedrunjp/oengus-viewer-api/pkg/logger"
	corsmiddleware "github.com/speedrunjp/oengus-viewer-api/pkg/middleware/cors"
	reqidmiddleware "github.com/speedrunjp/oengus-viewer-api/pkg/middleware/requestid"
)

// @title Oengus Viewer API
// @version 0.1.0
// @description Read-only viewer over the public Oengus marathon API
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := service.NewMetricsService()

	client := oengus.NewClient(cfg.Upstream, logr, oengus.WithObserver(metrics.ObserveUpstream))
	catalogSvc := service.NewCatalogService(client, logr, cfg.Catalog)
	eventSvc := service.NewEventService(client, logr)

	store := session.NewStore(eventSvc, logr, cfg.Sessions, metrics.SetActiveSessions)
	store.StartSweeper()
	defer store.Close()

	catalogHandler := handler.NewCatalogHandler(catalogSvc, metrics)
	eventHandler := handler.NewEventHandler(eventSvc, cfg.Export.Enabled)
	sessionHandler := handler.NewSessionHandler(store, nil)
	metricsHandler := handler.NewMetricsHandler(metrics)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		events := api.Group("/events")
		{
			events.GET("", catalogHandler.List)
			events.GET("/:id", eventHandler.Get)
			events.GET("/:id/submissions", eventHandler.Submissions)
			events.GET("/:id/schedule", eventHandler.Schedule)
			events.GET("/:id/schedule/export", eventHandler.ExportSchedule)
		}

		sessions := api.Group("/sessions")
		{
			sessions.POST("", sessionHandler.Create)
			sessions.GET("/:id", sessionHandler.Get)
			sessions.POST("/:id/select", sessionHandler.Select)
			sessions.POST("/:id/sort", sessionHandler.Sort)
			sessions.POST("/:id/filter", sessionHandler.Filter)
			sessions.POST("/:id/toggle", sessionHandler.Toggle)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "upstream", cfg.Upstream.BaseURL)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
