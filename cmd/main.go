package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shenikar/crisis_dashboard/internal/config"
	"github.com/shenikar/crisis_dashboard/internal/crisisapi"
	"github.com/shenikar/crisis_dashboard/internal/dashboard"
	v1 "github.com/shenikar/crisis_dashboard/internal/handler/http/v1"
	"github.com/shenikar/crisis_dashboard/internal/refresh"
	"github.com/shenikar/crisis_dashboard/internal/service"
	"github.com/shenikar/crisis_dashboard/internal/webhook"
	"github.com/shenikar/crisis_dashboard/pkg/logger"
	redisclient "github.com/shenikar/crisis_dashboard/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/crisis_dashboard/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const sweepInterval = time.Minute

// @title Crisis Dashboard API
// @version 1.0
// @description Backend for the crisis management dashboard: crisis list, detail view, event timeline and forms.
// @host localhost:3000
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Клиент внешнего API кризисов
	api, err := crisisapi.NewClient(cfg.CrisisAPIURL, &http.Client{Timeout: cfg.CrisisAPITimeout}, log)
	if err != nil {
		log.Fatalf("Failed to create crisis API client: %v", err)
	}
	log.WithField("base_url", api.BaseURL()).Info("Crisis API client configured")

	// Сигнал обновления и доставка изменений
	var (
		refreshSignal refresh.Signal
		notifier      dashboard.MutationNotifier
	)
	switch cfg.RefreshBackend {
	case config.RefreshBackendRedis:
		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		refreshSignal = refresh.NewRedisSignal(redisClient, cfg.RefreshKey, cfg.RefreshChannel, log)

		if cfg.WebhookEnabled() {
			notifier = webhook.NewRedisPublisher(redisClient)
			webhook.NewWorker(redisClient, log, cfg).Start(ctx)
		}
	default:
		refreshSignal = refresh.NewMemorySignal()
	}
	log.WithField("backend", cfg.RefreshBackend).Info("Refresh signal configured")

	// Реестр сессий панели
	sessions := service.NewSessionService(api, refreshSignal, notifier, log, cfg.SessionIdleTimeout)
	go func() {
		if err := refreshSignal.Watch(ctx, sessions.Broadcast); err != nil {
			log.WithError(err).Error("Refresh signal watcher stopped")
		}
	}()
	sessions.StartSweeper(ctx, sweepInterval)

	// Инициализация хэндлеров
	handler := v1.NewHandler(sessions, log, cfg)

	// Настройка Gin роутера
	router := gin.New()
	router.Use(gin.Recovery(), v1.RequestLoggerMiddleware(log), v1.CORSMiddleware(cfg.CORSAllowedOrigins))
	apiGroup := router.Group("/api/v1")
	handler.RegisterRoutes(apiGroup)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	<-ctx.Done()
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
