package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zthechelon/portfolio/adapters/cache"
	"github.com/zthechelon/portfolio/adapters/event"
	httpAdapter "github.com/zthechelon/portfolio/adapters/http"
	"github.com/zthechelon/portfolio/adapters/persistence"
	"github.com/zthechelon/portfolio/internal/application/service"
	contactUC "github.com/zthechelon/portfolio/internal/application/usecase/contact"
	contentUC "github.com/zthechelon/portfolio/internal/application/usecase/content"
	seedUC "github.com/zthechelon/portfolio/internal/application/usecase/seed"
	showcaseUC "github.com/zthechelon/portfolio/internal/application/usecase/showcase"
	"github.com/zthechelon/portfolio/internal/config"
	"github.com/zthechelon/portfolio/internal/domain/seed"
	"github.com/zthechelon/portfolio/pkg/logger"
	"github.com/zthechelon/portfolio/pkg/tracing"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewZapLogger("development").Fatal("cannot load config", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()
	appLogger.Info("Start Portfolio API Server...", zap.String("env", cfg.App.Env), zap.String("db_driver", cfg.DB.Driver))

	// Tracing
	tp, err := tracing.NewTracerProvider(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot init tracing", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(ctx, tp); err != nil {
			appLogger.Error("Failed to flush traces", err)
		}
	}()

	// Content store
	store, err := persistence.OpenStore(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot open content store", err)
	}
	defer store.Close()

	// Optional integrations
	contentCache := cache.NewNopCache()
	if cfg.Redis.Addr != "" {
		redisClient, err := persistence.NewRedisClient(context.Background(), cfg, appLogger)
		if err != nil {
			appLogger.Warn("Redis unavailable, serving content without cache", zap.Error(err))
		} else {
			defer redisClient.Close()
			contentCache = cache.NewRedisCache(redisClient)
		}
	}

	var publisher service.ContactEventPublisher = event.NewNopPublisher()
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("cannot init Kafka", err)
		}
		defer kafkaClient.Close()
		publisher = kafkaClient
	}

	// Seed guard
	if cfg.Seed.OnStartup {
		seedUseCase := seedUC.NewSeedUseCase(store.Seed, seed.Baseline(), contentCache, appLogger)
		if _, err := seedUseCase.Execute(context.Background(), seedUC.SeedInput{}); err != nil {
			appLogger.Fatal("seed guard failed", err)
		}
	}

	// Use Cases
	contentUseCase := contentUC.NewContentUseCase(contentUC.Repositories{
		Profile:     store.Profile,
		Experiences: store.Experiences,
		Education:   store.Education,
		Projects:    store.Projects,
		Skills:      store.Skills,
	}, contentCache, cfg.Redis.CacheTTL, appLogger)
	rssUseCase := contentUC.NewRSSUseCase(contentUseCase, cfg.App.PublicURL, appLogger)
	showcaseUseCase := showcaseUC.NewShowcaseUseCase(contentUseCase, appLogger)
	submitContactUseCase := contactUC.NewSubmitContactUseCase(store.Contacts, publisher, appLogger)

	// HTTP
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpAdapter.NewRouter(httpAdapter.Handlers{
		Content:  httpAdapter.NewContentHandler(contentUseCase, appLogger),
		Contact:  httpAdapter.NewContactHandler(submitContactUseCase, appLogger),
		Showcase: httpAdapter.NewShowcaseHandler(showcaseUseCase, appLogger),
		RSS:      httpAdapter.NewRSSHandler(rssUseCase, appLogger),
	}, cfg.Tracing.ServiceName, appLogger)

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Cannot run server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}
}
