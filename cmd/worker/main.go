package main

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/zthechelon/portfolio/adapters/cache"
	"github.com/zthechelon/portfolio/adapters/event"
	"github.com/zthechelon/portfolio/adapters/media_storage"
	"github.com/zthechelon/portfolio/adapters/persistence"
	backupUC "github.com/zthechelon/portfolio/internal/application/usecase/backup"
	contactUC "github.com/zthechelon/portfolio/internal/application/usecase/contact"
	contentUC "github.com/zthechelon/portfolio/internal/application/usecase/content"
	"github.com/zthechelon/portfolio/internal/config"
	"github.com/zthechelon/portfolio/pkg/logger"
)

func main() {
	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewZapLogger("development").Fatal("cannot load config", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env).With(zap.String("component", "worker"))
	defer appLogger.Sync()
	appLogger.Info("Starting Portfolio Worker...")

	// Database
	store, err := persistence.OpenStore(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot open content store", err)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup

	// Contact notifications
	if len(cfg.Kafka.Brokers) > 0 {
		processContactEventUC := contactUC.NewProcessContactEventUseCase(store.Contacts, appLogger)

		contactConsumer := kafka.NewReader(kafka.ReaderConfig{
			Brokers:  cfg.Kafka.Brokers,
			Topic:    event.TopicContactEvents,
			GroupID:  event.ContactNotifierGroup,
			MinBytes: 1,
			MaxBytes: 10e6,
		})
		defer contactConsumer.Close()

		wg.Add(1)
		go func() {
			defer wg.Done()
			consumeContactEvents(ctx, contactConsumer, processContactEventUC, contactRetryBackOff(), appLogger)
		}()
	} else {
		appLogger.Warn("Kafka brokers not configured, contact notifications disabled")
	}

	// Content backups
	if cfg.Backup.Interval > 0 && cfg.Cloudinary.CloudName != "" {
		uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize uploader", err)
		}
		contentUseCase := contentUC.NewContentUseCase(contentUC.Repositories{
			Profile:     store.Profile,
			Experiences: store.Experiences,
			Education:   store.Education,
			Projects:    store.Projects,
			Skills:      store.Skills,
		}, cache.NewNopCache(), 0, appLogger)
		backupUseCase := backupUC.NewBackupUseCase(contentUseCase, uploader, cfg.Backup.Retain, appLogger)

		wg.Add(1)
		go func() {
			defer wg.Done()
			runBackups(ctx, cfg.Backup.Interval, backupUseCase, appLogger)
		}()
	} else {
		appLogger.Info("Content backups disabled")
	}

	wg.Wait()
	appLogger.Info("Worker stopped")
}
