// seed applies the baseline content to the configured store.
//
//	seed [--force] [--clear] [--config DIR]
//
// Without flags it behaves exactly like the server's startup guard and only
// writes when the stored content is empty or stale.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/zthechelon/portfolio/adapters/cache"
	"github.com/zthechelon/portfolio/adapters/persistence"
	seedUC "github.com/zthechelon/portfolio/internal/application/usecase/seed"
	"github.com/zthechelon/portfolio/internal/config"
	"github.com/zthechelon/portfolio/internal/domain/seed"
	"github.com/zthechelon/portfolio/pkg/logger"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	var force, clearOnly bool
	var configDir string

	flagSet := pflag.NewFlagSet("seed", pflag.ContinueOnError)
	flagSet.SetOutput(out)
	flagSet.BoolVar(&force, "force", false, "replace seeded content even when it is current")
	flagSet.BoolVar(&clearOnly, "clear", false, "only delete seeded content, do not reinsert")
	flagSet.StringVar(&configDir, "config", ".", "directory holding .env and config.yaml")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if force && clearOnly {
		return fmt.Errorf("--force and --clear are mutually exclusive")
	}

	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env).With(zap.String("component", "seed"))
	defer appLogger.Sync()

	store, err := persistence.OpenStore(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("open content store: %w", err)
	}
	defer store.Close()

	contentCache := cache.NewNopCache()
	if cfg.Redis.Addr != "" {
		redisClient, err := persistence.NewRedisClient(ctx, cfg, appLogger)
		if err != nil {
			appLogger.Warn("Redis unavailable, cached content may stay stale until TTL", zap.Error(err))
		} else {
			defer redisClient.Close()
			contentCache = cache.NewRedisCache(redisClient)
		}
	}

	uc := seedUC.NewSeedUseCase(store.Seed, seed.Baseline(), contentCache, appLogger)
	result, err := uc.Execute(ctx, seedUC.SeedInput{Force: force, ClearOnly: clearOnly})
	if err != nil {
		return err
	}

	switch {
	case clearOnly:
		fmt.Fprintln(out, "seeded content cleared")
	case result.Seeded:
		fmt.Fprintf(out, "seeded content replaced (%s)\n", result.Reason)
	default:
		fmt.Fprintln(out, "content is current, nothing to do")
	}
	return nil
}
