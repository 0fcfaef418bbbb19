package seed

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/zthechelon/portfolio/internal/application/service"
	"github.com/zthechelon/portfolio/internal/domain/seed"
	"github.com/zthechelon/portfolio/pkg/logger"
)

var tracer = otel.Tracer("github.com/zthechelon/portfolio/internal/application/usecase/seed")

// SeedUseCase is the seed guard: it replaces seeded content only when the
// store is empty or stale, and is a read-only no-op otherwise.
type SeedUseCase struct {
	store  seed.Store
	def    seed.Definition
	cache  service.ContentCache
	logger logger.Logger
}

func NewSeedUseCase(store seed.Store, def seed.Definition, cache service.ContentCache, log logger.Logger) *SeedUseCase {
	return &SeedUseCase{
		store:  store,
		def:    def,
		cache:  cache,
		logger: log,
	}
}

type SeedInput struct {
	// Force replaces content even when it is current.
	Force bool
	// ClearOnly empties the seeded collections without reinserting.
	ClearOnly bool
}

type SeedOutput struct {
	Seeded bool
	Reason seed.Reason
	Before seed.State
}

func (uc *SeedUseCase) Execute(ctx context.Context, input SeedInput) (out *SeedOutput, err error) {
	ctx, span := tracer.Start(ctx, "seed.ensure", trace.WithSpanKind(trace.SpanKindInternal))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(
		attribute.String("seed.version", uc.def.Version),
		attribute.Bool("seed.force", input.Force),
		attribute.Bool("seed.clear_only", input.ClearOnly),
	)

	if err := uc.def.Validate(); err != nil {
		return nil, fmt.Errorf("invalid seed definition: %w", err)
	}

	if input.ClearOnly {
		if err := uc.store.Clear(ctx); err != nil {
			return nil, fmt.Errorf("clear seeded collections failed: %w", err)
		}
		uc.invalidateCache(ctx)
		uc.logger.Info("Seeded collections cleared")
		return &SeedOutput{}, nil
	}

	state, err := uc.store.State(ctx)
	if err != nil {
		return nil, fmt.Errorf("read seed state failed: %w", err)
	}

	stale, reason := seed.Evaluate(state, uc.def)
	if input.Force {
		stale, reason = true, seed.ReasonForced
	}
	span.SetAttributes(attribute.Bool("seed.stale", stale), attribute.String("seed.reason", string(reason)))

	log := uc.logger.With(
		zap.String("version", uc.def.Version),
		zap.String("reason", string(reason)),
		zap.Int("experiences", state.ExperienceCount),
		zap.Int("education", state.EducationCount),
		zap.Int("projects", state.ProjectCount),
		zap.Int("skills", state.SkillCount),
	)

	if !stale {
		log.Info("Content is current, skip seeding.")
		return &SeedOutput{Reason: reason, Before: state}, nil
	}

	decide := func(s seed.State) bool { return seed.IsStale(s, uc.def) }
	if input.Force {
		decide = func(seed.State) bool { return true }
	}

	replaced, err := uc.store.Replace(ctx, uc.def, decide)
	if err != nil {
		return nil, fmt.Errorf("replace seeded content failed: %w", err)
	}
	span.SetAttributes(attribute.Bool("seed.replaced", replaced))

	if !replaced {
		log.Info("Content was seeded concurrently, skip.")
		return &SeedOutput{Reason: seed.ReasonCurrent, Before: state}, nil
	}

	uc.invalidateCache(ctx)
	log.Info("Seeded content replaced")
	return &SeedOutput{Seeded: true, Reason: reason, Before: state}, nil
}

func (uc *SeedUseCase) invalidateCache(ctx context.Context) {
	if err := uc.cache.Delete(ctx, service.ContentCacheKeys()...); err != nil {
		uc.logger.Warn("Failed to invalidate content cache after seeding", zap.Error(err))
	}
}
