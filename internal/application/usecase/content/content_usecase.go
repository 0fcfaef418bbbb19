package content

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/zthechelon/portfolio/internal/application/service"
	"github.com/zthechelon/portfolio/internal/domain/education"
	"github.com/zthechelon/portfolio/internal/domain/experience"
	"github.com/zthechelon/portfolio/internal/domain/profile"
	"github.com/zthechelon/portfolio/internal/domain/project"
	"github.com/zthechelon/portfolio/internal/domain/skill"
	"github.com/zthechelon/portfolio/pkg/apperror"
	"github.com/zthechelon/portfolio/pkg/logger"
)

// Repositories groups the read side of the content store.
type Repositories struct {
	Profile     profile.Repository
	Experiences experience.Repository
	Education   education.Repository
	Projects    project.Repository
	Skills      skill.Repository
}

type ContentUseCase struct {
	repos    Repositories
	cache    service.ContentCache
	cacheTTL time.Duration
	logger   logger.Logger
}

func NewContentUseCase(repos Repositories, cache service.ContentCache, cacheTTL time.Duration, log logger.Logger) *ContentUseCase {
	return &ContentUseCase{
		repos:    repos,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   log,
	}
}

type GetProfileOutput struct {
	// Profile is nil when none has been stored yet.
	Profile *profile.Profile
}

func (uc *ContentUseCase) ExecuteGetProfile(ctx context.Context) (*GetProfileOutput, error) {
	p, err := readThrough(ctx, uc, service.CacheKeyProfile, func(ctx context.Context) (*profile.Profile, error) {
		p, err := uc.repos.Profile.Get(ctx)
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, nil
		}
		return p, err
	})
	if err != nil {
		return nil, err
	}
	return &GetProfileOutput{Profile: p}, nil
}

func (uc *ContentUseCase) ExecuteListExperiences(ctx context.Context) ([]*experience.Experience, error) {
	return readThrough(ctx, uc, service.CacheKeyExperiences, uc.repos.Experiences.List)
}

func (uc *ContentUseCase) ExecuteListEducation(ctx context.Context) ([]*education.Education, error) {
	return readThrough(ctx, uc, service.CacheKeyEducation, uc.repos.Education.List)
}

func (uc *ContentUseCase) ExecuteListProjects(ctx context.Context) ([]*project.Project, error) {
	return readThrough(ctx, uc, service.CacheKeyProjects, uc.repos.Projects.List)
}

func (uc *ContentUseCase) ExecuteListSkills(ctx context.Context) ([]*skill.Skill, error) {
	return readThrough(ctx, uc, service.CacheKeySkills, uc.repos.Skills.List)
}

// readThrough serves key from the cache and falls back to load. Cache
// failures are logged and never fail the read. Absent (nil) values are not cached.
func readThrough[T any](ctx context.Context, uc *ContentUseCase, key string, load func(context.Context) (T, error)) (T, error) {
	var cached T
	hit, err := uc.cache.Get(ctx, key, &cached)
	if err != nil {
		uc.logger.Warn("Content cache read failed", zap.String("key", key), zap.Error(err))
	} else if hit {
		return cached, nil
	}

	value, err := load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	if !isNil(value) {
		if err := uc.cache.Set(ctx, key, value, uc.cacheTTL); err != nil {
			uc.logger.Warn("Content cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return value, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	if p, ok := v.(*profile.Profile); ok {
		return p == nil
	}
	return false
}
