package service

import (
	"context"
	"time"
)

// ContentCache is a read-through cache for public collections.
// Get reports false on a miss.
type ContentCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

const contentCachePrefix = "portfolio:content:"

const (
	CacheKeyProfile     = contentCachePrefix + "profile"
	CacheKeyExperiences = contentCachePrefix + "experiences"
	CacheKeyEducation   = contentCachePrefix + "education"
	CacheKeyProjects    = contentCachePrefix + "projects"
	CacheKeySkills      = contentCachePrefix + "skills"
)

// ContentCacheKeys lists every key that must go when seeded content is replaced.
func ContentCacheKeys() []string {
	return []string{CacheKeyProfile, CacheKeyExperiences, CacheKeyEducation, CacheKeyProjects, CacheKeySkills}
}
