package cache

import (
	"context"
	"time"

	"github.com/zthechelon/portfolio/internal/application/service"
)

type nopCache struct{}

// NewNopCache always misses. Used when Redis is not configured.
func NewNopCache() service.ContentCache { return nopCache{} }

func (nopCache) Get(context.Context, string, any) (bool, error)        { return false, nil }
func (nopCache) Set(context.Context, string, any, time.Duration) error { return nil }
func (nopCache) Delete(context.Context, ...string) error               { return nil }
