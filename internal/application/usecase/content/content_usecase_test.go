package content

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zthechelon/portfolio/internal/application/service"
	"github.com/zthechelon/portfolio/internal/domain/education"
	"github.com/zthechelon/portfolio/internal/domain/experience"
	"github.com/zthechelon/portfolio/internal/domain/profile"
	"github.com/zthechelon/portfolio/internal/domain/project"
	"github.com/zthechelon/portfolio/internal/domain/skill"
	"github.com/zthechelon/portfolio/pkg/apperror"
	"github.com/zthechelon/portfolio/pkg/logger"
)

type fakeProfileRepo struct {
	p     *profile.Profile
	err   error
	calls int
}

func (f *fakeProfileRepo) Get(context.Context) (*profile.Profile, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.p == nil {
		return nil, apperror.NewNotFound("profile", "singleton")
	}
	return f.p, nil
}

func (f *fakeProfileRepo) Create(_ context.Context, p *profile.Profile) error {
	f.p = p
	return nil
}

type fakeProjectRepo struct {
	items []*project.Project
	err   error
	calls int
}

func (f *fakeProjectRepo) List(context.Context) ([]*project.Project, error) {
	f.calls++
	return f.items, f.err
}

func (f *fakeProjectRepo) Create(_ context.Context, p *project.Project) error {
	f.items = append(f.items, p)
	return nil
}

type emptyExperienceRepo struct{}

func (emptyExperienceRepo) List(context.Context) ([]*experience.Experience, error) {
	return []*experience.Experience{}, nil
}
func (emptyExperienceRepo) Create(context.Context, *experience.Experience) error { return nil }

type emptyEducationRepo struct{}

func (emptyEducationRepo) List(context.Context) ([]*education.Education, error) {
	return []*education.Education{}, nil
}
func (emptyEducationRepo) Create(context.Context, *education.Education) error { return nil }

type emptySkillRepo struct{}

func (emptySkillRepo) List(context.Context) ([]*skill.Skill, error) { return []*skill.Skill{}, nil }
func (emptySkillRepo) Create(context.Context, *skill.Skill) error   { return nil }

// memoryCache stores JSON like the Redis cache does.
type memoryCache struct {
	items   map[string][]byte
	failGet bool
}

func newMemoryCache() *memoryCache { return &memoryCache{items: map[string][]byte{}} }

func (c *memoryCache) Get(_ context.Context, key string, dest any) (bool, error) {
	if c.failGet {
		return false, errors.New("cache down")
	}
	raw, ok := c.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memoryCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.items[key] = raw
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.items, k)
	}
	return nil
}

func newUseCase(p *fakeProfileRepo, pr *fakeProjectRepo, cache service.ContentCache) *ContentUseCase {
	repos := Repositories{
		Profile:     p,
		Experiences: emptyExperienceRepo{},
		Education:   emptyEducationRepo{},
		Projects:    pr,
		Skills:      emptySkillRepo{},
	}
	return NewContentUseCase(repos, cache, time.Minute, logger.NewNopLogger())
}

func TestGetProfileAbsentIsNotAnError(t *testing.T) {
	cache := newMemoryCache()
	uc := newUseCase(&fakeProfileRepo{}, &fakeProjectRepo{}, cache)

	out, err := uc.ExecuteGetProfile(context.Background())
	require.NoError(t, err)
	assert.Nil(t, out.Profile)
	assert.NotContains(t, cache.items, service.CacheKeyProfile)
}

func TestGetProfileStorageFailure(t *testing.T) {
	uc := newUseCase(&fakeProfileRepo{err: apperror.NewInternal("boom", nil)}, &fakeProjectRepo{}, newMemoryCache())

	_, err := uc.ExecuteGetProfile(context.Background())
	assert.ErrorIs(t, err, apperror.ErrInternal)
}

func TestListProjectsReadsThroughCache(t *testing.T) {
	repo := &fakeProjectRepo{items: []*project.Project{{ID: 1, Title: "A", Tags: []string{"go"}}}}
	uc := newUseCase(&fakeProfileRepo{}, repo, newMemoryCache())
	ctx := context.Background()

	first, err := uc.ExecuteListProjects(ctx)
	require.NoError(t, err)
	second, err := uc.ExecuteListProjects(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, first, second)
}

func TestCacheFailureFallsThroughToStore(t *testing.T) {
	cache := newMemoryCache()
	cache.failGet = true
	repo := &fakeProjectRepo{items: []*project.Project{}}
	uc := newUseCase(&fakeProfileRepo{}, repo, cache)

	got, err := uc.ExecuteListProjects(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Equal(t, 1, repo.calls)
}

func TestRSSFeedUsesProjectLinks(t *testing.T) {
	live := "https://example.com/app"
	repo := &fakeProjectRepo{items: []*project.Project{
		{ID: 1, Title: "Live", Link: &live},
		{ID: 2, Title: "Nothing"},
	}}
	uc := newUseCase(&fakeProfileRepo{p: &profile.Profile{Name: "Owner"}}, repo, newMemoryCache())
	rss := NewRSSUseCase(uc, "https://site.example/", logger.NewNopLogger())

	feed, err := rss.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, feed.Items, 2)
	assert.Equal(t, "Owner - Projects", feed.Title)
	assert.Equal(t, live, feed.Items[0].Link.Href)
	assert.Equal(t, "https://site.example", feed.Items[1].Link.Href)
}
