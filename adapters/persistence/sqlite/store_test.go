package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/zthechelon/portfolio/internal/domain/contact"
	"github.com/zthechelon/portfolio/internal/domain/seed"
	"github.com/zthechelon/portfolio/pkg/apperror"
)

type StoreTestSuite struct {
	suite.Suite
	db    *sql.DB
	store seed.Store
	def   seed.Definition
}

func (s *StoreTestSuite) SetupTest() {
	db, err := Open(filepath.Join(s.T().TempDir(), "portfolio.db"))
	s.Require().NoError(err)
	s.db = db
	s.store = NewSeedStore(db)
	s.def = seed.Baseline()
}

func (s *StoreTestSuite) TearDownTest() {
	s.Require().NoError(s.db.Close())
}

func (s *StoreTestSuite) staleDecide() seed.DecideFunc {
	return func(st seed.State) bool { return seed.IsStale(st, s.def) }
}

func (s *StoreTestSuite) TestEmptyStoreState() {
	ctx := context.Background()

	st, err := s.store.State(ctx)
	s.Require().NoError(err)
	s.False(st.HasProfile)
	s.True(seed.IsStale(st, s.def))

	_, err = NewProfileRepo(s.db).Get(ctx)
	s.ErrorIs(err, apperror.ErrNotFound)

	exps, err := NewExperienceRepo(s.db).List(ctx)
	s.Require().NoError(err)
	s.NotNil(exps)
	s.Empty(exps)
}

func (s *StoreTestSuite) TestReplaceIsIdempotent() {
	ctx := context.Background()

	replaced, err := s.store.Replace(ctx, s.def, s.staleDecide())
	s.Require().NoError(err)
	s.True(replaced)

	first, err := NewSkillRepo(s.db).List(ctx)
	s.Require().NoError(err)

	replaced, err = s.store.Replace(ctx, s.def, s.staleDecide())
	s.Require().NoError(err)
	s.False(replaced)

	second, err := NewSkillRepo(s.db).List(ctx)
	s.Require().NoError(err)
	s.Equal(first, second)

	st, err := s.store.State(ctx)
	s.Require().NoError(err)
	s.False(seed.IsStale(st, s.def))
	s.Equal(len(s.def.Education), st.EducationCount)
}

func (s *StoreTestSuite) TestReplaceAfterTitleChange() {
	ctx := context.Background()
	_, err := s.store.Replace(ctx, s.def, s.staleDecide())
	s.Require().NoError(err)

	_, err = s.db.ExecContext(ctx, `UPDATE profiles SET title = 'Software Developer | Financial Data Analyst'`)
	s.Require().NoError(err)

	replaced, err := s.store.Replace(ctx, s.def, s.staleDecide())
	s.Require().NoError(err)
	s.True(replaced)

	p, err := NewProfileRepo(s.db).Get(ctx)
	s.Require().NoError(err)
	s.Equal(s.def.ExpectedTitle(), p.Title)

	var profiles int
	s.Require().NoError(s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&profiles))
	s.Equal(1, profiles)
}

func (s *StoreTestSuite) TestReplaceWhenExperiencesEmptied() {
	ctx := context.Background()
	_, err := s.store.Replace(ctx, s.def, s.staleDecide())
	s.Require().NoError(err)

	_, err = s.db.ExecContext(ctx, `DELETE FROM experiences`)
	s.Require().NoError(err)

	replaced, err := s.store.Replace(ctx, s.def, s.staleDecide())
	s.Require().NoError(err)
	s.True(replaced)

	exps, err := NewExperienceRepo(s.db).List(ctx)
	s.Require().NoError(err)
	s.Len(exps, len(s.def.Experiences))
}

func (s *StoreTestSuite) TestListsFollowInsertionOrder() {
	ctx := context.Background()
	_, err := s.store.Replace(ctx, s.def, s.staleDecide())
	s.Require().NoError(err)

	exps, err := NewExperienceRepo(s.db).List(ctx)
	s.Require().NoError(err)
	s.Require().Len(exps, len(s.def.Experiences))
	for i, e := range exps {
		s.Equal(s.def.Experiences[i].Company, e.Company)
		if i > 0 {
			s.Greater(e.ID, exps[i-1].ID)
		}
	}

	projects, err := NewProjectRepo(s.db).List(ctx)
	s.Require().NoError(err)
	s.Require().Len(projects, len(s.def.Projects))
	s.Equal(s.def.Projects[0].Title, projects[0].Title)
	s.Equal(s.def.Projects[0].Tags, projects[0].Tags)
}

func (s *StoreTestSuite) TestClearEmptiesEveryCollection() {
	ctx := context.Background()
	_, err := s.store.Replace(ctx, s.def, s.staleDecide())
	s.Require().NoError(err)

	s.Require().NoError(s.store.Clear(ctx))

	st, err := s.store.State(ctx)
	s.Require().NoError(err)
	s.Equal(seed.State{}, st)
}

func (s *StoreTestSuite) TestConcurrentReplaceRunsOnce() {
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make([]bool, 4)
	errs := make([]error, 4)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = s.store.Replace(ctx, s.def, s.staleDecide())
		}(i)
	}
	wg.Wait()

	replacedCount := 0
	for i := range results {
		s.Require().NoError(errs[i])
		if results[i] {
			replacedCount++
		}
	}
	s.Equal(1, replacedCount)

	st, err := s.store.State(ctx)
	s.Require().NoError(err)
	s.Equal(len(s.def.Skills), st.SkillCount)
}

func (s *StoreTestSuite) TestContactMessageLifecycle() {
	ctx := context.Background()
	repo := NewContactRepo(s.db)

	subject := "Hello"
	msg := contact.NewMessage("Ada", "ada@example.com", &subject, "Let's talk", time.Now())
	s.Require().NoError(repo.Create(ctx, msg))

	n, err := repo.Count(ctx)
	s.Require().NoError(err)
	s.Equal(1, n)

	got, err := repo.FindByID(ctx, msg.ID)
	s.Require().NoError(err)
	s.Equal(msg.Email, got.Email)
	s.Require().NotNil(got.Subject)
	s.Equal(subject, *got.Subject)
	s.Nil(got.NotifiedAt)
	s.WithinDuration(msg.CreatedAt, got.CreatedAt, time.Millisecond)

	at := time.Now()
	s.Require().NoError(repo.MarkNotified(ctx, msg.ID, at))
	got, err = repo.FindByID(ctx, msg.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got.NotifiedAt)
	s.WithinDuration(at, *got.NotifiedAt, time.Millisecond)
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open(" ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path")
}
