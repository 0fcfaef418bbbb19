package persistence

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/zthechelon/portfolio/internal/domain/contact"
	"github.com/zthechelon/portfolio/internal/domain/seed"
	"github.com/zthechelon/portfolio/pkg/apperror"
	"github.com/zthechelon/portfolio/pkg/logger"
)

type ContentStoreIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	testLogger  logger.Logger
	seedStore   seed.Store
	def         seed.Definition
}

func (s *ContentStoreIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()
	s.testLogger = logger.NewNopLogger()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	if err := RunMigrations(dsn, s.testLogger); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool
	s.seedStore = NewPostgresSeedStore(pool, s.testLogger)
	s.def = seed.Baseline()
}

func (s *ContentStoreIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func (s *ContentStoreIntegrationTestSuite) SetupTest() {
	s.Require().NoError(s.seedStore.Clear(context.Background()))
	_, err := s.dbPool.Exec(context.Background(), `DELETE FROM contact_messages`)
	s.Require().NoError(err)
}

func TestContentStoreIntegration(t *testing.T) {
	if testing.Short() || os.Getenv("INTEGRATION_TESTS") == "" {
		t.Skip("Skipping integration test; set INTEGRATION_TESTS=1 to run.")
	}
	suite.Run(t, new(ContentStoreIntegrationTestSuite))
}

func (s *ContentStoreIntegrationTestSuite) staleDecide() seed.DecideFunc {
	return func(st seed.State) bool { return seed.IsStale(st, s.def) }
}

func (s *ContentStoreIntegrationTestSuite) Test_EmptyStore() {
	ctx := context.Background()

	_, err := NewPostgresProfileRepo(s.dbPool, s.testLogger).Get(ctx)
	s.ErrorIs(err, apperror.ErrNotFound)

	projects, err := NewPostgresProjectRepo(s.dbPool, s.testLogger).List(ctx)
	s.NoError(err)
	s.NotNil(projects)
	s.Empty(projects)
}

func (s *ContentStoreIntegrationTestSuite) Test_Replace_Idempotent_And_Ordered() {
	ctx := context.Background()

	replaced, err := s.seedStore.Replace(ctx, s.def, s.staleDecide())
	s.NoError(err)
	s.True(replaced)

	replaced, err = s.seedStore.Replace(ctx, s.def, s.staleDecide())
	s.NoError(err)
	s.False(replaced)

	var profiles int
	s.NoError(s.dbPool.QueryRow(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&profiles))
	s.Equal(1, profiles)

	exps, err := NewPostgresExperienceRepo(s.dbPool, s.testLogger).List(ctx)
	s.NoError(err)
	s.Require().Len(exps, len(s.def.Experiences))
	for i, e := range exps {
		s.Equal(s.def.Experiences[i].Company, e.Company)
	}

	projects, err := NewPostgresProjectRepo(s.dbPool, s.testLogger).List(ctx)
	s.NoError(err)
	s.Require().Len(projects, len(s.def.Projects))
	s.Equal(s.def.Projects[0].Tags, projects[0].Tags)

	st, err := s.seedStore.State(ctx)
	s.NoError(err)
	s.Equal(len(s.def.Education), st.EducationCount)
	s.Equal(len(s.def.Skills), st.SkillCount)

	var version string
	s.NoError(s.dbPool.QueryRow(ctx, `SELECT version FROM seed_versions`).Scan(&version))
	s.Equal(s.def.Version, version)
}

func (s *ContentStoreIntegrationTestSuite) Test_Replace_After_Title_Change() {
	ctx := context.Background()
	_, err := s.seedStore.Replace(ctx, s.def, s.staleDecide())
	s.Require().NoError(err)

	_, err = s.dbPool.Exec(ctx, `UPDATE profiles SET title = 'Software Developer | Financial Data Analyst'`)
	s.Require().NoError(err)

	replaced, err := s.seedStore.Replace(ctx, s.def, s.staleDecide())
	s.NoError(err)
	s.True(replaced)

	p, err := NewPostgresProfileRepo(s.dbPool, s.testLogger).Get(ctx)
	s.NoError(err)
	s.Equal(s.def.ExpectedTitle(), p.Title)
}

func (s *ContentStoreIntegrationTestSuite) Test_Concurrent_Replace_Runs_Once() {
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make([]bool, 5)
	errs := make([]error, 5)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = s.seedStore.Replace(ctx, s.def, s.staleDecide())
		}(i)
	}
	wg.Wait()

	count := 0
	for i := range results {
		s.NoError(errs[i])
		if results[i] {
			count++
		}
	}
	s.Equal(1, count)

	var skills int
	s.NoError(s.dbPool.QueryRow(ctx, `SELECT COUNT(*) FROM skills`).Scan(&skills))
	s.Equal(len(s.def.Skills), skills)
}

func (s *ContentStoreIntegrationTestSuite) Test_Contact_Create_And_Notify() {
	ctx := context.Background()
	repo := NewPostgresContactRepo(s.dbPool, s.testLogger)

	msg := contact.NewMessage("A", "a@example.com", nil, "hi", time.Now())
	s.NoError(repo.Create(ctx, msg))

	n, err := repo.Count(ctx)
	s.NoError(err)
	s.Equal(1, n)

	s.NoError(repo.MarkNotified(ctx, msg.ID, time.Now()))
	found, err := repo.FindByID(ctx, msg.ID)
	s.NoError(err)
	s.NotNil(found.NotifiedAt)
	s.Nil(found.Subject)
}
