package persistence

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/zthechelon/portfolio/internal/domain/seed"
	"github.com/zthechelon/portfolio/pkg/apperror"
	"github.com/zthechelon/portfolio/pkg/logger"
)

// seedLockKey is the pg_advisory_xact_lock key shared by every instance.
const seedLockKey int64 = 0x706f7274666f6c69

// Child rows first; there are no foreign keys today but the order is kept stable.
var seededTables = []string{"skills", "projects", "education", "experiences", "profiles"}

type postgresSeedStore struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresSeedStore(db *pgxpool.Pool, logger logger.Logger) seed.Store {
	return &postgresSeedStore{db: db, logger: logger}
}

func (s *postgresSeedStore) State(ctx context.Context) (seed.State, error) {
	return readSeedState(ctx, s.db)
}

func (s *postgresSeedStore) Replace(ctx context.Context, def seed.Definition, decide seed.DecideFunc) (bool, error) {
	replaced := false
	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, seedLockKey); err != nil {
			return apperror.NewInternal("failed to acquire seed lock", err)
		}

		state, err := readSeedState(ctx, tx)
		if err != nil {
			return err
		}
		if !decide(state) {
			s.logger.Info("Seed no longer needed once lock was held", zap.String("version", def.Version))
			return nil
		}

		if err := clearSeeded(ctx, tx); err != nil {
			return err
		}
		if err := insertDefinition(ctx, tx, def); err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO seed_versions (version, title, applied_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (version) DO UPDATE SET title = EXCLUDED.title, applied_at = EXCLUDED.applied_at
		`, def.Version, def.ExpectedTitle(), time.Now().UTC())
		if err != nil {
			return apperror.NewInternal("failed to record seed version", err)
		}

		replaced = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return replaced, nil
}

func (s *postgresSeedStore) Clear(ctx context.Context) error {
	return pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		return clearSeeded(ctx, tx)
	})
}

func readSeedState(ctx context.Context, q dbtx) (seed.State, error) {
	query := `
		SELECT
			(SELECT title FROM profiles ORDER BY id LIMIT 1),
			(SELECT COUNT(*) FROM experiences),
			(SELECT COUNT(*) FROM education),
			(SELECT COUNT(*) FROM projects),
			(SELECT COUNT(*) FROM skills)
	`
	var title *string
	var st seed.State
	err := q.QueryRow(ctx, query).Scan(
		&title,
		&st.ExperienceCount,
		&st.EducationCount,
		&st.ProjectCount,
		&st.SkillCount,
	)
	if err != nil {
		return seed.State{}, apperror.NewInternal("failed to read seed state", err)
	}
	if title != nil {
		st.HasProfile = true
		st.ProfileTitle = *title
	}
	return st, nil
}

func clearSeeded(ctx context.Context, q dbtx) error {
	for _, table := range seededTables {
		if _, err := q.Exec(ctx, "DELETE FROM "+table); err != nil {
			return apperror.NewInternal("failed to clear "+table, err)
		}
	}
	return nil
}

// insertDefinition writes copies so def stays reusable.
func insertDefinition(ctx context.Context, q dbtx, def seed.Definition) error {
	p := def.Profile
	if err := insertProfile(ctx, q, &p); err != nil {
		return err
	}
	for _, e := range def.Experiences {
		if err := insertExperience(ctx, q, &e); err != nil {
			return err
		}
	}
	for _, e := range def.Education {
		if err := insertEducation(ctx, q, &e); err != nil {
			return err
		}
	}
	for _, p := range def.Projects {
		if err := insertProject(ctx, q, &p); err != nil {
			return err
		}
	}
	for _, s := range def.Skills {
		if err := insertSkill(ctx, q, &s); err != nil {
			return err
		}
	}
	return nil
}
