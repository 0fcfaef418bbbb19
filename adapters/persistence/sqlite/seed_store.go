package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/zthechelon/portfolio/internal/domain/seed"
	"github.com/zthechelon/portfolio/pkg/apperror"
)

var seededTables = []string{"skills", "projects", "education", "experiences", "profiles"}

type seedStore struct{ db *sql.DB }

func NewSeedStore(db *sql.DB) seed.Store { return &seedStore{db: db} }

func (s *seedStore) State(ctx context.Context) (seed.State, error) {
	return readSeedState(ctx, s.db)
}

// Replace relies on the IMMEDIATE transaction taking the database write lock
// before state is re-read.
func (s *seedStore) Replace(ctx context.Context, def seed.Definition, decide seed.DecideFunc) (bool, error) {
	replaced := false
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		state, err := readSeedState(ctx, tx)
		if err != nil {
			return err
		}
		if !decide(state) {
			return nil
		}
		if err := clearSeeded(ctx, tx); err != nil {
			return err
		}
		if err := insertDefinition(ctx, tx, def); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO seed_versions (version, title, applied_at) VALUES (?, ?, ?)
			ON CONFLICT (version) DO UPDATE SET title = excluded.title, applied_at = excluded.applied_at`,
			def.Version, def.ExpectedTitle(), toMillis(time.Now()),
		)
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

func (s *seedStore) Clear(ctx context.Context) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		return clearSeeded(ctx, tx)
	})
}

func (s *seedStore) inTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return apperror.NewInternal("failed to begin seed transaction", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return apperror.NewInternal("failed to commit seed transaction", err)
	}
	return nil
}

func readSeedState(ctx context.Context, q querier) (seed.State, error) {
	var title sql.NullString
	var st seed.State
	err := q.QueryRowContext(ctx, `
		SELECT
			(SELECT title FROM profiles ORDER BY id LIMIT 1),
			(SELECT COUNT(*) FROM experiences),
			(SELECT COUNT(*) FROM education),
			(SELECT COUNT(*) FROM projects),
			(SELECT COUNT(*) FROM skills)`,
	).Scan(&title, &st.ExperienceCount, &st.EducationCount, &st.ProjectCount, &st.SkillCount)
	if err != nil {
		return seed.State{}, apperror.NewInternal("failed to read seed state", err)
	}
	st.HasProfile = title.Valid
	st.ProfileTitle = title.String
	return st, nil
}

func clearSeeded(ctx context.Context, q querier) error {
	for _, table := range seededTables {
		if _, err := q.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return apperror.NewInternal("failed to clear "+table, err)
		}
	}
	return nil
}

func insertDefinition(ctx context.Context, q querier, def seed.Definition) error {
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
