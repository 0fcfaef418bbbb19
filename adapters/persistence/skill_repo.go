package persistence

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zthechelon/portfolio/internal/domain/skill"
	"github.com/zthechelon/portfolio/pkg/apperror"
	"github.com/zthechelon/portfolio/pkg/logger"
)

type postgresSkillRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresSkillRepo(db *pgxpool.Pool, logger logger.Logger) skill.Repository {
	return &postgresSkillRepo{db: db, logger: logger}
}

func (r *postgresSkillRepo) List(ctx context.Context) ([]*skill.Skill, error) {
	sql, args, err := psql.Select("id, name, category, proficiency").
		From("skills").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list skills query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query skills", err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*skill.Skill, error) {
		s := &skill.Skill{}
		err := row.Scan(&s.ID, &s.Name, &s.Category, &s.Proficiency)
		return s, err
	})
	if err != nil {
		return nil, apperror.NewInternal("failed to scan skill rows", err)
	}
	return items, nil
}

func (r *postgresSkillRepo) Create(ctx context.Context, s *skill.Skill) error {
	return insertSkill(ctx, r.db, s)
}

func insertSkill(ctx context.Context, q dbtx, s *skill.Skill) error {
	query := `
		INSERT INTO skills (name, category, proficiency)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	if err := q.QueryRow(ctx, query, s.Name, s.Category, s.Proficiency).Scan(&s.ID); err != nil {
		return apperror.NewInternal("failed to insert skill", err)
	}
	return nil
}
