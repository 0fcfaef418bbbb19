package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zthechelon/portfolio/internal/domain/experience"
	"github.com/zthechelon/portfolio/pkg/apperror"
	"github.com/zthechelon/portfolio/pkg/logger"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type postgresExperienceRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresExperienceRepo(db *pgxpool.Pool, logger logger.Logger) experience.Repository {
	return &postgresExperienceRepo{db: db, logger: logger}
}

func (r *postgresExperienceRepo) List(ctx context.Context) ([]*experience.Experience, error) {
	sql, args, err := psql.Select("id, company, role, start_date, end_date, description").
		From("experiences").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list experiences query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query experiences", err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*experience.Experience, error) {
		e := &experience.Experience{}
		err := row.Scan(&e.ID, &e.Company, &e.Role, &e.StartDate, &e.EndDate, &e.Description)
		return e, err
	})
	if err != nil {
		return nil, apperror.NewInternal("failed to scan experience rows", err)
	}
	return items, nil
}

func (r *postgresExperienceRepo) Create(ctx context.Context, e *experience.Experience) error {
	return insertExperience(ctx, r.db, e)
}

func insertExperience(ctx context.Context, q dbtx, e *experience.Experience) error {
	query := `
		INSERT INTO experiences (company, role, start_date, end_date, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	if err := q.QueryRow(ctx, query, e.Company, e.Role, e.StartDate, e.EndDate, e.Description).Scan(&e.ID); err != nil {
		return apperror.NewInternal("failed to insert experience", err)
	}
	return nil
}
