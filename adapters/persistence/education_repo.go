package persistence

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zthechelon/portfolio/internal/domain/education"
	"github.com/zthechelon/portfolio/pkg/apperror"
	"github.com/zthechelon/portfolio/pkg/logger"
)

type postgresEducationRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresEducationRepo(db *pgxpool.Pool, logger logger.Logger) education.Repository {
	return &postgresEducationRepo{db: db, logger: logger}
}

func (r *postgresEducationRepo) List(ctx context.Context) ([]*education.Education, error) {
	sql, args, err := psql.Select("id, school, degree, field, start_date, end_date").
		From("education").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list education query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query education", err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*education.Education, error) {
		e := &education.Education{}
		err := row.Scan(&e.ID, &e.School, &e.Degree, &e.Field, &e.StartDate, &e.EndDate)
		return e, err
	})
	if err != nil {
		return nil, apperror.NewInternal("failed to scan education rows", err)
	}
	return items, nil
}

func (r *postgresEducationRepo) Create(ctx context.Context, e *education.Education) error {
	return insertEducation(ctx, r.db, e)
}

func insertEducation(ctx context.Context, q dbtx, e *education.Education) error {
	query := `
		INSERT INTO education (school, degree, field, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	if err := q.QueryRow(ctx, query, e.School, e.Degree, e.Field, e.StartDate, e.EndDate).Scan(&e.ID); err != nil {
		return apperror.NewInternal("failed to insert education", err)
	}
	return nil
}
