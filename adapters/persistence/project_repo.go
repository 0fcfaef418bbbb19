package persistence

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zthechelon/portfolio/internal/domain/project"
	"github.com/zthechelon/portfolio/pkg/apperror"
	"github.com/zthechelon/portfolio/pkg/logger"
)

type postgresProjectRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProjectRepo(db *pgxpool.Pool, logger logger.Logger) project.Repository {
	return &postgresProjectRepo{db: db, logger: logger}
}

func scanProject(row pgx.CollectableRow) (*project.Project, error) {
	p := &project.Project{}
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Link,
		&p.GithubLink,
		&p.ImageURL,
		&p.Tags,
	)
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return p, err
}

func (r *postgresProjectRepo) List(ctx context.Context) ([]*project.Project, error) {
	sql, args, err := psql.Select("id, title, description, link, github_link, image_url, tags").
		From("projects").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list projects query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query projects", err)
	}

	items, err := pgx.CollectRows(rows, scanProject)
	if err != nil {
		return nil, apperror.NewInternal("failed to scan project rows", err)
	}
	return items, nil
}

func (r *postgresProjectRepo) Create(ctx context.Context, p *project.Project) error {
	return insertProject(ctx, r.db, p)
}

func insertProject(ctx context.Context, q dbtx, p *project.Project) error {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	query := `
		INSERT INTO projects (title, description, link, github_link, image_url, tags)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	if err := q.QueryRow(ctx, query, p.Title, p.Description, p.Link, p.GithubLink, p.ImageURL, tags).Scan(&p.ID); err != nil {
		return apperror.NewInternal("failed to insert project", err)
	}
	return nil
}
