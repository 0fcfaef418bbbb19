package persistence

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zthechelon/portfolio/internal/domain/profile"
	"github.com/zthechelon/portfolio/pkg/apperror"
	"github.com/zthechelon/portfolio/pkg/logger"
)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

func (r *postgresProfileRepo) Get(ctx context.Context) (*profile.Profile, error) {
	query := `
		SELECT id, name, title, bio, email, linkedin_url, github_url, resume_url, image_url
		FROM profiles
		ORDER BY id
		LIMIT 1
	`
	p := &profile.Profile{}
	err := r.db.QueryRow(ctx, query).Scan(
		&p.ID,
		&p.Name,
		&p.Title,
		&p.Bio,
		&p.Email,
		&p.LinkedinURL,
		&p.GithubURL,
		&p.ResumeURL,
		&p.ImageURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", "singleton")
		}
		return nil, apperror.NewInternal("failed to query profile", err)
	}
	return p, nil
}

func (r *postgresProfileRepo) Create(ctx context.Context, p *profile.Profile) error {
	return insertProfile(ctx, r.db, p)
}

func insertProfile(ctx context.Context, q dbtx, p *profile.Profile) error {
	query := `
		INSERT INTO profiles (name, title, bio, email, linkedin_url, github_url, resume_url, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := q.QueryRow(ctx, query,
		p.Name, p.Title, p.Bio, p.Email,
		p.LinkedinURL, p.GithubURL, p.ResumeURL, p.ImageURL,
	).Scan(&p.ID)
	if err != nil {
		return apperror.NewInternal("failed to insert profile", err)
	}
	return nil
}
