package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zthechelon/portfolio/internal/domain/contact"
	"github.com/zthechelon/portfolio/pkg/apperror"
	"github.com/zthechelon/portfolio/pkg/logger"
)

type postgresContactRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresContactRepo(db *pgxpool.Pool, logger logger.Logger) contact.Repository {
	return &postgresContactRepo{db: db, logger: logger}
}

func (r *postgresContactRepo) Create(ctx context.Context, m *contact.Message) error {
	query := `
		INSERT INTO contact_messages (id, name, email, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query, m.ID, m.Name, m.Email, m.Subject, m.Message, m.CreatedAt)
	if err != nil {
		return apperror.NewInternal("failed to insert contact message", err)
	}
	return nil
}

func (r *postgresContactRepo) FindByID(ctx context.Context, id uuid.UUID) (*contact.Message, error) {
	query := `
		SELECT id, name, email, subject, message, created_at, notified_at
		FROM contact_messages
		WHERE id = $1
	`
	m := &contact.Message{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.CreatedAt, &m.NotifiedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("contact message", id.String())
		}
		return nil, apperror.NewInternal("failed to query contact message", err)
	}
	return m, nil
}

func (r *postgresContactRepo) MarkNotified(ctx context.Context, id uuid.UUID, at time.Time) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE contact_messages SET notified_at = $2 WHERE id = $1`, id, at.UTC())
	if err != nil {
		return apperror.NewInternal("failed to mark contact message notified", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("contact message", id.String())
	}
	return nil
}

func (r *postgresContactRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&n); err != nil {
		return 0, apperror.NewInternal("failed to count contact messages", err)
	}
	return n, nil
}
