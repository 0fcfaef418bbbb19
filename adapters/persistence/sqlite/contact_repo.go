package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/zthechelon/portfolio/internal/domain/contact"
	"github.com/zthechelon/portfolio/pkg/apperror"
)

type contactRepo struct{ db *sql.DB }

func NewContactRepo(db *sql.DB) contact.Repository { return &contactRepo{db: db} }

func (r *contactRepo) Create(ctx context.Context, m *contact.Message) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO contact_messages (id, name, email, subject, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID.String(), m.Name, m.Email, m.Subject, m.Message, toMillis(m.CreatedAt),
	)
	if err != nil {
		return apperror.NewInternal("failed to insert contact message", err)
	}
	return nil
}

func (r *contactRepo) FindByID(ctx context.Context, id uuid.UUID) (*contact.Message, error) {
	m := &contact.Message{}
	var rawID string
	var createdAt int64
	var notifiedAt sql.NullInt64
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, subject, message, created_at, notified_at
		FROM contact_messages WHERE id = ?`, id.String(),
	).Scan(&rawID, &m.Name, &m.Email, &m.Subject, &m.Message, &createdAt, &notifiedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NewNotFound("contact message", id.String())
		}
		return nil, apperror.NewInternal("failed to query contact message", err)
	}
	if m.ID, err = uuid.Parse(rawID); err != nil {
		return nil, apperror.NewInternal("stored contact message id is not a uuid", err)
	}
	m.CreatedAt = fromMillis(createdAt)
	if notifiedAt.Valid {
		t := fromMillis(notifiedAt.Int64)
		m.NotifiedAt = &t
	}
	return m, nil
}

func (r *contactRepo) MarkNotified(ctx context.Context, id uuid.UUID, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `UPDATE contact_messages SET notified_at = ? WHERE id = ?`, toMillis(at), id.String())
	if err != nil {
		return apperror.NewInternal("failed to mark contact message notified", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperror.NewNotFound("contact message", id.String())
	}
	return nil
}

func (r *contactRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&n); err != nil {
		return 0, apperror.NewInternal("failed to count contact messages", err)
	}
	return n, nil
}
