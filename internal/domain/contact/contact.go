package contact

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Message is a contact-form submission. The public API only ever writes these.
type Message struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Subject    *string    `json:"subject"`
	Message    string     `json:"message"`
	CreatedAt  time.Time  `json:"created_at"`
	NotifiedAt *time.Time `json:"notified_at"`
}

func NewMessage(name, email string, subject *string, body string, now time.Time) *Message {
	return &Message{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Subject:   subject,
		Message:   body,
		CreatedAt: now.UTC(),
	}
}

func (m *Message) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(m.Message) == "" {
		return errors.New("message is required")
	}
	if _, err := mail.ParseAddress(m.Email); err != nil {
		return errors.New("email is not a valid address")
	}
	return nil
}

type Repository interface {
	Create(ctx context.Context, m *Message) error
	FindByID(ctx context.Context, id uuid.UUID) (*Message, error)
	MarkNotified(ctx context.Context, id uuid.UUID, at time.Time) error
	Count(ctx context.Context) (int, error)
}
