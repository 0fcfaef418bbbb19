package service

import (
	"context"

	"github.com/google/uuid"
)

const ContactEventTypeSubmitted = "contact.submitted"

type ContactEventPayload struct {
	EventType string    `json:"event_type"`
	MessageID uuid.UUID `json:"message_id"`
}

type ContactEventPublisher interface {
	PublishContactEvent(ctx context.Context, payload ContactEventPayload) error
}
