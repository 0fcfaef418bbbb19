package contact

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zthechelon/portfolio/internal/application/service"
	"github.com/zthechelon/portfolio/internal/domain/contact"
	"github.com/zthechelon/portfolio/pkg/apperror"
	"github.com/zthechelon/portfolio/pkg/logger"
)

type SubmitContactUseCase struct {
	contactRepo contact.Repository
	publisher   service.ContactEventPublisher
	logger      logger.Logger
	now         func() time.Time
}

func NewSubmitContactUseCase(repo contact.Repository, publisher service.ContactEventPublisher, log logger.Logger) *SubmitContactUseCase {
	return &SubmitContactUseCase{
		contactRepo: repo,
		publisher:   publisher,
		logger:      log,
		now:         time.Now,
	}
}

type SubmitContactInput struct {
	Name    string
	Email   string
	Subject *string
	Message string
}

type SubmitContactOutput struct {
	MessageID uuid.UUID
}

func (uc *SubmitContactUseCase) Execute(ctx context.Context, input SubmitContactInput) (*SubmitContactOutput, error) {
	msg := contact.NewMessage(input.Name, input.Email, input.Subject, input.Message, uc.now())
	if err := msg.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("contact validation failed", err)
	}

	if err := uc.contactRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	go func() {
		err := uc.publisher.PublishContactEvent(context.Background(), service.ContactEventPayload{
			EventType: service.ContactEventTypeSubmitted,
			MessageID: msg.ID,
		})
		if err != nil {
			uc.logger.Error("Failed to publish contact event", err, zap.String("message_id", msg.ID.String()))
		}
	}()

	return &SubmitContactOutput{MessageID: msg.ID}, nil
}
