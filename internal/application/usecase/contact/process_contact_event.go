package contact

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/zthechelon/portfolio/internal/application/service"
	"github.com/zthechelon/portfolio/internal/domain/contact"
	"github.com/zthechelon/portfolio/pkg/apperror"
	"github.com/zthechelon/portfolio/pkg/logger"
)

// ProcessContactEventUseCase records that the owner has been notified of a submission.
type ProcessContactEventUseCase struct {
	contactRepo contact.Repository
	logger      logger.Logger
	now         func() time.Time
}

func NewProcessContactEventUseCase(repo contact.Repository, log logger.Logger) *ProcessContactEventUseCase {
	return &ProcessContactEventUseCase{contactRepo: repo, logger: log, now: time.Now}
}

func (uc *ProcessContactEventUseCase) Execute(ctx context.Context, payload service.ContactEventPayload) error {
	if payload.EventType != service.ContactEventTypeSubmitted {
		uc.logger.Warn("Unknown contact event type, skip.", zap.String("event_type", payload.EventType))
		return nil
	}

	msg, err := uc.contactRepo.FindByID(ctx, payload.MessageID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			uc.logger.Warn("Contact message not found, skip.", zap.String("message_id", payload.MessageID.String()))
			return nil
		}
		return fmt.Errorf("get contact message failed: %w", err)
	}

	if msg.NotifiedAt != nil {
		uc.logger.Info("Contact message already notified, skip.", zap.String("message_id", msg.ID.String()))
		return nil
	}

	uc.logger.Info("New contact message",
		zap.String("message_id", msg.ID.String()),
		zap.String("from", msg.Name),
		zap.String("email", msg.Email),
		zap.Time("created_at", msg.CreatedAt),
	)

	if err := uc.contactRepo.MarkNotified(ctx, msg.ID, uc.now().UTC()); err != nil {
		return fmt.Errorf("mark contact message %s notified failed: %w", msg.ID, err)
	}
	return nil
}
