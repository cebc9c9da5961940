package impl

import (
	"context"
	"log/slog"

	deliverycontext "stationhub/internal/delivery/context"
	"stationhub/internal/domain/entity"
	domainerrors "stationhub/internal/domain/errors"
	"stationhub/internal/domain/repository"
	"stationhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// messageService implements the MessageUsecase interface.
type messageService struct {
	messageRepo repository.MessageRepository
	logger      *slog.Logger
}

// MessageServiceParams holds dependencies for messageService, injected by Fx.
type MessageServiceParams struct {
	fx.In

	MessageRepo repository.MessageRepository
	Logger      *slog.Logger
}

// NewMessageService is the constructor for messageService.
func NewMessageService(params MessageServiceParams) usecase.MessageUsecase {
	return &messageService{
		messageRepo: params.MessageRepo,
		logger:      params.Logger,
	}
}

func (srv *messageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitMessage validates and stores a contact-form submission.
func (srv *messageService) SubmitMessage(ctx context.Context, input *usecase.SubmitMessageInput) (*entity.ContactMessage, error) {
	if !input.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown message type")
	}
	if input.Name == "" || input.Email == "" || input.Body == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name, email and message body are required")
	}

	message := &entity.ContactMessage{
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		Body:          input.Body,
		Type:          input.Type,
		ServiceType:   input.ServiceType,
		AttachmentURL: input.AttachmentURL,
	}

	if err := srv.messageRepo.Create(ctx, message); err != nil {
		srv.log(ctx).Error("Failed to store contact message", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store contact message")
	}
	srv.log(ctx).Info("Contact message received",
		slog.Any("messageID", message.ID), slog.String("type", message.Type.String()))

	return message, nil
}

// ListMessages returns messages matching the filter for the dashboard.
func (srv *messageService) ListMessages(ctx context.Context, filter repository.MessageFilter) ([]*entity.ContactMessage, error) {
	if filter.Type != "" && !filter.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown message type")
	}

	messages, err := srv.messageRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contact messages")
	}

	return messages, nil
}

// GetMessage returns one message and marks it read.
func (srv *messageService) GetMessage(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error) {
	message, err := srv.messageRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil, domainerrors.ErrMessageNotFound
		}

		return nil, errors.Wrap(err, "failed to find contact message")
	}

	if !message.Read {
		message.Read = true
		if err := srv.messageRepo.Update(ctx, message); err != nil {
			// Reading still succeeded; the flag will be set on a later view.
			srv.log(ctx).Warn("Failed to mark message read", slog.Any("messageID", id), slog.Any("error", err))
		}
	}

	return message, nil
}

// SetMessageArchived flips the archived flag on a message.
func (srv *messageService) SetMessageArchived(ctx context.Context, id uuid.UUID, archived bool) (*entity.ContactMessage, error) {
	message, err := srv.messageRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil, domainerrors.ErrMessageNotFound
		}

		return nil, errors.Wrap(err, "failed to find contact message")
	}

	message.Archived = archived
	if err := srv.messageRepo.Update(ctx, message); err != nil {
		return nil, errors.Wrap(err, "failed to update contact message")
	}
	srv.log(ctx).Info("Contact message archive flag set",
		slog.Any("messageID", id), slog.Bool("archived", archived))

	return message, nil
}

// DeleteMessage removes a message permanently.
func (srv *messageService) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	if err := srv.messageRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return domainerrors.ErrMessageNotFound
		}

		return errors.Wrap(err, "failed to delete contact message")
	}
	srv.log(ctx).Info("Contact message deleted", slog.Any("messageID", id))

	return nil
}
