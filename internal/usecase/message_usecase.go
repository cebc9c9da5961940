package usecase

import (
	"context"

	"stationhub/internal/domain/entity"
	"stationhub/internal/domain/repository"

	"github.com/google/uuid"
)

// SubmitMessageInput is one public contact-form submission. The form
// posts the message text under "message".
type SubmitMessageInput struct {
	Type          entity.MessageType `json:"type" validate:"required"`
	Name          string             `json:"name" validate:"required"`
	Email         string             `json:"email" validate:"required,email"`
	Phone         string             `json:"phone"`
	ServiceType   string             `json:"service_type"`
	Body          string             `json:"message" validate:"required"`
	AttachmentURL string             `json:"attachment_url"`
}

// MessageUsecase handles visitor contact messages: public submission and
// dashboard triage.
type MessageUsecase interface {
	// SubmitMessage validates and stores a contact-form submission.
	SubmitMessage(ctx context.Context, input *SubmitMessageInput) (*entity.ContactMessage, error)

	// ListMessages returns messages matching the filter for the dashboard.
	ListMessages(ctx context.Context, filter repository.MessageFilter) ([]*entity.ContactMessage, error)

	// GetMessage returns one message and marks it read.
	GetMessage(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error)

	// SetMessageArchived flips the archived flag on a message.
	SetMessageArchived(ctx context.Context, id uuid.UUID, archived bool) (*entity.ContactMessage, error)

	// DeleteMessage removes a message permanently.
	DeleteMessage(ctx context.Context, id uuid.UUID) error
}
