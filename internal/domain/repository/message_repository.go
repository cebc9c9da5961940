package repository

import (
	"context"
	"errors"

	"stationhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMessageNotFound is returned when a contact message does not exist.
var ErrMessageNotFound = errors.New("contact message not found")

// MessageFilter narrows contact-message listings. The zero value lists
// every non-archived message.
type MessageFilter struct {
	Type            entity.MessageType // Empty means all types.
	UnreadOnly      bool
	IncludeArchived bool
}

// MessageRepository persists visitor-submitted contact messages.
type MessageRepository interface {
	// FindByID retrieves a single message by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error)

	// List returns messages matching the filter, newest first.
	List(ctx context.Context, filter MessageFilter) ([]*entity.ContactMessage, error)

	// Create persists a new message from the public contact form.
	Create(ctx context.Context, message *entity.ContactMessage) error

	// Update modifies triage flags on an existing message.
	Update(ctx context.Context, message *entity.ContactMessage) error

	// Delete removes a message permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
