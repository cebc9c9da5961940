package postgres

import (
	"context"

	"stationhub/internal/domain/entity"
	domainerrors "stationhub/internal/domain/errors"
	"stationhub/internal/domain/repository"
	"stationhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// messageRepository implements repository.MessageRepository using GORM.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

// FindByID retrieves a single message by its unique ID.
func (repo *messageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error) {
	var messageM model.ContactMessageModel
	if err := repo.db.WithContext(ctx).First(&messageM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMessageNotFound
		}

		return nil, errors.Wrap(err, "failed to find contact message by id")
	}

	return toMessageDomain(&messageM), nil
}

// List returns messages matching the filter, newest first.
func (repo *messageRepository) List(ctx context.Context, filter repository.MessageFilter) ([]*entity.ContactMessage, error) {
	query := repo.db.WithContext(ctx).Order("created_at DESC")

	if !filter.IncludeArchived {
		query = query.Where("archived = ?", false)
	}
	if filter.UnreadOnly {
		query = query.Where("read = ?", false)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type.String())
	}

	var messageModels []model.ContactMessageModel
	if err := query.Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list contact messages")
	}

	messages := make([]*entity.ContactMessage, 0, len(messageModels))
	for i := range messageModels {
		messages = append(messages, toMessageDomain(&messageModels[i]))
	}

	return messages, nil
}

// Create persists a new message from the public contact form.
func (repo *messageRepository) Create(ctx context.Context, message *entity.ContactMessage) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required message information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create contact message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt
	message.UpdatedAt = messageM.UpdatedAt

	return nil
}

// Update modifies triage flags on an existing message.
func (repo *messageRepository) Update(ctx context.Context, message *entity.ContactMessage) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Save(messageM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update contact message")
	}

	message.UpdatedAt = messageM.UpdatedAt

	return nil
}

// Delete removes a message permanently.
func (repo *messageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ContactMessageModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete contact message")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMessageNotFound
	}

	return nil
}

func toMessageDomain(m *model.ContactMessageModel) *entity.ContactMessage {
	return &entity.ContactMessage{
		ID:            m.ID,
		Name:          m.Name,
		Email:         m.Email,
		Phone:         m.Phone,
		Body:          m.Body,
		Type:          entity.MessageType(m.Type),
		ServiceType:   m.ServiceType,
		AttachmentURL: m.AttachmentURL,
		Read:          m.Read,
		Archived:      m.Archived,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func fromMessageDomain(msg *entity.ContactMessage) *model.ContactMessageModel {
	return &model.ContactMessageModel{
		ID:            msg.ID,
		Name:          msg.Name,
		Email:         msg.Email,
		Phone:         msg.Phone,
		Body:          msg.Body,
		Type:          msg.Type.String(),
		ServiceType:   msg.ServiceType,
		AttachmentURL: msg.AttachmentURL,
		Read:          msg.Read,
		Archived:      msg.Archived,
		CreatedAt:     msg.CreatedAt,
		UpdatedAt:     msg.UpdatedAt,
	}
}
