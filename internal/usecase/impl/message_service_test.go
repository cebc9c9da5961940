package impl

import (
	"context"
	"testing"

	"stationhub/internal/domain/entity"
	domainerrors "stationhub/internal/domain/errors"
	"stationhub/internal/domain/repository"
	mockRepo "stationhub/internal/mocks/repository"
	"stationhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMessageService(messageRepo repository.MessageRepository) usecase.MessageUsecase {
	return NewMessageService(MessageServiceParams{
		MessageRepo: messageRepo,
		Logger:      newTestLogger(),
	})
}

func TestMessageService_SubmitMessage_Success(t *testing.T) {
	messageRepo := mockRepo.NewMockMessageRepository(t)
	svc := newMessageService(messageRepo)

	ctx := context.Background()

	messageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ContactMessage")).
		Run(func(ctx context.Context, message *entity.ContactMessage) {
			assert.Equal(t, entity.MessageTypeComplaint, message.Type)
			assert.False(t, message.Read)
			assert.False(t, message.Archived)
		}).
		Return(nil)

	out, err := svc.SubmitMessage(ctx, &usecase.SubmitMessageInput{
		Type:  entity.MessageTypeComplaint,
		Name:  "Visitor",
		Email: "visitor@example.com",
		Body:  "The pump at station 4 is broken.",
	})

	require.NoError(t, err)
	assert.Equal(t, "Visitor", out.Name)
}

func TestMessageService_SubmitMessage_UnknownType(t *testing.T) {
	messageRepo := mockRepo.NewMockMessageRepository(t)
	svc := newMessageService(messageRepo)

	_, err := svc.SubmitMessage(context.Background(), &usecase.SubmitMessageInput{
		Type:  entity.MessageType("spam"),
		Name:  "Visitor",
		Email: "visitor@example.com",
		Body:  "hello",
	})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestMessageService_SubmitMessage_MissingFields(t *testing.T) {
	messageRepo := mockRepo.NewMockMessageRepository(t)
	svc := newMessageService(messageRepo)

	_, err := svc.SubmitMessage(context.Background(), &usecase.SubmitMessageInput{
		Type: entity.MessageTypeGeneral,
		Name: "Visitor",
	})

	require.Error(t, err)
}

func TestMessageService_GetMessage_MarksRead(t *testing.T) {
	messageRepo := mockRepo.NewMockMessageRepository(t)
	svc := newMessageService(messageRepo)

	ctx := context.Background()
	message := &entity.ContactMessage{ID: uuid.New(), Read: false}

	messageRepo.EXPECT().FindByID(ctx, message.ID).Return(message, nil)
	messageRepo.EXPECT().Update(ctx, message).Return(nil)

	out, err := svc.GetMessage(ctx, message.ID)

	require.NoError(t, err)
	assert.True(t, out.Read)
}

func TestMessageService_GetMessage_AlreadyRead(t *testing.T) {
	messageRepo := mockRepo.NewMockMessageRepository(t)
	svc := newMessageService(messageRepo)

	ctx := context.Background()
	message := &entity.ContactMessage{ID: uuid.New(), Read: true}

	messageRepo.EXPECT().FindByID(ctx, message.ID).Return(message, nil)

	out, err := svc.GetMessage(ctx, message.ID)

	require.NoError(t, err)
	assert.True(t, out.Read)
}

func TestMessageService_SetMessageArchived(t *testing.T) {
	messageRepo := mockRepo.NewMockMessageRepository(t)
	svc := newMessageService(messageRepo)

	ctx := context.Background()
	message := &entity.ContactMessage{ID: uuid.New()}

	messageRepo.EXPECT().FindByID(ctx, message.ID).Return(message, nil)
	messageRepo.EXPECT().Update(ctx, message).Return(nil)

	out, err := svc.SetMessageArchived(ctx, message.ID, true)

	require.NoError(t, err)
	assert.True(t, out.Archived)
}

func TestMessageService_ListMessages_FilterValidation(t *testing.T) {
	messageRepo := mockRepo.NewMockMessageRepository(t)
	svc := newMessageService(messageRepo)

	_, err := svc.ListMessages(context.Background(), repository.MessageFilter{Type: entity.MessageType("spam")})

	require.Error(t, err)
}

func TestMessageService_DeleteMessage_NotFound(t *testing.T) {
	messageRepo := mockRepo.NewMockMessageRepository(t)
	svc := newMessageService(messageRepo)

	ctx := context.Background()
	id := uuid.New()

	messageRepo.EXPECT().Delete(ctx, id).Return(repository.ErrMessageNotFound)

	err := svc.DeleteMessage(ctx, id)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMessageNotFound)
}
