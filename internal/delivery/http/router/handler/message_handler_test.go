package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stationhub/internal/delivery/http/validator"
	"stationhub/internal/domain/entity"
	domainerrors "stationhub/internal/domain/errors"
	mockUsecase "stationhub/internal/mocks/usecase"
	"stationhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func postJSON(t *testing.T, h echo.HandlerFunc, target, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return rec, h(e.NewContext(req, rec))
}

func TestMessageHandler_Submit(t *testing.T) {
	uc := mockUsecase.NewMockMessageUsecase(t)
	h := NewMessageHandler(uc, newTestLogger())

	var got *usecase.SubmitMessageInput
	uc.EXPECT().
		SubmitMessage(mock.Anything, mock.Anything).
		Run(func(_ context.Context, input *usecase.SubmitMessageInput) { got = input }).
		Return(&entity.ContactMessage{ID: uuid.New()}, nil)

	// Field names as the public contact form posts them.
	body := `{
		"type": "general",
		"name": "Ali",
		"email": "ali@example.com",
		"phone": "+9665xxxxxxx",
		"service_type": "car wash",
		"message": "I would like a quote"
	}`
	rec, err := postJSON(t, h.Submit, "/api/contact", body)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, got)
	assert.Equal(t, entity.MessageTypeGeneral, got.Type)
	assert.Equal(t, "I would like a quote", got.Body)
	assert.Equal(t, "car wash", got.ServiceType)
	assert.Equal(t, "Ali", got.Name)
}

func TestMessageHandler_Submit_MissingMessage(t *testing.T) {
	uc := mockUsecase.NewMockMessageUsecase(t)
	h := NewMessageHandler(uc, newTestLogger())

	_, err := postJSON(t, h.Submit, "/api/contact", `{"type":"general","name":"Ali","email":"ali@example.com"}`)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestMessageHandler_Submit_InvalidEmail(t *testing.T) {
	uc := mockUsecase.NewMockMessageUsecase(t)
	h := NewMessageHandler(uc, newTestLogger())

	_, err := postJSON(t, h.Submit, "/api/contact", `{"type":"general","name":"Ali","email":"not-an-email","message":"hi"}`)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}
