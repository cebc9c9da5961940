package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"stationhub/internal/delivery/http/response"
	"stationhub/internal/domain/entity"
	"stationhub/internal/domain/repository"
	"stationhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MessageHandler holds dependencies for contact message handlers.
type MessageHandler struct {
	uc     usecase.MessageUsecase
	logger *slog.Logger
}

// NewMessageHandler is the constructor for MessageHandler, injected by Fx.
func NewMessageHandler(uc usecase.MessageUsecase, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{
		uc:     uc,
		logger: logger,
	}
}

// Submit handles the public contact form.
func (h *MessageHandler) Submit(c echo.Context) error {
	var input *usecase.SubmitMessageInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact form input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	message, err := h.uc.SubmitMessage(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": message.ID.String()}, "Message received")
}

// List returns messages for the dashboard inbox, filtered by query params.
func (h *MessageHandler) List(c echo.Context) error {
	filter := repository.MessageFilter{
		Type: entity.MessageType(c.QueryParam("type")),
	}
	if unread, err := strconv.ParseBool(c.QueryParam("unread")); err == nil {
		filter.UnreadOnly = unread
	}
	if archived, err := strconv.ParseBool(c.QueryParam("archived")); err == nil {
		filter.IncludeArchived = archived
	}

	messages, err := h.uc.ListMessages(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages, "Messages retrieved successfully")
}

// Get returns one message and marks it read.
func (h *MessageHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid message ID")
	}

	message, err := h.uc.GetMessage(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, message, "Message retrieved successfully")
}

// SetArchived flips the archived flag on a message.
func (h *MessageHandler) SetArchived(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid message ID")
	}

	var input struct {
		Archived bool `json:"archived"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid archive input")
	}

	message, err := h.uc.SetMessageArchived(c.Request().Context(), id, input.Archived)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, message, "Message updated successfully")
}

// Delete removes a message permanently.
func (h *MessageHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid message ID")
	}

	if err := h.uc.DeleteMessage(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Message deleted"}, "Message deleted successfully")
}
