package handler

import (
	"log/slog"
	"net/http"

	"stationhub/internal/delivery/http/middleware"
	"stationhub/internal/delivery/http/response"
	"stationhub/internal/domain/entity"
	"stationhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContentHandler holds dependencies for site content handlers.
type ContentHandler struct {
	uc     usecase.ContentUsecase
	logger *slog.Logger
}

// NewContentHandler is the constructor for ContentHandler, injected by Fx.
func NewContentHandler(uc usecase.ContentUsecase, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{
		uc:     uc,
		logger: logger,
	}
}

// Get returns one content section in the requested locale. The locale
// query defaults to Arabic, the site's primary language.
func (h *ContentHandler) Get(c echo.Context) error {
	locale := c.QueryParam("locale")
	if locale == "" {
		locale = entity.LocaleArabic
	}

	block, err := h.uc.GetContent(c.Request().Context(), c.Param("section"), locale)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, block, "Content retrieved successfully")
}

// List returns every stored content block for the dashboard.
func (h *ContentHandler) List(c echo.Context) error {
	blocks, err := h.uc.ListContent(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, blocks, "Content retrieved successfully")
}

// Save upserts a content block, recording the signed-in editor.
func (h *ContentHandler) Save(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authentication required")
	}

	var input *usecase.ContentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid content input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	block, err := h.uc.SaveContent(c.Request().Context(), input, user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, block, "Content saved successfully")
}
