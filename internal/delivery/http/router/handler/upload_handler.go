package handler

import (
	"log/slog"
	"net/http"

	"stationhub/internal/delivery/http/response"
	"stationhub/internal/domain/service"
	"stationhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UploadHandler accepts dashboard file uploads.
type UploadHandler struct {
	uc     usecase.UploadUsecase
	logger *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler, injected by Fx.
func NewUploadHandler(uc usecase.UploadUsecase, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		uc:     uc,
		logger: logger,
	}
}

// Upload stores one multipart file and returns its public URL. The
// optional folder form value groups files by purpose (logos, content).
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "A file form field is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	output, err := h.uc.Upload(c.Request().Context(), &service.UploadInput{
		Folder:      c.FormValue("folder"),
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Size:        fileHeader.Size,
		Body:        src,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "File uploaded successfully")
}
