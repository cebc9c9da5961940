package impl

import (
	"context"
	"log/slog"

	deliverycontext "stationhub/internal/delivery/context"
	"stationhub/internal/domain/service"
	"stationhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// uploadService implements the UploadUsecase interface.
type uploadService struct {
	fileStorage service.FileStorage
	logger      *slog.Logger
}

// UploadServiceParams holds dependencies for uploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	FileStorage service.FileStorage
	Logger      *slog.Logger
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	return &uploadService{
		fileStorage: params.FileStorage,
		logger:      params.Logger,
	}
}

func (srv *uploadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Upload validates and stores one file, returning its public URL. Size and
// MIME-type limits are enforced by the store.
func (srv *uploadService) Upload(ctx context.Context, input *service.UploadInput) (*usecase.UploadOutput, error) {
	url, err := srv.fileStorage.Save(ctx, input)
	if err != nil {
		srv.log(ctx).Warn("Upload rejected",
			slog.String("filename", input.Filename), slog.String("contentType", input.ContentType), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store upload")
	}
	srv.log(ctx).Info("File uploaded", slog.String("filename", input.Filename), slog.String("url", url))

	return &usecase.UploadOutput{URL: url}, nil
}
