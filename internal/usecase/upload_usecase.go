package usecase

import (
	"context"

	"stationhub/internal/domain/service"
)

// UploadOutput returns where an uploaded file can be fetched.
type UploadOutput struct {
	URL string `json:"url"`
}

// UploadUsecase stores dashboard file uploads (partner logos, content
// images, message attachments).
type UploadUsecase interface {
	// Upload validates and stores one file, returning its public URL.
	Upload(ctx context.Context, input *service.UploadInput) (*UploadOutput, error)
}
