// Package storage implements the upload file store on top of gocloud.dev
// blob buckets, so local disk and cloud object stores share one code path.
package storage

import (
	"context"
	"io"
	"log/slog"
	"path"
	"slices"
	"strings"

	"stationhub/config"
	domainerrors "stationhub/internal/domain/errors"
	"stationhub/internal/domain/lifecycle"
	"stationhub/internal/domain/service"
	"stationhub/internal/errors"
	"stationhub/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Drivers registered for the bucket URL schemes we support.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	maxSizeBytes  int64
	allowedTypes  []string
	logger        *slog.Logger
}

// New opens the configured blob bucket and returns it behind the domain
// FileStorage interface.
func New(params Params) (service.FileStorage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, params.Config.Upload.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open upload bucket %q", params.Config.Upload.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(params.Config.Site.PublicBaseURL, "/"),
		maxSizeBytes:  params.Config.Upload.MaxSizeBytes,
		allowedTypes:  params.Config.Upload.AllowedTypes,
		logger:        params.Logger,
	}, nil
}

// Save validates and writes the upload, returning a public URL.
func (s *blobStorage) Save(ctx context.Context, input *service.UploadInput) (string, error) {
	if input.Size > s.maxSizeBytes {
		return "", domainerrors.ErrUploadTooLarge.WithDetails("limit is " + util.FormatBytes(s.maxSizeBytes))
	}
	if len(s.allowedTypes) > 0 && !slices.Contains(s.allowedTypes, input.ContentType) {
		return "", domainerrors.ErrUploadTypeNotAllowed.WithDetails(input.ContentType)
	}

	key := buildKey(input.Folder, input.Filename)

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: input.ContentType,
	})
	if err != nil {
		return "", domainerrors.ErrUploadFailed.WithDetails(err.Error())
	}

	// Copy with a hard cap one byte past the limit so a lying Content-Length
	// cannot smuggle an oversized body through.
	written, err := io.Copy(writer, io.LimitReader(input.Body, s.maxSizeBytes+1))
	if err != nil {
		writer.Close()

		return "", domainerrors.ErrUploadFailed.WithDetails(err.Error())
	}
	if written > s.maxSizeBytes {
		writer.Close()
		if deleteErr := s.bucket.Delete(ctx, key); deleteErr != nil {
			s.logger.Warn("Failed to remove oversized upload", slog.String("key", key), slog.Any("error", deleteErr))
		}

		return "", domainerrors.ErrUploadTooLarge.WithDetails("limit is " + util.FormatBytes(s.maxSizeBytes))
	}
	if err := writer.Close(); err != nil {
		return "", domainerrors.ErrUploadFailed.WithDetails(err.Error())
	}

	return s.publicBaseURL + "/files/" + key, nil
}

// Delete removes a previously stored object by its key.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		return errors.Wrapf(err, "failed to delete blob %q", key)
	}

	return nil
}

// buildKey makes a collision-free object key, keeping only the original
// file extension. The folder hint is flattened to a single path segment.
func buildKey(folder, filename string) string {
	segment := strings.Trim(path.Clean("/"+folder), "/")
	segment = strings.ReplaceAll(segment, "/", "-")
	if segment == "" || segment == "." {
		segment = "misc"
	}

	ext := strings.ToLower(path.Ext(filename))

	return segment + "/" + uuid.New().String() + ext
}
