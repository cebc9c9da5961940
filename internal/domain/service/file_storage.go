package service

import (
	"context"
	"io"
)

// UploadInput describes one file upload request after transport decoding.
type UploadInput struct {
	Folder      string    // Destination folder hint, e.g. "attachments".
	Filename    string    // Original client filename; sanitized by the store.
	ContentType string    // Declared MIME type.
	Size        int64     // Declared size in bytes.
	Body        io.Reader // File content.
}

// FileStorage abstracts the blob store that holds uploaded files.
type FileStorage interface {
	// Save validates and writes the upload, returning a public URL.
	Save(ctx context.Context, input *UploadInput) (url string, err error)

	// Delete removes a previously stored object by its key.
	Delete(ctx context.Context, key string) error
}
