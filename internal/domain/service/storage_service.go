package service

import (
	"context"
	"io"
)

// StorageService defines the interface for blob storage of uploaded images.
type StorageService interface {
	// Upload stores the content under key and returns its public URL.
	Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error)

	// Delete removes the blob stored under key.
	Delete(ctx context.Context, key string) error
}
