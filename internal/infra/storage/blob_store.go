// Package storage provides blob storage backends for uploaded images.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"campustrace/config"
	"campustrace/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Register the drivers the bucket URL may select.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// blobStore implements StorageService on top of a gocloud.dev bucket, so the
// backing store (local disk, GCS, S3) is chosen purely by the bucket URL.
type blobStore struct {
	bucket    *blob.Bucket
	publicURL string
	logger    *slog.Logger
}

// BlobStoreParams holds dependencies for the blob store, injected by Fx
type BlobStoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStore opens the configured bucket and returns it as a StorageService.
func NewBlobStore(params BlobStoreParams) (service.StorageService, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket URL must be provided")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("Blob store initialized", slog.String("bucket", cfg.BucketURL))

	return &blobStore{
		bucket:    bucket,
		publicURL: strings.TrimSuffix(params.Config.HTTP.PublicBaseURL, "/"),
		logger:    params.Logger,
	}, nil
}

// Upload stores the content under key and returns its public URL.
func (s *blobStore) Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()

		return "", errors.Wrapf(err, "failed to write blob %s", key)
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to close writer for %s", key)
	}

	return s.publicURL + "/media/" + key, nil
}

// Delete removes the blob stored under key.
func (s *blobStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		return errors.Wrapf(err, "failed to delete blob %s", key)
	}

	return nil
}
