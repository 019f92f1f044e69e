package db

import (
	"context"
	"fmt"
	"io"
	"path"

	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"github.com/eduardo/landingkit/internal/domain"
)

// ArchiveStore uploads build archives to a Firebase Storage bucket
type ArchiveStore struct {
	fs         domain.FileSystemPort
	bucket     *storage.BucketHandle
	bucketName string
	prefix     string
}

func NewArchiveStore(ctx context.Context, app *firebase.App, fs domain.FileSystemPort, bucketName, prefix string) (*ArchiveStore, error) {
	if bucketName == "" {
		return nil, fmt.Errorf("storage bucket is not configured")
	}
	client, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("error initializing storage: %w", err)
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("error opening bucket %s: %w", bucketName, err)
	}
	return &ArchiveStore{fs: fs, bucket: bucket, bucketName: bucketName, prefix: prefix}, nil
}

// Upload copies localPath to prefix/objectName and returns its gs:// URL
func (s *ArchiveStore) Upload(ctx context.Context, localPath, objectName string) (string, error) {
	src, err := s.fs.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to open archive: %w", err)
	}
	defer src.Close()

	name := path.Join(s.prefix, objectName)
	w := s.bucket.Object(name).NewWriter(ctx)
	w.ContentType = "application/zip"

	if _, err := io.Copy(w, src); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("failed to upload archive: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize upload: %w", err)
	}
	return fmt.Sprintf("gs://%s/%s", s.bucketName, name), nil
}
