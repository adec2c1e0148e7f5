package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"deadparty-backend/internal/config"
)

// MediaStorage stores article images and event flyers in a MinIO bucket.
type MediaStorage struct {
	client *minio.Client
	bucket string
}

func NewMediaStorage(cfg config.MinIOConfig) (*MediaStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &MediaStorage{
		client: client,
		bucket: cfg.Bucket,
	}, nil
}

// Upload stores a file under the given key (e.g. "articles/<id>/cover.jpg")
// and returns its public URL.
func (s *MediaStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(
		ctx,
		s.bucket,
		key,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return "", fmt.Errorf("failed to upload to minio: %w", err)
	}

	scheme := "http"
	if s.client.EndpointURL().Scheme == "https" {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.client.EndpointURL().Host, s.bucket, key), nil
}

// Delete removes an object. Failures are non-fatal for callers that only
// clean up replaced media.
func (s *MediaStorage) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete from minio: %w", err)
	}
	return nil
}

// KeyFromURL recovers the object key from a URL previously returned by
// Upload. Returns false for URLs that do not point into this bucket.
func (s *MediaStorage) KeyFromURL(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host != s.client.EndpointURL().Host {
		return "", false
	}
	key := strings.TrimPrefix(u.Path, "/"+s.bucket+"/")
	if key == u.Path || key == "" {
		return "", false
	}
	return key, true
}
