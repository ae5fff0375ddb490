// Package storage keeps entity attachments (resumes, photos, logos, reports) in an S3 compatible bucket.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"edu_crm/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ErrForeignURL is returned when a URL was not produced by this store.
var ErrForeignURL = errors.New("url does not belong to this store")

// ObjectStore puts objects and removes them by their public URL.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, r io.Reader, size int64) (publicURL string, err error)
	Remove(ctx context.Context, publicURL string) error
}

// MinioStore is an ObjectStore backed by minio-go.
type MinioStore struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

// NewMinioStore connects to the configured endpoint and creates the bucket when missing.
func NewMinioStore(ctx context.Context, cfg *config.Configuration) (*MinioStore, error) {
	if cfg.StorageEndpoint == "" {
		return nil, fmt.Errorf("storage endpoint is not configured")
	}

	client, err := minio.New(cfg.StorageEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.StorageAccessKey, cfg.StorageSecretKey, ""),
		Secure: cfg.StorageUseSSL,
		Region: cfg.StorageRegion,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.StorageBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.StorageBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.StorageBucket, minio.MakeBucketOptions{Region: cfg.StorageRegion}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.StorageBucket, err)
		}
	}

	base := cfg.StoragePublicBaseURL
	if base == "" {
		scheme := "http"
		if cfg.StorageUseSSL {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s/%s", scheme, cfg.StorageEndpoint, cfg.StorageBucket)
	}

	return &MinioStore{client: client, bucket: cfg.StorageBucket, baseURL: strings.TrimRight(base, "/")}, nil
}

func (s *MinioStore) Put(ctx context.Context, key, contentType string, r io.Reader, size int64) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("put %s: %w", key, err)
	}
	return s.baseURL + "/" + key, nil
}

func (s *MinioStore) Remove(ctx context.Context, publicURL string) error {
	key, err := KeyFromURL(s.baseURL, publicURL)
	if err != nil {
		return err
	}
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}

// KeyFromURL returns the object key of a URL built as <baseURL>/<key>.
func KeyFromURL(baseURL, publicURL string) (string, error) {
	base := strings.TrimRight(baseURL, "/") + "/"
	if !strings.HasPrefix(publicURL, base) {
		return "", fmt.Errorf("%w: %s", ErrForeignURL, publicURL)
	}
	key := strings.TrimPrefix(publicURL, base)
	if i := strings.IndexAny(key, "?#"); i >= 0 {
		key = key[:i]
	}
	unescaped, err := url.PathUnescape(key)
	if err != nil || unescaped == "" {
		return "", fmt.Errorf("%w: %s", ErrForeignURL, publicURL)
	}
	return unescaped, nil
}
