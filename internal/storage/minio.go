package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"credvault/internal/config"
)

// ErrNotConfigured is returned by NewMinIO when no endpoint is set.
var ErrNotConfigured = errors.New("object storage not configured")

const bucketCheckTimeout = 10 * time.Second

type minioStorage struct {
	client *minio.Client
	bucket string
}

var _ Storage = (*minioStorage)(nil)

// NewMinIO connects to an S3-compatible endpoint and creates cfg.Bucket when it
// is missing. With no endpoint configured it returns ErrNotConfigured and the
// caller runs without application files.
func NewMinIO(ctx context.Context, cfg config.MinIOConfig) (Storage, error) {
	if err := checkMinIOConfig(cfg); err != nil {
		return nil, err
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	s := &minioStorage{client: client, bucket: cfg.Bucket}
	if err := s.ensureBucket(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func checkMinIOConfig(cfg config.MinIOConfig) error {
	switch {
	case cfg.Endpoint == "":
		return ErrNotConfigured
	case cfg.AccessKey == "" || cfg.SecretKey == "":
		return errors.New("minio credentials are required")
	case cfg.Bucket == "":
		return errors.New("minio bucket is required")
	}
	return nil
}

func (s *minioStorage) ensureBucket(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, bucketCheckTimeout)
	defer cancel()

	ok, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}
	if ok {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket %s: %w", s.bucket, err)
	}
	return nil
}

func (s *minioStorage) Put(ctx context.Context, key string, r io.Reader, opt PutOptions) (Object, error) {
	info, err := s.client.PutObject(ctx, s.bucket, key, r, opt.Size, minio.PutObjectOptions{
		ContentType:  opt.ContentType,
		UserMetadata: opt.Metadata,
	})
	if err != nil {
		return Object{}, fmt.Errorf("put %s: %w", key, err)
	}
	return Object{Key: key, Size: info.Size, ETag: info.ETag}, nil
}

func (s *minioStorage) Delete(ctx context.Context, key string) error {
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}

func (s *minioStorage) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, expiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", key, err)
	}
	return u.String(), nil
}
