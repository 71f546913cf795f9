// Package storage wraps S3-compatible object storage used for application files.
package storage

import (
	"context"
	"io"
	"time"
)

// PutOptions describe an upload. Size is the exact byte count, or -1 when
// unknown so the backend falls back to multipart chunking.
type PutOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// Object is what the backend reports about a stored upload.
type Object struct {
	Key  string
	Size int64
	ETag string
}

// Storage is an S3-compatible object store.
type Storage interface {
	Put(ctx context.Context, key string, r io.Reader, opt PutOptions) (Object, error)
	Delete(ctx context.Context, key string) error
	// PresignGet returns a download URL for key that stops working after expiry.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}
