// Package storage menyimpan isi file dokumen di luar database.
package storage

import (
	"context"
	"errors"
)

var ErrObjectNotFound = errors.New("object not found")

// BlobStore menyimpan isi file berdasarkan key. Record dokumen hanya menyimpan key-nya.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
