package repository

import (
	"context"
	"errors"
)

var ErrBlobNotFound = errors.New("blob not found")

// BlobStore is the durable storage the snapshot is read from.
type BlobStore interface {
	Get(ctx context.Context, name string) ([]byte, error)
}
