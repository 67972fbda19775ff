package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DirBlobStore serves blobs from files under a local directory.
type DirBlobStore struct {
	root string
}

func NewDirBlobStore(root string) *DirBlobStore {
	return &DirBlobStore{root: root}
}

func (d *DirBlobStore) Get(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p := filepath.Join(d.root, filepath.Clean("/"+name))
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrBlobNotFound, p)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read blob %s: %w", p, err)
	}
	return data, nil
}
