package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDirBlobStore_Get(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "loans.csv"), []byte("a,b\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	store := NewDirBlobStore(dir)

	data, err := store.Get(context.Background(), "loans.csv")
	if err != nil || string(data) != "a,b\n" {
		t.Fatalf("unexpected result %q, %v", data, err)
	}

	if _, err := store.Get(context.Background(), "missing.csv"); !errors.Is(err, ErrBlobNotFound) {
		t.Errorf("expected ErrBlobNotFound, got %v", err)
	}
}

func TestDirBlobStore_StaysInsideRoot(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "root")
	if err := os.Mkdir(root, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(parent, "secret.csv"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := NewDirBlobStore(root).Get(context.Background(), "../secret.csv")
	if !errors.Is(err, ErrBlobNotFound) {
		t.Errorf("expected ErrBlobNotFound for path outside root, got %v", err)
	}
}

func TestDirBlobStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewDirBlobStore(t.TempDir()).Get(ctx, "loans.csv"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRedisBlobStore_Key(t *testing.T) {
	store := NewRedisBlobStore("localhost:6379", "", 0, "files")
	defer store.Close()

	if got := store.Key("loans.csv"); got != "files/loans.csv" {
		t.Errorf("expected files/loans.csv, got %s", got)
	}
}
