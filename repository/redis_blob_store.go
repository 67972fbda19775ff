package repository

import (
	"context"
	"errors"
	"fmt"
	"path"

	"github.com/redis/go-redis/v9"
)

// RedisBlobStore reads each blob from a string key "<container>/<name>".
type RedisBlobStore struct {
	client    *redis.Client
	container string
}

func NewRedisBlobStore(addr, password string, db int, container string) *RedisBlobStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisBlobStore{
		client:    rdb,
		container: container,
	}
}

// Ping checks the connection before any blob is requested.
func (r *RedisBlobStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	return nil
}

func (r *RedisBlobStore) Key(name string) string {
	return path.Join(r.container, name)
}

func (r *RedisBlobStore) Get(ctx context.Context, name string) ([]byte, error) {
	val, err := r.client.Get(ctx, r.Key(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", ErrBlobNotFound, r.Key(name))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to download blob '%s': %w", r.Key(name), err)
	}
	return val, nil
}

func (r *RedisBlobStore) Close() error {
	return r.client.Close()
}
