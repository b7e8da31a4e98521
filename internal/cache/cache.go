// Package cache holds JSON read-through caches in front of the document store.
package cache

import (
	"context"
	"time"
)

type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

const (
	// ProjectsKey holds the resolved project list.
	ProjectsKey = "projects:all"

	DefaultNamespace   = "folio"
	DefaultProjectsTTL = 30 * time.Second
)
