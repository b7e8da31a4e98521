package mocks

import (
	"context"
	"encoding/json"
	"time"

	"github.com/stretchr/testify/mock"
)

// CacheMock is a testify/mock for cache.Cache. On a hit, the second return value
// of GetJSON is JSON-decoded into dst.
type CacheMock struct{ mock.Mock }

func (m *CacheMock) GetJSON(ctx context.Context, key string, dst any) (bool, error) {
	args := m.Called(ctx, key, dst)
	if raw, ok := args.Get(1).(string); ok && args.Bool(0) {
		if err := json.Unmarshal([]byte(raw), dst); err != nil {
			return false, err
		}
	}
	return args.Bool(0), args.Error(2)
}

func (m *CacheMock) SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error {
	return m.Called(ctx, key, val, ttl).Error(0)
}

func (m *CacheMock) Del(ctx context.Context, keys ...string) error {
	return m.Called(ctx, keys).Error(0)
}
