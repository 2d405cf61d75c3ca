package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/oggyb/portfolio-inbox/internal/cache"
	"github.com/oggyb/portfolio-inbox/internal/journal"
	"github.com/oggyb/portfolio-inbox/internal/notify"
	"github.com/stretchr/testify/mock"
)

// memJournal records appended entries or fails every append.
type memJournal struct {
	mu      sync.Mutex
	entries []journal.Entry
	err     error
}

func (j *memJournal) Append(e journal.Entry) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.err != nil {
		return j.err
	}
	j.entries = append(j.entries, e)
	return nil
}

// memCache is a map-backed cache.Cache that ignores TTLs.
type memCache struct {
	mu   sync.Mutex
	data map[string]string
	gets int
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string]string)}
}

func (c *memCache) Ping(context.Context) error { return nil }

func (c *memCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *memCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	v, ok := c.data[key]
	if !ok {
		return "", cache.ErrMiss
	}
	return v, nil
}

func (c *memCache) Del(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok
}

type mockDispatcher struct {
	mock.Mock
}

func (m *mockDispatcher) Send(ctx context.Context, n notify.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *mockDispatcher) Verify(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

var errBoom = errors.New("boom")
