package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/oggyb/portfolio-inbox/internal/cache"
	"github.com/oggyb/portfolio-inbox/internal/domain/contact"
	"go.uber.org/zap"
)

var statsKey = cache.AllContactStats

// Cache failures never fail a request; they are logged and the store is
// used directly.

func cachedStats(ctx context.Context, c cache.Cache, log *zap.Logger) (contact.Stats, bool) {
	if c == nil {
		return contact.Stats{}, false
	}

	raw, err := c.Get(ctx, statsKey)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			log.Debug("stats cache get", zap.Error(err))
		}
		return contact.Stats{}, false
	}

	var st contact.Stats
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		log.Debug("stats cache decode", zap.Error(err))
		return contact.Stats{}, false
	}
	return st, true
}

func storeStats(ctx context.Context, c cache.Cache, st contact.Stats, ttl time.Duration, log *zap.Logger) {
	if c == nil || ttl <= 0 {
		return
	}

	raw, err := json.Marshal(st)
	if err != nil {
		return
	}
	if err := c.Set(ctx, statsKey, string(raw), ttl); err != nil {
		log.Debug("stats cache set", zap.Error(err))
	}
}

func invalidateStats(ctx context.Context, c cache.Cache, log *zap.Logger) {
	if c == nil {
		return
	}
	if err := c.Del(ctx, statsKey); err != nil {
		log.Debug("stats cache invalidate", zap.Error(err))
	}
}
