package cache

import (
	"context"
	"sync"
	"time"

	"github.com/suchimauz/checkout-delivery-slots/internal/core/domain"
	"github.com/suchimauz/checkout-delivery-slots/internal/core/ports/out"
)

type settingsCache struct {
	mu        sync.RWMutex
	cache     *domain.Settings
	timestamp time.Time
	ttl       time.Duration
}

// Кэширование настроек магазина

func (c *CacheAdapter) GetSettings(ctx context.Context) (*domain.Settings, bool) {
	c.settingsCache.mu.RLock()
	defer c.settingsCache.mu.RUnlock()

	if c.settingsCache.cache == nil || time.Since(c.settingsCache.timestamp) > c.settingsCache.ttl {
		return nil, false
	}

	return c.settingsCache.cache, true
}

func (c *CacheAdapter) StoreSettings(ctx context.Context, settings domain.Settings) {
	c.settingsCache.mu.Lock()
	defer c.settingsCache.mu.Unlock()

	c.logger.Debug("cache.settings.store", out.LogFields{
		"methodsCount": len(settings.Methods),
	})

	c.settingsCache.cache = &settings
	c.settingsCache.timestamp = time.Now()
}

func (c *CacheAdapter) InvalidateSettingsCache(ctx context.Context) {
	c.settingsCache.mu.Lock()
	defer c.settingsCache.mu.Unlock()

	c.logger.Debug("cache.settings.invalidate", out.LogFields{})

	c.settingsCache.cache = nil
	c.settingsCache.timestamp = time.Time{}
}
