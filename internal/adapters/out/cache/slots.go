package cache

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/suchimauz/checkout-delivery-slots/internal/core/domain"
	"github.com/suchimauz/checkout-delivery-slots/internal/core/ports/out"
)

type slotsCache struct {
	mu    sync.RWMutex
	cache *lru.Cache[out.SlotsCacheKey, []domain.Slot]
}

// Кэширование слотов

func (c *CacheAdapter) GetSlots(ctx context.Context, key out.SlotsCacheKey) ([]domain.Slot, bool) {
	c.slotsCache.mu.RLock()
	defer c.slotsCache.mu.RUnlock()

	slots, exists := c.slotsCache.cache.Get(key)
	if !exists {
		c.logger.Debug("cache.slots.get.miss", out.LogFields{
			"pickup":      key.Pickup,
			"methodIndex": key.MethodIndex,
			"dayType":     key.DayType,
		})
		return nil, false
	}

	c.logger.Debug("cache.slots.get.hit", out.LogFields{
		"pickup":      key.Pickup,
		"methodIndex": key.MethodIndex,
		"dayType":     key.DayType,
		"slotsCount":  len(slots),
	})

	// Копия, чтобы вызывающий не мог испортить запись в кэше
	result := make([]domain.Slot, len(slots))
	copy(result, slots)
	return result, true
}

func (c *CacheAdapter) StoreSlots(ctx context.Context, key out.SlotsCacheKey, slots []domain.Slot) {
	c.slotsCache.mu.Lock()
	defer c.slotsCache.mu.Unlock()

	c.logger.Debug("cache.slots.store", out.LogFields{
		"pickup":      key.Pickup,
		"methodIndex": key.MethodIndex,
		"dayType":     key.DayType,
		"slotsCount":  len(slots),
	})

	entry := make([]domain.Slot, len(slots))
	copy(entry, slots)
	c.slotsCache.cache.Add(key, entry)
}

func (c *CacheAdapter) InvalidateAllSlotsCache(ctx context.Context) {
	c.slotsCache.mu.Lock()
	defer c.slotsCache.mu.Unlock()

	c.logger.Debug("cache.slots.invalidate_all", out.LogFields{
		"entries": c.slotsCache.cache.Len(),
	})

	c.slotsCache.cache.Purge()
}
