package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/suchimauz/checkout-delivery-slots/internal/config"
	"github.com/suchimauz/checkout-delivery-slots/internal/core/domain"
	"github.com/suchimauz/checkout-delivery-slots/internal/core/ports/out"
)

type CacheAdapter struct {
	cfg           *config.Config
	slotsCache    *slotsCache
	settingsCache *settingsCache
	logger        out.LoggerPort
}

var _ out.CachePort = (*CacheAdapter)(nil)

func NewCacheAdapter(cfg *config.Config, logger out.LoggerPort) (*CacheAdapter, error) {
	if !cfg.Cache.Enabled {
		logger.Info("cache.disabled", out.LogFields{
			"message": "Cache is disabled",
		})
		return nil, nil
	}

	lruSlotsCache, err := lru.New[out.SlotsCacheKey, []domain.Slot](cfg.Cache.SlotsSize)
	if err != nil {
		logger.Error("cache.slots.init.failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.SlotsSize,
		})
		return nil, err
	}

	return &CacheAdapter{
		cfg: cfg,
		slotsCache: &slotsCache{
			cache: lruSlotsCache,
		},
		settingsCache: &settingsCache{
			ttl: cfg.Settings.TTL,
		},
		logger: logger.WithModule("CacheAdapter"),
	}, nil
}
